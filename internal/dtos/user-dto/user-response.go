package user_dto

import "time"

// UserProfileResponse never carries the password hash.
type UserProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListUsersResponse struct {
	Users []UserProfileResponse `json:"users"`
	Total int64                 `json:"total"`
}
