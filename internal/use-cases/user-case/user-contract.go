package user_case

import (
	"context"

	user_dto "github.com/markwayne24/todo-app/internal/dtos/user-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
)

type UserServiceContract interface {
	UserSelfProfile(ctx context.Context, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError)
	ListUsers(ctx context.Context, query *user_dto.ListUsersQuery) (*user_dto.ListUsersResponse, *app_errors.AppError)
}
