package user_dto

type ListUsersQuery struct {
	Skip  int64 `query:"skip" validate:"omitempty,min=0"`
	Limit int64 `query:"limit" validate:"omitempty,min=1,max=100"`
}
