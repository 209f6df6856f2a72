package auth_case

import (
	"context"

	auth_dto "github.com/markwayne24/todo-app/internal/dtos/auth-dto"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
)

type AuthServiceContract interface {
	RegisterUser(ctx context.Context, req *auth_dto.RegisterUserRequest) (*auth_dto.RegisterUserResponse, *app_errors.AppError)
	LoginUser(ctx context.Context, req *auth_dto.LoginUserRequest) (*auth_dto.LoginUserResponse, *app_errors.AppError)
	RefreshToken(ctx context.Context, req *auth_dto.RefreshTokenRequest) (*auth_dto.RefreshTokenResponse, *app_errors.AppError)
}
