package user_repo

import (
	"context"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepoContract interface {
	InsertUser(ctx context.Context, user *entity.UserEntity) (primitive.ObjectID, *app_errors.AppError)

	// FindUserByID returns (nil, nil) when the user does not exist; callers
	// decide whether a miss is an error or a benign skip.
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*entity.UserEntity, *app_errors.AppError)
	FindUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	CountUsersByEmail(ctx context.Context, email string) (int64, *app_errors.AppError)
	ListUsers(ctx context.Context, skip, limit int64) ([]entity.UserEntity, int64, *app_errors.AppError)
}
