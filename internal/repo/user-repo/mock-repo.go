package user_repo

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) InsertUser(ctx context.Context, user *entity.UserEntity) (primitive.ObjectID, *app_errors.AppError) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) CountUsersByEmail(ctx context.Context, email string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListUsers(ctx context.Context, skip, limit int64) ([]entity.UserEntity, int64, *app_errors.AppError) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]entity.UserEntity), args.Get(1).(int64), args.Get(2).(*app_errors.AppError)
}
