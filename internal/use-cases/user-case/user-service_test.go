package user_case

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	user_dto "github.com/markwayne24/todo-app/internal/dtos/user-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
)

// An unreachable redis only costs the cache, the repo still answers.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestUserSelfProfile_FallsBackToRepoWhenCacheUnavailable(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	service := &UserService{users: users, redis: unreachableRedis()}

	userID := primitive.NewObjectID()
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice"}

	users.On("FindUserByID", ctx, userID).Return(user, (*app_errors.AppError)(nil))

	resp, err := service.UserSelfProfile(ctx, userID.Hex())

	assert.Nil(t, err)
	assert.Equal(t, userID.Hex(), resp.ID)
	assert.Equal(t, "alice@example.com", resp.Email)

	users.AssertExpectations(t)
}

func TestUserSelfProfile_UnknownUser(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	service := &UserService{users: users, redis: unreachableRedis()}

	userID := primitive.NewObjectID()
	users.On("FindUserByID", ctx, userID).
		Return((*entity.UserEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := service.UserSelfProfile(ctx, userID.Hex())

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusNotFound, err.Code)
}

func TestListUsers_NeverLeaksPasswordHashes(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	service := &UserService{users: users}

	stored := []entity.UserEntity{
		{ID: primitive.NewObjectID(), Email: "alice@example.com", Name: "Alice", PasswordHash: "$2a$10$hash"},
		{ID: primitive.NewObjectID(), Email: "bob@example.com", Name: "Bob", PasswordHash: "$2a$10$hash"},
	}

	users.On("ListUsers", ctx, int64(0), int64(20)).Return(stored, int64(2), (*app_errors.AppError)(nil))

	resp, err := service.ListUsers(ctx, &user_dto.ListUsersQuery{})

	assert.Nil(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(2), resp.Total)

	users.AssertExpectations(t)
}
