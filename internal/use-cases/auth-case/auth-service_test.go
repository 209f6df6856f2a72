package auth_case

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	auth_dto "github.com/markwayne24/todo-app/internal/dtos/auth-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/queue"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	"github.com/markwayne24/todo-app/internal/utils"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuthService(users *user_repo.MockUserRepo, q *queue.MockTaskQueue) *AuthService {
	jwt, _ := utils.NewJWTMaker(testSecret)
	return &AuthService{
		users:      users,
		queue:      q,
		jwt:        jwt,
		accessTTL:  15 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
	}
}

func TestRegisterUser_Success(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	userID := primitive.NewObjectID()
	users.On("CountUsersByEmail", ctx, "alice@example.com").Return(int64(0), (*app_errors.AppError)(nil))
	users.On("InsertUser", ctx, mock.MatchedBy(func(u *entity.UserEntity) bool {
		return u.Email == "alice@example.com" && u.PasswordHash != "" && u.PasswordHash != "s3cret-pass"
	})).Return(userID, (*app_errors.AppError)(nil))
	q.On("EnqueueSendWelcomeEmail", mock.MatchedBy(func(p *worker_task.SendWelcomeEmailPayload) bool {
		return p.Email == "alice@example.com" && p.Name == "Alice"
	})).Return(nil).Once()

	resp, err := service.RegisterUser(ctx, &auth_dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "s3cret-pass",
	})

	assert.Nil(t, err)
	assert.Equal(t, userID.Hex(), resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	users.AssertExpectations(t)
	q.AssertExpectations(t)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	users.On("CountUsersByEmail", ctx, "alice@example.com").Return(int64(1), (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, &auth_dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "s3cret-pass",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, app_errors.ErrConflict, err.Type)

	users.AssertExpectations(t)
	q.AssertNotCalled(t, "EnqueueSendWelcomeEmail", mock.Anything)
}

// A queue hiccup must not fail the signup itself.
func TestRegisterUser_EnqueueFailureDoesNotFailSignup(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	users.On("CountUsersByEmail", ctx, "alice@example.com").Return(int64(0), (*app_errors.AppError)(nil))
	users.On("InsertUser", ctx, mock.Anything).Return(primitive.NewObjectID(), (*app_errors.AppError)(nil))
	q.On("EnqueueSendWelcomeEmail", mock.Anything).Return(errors.New("redis down")).Once()

	resp, err := service.RegisterUser(ctx, &auth_dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "s3cret-pass",
	})

	assert.Nil(t, err)
	assert.NotNil(t, resp)

	users.AssertExpectations(t)
	q.AssertExpectations(t)
}

func TestLoginUser_Success(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	hash, hashErr := utils.GenerateHash("s3cret-pass")
	assert.NoError(t, hashErr)

	userID := primitive.NewObjectID()
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice", PasswordHash: hash}

	users.On("FindUserByEmail", ctx, "alice@example.com").Return(user, (*app_errors.AppError)(nil))
	q.On("EnqueueSendLoginAttemptEmail", mock.MatchedBy(func(p *worker_task.SendLoginAttemptEmailPayload) bool {
		return p.UserID == userID.Hex()
	})).Return(nil).Once()

	resp, err := service.LoginUser(ctx, &auth_dto.LoginUserRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Nil(t, err)
	assert.Equal(t, userID.Hex(), resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)

	users.AssertExpectations(t)
	q.AssertExpectations(t)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	users.On("FindUserByEmail", ctx, "ghost@example.com").
		Return((*entity.UserEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, &auth_dto.LoginUserRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)

	q.AssertNotCalled(t, "EnqueueSendLoginAttemptEmail", mock.Anything)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	hash, hashErr := utils.GenerateHash("correct-password")
	assert.NoError(t, hashErr)

	user := &entity.UserEntity{ID: primitive.NewObjectID(), Email: "alice@example.com", PasswordHash: hash}
	users.On("FindUserByEmail", ctx, "alice@example.com").Return(user, (*app_errors.AppError)(nil))

	resp, err := service.LoginUser(ctx, &auth_dto.LoginUserRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)

	q.AssertNotCalled(t, "EnqueueSendLoginAttemptEmail", mock.Anything)
}

func TestRefreshToken_Success(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	userID := primitive.NewObjectID()
	user := &entity.UserEntity{ID: userID, Email: "alice@example.com", Name: "Alice"}

	refresh, tokenErr := service.jwt.CreateToken(userID.Hex(), "Alice", "alice@example.com", "jti-1", time.Hour)
	assert.NoError(t, tokenErr)

	users.On("FindUserByID", ctx, userID).Return(user, (*app_errors.AppError)(nil))

	resp, err := service.RefreshToken(ctx, &auth_dto.RefreshTokenRequest{RefreshToken: refresh})

	assert.Nil(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	users.AssertExpectations(t)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	resp, err := service.RefreshToken(ctx, &auth_dto.RefreshTokenRequest{RefreshToken: "garbage"})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, err.Code)
}

func TestRefreshToken_UserDeleted(t *testing.T) {
	ctx := context.Background()

	users := new(user_repo.MockUserRepo)
	q := new(queue.MockTaskQueue)
	service := newTestAuthService(users, q)

	userID := primitive.NewObjectID()
	refresh, tokenErr := service.jwt.CreateToken(userID.Hex(), "Alice", "alice@example.com", "jti-1", time.Hour)
	assert.NoError(t, tokenErr)

	users.On("FindUserByID", ctx, userID).
		Return((*entity.UserEntity)(nil), (*app_errors.AppError)(nil))

	resp, err := service.RefreshToken(ctx, &auth_dto.RefreshTokenRequest{RefreshToken: refresh})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusForbidden, err.Code)
}
