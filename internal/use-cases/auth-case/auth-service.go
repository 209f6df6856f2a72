package auth_case

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	auth_dto "github.com/markwayne24/todo-app/internal/dtos/auth-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/queue"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	"github.com/markwayne24/todo-app/internal/utils"
	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

type AuthService struct {
	users      user_repo.UserRepoContract
	queue      queue.TaskQueueClient
	jwt        *utils.JWTMaker
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(database *mongo.Database, q queue.TaskQueueClient, jwt *utils.JWTMaker, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      user_repo.NewUserRepo(database),
		queue:      q,
		jwt:        jwt,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) RegisterUser(ctx context.Context, req *auth_dto.RegisterUserRequest) (*auth_dto.RegisterUserResponse, *app_errors.AppError) {
	count, appErr := s.users.CountUsersByEmail(ctx, req.Email)
	if appErr != nil {
		return nil, appErr
	}
	if count > 0 {
		return nil, app_errors.NewAppError(http.StatusConflict, app_errors.ErrConflict, "error.email_taken", nil)
	}

	hash, err := utils.GenerateHash(req.Password)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
	}

	now := time.Now()
	user := &entity.UserEntity{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, appErr := s.users.InsertUser(ctx, user)
	if appErr != nil {
		return nil, appErr
	}

	// Notification delivery is best effort; a queue hiccup must not fail
	// the signup itself.
	if err := s.queue.EnqueueSendWelcomeEmail(&worker_task.SendWelcomeEmailPayload{
		Email: user.Email,
		Name:  user.Name,
	}); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("AuthService: failed to enqueue welcome email")
	}

	access, refresh, appErr := s.issueTokenPair(id.Hex(), user.Name, user.Email)
	if appErr != nil {
		return nil, appErr
	}

	return &auth_dto.RegisterUserResponse{
		UserID:       id.Hex(),
		Email:        user.Email,
		Name:         user.Name,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *AuthService) LoginUser(ctx context.Context, req *auth_dto.LoginUserRequest) (*auth_dto.LoginUserResponse, *app_errors.AppError) {
	user, appErr := s.users.FindUserByEmail(ctx, req.Email)
	if appErr != nil {
		return nil, appErr
	}
	if user == nil {
		return nil, app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.invalid_credentials", nil)
	}

	ok, err := utils.VerifyHash(user.PasswordHash, req.Password)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
	}
	if !ok {
		return nil, app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.invalid_credentials", nil)
	}

	if err := s.queue.EnqueueSendLoginAttemptEmail(&worker_task.SendLoginAttemptEmailPayload{
		UserID: user.ID.Hex(),
	}); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("AuthService: failed to enqueue login attempt email")
	}

	access, refresh, appErr := s.issueTokenPair(user.ID.Hex(), user.Name, user.Email)
	if appErr != nil {
		return nil, appErr
	}

	return &auth_dto.LoginUserResponse{
		UserID:       user.ID.Hex(),
		Email:        user.Email,
		Name:         user.Name,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (s *AuthService) RefreshToken(ctx context.Context, req *auth_dto.RefreshTokenRequest) (*auth_dto.RefreshTokenResponse, *app_errors.AppError) {
	payload, err := s.jwt.VerifyToken(req.RefreshToken)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.invalid_token", err)
	}

	id, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusUnauthorized, app_errors.ErrUnauthorized, "error.invalid_token", err)
	}

	user, appErr := s.users.FindUserByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if user == nil {
		return nil, app_errors.NewAppError(http.StatusForbidden, app_errors.ErrForbidden, "error.forbidden", nil)
	}

	access, err := s.jwt.CreateToken(user.ID.Hex(), user.Name, user.Email, uuid.NewString(), s.accessTTL)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
	}

	return &auth_dto.RefreshTokenResponse{AccessToken: access}, nil
}

func (s *AuthService) issueTokenPair(userID, name, email string) (access, refresh string, appErr *app_errors.AppError) {
	access, err := s.jwt.CreateToken(userID, name, email, uuid.NewString(), s.accessTTL)
	if err != nil {
		return "", "", app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
	}

	refresh, err = s.jwt.CreateToken(userID, name, email, uuid.NewString(), s.refreshTTL)
	if err != nil {
		return "", "", app_errors.NewAppError(http.StatusInternalServerError, app_errors.ErrInternal, "error.internal", err)
	}

	return access, refresh, nil
}
