package user_case

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	user_dto "github.com/markwayne24/todo-app/internal/dtos/user-dto"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	user_repo "github.com/markwayne24/todo-app/internal/repo/user-repo"
	"github.com/markwayne24/todo-app/internal/utils"
)

const profileCacheTTL = 15 * time.Minute

type UserService struct {
	users user_repo.UserRepoContract
	redis *redis.Client
}

func NewUserService(database *mongo.Database, redis *redis.Client) *UserService {
	return &UserService{
		users: user_repo.NewUserRepo(database),
		redis: redis,
	}
}

func (s *UserService) UserSelfProfile(ctx context.Context, userID string) (*user_dto.UserProfileResponse, *app_errors.AppError) {
	cacheKey := fmt.Sprintf("user:profile:%s", userID)

	cached, cacheErr := utils.GetCacheData[user_dto.UserProfileResponse](ctx, s.redis, cacheKey)
	if cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Str("user_id", userID).Msg("UserService: profile cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, app_errors.NewAppError(http.StatusBadRequest, app_errors.ErrInvalidParam, "validation.object_id", err)
	}

	user, appErr := s.users.FindUserByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if user == nil {
		return nil, app_errors.NewAppError(http.StatusNotFound, app_errors.ErrNotFound, "error.user_not_found", nil)
	}

	profile := toProfileResponse(user)

	if cacheErr := utils.SetCacheData(ctx, s.redis, cacheKey, profile, profileCacheTTL); cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Str("user_id", userID).Msg("UserService: profile cache write failed")
	}

	return profile, nil
}

func (s *UserService) ListUsers(ctx context.Context, query *user_dto.ListUsersQuery) (*user_dto.ListUsersResponse, *app_errors.AppError) {
	limit := query.Limit
	if limit == 0 {
		limit = 20
	}

	users, total, appErr := s.users.ListUsers(ctx, query.Skip, limit)
	if appErr != nil {
		return nil, appErr
	}

	out := make([]user_dto.UserProfileResponse, 0, len(users))
	for i := range users {
		out = append(out, *toProfileResponse(&users[i]))
	}

	return &user_dto.ListUsersResponse{Users: out, Total: total}, nil
}

func toProfileResponse(user *entity.UserEntity) *user_dto.UserProfileResponse {
	return &user_dto.UserProfileResponse{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
