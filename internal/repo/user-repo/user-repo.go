package user_repo

import (
	"context"

	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/repo"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo struct {
	store *repo.Store[entity.UserEntity]
}

func NewUserRepo(database *mongo.Database) UserRepoContract {
	return &UserRepo{
		store: repo.NewStore[entity.UserEntity](database, "users"),
	}
}

func (r *UserRepo) InsertUser(ctx context.Context, user *entity.UserEntity) (primitive.ObjectID, *app_errors.AppError) {
	id, err := r.store.InsertOne(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("User repo: failed to insert user")
		return primitive.NilObjectID, app_errors.FromMongoError(err)
	}

	return id, nil
}

func (r *UserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*entity.UserEntity, *app_errors.AppError) {
	user, err := r.store.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Error().Err(err).Str("user_id", id.Hex()).Msg("User repo: failed to find user")
		return nil, app_errors.FromMongoError(err)
	}

	return user, nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	user, err := r.store.FindOne(ctx, bson.M{"email": email})
	if err != nil {
		log.Error().Err(err).Msg("User repo: failed to find user by email")
		return nil, app_errors.FromMongoError(err)
	}

	return user, nil
}

func (r *UserRepo) CountUsersByEmail(ctx context.Context, email string) (int64, *app_errors.AppError) {
	count, err := r.store.Count(ctx, bson.M{"email": email})
	if err != nil {
		log.Error().Err(err).Msg("User repo: failed to count users")
		return 0, app_errors.FromMongoError(err)
	}

	return count, nil
}

func (r *UserRepo) ListUsers(ctx context.Context, skip, limit int64) ([]entity.UserEntity, int64, *app_errors.AppError) {
	total, err := r.store.Count(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("User repo: failed to count users")
		return nil, 0, app_errors.FromMongoError(err)
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip)
	if limit > 0 {
		opts.SetLimit(limit)
	}

	users, err := r.store.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Error().Err(err).Msg("User repo: failed to list users")
		return nil, 0, app_errors.FromMongoError(err)
	}

	return users, total, nil
}
