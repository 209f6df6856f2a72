package task_repo

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/markwayne24/todo-app/internal/entity"
	app_errors "github.com/markwayne24/todo-app/internal/errors"
	"github.com/markwayne24/todo-app/internal/repo"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaskRepo struct {
	store *repo.Store[entity.TaskEntity]
}

func NewTaskRepo(database *mongo.Database) TaskRepoContract {
	return &TaskRepo{
		store: repo.NewStore[entity.TaskEntity](database, "tasks"),
	}
}

func (r *TaskRepo) InsertTask(ctx context.Context, task *entity.TaskEntity) (primitive.ObjectID, *app_errors.AppError) {
	id, err := r.store.InsertOne(ctx, task)
	if err != nil {
		log.Error().Err(err).Msg("Task repo: failed to insert task")
		return primitive.NilObjectID, app_errors.FromMongoError(err)
	}

	return id, nil
}

func (r *TaskRepo) FindTaskByID(ctx context.Context, id, userID primitive.ObjectID) (*entity.TaskEntity, *app_errors.AppError) {
	task, err := r.store.FindOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		log.Error().Err(err).Str("task_id", id.Hex()).Msg("Task repo: failed to find task")
		return nil, app_errors.FromMongoError(err)
	}

	return task, nil
}

func (r *TaskRepo) ListTasks(ctx context.Context, userID primitive.ObjectID, filter TaskListFilter) ([]entity.TaskEntity, int64, *app_errors.AppError) {
	query := bson.M{"userId": userID}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.Priority != nil {
		query["priority"] = *filter.Priority
	}
	if filter.Title != nil {
		query["title"] = *filter.Title
	}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}

	sortDir := -1
	if filter.Sort == "asc" {
		sortDir = 1
	}

	opts := options.Find().SetSort(bson.M{"createdAt": sortDir})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}
	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}

	tasks, err := r.store.Find(ctx, query, opts)
	if err != nil {
		log.Error().Err(err).Msg("Task repo: failed to list tasks")
		return nil, 0, app_errors.FromMongoError(err)
	}

	total, err := r.store.Count(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("Task repo: failed to count tasks")
		return nil, 0, app_errors.FromMongoError(err)
	}

	return tasks, total, nil
}

func (r *TaskRepo) UpdateTask(ctx context.Context, id, userID primitive.ObjectID, partial bson.M) *app_errors.AppError {
	modified, err := r.store.UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, partial)
	if err != nil {
		log.Error().Err(err).Str("task_id", id.Hex()).Msg("Task repo: failed to update task")
		return app_errors.FromMongoError(err)
	}

	if modified == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task.not_found", nil)
	}

	return nil
}

func (r *TaskRepo) DeleteTask(ctx context.Context, id, userID primitive.ObjectID) *app_errors.AppError {
	deleted, err := r.store.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		log.Error().Err(err).Str("task_id", id.Hex()).Msg("Task repo: failed to delete task")
		return app_errors.FromMongoError(err)
	}

	if deleted == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "task.not_found", nil)
	}

	return nil
}

func (r *TaskRepo) FindDueBatches(ctx context.Context, window entity.DateRange, statuses []entity.TaskStatus) ([]entity.TaskBatch, *app_errors.AppError) {
	// Tasks inside a batch are pushed in ascending due-date order; $push
	// preserves the order the $sort stage established.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"dueDate": bson.M{"$gte": window.Start, "$lte": window.End},
			"status":  bson.M{"$in": statuses},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$sort", Value: bson.M{"dueDate": 1}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$user._id",
			"name":  bson.M{"$first": "$user.name"},
			"email": bson.M{"$first": "$user.email"},
			"tasks": bson.M{"$push": bson.M{
				"_id":       "$_id",
				"taskTitle": "$title",
				"dueDate":   "$dueDate",
				"status":    "$status",
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":    0,
			"userId": "$_id",
			"name":   1,
			"email":  1,
			"tasks":  1,
		}}},
	}

	var batches []entity.TaskBatch
	if err := r.store.Aggregate(ctx, pipeline, &batches); err != nil {
		log.Error().Err(err).Msg("Task repo: due-batch aggregation failed")
		return nil, app_errors.FromMongoError(err)
	}

	return batches, nil
}

func (r *TaskRepo) MarkTaskOverdue(ctx context.Context, id primitive.ObjectID) *app_errors.AppError {
	_, err := r.store.UpdateOne(ctx, bson.M{
		"_id":    id,
		"status": bson.M{"$in": entity.DueStatuses()},
	}, bson.M{"status": entity.TaskOverdue})
	if err != nil {
		log.Error().Err(err).Str("task_id", id.Hex()).Msg("Task repo: failed to mark task overdue")
		return app_errors.FromMongoError(err)
	}

	return nil
}
