package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps one collection with typed document-store primitives. Repos
// compose a Store per collection instead of subclassing a base repository;
// the *mongo.Database handle is constructed in main and passed in.
type Store[T any] struct {
	coll *mongo.Collection
}

func NewStore[T any](database *mongo.Database, collection string) *Store[T] {
	return &Store[T]{coll: database.Collection(collection)}
}

// FindOne returns (nil, nil) when no document matches the filter.
func (s *Store[T]) FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	err := s.coll.FindOne(ctx, filter, opts...).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := s.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Aggregate runs the pipeline and decodes every result document into out,
// which must be a pointer to a slice.
func (s *Store[T]) Aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s *Store[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.coll.CountDocuments(ctx, filter)
}

func (s *Store[T]) InsertOne(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, nil
	}
	return id, nil
}

// UpdateOne applies the partial document as a $set and stamps updatedAt.
func (s *Store[T]) UpdateOne(ctx context.Context, filter bson.M, partial bson.M) (int64, error) {
	partial["updatedAt"] = time.Now()
	res, err := s.coll.UpdateOne(ctx, filter, bson.M{"$set": partial})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store[T]) UpdateMany(ctx context.Context, filter bson.M, partial bson.M) (int64, error) {
	partial["updatedAt"] = time.Now()
	res, err := s.coll.UpdateMany(ctx, filter, bson.M{"$set": partial})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *Store[T]) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
