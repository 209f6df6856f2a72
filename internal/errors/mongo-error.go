package app_errors

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// FromMongoError maps driver errors onto AppError. Duplicate key means a
// uniqueness conflict (users.email carries a unique index), everything else is
// an internal error.
func FromMongoError(err error) *AppError {
	if err == nil {
		return nil
	}

	if mongo.IsDuplicateKeyError(err) {
		return NewAppError(fiber.StatusConflict, ErrConflict, "conflict", err)
	}

	if err == mongo.ErrNoDocuments {
		return NewAppError(fiber.StatusNotFound, ErrNotFound, "not_found", err)
	}

	return NewAppError(fiber.StatusInternalServerError, ErrInternal, "internal_error", err)
}
