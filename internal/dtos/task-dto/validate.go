package task_dto

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/markwayne24/todo-app/internal/entity"
)

// RegisterTaskValidations wires the custom tags used by the task DTOs.
func RegisterTaskValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("taskStatus", validTaskStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("taskPriority", validTaskPriority); err != nil {
		return err
	}
	return v.RegisterValidation("objectId", validObjectID)
}

func validTaskStatus(fl validator.FieldLevel) bool {
	return entity.TaskStatus(fl.Field().String()).IsValid()
}

func validTaskPriority(fl validator.FieldLevel) bool {
	return entity.TaskPriority(fl.Field().String()).IsValid()
}

func validObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}
