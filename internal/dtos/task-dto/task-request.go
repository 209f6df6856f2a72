package task_dto

import "time"

type CreateTaskRequest struct {
	Title       string    `json:"title" validate:"required,min=1,max=200"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
	DueDate     time.Time `json:"dueDate" validate:"required"`
	Priority    *string   `json:"priority" validate:"omitempty,taskPriority"`
	Category    *string   `json:"category" validate:"omitempty,max=100"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Priority    *string    `json:"priority" validate:"omitempty,taskPriority"`
	Category    *string    `json:"category" validate:"omitempty,max=100"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,taskStatus"`
}

type TaskListQuery struct {
	Status   *string `query:"status" validate:"omitempty,taskStatus"`
	Priority *string `query:"priority" validate:"omitempty,taskPriority"`
	Title    *string `query:"title" validate:"omitempty,max=200"`
	Category *string `query:"category" validate:"omitempty,max=100"`
	Sort     string  `query:"sort" validate:"omitempty,oneof=asc desc"`
	Skip     int64   `query:"skip" validate:"omitempty,min=0"`
	Limit    int64   `query:"limit" validate:"omitempty,min=1,max=100"`
}

type TaskIDParam struct {
	ID string `params:"id" validate:"required,objectId"`
}
