package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskEntity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"user_id"`
	Title       string             `bson:"title" json:"title"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus         `bson:"status" json:"status"`
	DueDate     time.Time          `bson:"dueDate" json:"due_date"`
	Priority    TaskPriority       `bson:"priority" json:"priority"`
	Category    *string            `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// TaskBatch is the per-user grouping produced by one scan. It only ever lives
// in memory between the aggregation query and the enqueue fan-out.
type TaskBatch struct {
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Tasks  []TaskBatchItem    `bson:"tasks" json:"tasks"`
}

type TaskBatchItem struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	TaskTitle string             `bson:"taskTitle" json:"taskTitle"`
	DueDate   time.Time          `bson:"dueDate" json:"dueDate"`
	Status    TaskStatus         `bson:"status" json:"status"`
}

// DateRange is a closed interval used by the scan queries ($gte Start, $lte End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
	TaskOverdue    TaskStatus = "overdue"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled, TaskOverdue:
		return true
	}

	return false
}

// DueStatuses are the statuses the scans consider. A completed or cancelled
// task never becomes overdue, and an overdue task is not reminded again.
func DueStatuses() []TaskStatus {
	return []TaskStatus{TaskPending, TaskInProgress}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}
