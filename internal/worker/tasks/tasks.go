package worker_task

import (
	"github.com/markwayne24/todo-app/internal/entity"
)

// Job type names are the wire contract between enqueuers and the worker.
// Payload field names mirror the documents the scan aggregation emits.
const (
	TaskSendWelcomeEmail          = "send-welcome-email"
	TaskSendLoginAttemptEmail     = "send-login-attempt-email"
	TaskSendTaskStatusUpdateEmail = "send-task-status-update-email"
	TaskSendTaskReminder          = "send-task-reminder"
	TaskSendTaskOverdue           = "send-task-overdue"
	TaskUpdateOverdueStatus       = "update-overdue-status"
)

// Cron-triggered scan jobs. Payload-less; the handler recomputes the window
// from the clock at process time.
const (
	TaskScanDueTomorrow = "scan-due-tomorrow"
	TaskScanOverdue     = "scan-overdue-tasks"
)

type SendWelcomeEmailPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SendLoginAttemptEmailPayload struct {
	UserID string `json:"userId"`
}

type SendTaskStatusUpdateEmailPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	TaskTitle string `json:"taskTitle"`
	Status    string `json:"status"`
}

type SendTaskReminderPayload struct {
	UserID string                 `json:"userId"`
	Name   string                 `json:"name"`
	Email  string                 `json:"email"`
	Tasks  []entity.TaskBatchItem `json:"tasks"`
}

type SendTaskOverduePayload struct {
	UserID string                 `json:"userId"`
	Name   string                 `json:"name"`
	Email  string                 `json:"email"`
	Tasks  []entity.TaskBatchItem `json:"tasks"`
}

type UpdateOverdueStatusPayload struct {
	Tasks []entity.TaskBatchItem `json:"tasks"`
}
