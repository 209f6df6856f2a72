package queue

import (
	"github.com/stretchr/testify/mock"

	worker_task "github.com/markwayne24/todo-app/internal/worker/tasks"
)

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueSendWelcomeEmail(payload *worker_task.SendWelcomeEmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendLoginAttemptEmail(payload *worker_task.SendLoginAttemptEmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendTaskStatusUpdateEmail(payload *worker_task.SendTaskStatusUpdateEmailPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendTaskReminder(payload *worker_task.SendTaskReminderPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueSendTaskOverdue(payload *worker_task.SendTaskOverduePayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueUpdateOverdueStatus(payload *worker_task.UpdateOverdueStatusPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
