package mail

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/markwayne24/todo-app/internal/entity"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcomeEmail(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

func (m *MockMailer) SendLoginAttemptEmail(to string, at time.Time) error {
	args := m.Called(to, at)
	return args.Error(0)
}

func (m *MockMailer) SendTaskStatusUpdateEmail(to, name, taskTitle, status string) error {
	args := m.Called(to, name, taskTitle, status)
	return args.Error(0)
}

func (m *MockMailer) SendTaskReminder(to, name string, tasks []entity.TaskBatchItem) error {
	args := m.Called(to, name, tasks)
	return args.Error(0)
}

func (m *MockMailer) SendTaskOverdue(to, name string, tasks []entity.TaskBatchItem) error {
	args := m.Called(to, name, tasks)
	return args.Error(0)
}
