package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/markwayne24/todo-app/internal/config"
	"github.com/markwayne24/todo-app/internal/entity"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendWelcomeEmail(to, name string) error
	SendLoginAttemptEmail(to string, at time.Time) error
	SendTaskStatusUpdateEmail(to, name, taskTitle, status string) error
	SendTaskReminder(to, name string, tasks []entity.TaskBatchItem) error
	SendTaskOverdue(to, name string, tasks []entity.TaskBatchItem) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) send(to, senderName, subject, text, category string) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  senderName,
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject":  subject,
		"text":     text,
		"category": category,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Mailer: error when marshalling payload body")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Mailer: error when building request")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Mailer: error when sending request")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}

func (m *MailService) SendWelcomeEmail(to, name string) error {
	text := fmt.Sprintf(`
	Hi %s,

	Welcome aboard! Your account is ready.

	Create your first task and we will remind you before it is due.

	— To-Do App
	`, name)

	return m.send(to, "To-Do App", "Welcome to To-Do App!", text, "Account")
}

func (m *MailService) SendLoginAttemptEmail(to string, at time.Time) error {
	text := fmt.Sprintf(`
	Hi,

	A login to your account just happened at %s.

	If this was you, there is nothing to do. If not, please change your
	password immediately.

	— To-Do App
	`, at.Format("02 Jan 2006 15:04 MST"))

	return m.send(to, "To-Do App - Security", "You just logged in", text, "Account")
}

func (m *MailService) SendTaskStatusUpdateEmail(to, name, taskTitle, status string) error {
	text := fmt.Sprintf(`
	Hi %s,

	The status of your task has changed.

	Task  	: %s
	Status	: %s

	— To-Do App
	`, name, taskTitle, status)

	return m.send(to, "To-Do App", fmt.Sprintf("Task update: %s", taskTitle), text, "Task Status")
}

func (m *MailService) SendTaskReminder(to, name string, tasks []entity.TaskBatchItem) error {
	text := fmt.Sprintf(`
	Hi %s,

	These tasks are due tomorrow:

%s
	Getting them done on time keeps your streak alive. Good luck!

	— To-Do App
	`, name, formatTaskList(tasks))

	return m.send(to, "To-Do App - Reminder", fmt.Sprintf("Reminder: %d task(s) due tomorrow", len(tasks)), text, "Task Reminder")
}

func (m *MailService) SendTaskOverdue(to, name string, tasks []entity.TaskBatchItem) error {
	text := fmt.Sprintf(`
	Hi %s,

	These tasks have passed their due date and still need attention:

%s
	They have been marked overdue. Please complete or reschedule them.

	— To-Do App
	`, name, formatTaskList(tasks))

	return m.send(to, "To-Do App - Overdue Notice", fmt.Sprintf("⚠️ %d task(s) overdue", len(tasks)), text, "Task Overdue")
}

// One line per task; the whole batch goes into a single email.
func formatTaskList(tasks []entity.TaskBatchItem) string {
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "\t- %s (due %s)\n", t.TaskTitle, t.DueDate.Format("02 Jan 2006 15:04 MST"))
	}
	return b.String()
}
