//go:build unit || e2e

package builder

import (
	"time"

	domreminder "recruit-reminders/internal/domain/reminder"
	reqdto "recruit-reminders/internal/handler/dto/request"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReminderBuilder struct {
	ID          uuid.UUID
	EmployerID  uuid.UUID
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	TaskTitle   string
	TaskType    string
	RedirectURL string
	DueAt       *time.Time
	Status      domreminder.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReminderBuilder() *ReminderBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	due := now.Add(2 * time.Hour)
	return &ReminderBuilder{
		ID:          uuid.New(),
		EmployerID:  uuid.New(),
		TaskTitle:   "Follow up with candidate",
		TaskType:    "candidate",
		RedirectURL: "https://app.example.com/candidates/42",
		DueAt:       &due,
		Status:      domreminder.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReminderBuilder) With(mutate func(*ReminderBuilder)) *ReminderBuilder {
	mutate(b)
	return b
}

func (b *ReminderBuilder) WithTitle(title string) *ReminderBuilder {
	b.TaskTitle = title
	return b
}

func (b *ReminderBuilder) WithTaskType(taskType string) *ReminderBuilder {
	b.TaskType = taskType
	return b
}

func (b *ReminderBuilder) WithRedirectURL(url string) *ReminderBuilder {
	b.RedirectURL = url
	return b
}

func (b *ReminderBuilder) WithEmployerID(id uuid.UUID) *ReminderBuilder {
	b.EmployerID = id
	return b
}

func (b *ReminderBuilder) WithDueAt(dueAt *time.Time) *ReminderBuilder {
	b.DueAt = dueAt
	return b
}

func (b *ReminderBuilder) WithStatus(status domreminder.Status) *ReminderBuilder {
	b.Status = status
	return b
}

func (b *ReminderBuilder) BuildDomain() (*domreminder.Task, error) {
	return domreminder.NewTask(uuid.Nil, b.EmployerID, b.JobID, b.CandidateID, b.TaskTitle, b.TaskType, b.RedirectURL, b.DueAt, b.CreatedAt)
}

func (b *ReminderBuilder) BuildCreateRequestDTO() reqdto.CreateReminderRequest {
	return reqdto.CreateReminderRequest{
		TaskTitle:   b.TaskTitle,
		TaskType:    b.TaskType,
		RedirectURL: b.RedirectURL,
		JobID:       b.JobID,
		CandidateID: b.CandidateID,
		DueAt:       b.DueAt,
	}
}

func (b *ReminderBuilder) BuildCreateCommand() commands.CreateReminderRequest {
	return commands.CreateReminderRequest{
		EmployerID:  b.EmployerID,
		TaskTitle:   b.TaskTitle,
		TaskType:    b.TaskType,
		RedirectURL: b.RedirectURL,
		JobID:       b.JobID,
		CandidateID: b.CandidateID,
		DueAt:       b.DueAt,
	}
}

func (b *ReminderBuilder) BuildView() *queries.ReminderView {
	return &queries.ReminderView{
		ID:          b.ID,
		EmployerID:  b.EmployerID,
		JobID:       b.JobID,
		CandidateID: b.CandidateID,
		TaskTitle:   b.TaskTitle,
		TaskType:    b.TaskType,
		RedirectURL: b.RedirectURL,
		DueAt:       b.DueAt,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
