package shared

import (
	"context"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra/db"

	"github.com/google/uuid"
)

// Tx is the write-side view of one transaction.
type Tx interface {
	DB() db.DBTX
	Reminders() ReminderRepository
	Reads() CommandReads
}

type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type ReminderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, task *reminder.Task) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, task *reminder.Task) error
}

// ReminderSnapshot is the command-side read model: enough state to
// reconstruct the aggregate for a mutation.
type ReminderSnapshot struct {
	ID          uuid.UUID
	EmployerID  uuid.UUID
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	Title       string
	TaskType    reminder.TaskType
	RedirectURL string
	DueAt       *time.Time
	Status      reminder.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommandReads interface {
	ReminderByID(ctx context.Context, id uuid.UUID) (*ReminderSnapshot, error)
}
