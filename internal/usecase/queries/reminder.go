package queries

import (
	"context"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra"
	"recruit-reminders/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReminderNotFound    = errs.New("reminder not found")
	ErrReminderAccess      = errs.New("reminder belongs to a different employer")
	ErrInvalidStatusFilter = errs.New("invalid status filter")
)

type ReminderView struct {
	ID          uuid.UUID       `json:"id"`
	EmployerID  uuid.UUID       `json:"employer_id"`
	JobID       *uuid.UUID      `json:"job_id"`
	CandidateID *uuid.UUID      `json:"candidate_id"`
	TaskTitle   string          `json:"task_title"`
	TaskType    string          `json:"task_type"`
	RedirectURL string          `json:"redirect_url"`
	DueAt       *time.Time      `json:"due_at"`
	Status      reminder.Status `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ReminderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReminderView, error)
	// FindByEmployer returns the employer's reminders in insertion order;
	// a nil status lists every status.
	FindByEmployer(ctx context.Context, employerID uuid.UUID, status *reminder.Status) ([]*ReminderView, error)
	// FindDueBefore returns pending reminders with due_at <= t, soonest
	// first. Rows without a due time never match.
	FindDueBefore(ctx context.Context, t time.Time) ([]*ReminderView, error)
}

type ReminderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorEmployerID uuid.UUID) (*ReminderView, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, statusFilter *string, actorEmployerID uuid.UUID) ([]*ReminderView, error)
	ListDueBefore(ctx context.Context, t time.Time) ([]*ReminderView, error)
}

type reminderQueriesImpl struct {
	store ReminderReadStore
}

func NewReminderQueries(store ReminderReadStore) ReminderQueries {
	return &reminderQueriesImpl{store: store}
}

func (q *reminderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorEmployerID uuid.UUID) (*ReminderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if view.EmployerID != actorEmployerID {
		return nil, ErrReminderAccess
	}
	return view, nil
}

func (q *reminderQueriesImpl) ListByEmployer(ctx context.Context, employerID uuid.UUID, statusFilter *string, actorEmployerID uuid.UUID) ([]*ReminderView, error) {
	if employerID != actorEmployerID {
		return nil, ErrReminderAccess
	}

	var status *reminder.Status
	if statusFilter != nil && *statusFilter != "" {
		s, err := reminder.NewStatus(*statusFilter)
		if err != nil {
			return nil, ErrInvalidStatusFilter
		}
		status = &s
	}

	return q.store.FindByEmployer(ctx, employerID, status)
}

func (q *reminderQueriesImpl) ListDueBefore(ctx context.Context, t time.Time) ([]*ReminderView, error) {
	return q.store.FindDueBefore(ctx, t)
}
