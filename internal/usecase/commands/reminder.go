package commands

import (
	"context"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra"
	"recruit-reminders/internal/pkg/clock"
	"recruit-reminders/internal/pkg/errs"
	"recruit-reminders/internal/pkg/patch"
	"recruit-reminders/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReminderNotFound = errs.New("reminder not found")
	ErrReminderNotOwned = errs.New("reminder not owned by employer")
)

type CreateReminderRequest struct {
	EmployerID  uuid.UUID
	TaskTitle   string
	TaskType    string
	RedirectURL string
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	DueAt       *time.Time
}

// UpdateReminderRequest is a partial update; nil fields keep their current
// values. ClearDueAt distinguishes "unset the due time" from "leave it".
type UpdateReminderRequest struct {
	TaskTitle   *string
	TaskType    *string
	RedirectURL *string
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
	DueAt       *time.Time
	ClearDueAt  bool
	Status      *string
}

type CreateReminderResult struct {
	ReminderID uuid.UUID
}

type ReminderCommands interface {
	Create(ctx context.Context, req CreateReminderRequest) (*CreateReminderResult, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateReminderRequest, actorEmployerID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorEmployerID uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, dueAt *time.Time, actorEmployerID uuid.UUID) error
}

type reminderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReminderCommands(uow shared.UnitOfWork, clk clock.Clock) ReminderCommands {
	return &reminderCommandsImpl{uow: uow, clock: clk}
}

func (uc *reminderCommandsImpl) Create(ctx context.Context, req CreateReminderRequest) (*CreateReminderResult, error) {
	task, err := reminder.NewTask(
		uuid.Nil,
		req.EmployerID,
		req.JobID,
		req.CandidateID,
		req.TaskTitle,
		req.TaskType,
		req.RedirectURL,
		req.DueAt,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Reminders().Create(ctx, tx.DB(), task)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReminderResult{ReminderID: createdID}, nil
}

func (uc *reminderCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateReminderRequest, actorEmployerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.ownedSnapshot(ctx, tx, id, actorEmployerID)
		if derr != nil {
			return derr
		}

		dueAt := patch.CoalescePtr(req.DueAt, snap.DueAt)
		if req.ClearDueAt {
			dueAt = nil
		}

		task, derr := reminder.NewTask(
			snap.ID,
			snap.EmployerID,
			patch.CoalescePtr(req.JobID, snap.JobID),
			patch.CoalescePtr(req.CandidateID, snap.CandidateID),
			patch.Coalesce(req.TaskTitle, snap.Title),
			patch.Coalesce(req.TaskType, snap.TaskType.String()),
			patch.Coalesce(req.RedirectURL, snap.RedirectURL),
			dueAt,
			snap.CreatedAt,
		)
		if derr != nil {
			return derr
		}

		status := snap.Status
		if req.Status != nil {
			status, derr = reminder.NewStatus(*req.Status)
			if derr != nil {
				return derr
			}
		}
		if derr = task.SetStatus(status, uc.clock.Now()); derr != nil {
			return derr
		}

		return tx.Reminders().Update(ctx, tx.DB(), task)
	})
}

func (uc *reminderCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorEmployerID uuid.UUID) error {
	newStatus, err := reminder.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.ownedSnapshot(ctx, tx, id, actorEmployerID)
		if derr != nil {
			return derr
		}

		task := reconstructFromSnapshot(snap)
		if derr = task.SetStatus(newStatus, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Reminders().Update(ctx, tx.DB(), task)
	})
}

func (uc *reminderCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, dueAt *time.Time, actorEmployerID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.ownedSnapshot(ctx, tx, id, actorEmployerID)
		if derr != nil {
			return derr
		}

		task := reconstructFromSnapshot(snap)
		task.Reschedule(dueAt, uc.clock.Now())
		return tx.Reminders().Update(ctx, tx.DB(), task)
	})
}

func (uc *reminderCommandsImpl) ownedSnapshot(ctx context.Context, tx shared.Tx, id uuid.UUID, actorEmployerID uuid.UUID) (*shared.ReminderSnapshot, error) {
	snap, err := tx.Reads().ReminderByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReminderNotFound
		}
		return nil, err
	}
	if snap.EmployerID != actorEmployerID {
		return nil, ErrReminderNotOwned
	}
	return snap, nil
}

func reconstructFromSnapshot(snap *shared.ReminderSnapshot) *reminder.Task {
	title, _ := reminder.NewTitle(snap.Title)
	redirectURL, _ := reminder.NewRedirectURL(snap.RedirectURL)
	return reminder.Reconstruct(
		snap.ID,
		snap.EmployerID,
		snap.JobID,
		snap.CandidateID,
		title,
		snap.TaskType,
		redirectURL,
		snap.DueAt,
		snap.Status,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}
