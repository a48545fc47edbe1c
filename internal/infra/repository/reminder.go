package repository

import (
	"context"
	"errors"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra"
	"recruit-reminders/internal/infra/db"
	"recruit-reminders/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type ReminderRepository struct{}

func NewReminderRepository() *ReminderRepository {
	return &ReminderRepository{}
}

const insertReminderSQL = `
INSERT INTO reminder_tasks (
    id, employer_id, job_id, candidate_id, task_title, task_type,
    redirect_url, due_at, status, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6::reminder_task_type,
    $7, $8, $9::reminder_task_status, $10, $11
)
RETURNING id`

func (r *ReminderRepository) Create(ctx context.Context, dbtx db.DBTX, task *reminder.Task) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReminderSQL,
		task.ID(),
		task.EmployerID(),
		pgconv.UUIDPtrToPgtype(task.JobID()),
		pgconv.UUIDPtrToPgtype(task.CandidateID()),
		task.Title().String(),
		task.TaskType().String(),
		task.RedirectURL().String(),
		pgconv.TimePtrToPgtype(task.DueAt()),
		task.Status().String(),
		pgconv.TimeToPgtype(task.CreatedAt()),
		pgconv.TimeToPgtype(task.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create reminder task", err)
	}
	return id, nil
}

const updateReminderSQL = `
UPDATE reminder_tasks
SET job_id = $2,
    candidate_id = $3,
    task_title = $4,
    task_type = $5::reminder_task_type,
    redirect_url = $6,
    due_at = $7,
    status = $8::reminder_task_status,
    updated_at = $9
WHERE id = $1`

func (r *ReminderRepository) Update(ctx context.Context, dbtx db.DBTX, task *reminder.Task) error {
	tag, err := dbtx.Exec(ctx, updateReminderSQL,
		task.ID(),
		pgconv.UUIDPtrToPgtype(task.JobID()),
		pgconv.UUIDPtrToPgtype(task.CandidateID()),
		task.Title().String(),
		task.TaskType().String(),
		task.RedirectURL().String(),
		pgconv.TimePtrToPgtype(task.DueAt()),
		task.Status().String(),
		pgconv.TimeToPgtype(task.UpdatedAt()),
	)
	if err != nil {
		return wrapWriteErr("failed to update reminder task", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reminder task not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
