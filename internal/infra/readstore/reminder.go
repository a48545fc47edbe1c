package readstore

import (
	"context"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra"
	"recruit-reminders/internal/infra/db"
	"recruit-reminders/internal/pkg/pgconv"
	"recruit-reminders/internal/usecase/queries"
	"recruit-reminders/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reminderColumns = `
    id, employer_id, job_id, candidate_id, task_title, task_type,
    redirect_url, due_at, status, created_at, updated_at`

type ReminderReadStore struct {
	db db.DBTX
}

func NewReminderReadStore(dbtx db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{db: dbtx}
}

func (r *ReminderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReminderView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT`+reminderColumns+` FROM reminder_tasks WHERE id = $1`, id)

	view, err := scanReminderView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reminder task not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reminder task by id", err)
	}
	return view, nil
}

// FindByEmployer lists in insertion order; the (employer_id, status) index
// backs both filtered and unfiltered forms.
func (r *ReminderReadStore) FindByEmployer(ctx context.Context, employerID uuid.UUID, status *reminder.Status) ([]*queries.ReminderView, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != nil {
		rows, err = r.db.Query(ctx,
			`SELECT`+reminderColumns+`
             FROM reminder_tasks
             WHERE employer_id = $1 AND status = $2::reminder_task_status
             ORDER BY created_at, id`,
			employerID, status.String())
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT`+reminderColumns+`
             FROM reminder_tasks
             WHERE employer_id = $1
             ORDER BY created_at, id`,
			employerID)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reminder tasks by employer", err)
	}
	defer rows.Close()

	return collectReminderViews(rows)
}

func (r *ReminderReadStore) FindDueBefore(ctx context.Context, t time.Time) ([]*queries.ReminderView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT`+reminderColumns+`
         FROM reminder_tasks
         WHERE status = 'pending' AND due_at IS NOT NULL AND due_at <= $1
         ORDER BY due_at`,
		t)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reminder tasks", err)
	}
	defer rows.Close()

	return collectReminderViews(rows)
}

// ReminderByID satisfies shared.CommandReads for the write path.
func (r *ReminderReadStore) ReminderByID(ctx context.Context, id uuid.UUID) (*shared.ReminderSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taskType, err := reminder.NewTaskType(view.TaskType)
	if err != nil {
		return nil, infra.WrapRepoErr("persisted task type is not a recognized value", err)
	}

	return &shared.ReminderSnapshot{
		ID:          view.ID,
		EmployerID:  view.EmployerID,
		JobID:       view.JobID,
		CandidateID: view.CandidateID,
		Title:       view.TaskTitle,
		TaskType:    taskType,
		RedirectURL: view.RedirectURL,
		DueAt:       view.DueAt,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}, nil
}

func scanReminderView(row pgx.Row) (*queries.ReminderView, error) {
	var (
		view        queries.ReminderView
		jobID       pgtype.UUID
		candidateID pgtype.UUID
		taskType    string
		status      string
		dueAt       pgtype.Timestamptz
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&view.ID,
		&view.EmployerID,
		&jobID,
		&candidateID,
		&view.TaskTitle,
		&taskType,
		&view.RedirectURL,
		&dueAt,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.JobID = pgconv.UUIDPtrFromPgtype(jobID)
	view.CandidateID = pgconv.UUIDPtrFromPgtype(candidateID)
	view.TaskType = taskType
	view.Status = reminder.Status(status)
	view.DueAt = pgconv.TimePtrFromPgtype(dueAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func collectReminderViews(rows pgx.Rows) ([]*queries.ReminderView, error) {
	result := make([]*queries.ReminderView, 0)
	for rows.Next() {
		view, err := scanReminderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder task row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminder task rows", err)
	}
	return result, nil
}
