package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Task is one reminder row: a unit of follow-up work owned by exactly one
// employer, optionally linked to a job posting and/or a candidate.
type Task struct {
	id          uuid.UUID
	employerID  uuid.UUID
	jobID       *uuid.UUID
	candidateID *uuid.UUID
	title       Title
	taskType    TaskType
	redirectURL RedirectURL
	dueAt       *time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTask builds a pending task. A zero id gets a fresh v4 UUID; created_at
// and updated_at start equal.
func NewTask(id, employerID uuid.UUID, jobID, candidateID *uuid.UUID, titleText, taskTypeText, redirectURLText string, dueAt *time.Time, now time.Time) (*Task, error) {
	if employerID == uuid.Nil {
		return nil, ErrMissingEmployer
	}

	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}

	taskType, err := NewTaskType(taskTypeText)
	if err != nil {
		return nil, err
	}

	redirectURL, err := NewRedirectURL(redirectURLText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Task{
		id:          id,
		employerID:  employerID,
		jobID:       jobID,
		candidateID: candidateID,
		title:       title,
		taskType:    taskType,
		redirectURL: redirectURL,
		dueAt:       dueAt,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// Reconstruct rebuilds a task from persisted state without re-running
// creation defaults.
func Reconstruct(id, employerID uuid.UUID, jobID, candidateID *uuid.UUID, title Title, taskType TaskType, redirectURL RedirectURL, dueAt *time.Time, status Status, createdAt, updatedAt time.Time) *Task {
	return &Task{
		id:          id,
		employerID:  employerID,
		jobID:       jobID,
		candidateID: candidateID,
		title:       title,
		taskType:    taskType,
		redirectURL: redirectURL,
		dueAt:       dueAt,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// SetStatus applies a new status. No ordering constraint exists between
// statuses; done may return to pending.
func (t *Task) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	t.status = status
	t.touch(now)
	return nil
}

// Reschedule moves (or clears) the due time.
func (t *Task) Reschedule(dueAt *time.Time, now time.Time) {
	t.dueAt = dueAt
	t.touch(now)
}

// updated_at must never precede created_at even with a skewed caller clock.
func (t *Task) touch(now time.Time) {
	if now.Before(t.createdAt) {
		now = t.createdAt
	}
	t.updatedAt = now
}

func (t *Task) ID() uuid.UUID            { return t.id }
func (t *Task) EmployerID() uuid.UUID    { return t.employerID }
func (t *Task) JobID() *uuid.UUID        { return t.jobID }
func (t *Task) CandidateID() *uuid.UUID  { return t.candidateID }
func (t *Task) Title() Title             { return t.title }
func (t *Task) TaskType() TaskType       { return t.taskType }
func (t *Task) RedirectURL() RedirectURL { return t.redirectURL }
func (t *Task) DueAt() *time.Time        { return t.dueAt }
func (t *Task) Status() Status           { return t.status }
func (t *Task) CreatedAt() time.Time     { return t.createdAt }
func (t *Task) UpdatedAt() time.Time     { return t.updatedAt }
