package request

import (
	"time"

	"recruit-reminders/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReminderRequest struct {
	TaskTitle   string     `json:"task_title" binding:"required,max=255"`
	TaskType    string     `json:"task_type" binding:"required,oneof=message candidate job_update interview other"`
	RedirectURL string     `json:"redirect_url" binding:"required,max=1024"`
	JobID       *uuid.UUID `json:"job_id"`
	CandidateID *uuid.UUID `json:"candidate_id"`
	DueAt       *time.Time `json:"due_at"`
}

func (r *CreateReminderRequest) ToCommand(employerID uuid.UUID) commands.CreateReminderRequest {
	return commands.CreateReminderRequest{
		EmployerID:  employerID,
		TaskTitle:   r.TaskTitle,
		TaskType:    r.TaskType,
		RedirectURL: r.RedirectURL,
		JobID:       r.JobID,
		CandidateID: r.CandidateID,
		DueAt:       r.DueAt,
	}
}

// UpdateReminderRequest is a partial update: absent fields keep their stored
// values. clear_due_at unsets the due time, since a null due_at in JSON is
// indistinguishable from an absent one after binding.
type UpdateReminderRequest struct {
	TaskTitle   *string    `json:"task_title" binding:"omitempty,max=255"`
	TaskType    *string    `json:"task_type" binding:"omitempty,oneof=message candidate job_update interview other"`
	RedirectURL *string    `json:"redirect_url" binding:"omitempty,max=1024"`
	JobID       *uuid.UUID `json:"job_id"`
	CandidateID *uuid.UUID `json:"candidate_id"`
	DueAt       *time.Time `json:"due_at"`
	ClearDueAt  bool       `json:"clear_due_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending done ignored"`
}

func (r *UpdateReminderRequest) ToCommand() commands.UpdateReminderRequest {
	return commands.UpdateReminderRequest{
		TaskTitle:   r.TaskTitle,
		TaskType:    r.TaskType,
		RedirectURL: r.RedirectURL,
		JobID:       r.JobID,
		CandidateID: r.CandidateID,
		DueAt:       r.DueAt,
		ClearDueAt:  r.ClearDueAt,
		Status:      r.Status,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending done ignored"`
}

// RescheduleRequest moves the due time; a null due_at clears it.
type RescheduleRequest struct {
	DueAt *time.Time `json:"due_at"`
}
