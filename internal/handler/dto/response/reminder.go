package response

import (
	"time"

	"recruit-reminders/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReminderResponse struct {
	ID          uuid.UUID  `json:"id"`
	EmployerID  uuid.UUID  `json:"employer_id"`
	JobID       *uuid.UUID `json:"job_id"`
	CandidateID *uuid.UUID `json:"candidate_id"`
	TaskTitle   string     `json:"task_title"`
	TaskType    string     `json:"task_type"`
	RedirectURL string     `json:"redirect_url"`
	DueAt       *time.Time `json:"due_at"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromReminderView(v *queries.ReminderView) *ReminderResponse {
	var resp ReminderResponse
	_ = copier.Copy(&resp, v)
	resp.Status = v.Status.String()
	return &resp
}

func FromReminderList(views []*queries.ReminderView) []*ReminderResponse {
	res := make([]*ReminderResponse, len(views))
	for i, v := range views {
		res[i] = FromReminderView(v)
	}
	return res
}
