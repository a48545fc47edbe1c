package reminder

import "errors"

var (
	ErrEmptyTitle         = errors.New("task title cannot be empty")
	ErrTitleTooLong       = errors.New("task title exceeds maximum length")
	ErrEmptyRedirectURL   = errors.New("redirect url cannot be empty")
	ErrRedirectURLTooLong = errors.New("redirect url exceeds maximum length")
	ErrInvalidTaskType    = errors.New("invalid task type")
	ErrInvalidStatus      = errors.New("invalid reminder status")
	ErrMissingEmployer    = errors.New("employer id is required")
)

// Status is the flat three-value lifecycle of a reminder. Any status may
// replace any other; the store enforces no transition graph.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusIgnored Status = "ignored"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDone, StatusIgnored:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// TaskType classifies what the reminder points at on the employer dashboard.
type TaskType string

const (
	TypeMessage   TaskType = "message"
	TypeCandidate TaskType = "candidate"
	TypeJobUpdate TaskType = "job_update"
	TypeInterview TaskType = "interview"
	TypeOther     TaskType = "other"
)

func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) IsValid() bool {
	switch t {
	case TypeMessage, TypeCandidate, TypeJobUpdate, TypeInterview, TypeOther:
		return true
	default:
		return false
	}
}

func NewTaskType(s string) (TaskType, error) {
	taskType := TaskType(s)
	if !taskType.IsValid() {
		return "", ErrInvalidTaskType
	}
	return taskType, nil
}
