//go:build unit

// Package fake holds hand-rolled test doubles for the usecase boundaries: an
// in-memory unit of work for command tests and function-field stubs for
// handler tests.
package fake

import (
	"context"
	"sync"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/infra"
	"recruit-reminders/internal/infra/db"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/internal/usecase/queries"
	"recruit-reminders/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReminderStore is a map-backed stand-in for the reminder_tasks table.
type ReminderStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]shared.ReminderSnapshot
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{tasks: make(map[uuid.UUID]shared.ReminderSnapshot)}
}

func (s *ReminderStore) Put(snap shared.ReminderSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[snap.ID] = snap
}

func (s *ReminderStore) Get(id uuid.UUID) (shared.ReminderSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.tasks[id]
	return snap, ok
}

func (s *ReminderStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// UnitOfWork runs the transaction body directly against the store. WithinErr
// short-circuits every transaction when set.
type UnitOfWork struct {
	Store     *ReminderStore
	WithinErr error
}

func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{Store: NewReminderStore()}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.WithinErr != nil {
		return u.WithinErr
	}
	return fn(ctx, txView{store: u.Store})
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type txView struct {
	store *ReminderStore
}

func (t txView) DB() db.DBTX                          { return nil }
func (t txView) Reminders() shared.ReminderRepository { return memoryRepo{store: t.store} }
func (t txView) Reads() shared.CommandReads           { return memoryReads{store: t.store} }

type memoryRepo struct {
	store *ReminderStore
}

func (r memoryRepo) Create(_ context.Context, _ db.DBTX, task *reminder.Task) (uuid.UUID, error) {
	r.store.Put(SnapshotFromTask(task))
	return task.ID(), nil
}

func (r memoryRepo) Update(_ context.Context, _ db.DBTX, task *reminder.Task) error {
	if _, ok := r.store.Get(task.ID()); !ok {
		return infra.WrapRepoErr("reminder not found", nil, infra.KindNotFound)
	}
	r.store.Put(SnapshotFromTask(task))
	return nil
}

type memoryReads struct {
	store *ReminderStore
}

func (r memoryReads) ReminderByID(_ context.Context, id uuid.UUID) (*shared.ReminderSnapshot, error) {
	snap, ok := r.store.Get(id)
	if !ok {
		return nil, infra.WrapRepoErr("reminder not found", nil, infra.KindNotFound)
	}
	return &snap, nil
}

func SnapshotFromTask(task *reminder.Task) shared.ReminderSnapshot {
	return shared.ReminderSnapshot{
		ID:          task.ID(),
		EmployerID:  task.EmployerID(),
		JobID:       task.JobID(),
		CandidateID: task.CandidateID(),
		Title:       task.Title().String(),
		TaskType:    task.TaskType(),
		RedirectURL: task.RedirectURL().String(),
		DueAt:       task.DueAt(),
		Status:      task.Status(),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
	}
}

// ReminderCommands is a function-field stub of commands.ReminderCommands.
type ReminderCommands struct {
	CreateFn       func(ctx context.Context, req commands.CreateReminderRequest) (*commands.CreateReminderResult, error)
	UpdateFn       func(ctx context.Context, id uuid.UUID, req commands.UpdateReminderRequest, actorEmployerID uuid.UUID) error
	UpdateStatusFn func(ctx context.Context, id uuid.UUID, status string, actorEmployerID uuid.UUID) error
	RescheduleFn   func(ctx context.Context, id uuid.UUID, dueAt *time.Time, actorEmployerID uuid.UUID) error

	CreateCalls       int
	UpdateCalls       int
	UpdateStatusCalls int
	RescheduleCalls   int
}

func (f *ReminderCommands) Create(ctx context.Context, req commands.CreateReminderRequest) (*commands.CreateReminderResult, error) {
	f.CreateCalls++
	return f.CreateFn(ctx, req)
}

func (f *ReminderCommands) Update(ctx context.Context, id uuid.UUID, req commands.UpdateReminderRequest, actorEmployerID uuid.UUID) error {
	f.UpdateCalls++
	return f.UpdateFn(ctx, id, req, actorEmployerID)
}

func (f *ReminderCommands) UpdateStatus(ctx context.Context, id uuid.UUID, status string, actorEmployerID uuid.UUID) error {
	f.UpdateStatusCalls++
	return f.UpdateStatusFn(ctx, id, status, actorEmployerID)
}

func (f *ReminderCommands) Reschedule(ctx context.Context, id uuid.UUID, dueAt *time.Time, actorEmployerID uuid.UUID) error {
	f.RescheduleCalls++
	return f.RescheduleFn(ctx, id, dueAt, actorEmployerID)
}

// ReminderQueries is a function-field stub of queries.ReminderQueries.
type ReminderQueries struct {
	GetByIDFn        func(ctx context.Context, id uuid.UUID, actorEmployerID uuid.UUID) (*queries.ReminderView, error)
	ListByEmployerFn func(ctx context.Context, employerID uuid.UUID, statusFilter *string, actorEmployerID uuid.UUID) ([]*queries.ReminderView, error)
	ListDueBeforeFn  func(ctx context.Context, t time.Time) ([]*queries.ReminderView, error)

	ListDueBeforeCalls int
}

func (f *ReminderQueries) GetByID(ctx context.Context, id uuid.UUID, actorEmployerID uuid.UUID) (*queries.ReminderView, error) {
	return f.GetByIDFn(ctx, id, actorEmployerID)
}

func (f *ReminderQueries) ListByEmployer(ctx context.Context, employerID uuid.UUID, statusFilter *string, actorEmployerID uuid.UUID) ([]*queries.ReminderView, error) {
	return f.ListByEmployerFn(ctx, employerID, statusFilter, actorEmployerID)
}

func (f *ReminderQueries) ListDueBefore(ctx context.Context, t time.Time) ([]*queries.ReminderView, error) {
	f.ListDueBeforeCalls++
	return f.ListDueBeforeFn(ctx, t)
}

// ReminderReadStore is a function-field stub of queries.ReminderReadStore.
type ReminderReadStore struct {
	FindByIDFn       func(ctx context.Context, id uuid.UUID) (*queries.ReminderView, error)
	FindByEmployerFn func(ctx context.Context, employerID uuid.UUID, status *reminder.Status) ([]*queries.ReminderView, error)
	FindDueBeforeFn  func(ctx context.Context, t time.Time) ([]*queries.ReminderView, error)
}

func (f *ReminderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReminderView, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *ReminderReadStore) FindByEmployer(ctx context.Context, employerID uuid.UUID, status *reminder.Status) ([]*queries.ReminderView, error) {
	return f.FindByEmployerFn(ctx, employerID, status)
}

func (f *ReminderReadStore) FindDueBefore(ctx context.Context, t time.Time) ([]*queries.ReminderView, error) {
	return f.FindDueBeforeFn(ctx, t)
}
