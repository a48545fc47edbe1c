//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"recruit-reminders/internal/domain/reminder"
	"recruit-reminders/internal/pkg/clock"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/tests/common/builder"
	"recruit-reminders/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandFixture(t *testing.T) (commands.ReminderCommands, *fake.UnitOfWork, *clock.FixedClock) {
	t.Helper()
	uow := fake.NewUnitOfWork()
	clk := clock.NewFixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	return commands.NewReminderCommands(uow, clk), uow, clk
}

func seedReminder(t *testing.T, uow *fake.UnitOfWork, clk *clock.FixedClock, b *builder.ReminderBuilder) uuid.UUID {
	t.Helper()
	task, err := reminder.NewTask(uuid.Nil, b.EmployerID, b.JobID, b.CandidateID, b.TaskTitle, b.TaskType, b.RedirectURL, b.DueAt, clk.Now())
	require.NoError(t, err)
	uow.Store.Put(fake.SnapshotFromTask(task))
	return task.ID()
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending reminder stamped with the clock", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		req := builder.NewReminderBuilder().BuildCreateCommand()

		result, err := cmds.Create(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEqual(t, uuid.Nil, result.ReminderID)

		snap, ok := uow.Store.Get(result.ReminderID)
		require.True(t, ok)
		assert.Equal(t, reminder.StatusPending, snap.Status)
		assert.Equal(t, req.EmployerID, snap.EmployerID)
		assert.Equal(t, req.TaskTitle, snap.Title)
		assert.Equal(t, clk.Now(), snap.CreatedAt)
		assert.Equal(t, snap.CreatedAt, snap.UpdatedAt)
	})

	t.Run("rejects invalid input without touching the store", func(t *testing.T) {
		cmds, uow, _ := newCommandFixture(t)
		req := builder.NewReminderBuilder().WithTitle("").BuildCreateCommand()

		result, err := cmds.Create(ctx, req)
		require.ErrorIs(t, err, reminder.ErrEmptyTitle)
		assert.Nil(t, result)
		assert.Equal(t, 0, uow.Store.Len())
	})

	t.Run("rejects unknown task type", func(t *testing.T) {
		cmds, _, _ := newCommandFixture(t)
		req := builder.NewReminderBuilder().WithTaskType("phone_call").BuildCreateCommand()

		_, err := cmds.Create(ctx, req)
		require.ErrorIs(t, err, reminder.ErrInvalidTaskType)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a pending reminder done and bumps updated_at", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		clk.Advance(30 * time.Minute)
		require.NoError(t, cmds.UpdateStatus(ctx, id, "done", b.EmployerID))

		snap, ok := uow.Store.Get(id)
		require.True(t, ok)
		assert.Equal(t, reminder.StatusDone, snap.Status)
		assert.Equal(t, clk.Now(), snap.UpdatedAt)
		assert.True(t, snap.UpdatedAt.After(snap.CreatedAt))
	})

	t.Run("done can return to pending", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		require.NoError(t, cmds.UpdateStatus(ctx, id, "done", b.EmployerID))
		require.NoError(t, cmds.UpdateStatus(ctx, id, "pending", b.EmployerID))

		snap, _ := uow.Store.Get(id)
		assert.Equal(t, reminder.StatusPending, snap.Status)
	})

	t.Run("missing reminder leaves the store untouched", func(t *testing.T) {
		cmds, uow, _ := newCommandFixture(t)

		err := cmds.UpdateStatus(ctx, uuid.New(), "done", uuid.New())
		require.ErrorIs(t, err, commands.ErrReminderNotFound)
		assert.Equal(t, 0, uow.Store.Len())
	})

	t.Run("another employer's reminder is not mutated", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.UpdateStatus(ctx, id, "done", uuid.New())
		require.ErrorIs(t, err, commands.ErrReminderNotOwned)

		snap, _ := uow.Store.Get(id)
		assert.Equal(t, reminder.StatusPending, snap.Status)
	})

	t.Run("rejects unknown status before opening a transaction", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.UpdateStatus(ctx, id, "archived", b.EmployerID)
		require.ErrorIs(t, err, reminder.ErrInvalidStatus)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the due time", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		clk.Advance(time.Hour)
		newDue := clk.Now().Add(72 * time.Hour)
		require.NoError(t, cmds.Reschedule(ctx, id, &newDue, b.EmployerID))

		snap, _ := uow.Store.Get(id)
		require.NotNil(t, snap.DueAt)
		assert.Equal(t, newDue, *snap.DueAt)
		assert.Equal(t, clk.Now(), snap.UpdatedAt)
	})

	t.Run("clears the due time with nil", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		require.NoError(t, cmds.Reschedule(ctx, id, nil, b.EmployerID))

		snap, _ := uow.Store.Get(id)
		assert.Nil(t, snap.DueAt)
	})

	t.Run("missing reminder", func(t *testing.T) {
		cmds, _, _ := newCommandFixture(t)
		err := cmds.Reschedule(ctx, uuid.New(), nil, uuid.New())
		require.ErrorIs(t, err, commands.ErrReminderNotFound)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("patches only the provided fields", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)
		before, _ := uow.Store.Get(id)

		clk.Advance(10 * time.Minute)
		err := cmds.Update(ctx, id, commands.UpdateReminderRequest{
			TaskTitle: strPtr("Revised follow up"),
		}, b.EmployerID)
		require.NoError(t, err)

		snap, _ := uow.Store.Get(id)
		assert.Equal(t, "Revised follow up", snap.Title)
		assert.Equal(t, before.TaskType, snap.TaskType)
		assert.Equal(t, before.RedirectURL, snap.RedirectURL)
		assert.Equal(t, before.Status, snap.Status)
		require.NotNil(t, snap.DueAt)
		assert.Equal(t, *before.DueAt, *snap.DueAt)
		assert.Equal(t, before.CreatedAt, snap.CreatedAt)
		assert.Equal(t, clk.Now(), snap.UpdatedAt)
	})

	t.Run("patches status alongside fields", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.Update(ctx, id, commands.UpdateReminderRequest{
			TaskType: strPtr("interview"),
			Status:   strPtr("ignored"),
		}, b.EmployerID)
		require.NoError(t, err)

		snap, _ := uow.Store.Get(id)
		assert.Equal(t, reminder.TypeInterview, snap.TaskType)
		assert.Equal(t, reminder.StatusIgnored, snap.Status)
	})

	t.Run("clear_due_at wins over an absent due_at", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.Update(ctx, id, commands.UpdateReminderRequest{ClearDueAt: true}, b.EmployerID)
		require.NoError(t, err)

		snap, _ := uow.Store.Get(id)
		assert.Nil(t, snap.DueAt)
	})

	t.Run("validates patched values", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.Update(ctx, id, commands.UpdateReminderRequest{
			TaskTitle: strPtr("   "),
		}, b.EmployerID)
		require.ErrorIs(t, err, reminder.ErrEmptyTitle)

		snap, _ := uow.Store.Get(id)
		assert.Equal(t, b.TaskTitle, snap.Title)
	})

	t.Run("ownership is checked before patching", func(t *testing.T) {
		cmds, uow, clk := newCommandFixture(t)
		b := builder.NewReminderBuilder()
		id := seedReminder(t, uow, clk, b)

		err := cmds.Update(ctx, id, commands.UpdateReminderRequest{
			TaskTitle: strPtr("hijacked"),
		}, uuid.New())
		require.ErrorIs(t, err, commands.ErrReminderNotOwned)
	})
}
