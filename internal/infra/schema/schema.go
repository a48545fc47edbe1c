// Package schema creates the reminder_tasks table, its enum types, and its
// indexes. Initialization is idempotent: repeated or concurrent runs are
// no-ops, so every instance can call Init at startup.
package schema

import (
	"context"
	_ "embed"
	"fmt"

	"recruit-reminders/internal/infra/db"
)

//go:embed schema.sql
var tableDDL string

// enumDefs are created ahead of the table DDL. Postgres has no
// CREATE TYPE IF NOT EXISTS, so each create swallows duplicate_object to stay
// safe when two instances initialize at once.
var enumDefs = []struct {
	name string
	ddl  string
}{
	{
		name: "reminder_task_status",
		ddl:  `CREATE TYPE reminder_task_status AS ENUM ('pending', 'done', 'ignored')`,
	},
	{
		name: "reminder_task_type",
		ddl:  `CREATE TYPE reminder_task_type AS ENUM ('message', 'candidate', 'job_update', 'interview', 'other')`,
	},
}

func Init(ctx context.Context, dbtx db.DBTX) error {
	for _, e := range enumDefs {
		exists, err := typeExists(ctx, dbtx, e.name)
		if err != nil {
			return fmt.Errorf("failed to probe enum %s: %w", e.name, err)
		}
		if exists {
			continue
		}
		guarded := fmt.Sprintf(
			"DO $$ BEGIN %s; EXCEPTION WHEN duplicate_object THEN NULL; END $$", e.ddl)
		if _, err := dbtx.Exec(ctx, guarded); err != nil {
			return fmt.Errorf("failed to create enum %s: %w", e.name, err)
		}
	}

	if _, err := dbtx.Exec(ctx, tableDDL); err != nil {
		return fmt.Errorf("failed to create reminder_tasks schema: %w", err)
	}

	return nil
}

func typeExists(ctx context.Context, dbtx db.DBTX, name string) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_type WHERE typname = $1)", name).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
