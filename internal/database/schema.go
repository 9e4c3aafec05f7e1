package database

import (
	"context"
	"database/sql"
	"fmt"
)

const createEmployeeTable = `CREATE TABLE IF NOT EXISTS employee (
	emp_id VARCHAR(20),
	first_name VARCHAR(20),
	last_name VARCHAR(20),
	primary_skill VARCHAR(20),
	location VARCHAR(20)
)`

// SchemaError reports a failed schema initialization.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return "ensure employee schema: " + e.Err.Error()
}

func (e *SchemaError) Unwrap() error { return e.Err }

// EnsureSchema creates the employee table if it does not exist. Safe to call
// on every (re)connect; existing rows are never touched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return &SchemaError{Err: fmt.Errorf("begin transaction: %w", err)}
	}

	if _, err = tx.ExecContext(ctx, createEmployeeTable); err != nil {
		_ = tx.Rollback()
		return &SchemaError{Err: fmt.Errorf("create table: %w", err)}
	}

	if err = tx.Commit(); err != nil {
		return &SchemaError{Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}
