package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhima/employee-directory/internal/models"
)

// ErrEmployeeNotFound is returned when no row matches the identifier.
var ErrEmployeeNotFound = errors.New("employee not found")

// CreateEmployee inserts one row and commits it. Duplicate emp_id values
// are accepted.
func (c *MySQLClient) CreateEmployee(ctx context.Context, emp models.Employee) error {
	db, err := c.conns.Acquire(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(
		ctx,
		`INSERT INTO employee (emp_id, first_name, last_name, primary_skill, location) VALUES (?, ?, ?, ?, ?)`,
		emp.EmpID,
		emp.FirstName,
		emp.LastName,
		emp.PrimarySkill,
		emp.Location,
	); err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetEmployee returns the first row matching empID.
func (c *MySQLClient) GetEmployee(ctx context.Context, empID string) (*models.Employee, error) {
	db, err := c.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(
		ctx,
		`SELECT emp_id, first_name, last_name, primary_skill, location
		 FROM employee WHERE emp_id = ? LIMIT 1`,
		empID,
	)

	var id, first, last, skill, location sql.NullString
	if err := row.Scan(&id, &first, &last, &skill, &location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("scan employee: %w", err)
	}

	return &models.Employee{
		EmpID:        id.String,
		FirstName:    first.String,
		LastName:     last.String,
		PrimarySkill: skill.String,
		Location:     location.String,
	}, nil
}
