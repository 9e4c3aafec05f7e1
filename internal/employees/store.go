package employees

import (
	"context"

	"github.com/dhima/employee-directory/internal/models"
)

// EmployeeStore defines the storage methods required by the employee service.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, emp models.Employee) error
	GetEmployee(ctx context.Context, empID string) (*models.Employee, error)
}
