package fakes

import (
	"context"
	"sync"

	"github.com/dhima/employee-directory/internal/models"
	"github.com/dhima/employee-directory/internal/storage"
)

// FakeEmployeeStore is an in-memory implementation of employees.EmployeeStore.
// Rows keep insertion order; lookups return the first match.
type FakeEmployeeStore struct {
	mu   sync.Mutex
	rows []models.Employee

	// CreateErr and GetErr, when set, are returned instead of touching rows.
	CreateErr error
	GetErr    error
}

func NewFakeEmployeeStore() *FakeEmployeeStore {
	return &FakeEmployeeStore{}
}

func (f *FakeEmployeeStore) CreateEmployee(_ context.Context, emp models.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.rows = append(f.rows, emp)
	return nil
}

func (f *FakeEmployeeStore) GetEmployee(_ context.Context, empID string) (*models.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, row := range f.rows {
		if row.EmpID == empID {
			r := row
			return &r, nil
		}
	}
	return nil, storage.ErrEmployeeNotFound
}

// Rows returns a copy of every stored row.
func (f *FakeEmployeeStore) Rows() []models.Employee {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Employee, len(f.rows))
	copy(out, f.rows)
	return out
}
