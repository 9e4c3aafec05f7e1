package employees

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/models"
	"github.com/dhima/employee-directory/internal/storage"
	"github.com/dhima/employee-directory/pkg/clock"
	"github.com/dhima/employee-directory/platform/events"
	"go.uber.org/zap"
)

// Service encapsulates the add and fetch rules for employee records.
type Service struct {
	store     EmployeeStore
	publisher events.Publisher
	clock     clock.Clock
	logger    logging.Logger
}

// NewService creates an employee service using the real clock.
func NewService(store EmployeeStore, publisher events.Publisher, logger logging.Logger) *Service {
	return NewServiceWithClock(store, publisher, clock.RealClock{}, logger)
}

// NewServiceWithClock allows injecting a deterministic clock.
func NewServiceWithClock(store EmployeeStore, publisher events.Publisher, c clock.Clock, logger logging.Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		clock:     c,
		logger:    logger.With(zap.String("service", "employees")),
	}
}

// AddEmployee inserts one row. Contents are not validated and duplicate
// emp_id values are allowed. database.ErrUnavailable is returned unchanged
// so callers can map it to 503.
func (s *Service) AddEmployee(ctx context.Context, req models.AddEmployeeRequest) (*models.AddEmployeeResult, error) {
	emp := req.Employee()

	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("add employee: %w", err)
	}

	if err := s.publisher.Publish(ctx, events.NewEmployeeAdded(emp, s.clock)); err != nil {
		s.logger.Warn("failed to publish employee event",
			zap.String("emp_id", emp.EmpID),
			zap.Error(err),
		)
	}

	return &models.AddEmployeeResult{Employee: emp, Name: emp.FullName()}, nil
}

// FetchEmployee looks up the first row for empID. A missing row and any
// query failure both produce an empty, not-found result; only
// database.ErrUnavailable is returned as an error.
func (s *Service) FetchEmployee(ctx context.Context, empID string) (models.FetchEmployeeResult, error) {
	emp, err := s.store.GetEmployee(ctx, empID)
	switch {
	case err == nil:
		return models.FetchEmployeeResult{Employee: *emp, Found: true}, nil
	case errors.Is(err, database.ErrUnavailable):
		return models.FetchEmployeeResult{}, err
	case errors.Is(err, storage.ErrEmployeeNotFound):
		s.logger.Debug("employee not found", zap.String("emp_id", empID))
	default:
		s.logger.Error("employee lookup failed, treating as not found",
			zap.String("emp_id", empID),
			zap.Error(err),
		)
	}
	return models.FetchEmployeeResult{}, nil
}
