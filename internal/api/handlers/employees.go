package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/dhima/employee-directory/internal/api/middleware"
	"github.com/dhima/employee-directory/internal/api/response"
	"github.com/dhima/employee-directory/internal/database"
	"github.com/dhima/employee-directory/internal/employees"
	"github.com/dhima/employee-directory/internal/logging"
	"github.com/dhima/employee-directory/internal/models"
	"github.com/dhima/employee-directory/internal/web"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmployeeService is the subset of employees.Service the handler needs.
type EmployeeService interface {
	AddEmployee(ctx context.Context, req models.AddEmployeeRequest) (*models.AddEmployeeResult, error)
	FetchEmployee(ctx context.Context, empID string) (models.FetchEmployeeResult, error)
}

// EmployeeHandler handles the add and lookup form submissions.
type EmployeeHandler struct {
	logger  logging.Logger
	service EmployeeService
	view    Presentation
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(logger logging.Logger, service EmployeeService, view Presentation) *EmployeeHandler {
	return &EmployeeHandler{
		logger:  logger.With(zap.String("handler", "employee")),
		service: service,
		view:    view,
	}
}

// AddEmployee godoc
// @Summary Add an employee
// @Description Inserts one employee row from the add form. Duplicate IDs are accepted.
// @Tags Employees
// @Accept x-www-form-urlencoded
// @Produce html
// @Param emp_id formData string true "Employee ID"
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param primary_skill formData string true "Primary skill"
// @Param location formData string true "Location"
// @Success 200 {string} string "Confirmation page"
// @Failure 400 {string} string "Missing form field"
// @Failure 503 {string} string "Database unavailable"
// @Router /addemp [post]
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	req, err := employees.ParseAddForm(c.GetPostForm)
	if h.handleServiceError(c, err, "add employee") {
		return
	}

	result, err := h.service.AddEmployee(c.Request.Context(), req)
	if h.handleServiceError(c, err, "add employee") {
		return
	}

	h.logger.Info("employee added",
		zap.String("emp_id", result.Employee.EmpID),
		zap.String("request_id", middleware.GetRequestID(c)),
	)

	response.Page(c, http.StatusOK, web.PageAddedEmployee, h.view.data(gin.H{"name": result.Name}))
}

// FetchData godoc
// @Summary Look up an employee
// @Description Returns the first employee matching emp_id. Unknown IDs render empty fields.
// @Tags Employees
// @Accept x-www-form-urlencoded
// @Produce html
// @Param emp_id formData string true "Employee ID"
// @Success 200 {string} string "Employee page"
// @Failure 400 {string} string "Missing form field"
// @Failure 503 {string} string "Database unavailable"
// @Router /fetchdata [post]
func (h *EmployeeHandler) FetchData(c *gin.Context) {
	empID, err := employees.ParseFetchForm(c.GetPostForm)
	if h.handleServiceError(c, err, "fetch employee") {
		return
	}

	result, err := h.service.FetchEmployee(c.Request.Context(), empID)
	if h.handleServiceError(c, err, "fetch employee") {
		return
	}

	emp := result.Employee
	response.Page(c, http.StatusOK, web.PageEmployeeOutput, h.view.data(gin.H{
		"id":       emp.EmpID,
		"fname":    emp.FirstName,
		"lname":    emp.LastName,
		"interest": emp.PrimarySkill,
		"location": emp.Location,
	}))
}

func (h *EmployeeHandler) handleServiceError(c *gin.Context, err error, operation string) bool {
	if err == nil {
		return false
	}

	var validationErr employees.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Page(c, http.StatusBadRequest, web.PageError, h.view.data(gin.H{"message": validationErr.Error()}))
	case errors.Is(err, database.ErrUnavailable):
		h.logger.Warn(operation+" rejected, database unavailable",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		response.Page(c, http.StatusServiceUnavailable, web.PageUnavailable, h.view.data(nil))
	default:
		h.logger.Error(operation+" failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		response.Page(c, http.StatusInternalServerError, web.PageError, h.view.data(gin.H{"message": "internal server error"}))
	}
	return true
}
