package models

// Employee represents a row of the employee table.
type Employee struct {
	EmpID        string `json:"emp_id" example:"E1"`
	FirstName    string `json:"first_name" example:"Jane"`
	LastName     string `json:"last_name" example:"Doe"`
	PrimarySkill string `json:"primary_skill" example:"Go"`
	Location     string `json:"location" example:"Remote"`
} // @name Employee

// FullName joins first and last name the way the confirmation page shows it.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// AddEmployeeRequest carries the add-employee form. Fields must be present
// but may be empty.
type AddEmployeeRequest struct {
	EmpID        string `form:"emp_id"`
	FirstName    string `form:"first_name"`
	LastName     string `form:"last_name"`
	PrimarySkill string `form:"primary_skill"`
	Location     string `form:"location"`
} // @name AddEmployeeRequest

// Employee converts the form into a row.
func (r AddEmployeeRequest) Employee() Employee {
	return Employee{
		EmpID:        r.EmpID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		PrimarySkill: r.PrimarySkill,
		Location:     r.Location,
	}
}

// AddEmployeeResult is returned after a successful insert.
type AddEmployeeResult struct {
	Employee Employee `json:"employee"`
	Name     string   `json:"name" example:"Jane Doe"`
}

// FetchEmployeeResult is the lookup outcome. Found is false when no row
// matched; Employee is then the zero value.
type FetchEmployeeResult struct {
	Employee Employee `json:"employee"`
	Found    bool     `json:"found"`
}
