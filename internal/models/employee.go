package models

// Department is the optional organisational unit an employee belongs to.
type Department struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Employee represents an employee record as returned by the list endpoint.
// Department is nil when the employee is not assigned to one.
type Employee struct {
	ID         int         `json:"id"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	Code       string      `json:"code"`
	Department *Department `json:"department"`
}

// DepartmentDescription returns the department description or "-" when unassigned.
func (e Employee) DepartmentDescription() string {
	if e.Department == nil {
		return "-"
	}
	return e.Department.Description
}
