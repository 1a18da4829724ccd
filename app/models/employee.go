package models

// Employee is a back-office staff member, referenced by Order.EmployeeID.
type Employee struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
}

func (e Employee) RecordID() int { return e.ID }

// EmployeeDraft is the editable form input for an employee.
type EmployeeDraft struct {
	FirstName   string `json:"firstName"   validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Address     string `json:"address"     validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Birthday    string `json:"birthday"    validate:"required"`
}
