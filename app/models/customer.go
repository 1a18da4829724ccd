package models

// Customer is a shopper record, referenced by Order.CustomerID.
type Customer struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
}

func (c Customer) RecordID() int { return c.ID }

// CustomerDraft is the editable form input for a customer.
type CustomerDraft struct {
	FirstName   string `json:"firstName"   validate:"required"`
	LastName    string `json:"lastName"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Address     string `json:"address"     validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Birthday    string `json:"birthday"    validate:"required"`
}
