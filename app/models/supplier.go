package models

// Supplier is a vendor referenced by Product.SupplierID.
type Supplier struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

func (s Supplier) RecordID() int { return s.ID }

// SupplierDraft is the editable form input for a supplier.
type SupplierDraft struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Address     string `json:"address"     validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}
