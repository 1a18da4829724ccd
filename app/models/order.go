package models

import "github.com/shopspring/decimal"

// Order is a customer purchase with its line items. Dates travel as strings
// in the wire format the server uses.
type Order struct {
	ID              int           `json:"id"`
	CreatedDate     string        `json:"createdDate"`
	ShippedDate     string        `json:"shippedDate"`
	Status          string        `json:"status"`
	Description     string        `json:"description"`
	ShippingAddress string        `json:"shippingAddress"`
	ShippingCity    string        `json:"shippingCity"`
	PaymentType     string        `json:"paymentType"`
	CustomerID      int           `json:"customerId"`
	EmployeeID      int           `json:"employeeId"`
	OrderDetails    []OrderDetail `json:"orderDetails"`
}

func (o Order) RecordID() int { return o.ID }

// OrderDetail is one line item of an order. It has no id of its own; the
// (orderId, productId) pair locates it.
type OrderDetail struct {
	OrderID   int             `json:"orderId"   validate:"required,integer"`
	ProductID int             `json:"productId" validate:"required,integer"`
	Quantity  int             `json:"quantity"  validate:"required,integer"`
	Price     decimal.Decimal `json:"price"     validate:"required,numeric"`
	Discount  decimal.Decimal `json:"discount"  validate:"required,numeric"`
}

// OrderDraft is the editable form input for an order. OrderDetails must not
// be empty on submit; each line item is validated element-wise.
type OrderDraft struct {
	CreatedDate     string        `json:"createdDate"     validate:"required"`
	ShippedDate     string        `json:"shippedDate"     validate:"required"`
	Status          string        `json:"status"          validate:"required"`
	Description     string        `json:"description"     validate:"required"`
	ShippingAddress string        `json:"shippingAddress" validate:"required"`
	ShippingCity    string        `json:"shippingCity"    validate:"required"`
	PaymentType     string        `json:"paymentType"     validate:"required"`
	CustomerID      int           `json:"customerId"      validate:"required,integer"`
	EmployeeID      int           `json:"employeeId"      validate:"required,integer"`
	OrderDetails    []OrderDetail `json:"orderDetails"    validate:"required"`
}
