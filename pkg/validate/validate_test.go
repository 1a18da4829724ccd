package validate_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/shopctl/pkg/validate"
)

type supplierDraft struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Address     string `json:"address"     validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(supplierDraft{
		Name:        "Acme Beverages",
		Email:       "sales@acme.example",
		Address:     "12 Dock Road",
		PhoneNumber: "0123456789",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(supplierDraft{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	for _, f := range []string{"name", "email", "address", "phoneNumber"} {
		if _, ok := errs[f]; !ok {
			t.Errorf("expected %s to be required", f)
		}
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

// Cleared numeric inputs arrive as 0, and the schema must pass them: only
// business rules (out of schema scope) could reject a zero price.
func TestZeroNumberPassesRequired(t *testing.T) {
	type in struct {
		Price    decimal.Decimal `json:"price"    validate:"required,numeric"`
		Stock    int             `json:"stock"    validate:"required,integer"`
		Discount float64         `json:"discount" validate:"required,numeric"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected zero numbers to pass, got: %v", errs)
	}
}

func TestEmptySliceFailsRequired(t *testing.T) {
	type line struct {
		ProductID int `json:"productId" validate:"required,integer"`
	}
	type in struct {
		Lines []line `json:"orderDetails" validate:"required"`
	}
	errs := validate.Struct(in{})
	if _, ok := errs["orderDetails"]; !ok {
		t.Error("expected empty orderDetails to fail required")
	}
	if errs := validate.Struct(in{Lines: []line{{ProductID: 1}}}); validate.HasErrors(errs) {
		t.Errorf("expected non-empty orderDetails to pass, got: %v", errs)
	}
}

func TestSliceElementErrorsAreIndexed(t *testing.T) {
	type line struct {
		ProductID int    `json:"productId" validate:"required,integer"`
		Note      string `json:"note"      validate:"required"`
	}
	type in struct {
		Lines []line `json:"orderDetails" validate:"required"`
	}
	errs := validate.Struct(in{Lines: []line{{ProductID: 1, Note: "ok"}, {ProductID: 2}}})
	if _, ok := errs["orderDetails[1].note"]; !ok {
		t.Errorf("expected indexed element error, got: %v", errs)
	}
	if _, ok := errs["orderDetails[0].note"]; ok {
		t.Errorf("element 0 should be valid, got: %v", errs)
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	type in struct {
		Description string `json:"description" validate:"nullable,max=100"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	type in struct {
		Birthday string `json:"birthday" validate:"required,date"`
	}
	if errs := validate.Struct(in{Birthday: "not-a-date"}); !validate.HasErrors(errs) {
		t.Error("expected invalid date to fail")
	}
	if errs := validate.Struct(in{Birthday: "1994-05-17"}); validate.HasErrors(errs) {
		t.Errorf("expected ISO date to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		PaymentType string `json:"paymentType" validate:"required,in=CASH,CREDIT_CARD"`
	}
	if errs := validate.Struct(in{PaymentType: "BARTER"}); !validate.HasErrors(errs) {
		t.Error("expected invalid payment type to fail")
	}
	if errs := validate.Struct(in{PaymentType: "CASH"}); validate.HasErrors(errs) {
		t.Errorf("expected CASH to pass: %v", errs)
	}
}
