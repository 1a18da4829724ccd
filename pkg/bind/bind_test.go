package bind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopctl/pkg/bind"
)

type supplierDraft struct {
	Name        string `json:"name"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Address     string `json:"address"     validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func TestJSONValidDraft(t *testing.T) {
	var d supplierDraft
	errs, err := bind.JSON(strings.NewReader(
		`{"name":"ACME","email":"sales@acme.example","address":"1 Main St","phoneNumber":"555-0100"}`,
	), &d)

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, "ACME", d.Name)
}

func TestJSONCollectsValidationErrors(t *testing.T) {
	var d supplierDraft
	errs, err := bind.JSON(strings.NewReader(`{"email":"nope"}`), &d)

	require.NoError(t, err)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "address")
}

func TestJSONMalformedBody(t *testing.T) {
	var d supplierDraft
	_, err := bind.JSON(strings.NewReader(`{"name":`), &d)
	require.Error(t, err)
}
