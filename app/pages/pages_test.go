package pages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/app/pages"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
	"github.com/shashiranjanraj/shopctl/pkg/testkit"
)

const baseURL = "http://shop.test"

func TestSupplierPhoneNumberPatch(t *testing.T) {
	mt := testkit.Mock(t,
		testkit.Step{Method: "GET", URL: baseURL + "/online-shop/suppliers", Body: `[
			{"id":1,"name":"Exotic Liquids","email":"sales@exotic.example","address":"49 Gilbert St","phoneNumber":"0171-555-2222"},
			{"id":3,"name":"Tokyo Traders","email":"orders@tokyo.example","address":"9-8 Sekimai","phoneNumber":"03-3555-5011"}
		]`},
		testkit.Step{Method: "PATCH", URL: baseURL + "/online-shop/suppliers/3", Body: `
			{"id":3,"name":"Tokyo Traders","email":"orders@tokyo.example","address":"9-8 Sekimai","phoneNumber":"03-9999-0000"}`},
	)

	rec := &notify.Recorder{}
	p := pages.Suppliers(api.NewClient(baseURL, nil), rec)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.True(t, p.Edit(3))

	draft := p.Form().Draft()
	draft.PhoneNumber = "03-9999-0000"
	p.Form().SetDraft(draft)

	errs, err := p.Submit(ctx)
	require.NoError(t, err)
	require.Empty(t, errs)

	require.Len(t, p.Items(), 2)
	assert.Equal(t, "03-9999-0000", p.Items()[1].PhoneNumber)
	assert.Equal(t, "0171-555-2222", p.Items()[0].PhoneNumber, "other rows untouched")
	assert.Equal(t, []string{"Supplier updated"}, rec.Successes)
	mt.AssertAllCalled(t)
}

func TestEmployeeDeleteMissingRecord(t *testing.T) {
	testkit.Mock(t,
		testkit.Step{Method: "GET", URL: baseURL + "/online-shop/employees", Body: `[
			{"id":1,"firstName":"Nancy","lastName":"Davolio","email":"nancy@shop.example","address":"507 20th Ave","phoneNumber":"206-555-9857","birthday":"1988-12-08"}
		]`},
		testkit.Step{Method: "DELETE", URL: baseURL + "/online-shop/employees/9", Status: 404, Body: `{"message":["Not found"]}`},
	)

	rec := &notify.Recorder{}
	p := pages.Employees(api.NewClient(baseURL, nil), rec)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))

	require.Error(t, p.Delete(ctx, 9))
	assert.Len(t, p.Items(), 1, "collection unchanged on failed delete")
	assert.Equal(t, []string{"Not found"}, rec.Failures)
}

func TestOrderDraftLineItemsAreValidatedBeforeSubmit(t *testing.T) {
	mt := testkit.Mock(t)

	rec := &notify.Recorder{}
	p := pages.Orders(api.NewClient(baseURL, nil), rec)

	p.Form().Show()
	p.Form().SetDraft(models.OrderDraft{
		CreatedDate:     "2026-08-01",
		ShippedDate:     "2026-08-05",
		Status:          "PENDING",
		Description:     "demo",
		ShippingAddress: "1 Main St",
		ShippingCity:    "Berlin",
		PaymentType:     "CASH",
		CustomerID:      1,
		EmployeeID:      1,
	})

	errs, err := p.Submit(context.Background())
	require.NoError(t, err)
	assert.Contains(t, errs, "orderDetails", "empty line items block submission")
	assert.Empty(t, mt.Calls())
}
