package pages

import (
	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Customers builds the customer screen controller.
func Customers(client *api.Client, n notify.Notifier) *crud.Page[models.Customer, models.CustomerDraft] {
	return crud.NewPage(crud.Descriptor[models.Customer, models.CustomerDraft]{
		Name: "Customer",
		Path: "/online-shop/customers",
		Columns: []crud.Column[models.Customer]{
			{Header: "ID", Value: func(c models.Customer) string { return itoa(c.ID) }},
			{Header: "First name", Value: func(c models.Customer) string { return c.FirstName }},
			{Header: "Last name", Value: func(c models.Customer) string { return c.LastName }},
			{Header: "Email", Value: func(c models.Customer) string { return c.Email }},
			{Header: "Phone", Value: func(c models.Customer) string { return c.PhoneNumber }},
			{Header: "Birthday", Value: func(c models.Customer) string { return c.Birthday }},
		},
		ToDraft: func(c models.Customer) models.CustomerDraft {
			return models.CustomerDraft{
				FirstName:   c.FirstName,
				LastName:    c.LastName,
				Email:       c.Email,
				Address:     c.Address,
				PhoneNumber: c.PhoneNumber,
				Birthday:    c.Birthday,
			}
		},
	}, client, n)
}
