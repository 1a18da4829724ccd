package pages

import (
	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Suppliers builds the supplier screen controller.
func Suppliers(client *api.Client, n notify.Notifier) *crud.Page[models.Supplier, models.SupplierDraft] {
	return crud.NewPage(crud.Descriptor[models.Supplier, models.SupplierDraft]{
		Name: "Supplier",
		Path: "/online-shop/suppliers",
		Columns: []crud.Column[models.Supplier]{
			{Header: "ID", Value: func(s models.Supplier) string { return itoa(s.ID) }},
			{Header: "Name", Value: func(s models.Supplier) string { return s.Name }},
			{Header: "Email", Value: func(s models.Supplier) string { return s.Email }},
			{Header: "Address", Value: func(s models.Supplier) string { return truncate(s.Address, 40) }},
			{Header: "Phone", Value: func(s models.Supplier) string { return s.PhoneNumber }},
		},
		ToDraft: func(s models.Supplier) models.SupplierDraft {
			return models.SupplierDraft{
				Name:        s.Name,
				Email:       s.Email,
				Address:     s.Address,
				PhoneNumber: s.PhoneNumber,
			}
		},
	}, client, n)
}
