package pages

import (
	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Orders builds the order screen controller.
func Orders(client *api.Client, n notify.Notifier) *crud.Page[models.Order, models.OrderDraft] {
	return crud.NewPage(crud.Descriptor[models.Order, models.OrderDraft]{
		Name: "Order",
		Path: "/online-shop/orders",
		Columns: []crud.Column[models.Order]{
			{Header: "ID", Value: func(o models.Order) string { return itoa(o.ID) }},
			{Header: "Created", Value: func(o models.Order) string { return o.CreatedDate }},
			{Header: "Shipped", Value: func(o models.Order) string { return o.ShippedDate }},
			{Header: "Status", Value: func(o models.Order) string { return o.Status }},
			{Header: "Description", Value: func(o models.Order) string { return truncate(o.Description, 40) }},
			{Header: "Address", Value: func(o models.Order) string { return truncate(o.ShippingAddress, 40) }},
			{Header: "City", Value: func(o models.Order) string { return o.ShippingCity }},
			{Header: "Items", Value: func(o models.Order) string { return itoa(len(o.OrderDetails)) }},
		},
		ToDraft: func(o models.Order) models.OrderDraft {
			return models.OrderDraft{
				CreatedDate:     o.CreatedDate,
				ShippedDate:     o.ShippedDate,
				Status:          o.Status,
				Description:     o.Description,
				ShippingAddress: o.ShippingAddress,
				ShippingCity:    o.ShippingCity,
				PaymentType:     o.PaymentType,
				CustomerID:      o.CustomerID,
				EmployeeID:      o.EmployeeID,
				OrderDetails:    o.OrderDetails,
			}
		},
	}, client, n)
}
