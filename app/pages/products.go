package pages

import (
	"context"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Products builds the product screen controller. The category and supplier
// columns read the snapshots the server embeds in each product.
func Products(client *api.Client, n notify.Notifier) *crud.Page[models.Product, models.ProductDraft] {
	return crud.NewPage(crud.Descriptor[models.Product, models.ProductDraft]{
		Name: "Product",
		Path: "/online-shop/products",
		Columns: []crud.Column[models.Product]{
			{Header: "ID", Value: func(p models.Product) string { return itoa(p.ID) }},
			{Header: "Name", Value: func(p models.Product) string { return p.Name }},
			{Header: "Price", Value: func(p models.Product) string { return p.Price.String() }},
			{Header: "Discount", Value: func(p models.Product) string { return p.Discount.String() }},
			{Header: "Stock", Value: func(p models.Product) string { return itoa(p.Stock) }},
			{Header: "Category", Value: func(p models.Product) string { return p.Categories.Name }},
			{Header: "Supplier", Value: func(p models.Product) string { return p.Supplier.Name }},
		},
		ToDraft: func(p models.Product) models.ProductDraft {
			return models.ProductDraft{
				Name:         p.Name,
				Description:  p.Description,
				Price:        p.Price,
				Discount:     p.Discount,
				Stock:        p.Stock,
				CategoriesID: p.CategoriesID,
				SupplierID:   p.SupplierID,
			}
		},
	}, client, n)
}

// ProductLookups fetches the category and supplier collections the product
// form offers as reference choices, the same auxiliary loads the product
// screen performs alongside its own collection.
func ProductLookups(ctx context.Context, client *api.Client) ([]models.Category, []models.Supplier, error) {
	resp, err := client.Get(ctx, "/online-shop/categories")
	if err != nil {
		return nil, nil, err
	}
	var cats []models.Category
	if err := resp.JSON(&cats); err != nil {
		return nil, nil, err
	}

	resp, err = client.Get(ctx, "/online-shop/suppliers")
	if err != nil {
		return nil, nil, err
	}
	var sups []models.Supplier
	if err := resp.JSON(&sups); err != nil {
		return nil, nil, err
	}

	return cats, sups, nil
}
