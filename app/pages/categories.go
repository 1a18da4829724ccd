package pages

import (
	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Categories builds the category screen controller.
func Categories(client *api.Client, n notify.Notifier) *crud.Page[models.Category, models.CategoryDraft] {
	return crud.NewPage(crud.Descriptor[models.Category, models.CategoryDraft]{
		Name: "Category",
		Path: "/online-shop/categories",
		Columns: []crud.Column[models.Category]{
			{Header: "ID", Value: func(c models.Category) string { return itoa(c.ID) }},
			{Header: "Name", Value: func(c models.Category) string { return c.Name }},
			{Header: "Description", Value: func(c models.Category) string { return truncate(c.Description, 60) }},
		},
		ToDraft: func(c models.Category) models.CategoryDraft {
			return models.CategoryDraft{Name: c.Name, Description: c.Description}
		},
	}, client, n)
}
