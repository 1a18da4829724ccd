package pages

import (
	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
)

// Employees builds the employee screen controller.
func Employees(client *api.Client, n notify.Notifier) *crud.Page[models.Employee, models.EmployeeDraft] {
	return crud.NewPage(crud.Descriptor[models.Employee, models.EmployeeDraft]{
		Name: "Employee",
		Path: "/online-shop/employees",
		Columns: []crud.Column[models.Employee]{
			{Header: "ID", Value: func(e models.Employee) string { return itoa(e.ID) }},
			{Header: "First name", Value: func(e models.Employee) string { return e.FirstName }},
			{Header: "Last name", Value: func(e models.Employee) string { return e.LastName }},
			{Header: "Email", Value: func(e models.Employee) string { return e.Email }},
			{Header: "Phone", Value: func(e models.Employee) string { return e.PhoneNumber }},
			{Header: "Birthday", Value: func(e models.Employee) string { return e.Birthday }},
		},
		ToDraft: func(e models.Employee) models.EmployeeDraft {
			return models.EmployeeDraft{
				FirstName:   e.FirstName,
				LastName:    e.LastName,
				Email:       e.Email,
				Address:     e.Address,
				PhoneNumber: e.PhoneNumber,
				Birthday:    e.Birthday,
			}
		},
	}, client, n)
}
