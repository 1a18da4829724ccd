package stub

import (
	"github.com/shopspring/decimal"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/collection"
	"github.com/shashiranjanraj/shopctl/pkg/logger"
)

// seedDemo loads a small coherent dataset so the CLI has something to show
// against a fresh stub.
func (s *Store) seedDemo() {
	if err := s.AddAccount("tungnt@aptech", "Tung Nguyen", "123456789"); err != nil {
		logger.Error("seed account", "error", err)
	}

	s.Categories.seed(
		models.Category{ID: 1, Name: "Beverages", Description: "Soft drinks, coffees, teas"},
		models.Category{ID: 2, Name: "Condiments", Description: "Sweet and savory sauces"},
		models.Category{ID: 3, Name: "Seafood", Description: ""},
	)

	s.Suppliers.seed(
		models.Supplier{ID: 1, Name: "Exotic Liquids", Email: "sales@exoticliquids.example", Address: "49 Gilbert St, London", PhoneNumber: "0171-555-2222"},
		models.Supplier{ID: 2, Name: "Tokyo Traders", Email: "orders@tokyotraders.example", Address: "9-8 Sekimai Musashino-shi, Tokyo", PhoneNumber: "03-3555-5011"},
	)

	cats := collection.KeyBy(s.Categories.List(), func(c models.Category) int { return c.ID })
	sups := collection.KeyBy(s.Suppliers.List(), func(sp models.Supplier) int { return sp.ID })

	s.Products.seed(
		models.Product{
			ID: 1, Name: "Chai", Description: "Delicate fragrant tea",
			Price: decimal.NewFromInt(18), Discount: decimal.Zero, Stock: 39,
			CategoriesID: 1, SupplierID: 1,
			Categories: cats[1], Supplier: sups[1],
		},
		models.Product{
			ID: 2, Name: "Ikura", Description: "Salmon roe",
			Price: decimal.NewFromInt(31), Discount: decimal.NewFromFloat(0.1), Stock: 31,
			CategoriesID: 3, SupplierID: 2,
			Categories: cats[3], Supplier: sups[2],
		},
	)

	s.Employees.seed(
		models.Employee{ID: 1, FirstName: "Nancy", LastName: "Davolio", Email: "nancy@shop.example", Address: "507 20th Ave E, Seattle", PhoneNumber: "206-555-9857", Birthday: "1988-12-08"},
	)

	s.Customers.seed(
		models.Customer{ID: 1, FirstName: "Maria", LastName: "Anders", Email: "maria@alfki.example", Address: "Obere Str 57, Berlin", PhoneNumber: "030-0074321", Birthday: "1990-03-14"},
	)

	s.Orders.seed(
		models.Order{
			ID: 1, CreatedDate: "2026-08-01", ShippedDate: "2026-08-05",
			Status: "SHIPPED", Description: "First demo order",
			ShippingAddress: "Obere Str 57", ShippingCity: "Berlin",
			PaymentType: "CREDIT_CARD", CustomerID: 1, EmployeeID: 1,
			OrderDetails: []models.OrderDetail{
				{OrderID: 1, ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(18), Discount: decimal.Zero},
			},
		},
	)
}
