package models

import "github.com/shopspring/decimal"

// Product is a catalogue item. The server embeds snapshots of the referenced
// category and supplier in its responses; they are read-only on the client
// and never part of the draft.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	Stock        int             `json:"stock"`
	CategoriesID int             `json:"categoriesId"`
	SupplierID   int             `json:"supplierId"`
	Categories   Category        `json:"categories"`
	Supplier     Supplier        `json:"supplier"`
}

func (p Product) RecordID() int { return p.ID }

// ProductDraft is the editable form input for a product. A zero price,
// discount, or stock is structurally valid; the schema does not carry
// business range rules.
type ProductDraft struct {
	Name         string          `json:"name"         validate:"required"`
	Description  string          `json:"description"  validate:"required"`
	Price        decimal.Decimal `json:"price"        validate:"required,numeric"`
	Discount     decimal.Decimal `json:"discount"     validate:"required,numeric"`
	Stock        int             `json:"stock"        validate:"required,integer"`
	CategoriesID int             `json:"categoriesId" validate:"required,integer"`
	SupplierID   int             `json:"supplierId"   validate:"required,integer"`
}
