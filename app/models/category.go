package models

// Category is a product grouping referenced by Product.CategoriesID.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c Category) RecordID() int { return c.ID }

// CategoryDraft is the editable form input for a category. Description is the
// one optional field across all entity schemas.
type CategoryDraft struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"nullable"`
}
