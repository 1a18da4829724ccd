// Package crud is the generic entity CRUD pattern behind every back-office
// screen: one Page controller owning the in-memory collection, one Form
// controller owning the draft, and a table renderer — parameterized by an
// entity Descriptor and instantiated once per entity.
package crud

// Record is implemented by entity records carrying a server-assigned id.
type Record interface {
	RecordID() int
}

// Column describes one table column for an entity.
type Column[R Record] struct {
	Header string
	Value  func(R) string
}

// Descriptor parameterizes the generic pattern for one entity: its display
// name, its collection endpoint, the table layout, and the record→draft
// projection used when a row is opened for editing.
type Descriptor[R Record, D any] struct {
	// Name is the singular display name, e.g. "Category".
	Name string
	// Path is the collection endpoint, e.g. "/online-shop/categories".
	Path string
	// Columns define the list view.
	Columns []Column[R]
	// ToDraft projects a record into an editable draft (drops the id and any
	// server-maintained snapshot fields).
	ToDraft func(R) D
}
