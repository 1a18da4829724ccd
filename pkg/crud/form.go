package crud

// Form holds the in-progress draft for one entity and tracks whether it edits
// an existing record or creates a new one.
//
// State machine: Create ↔ Edit. Populate switches to Edit keyed by the
// record's id; Reset (also triggered by any successful submit) returns to
// Create with a zero draft and hides the form.
type Form[D any] struct {
	draft   D
	id      int
	editing bool
	visible bool
}

// Populate fills the form from an existing record's draft projection and
// switches to edit mode.
func (f *Form[D]) Populate(id int, draft D) {
	f.draft = draft
	f.id = id
	f.editing = true
	f.visible = true
}

// Reset clears every field to its zero value, switches to create mode, and
// hides the form.
func (f *Form[D]) Reset() {
	var zero D
	f.draft = zero
	f.id = 0
	f.editing = false
	f.visible = false
}

// Show makes the form visible (the "add" button).
func (f *Form[D]) Show() { f.visible = true }

// Visible reports whether the form is on screen.
func (f *Form[D]) Visible() bool { return f.visible }

// Draft returns the current draft values.
func (f *Form[D]) Draft() D { return f.draft }

// SetDraft binds user input to the form.
func (f *Form[D]) SetDraft(d D) {
	f.draft = d
	f.visible = true
}

// Editing returns the selected record id and whether the form is in edit mode.
func (f *Form[D]) Editing() (int, bool) { return f.id, f.editing }
