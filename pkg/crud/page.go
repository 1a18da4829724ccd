package crud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/collection"
	"github.com/shashiranjanraj/shopctl/pkg/logger"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
	"github.com/shashiranjanraj/shopctl/pkg/validate"
)

// Page is the controller for one entity screen. It owns the in-memory
// collection — an advisory mirror of server state, replaced wholesale by Load
// and patched incrementally after each create/update/delete — plus the entity
// form. A Page is confined to a single goroutine; the collection is never
// shared.
type Page[R Record, D any] struct {
	desc   Descriptor[R, D]
	client *api.Client
	notify notify.Notifier
	form   Form[D]
	items  []R
}

// NewPage builds the controller for one entity from its descriptor.
func NewPage[R Record, D any](desc Descriptor[R, D], client *api.Client, n notify.Notifier) *Page[R, D] {
	return &Page[R, D]{desc: desc, client: client, notify: n}
}

// Items returns the current collection in server order.
func (p *Page[R, D]) Items() []R { return p.items }

// Form returns the page's form controller.
func (p *Page[R, D]) Form() *Form[D] { return &p.form }

// Descriptor returns the page's entity descriptor.
func (p *Page[R, D]) Descriptor() Descriptor[R, D] { return p.desc }

// Load fetches the collection and replaces the local one wholesale. On any
// failure the prior collection stays in place and nothing is shown to the
// user beyond a log line.
func (p *Page[R, D]) Load(ctx context.Context) error {
	resp, err := p.client.Get(ctx, p.desc.Path)
	if err != nil {
		logger.Error("page: load failed", "entity", p.desc.Name, "error", err)
		return err
	}
	if !resp.OK() {
		logger.Error("page: load failed", "entity", p.desc.Name, "status", resp.StatusCode)
		return fmt.Errorf("crud: load %s: status %d", p.desc.Name, resp.StatusCode)
	}

	var items []R
	if err := resp.JSON(&items); err != nil {
		logger.Error("page: load decode failed", "entity", p.desc.Name, "error", err)
		return err
	}
	p.items = items
	return nil
}

// Get fetches a single record by id without touching the collection.
func (p *Page[R, D]) Get(ctx context.Context, id int) (R, error) {
	var zero R
	resp, err := p.client.Get(ctx, fmt.Sprintf("%s/%d", p.desc.Path, id))
	if err != nil {
		return zero, err
	}
	if !resp.OK() {
		return zero, fmt.Errorf("crud: get %s %d: %s", p.desc.Name, id, resp.FirstMessage())
	}

	var rec R
	if err := resp.JSON(&rec); err != nil {
		return zero, err
	}
	return rec, nil
}

// Create POSTs the draft. A 201 appends the server's returned record (which
// carries the assigned id) to the collection and fires a success
// notification; anything else fires a failure notification with the server's
// first reported message.
func (p *Page[R, D]) Create(ctx context.Context, draft D) (R, error) {
	var zero R

	resp, err := p.client.Post(ctx, p.desc.Path, draft)
	if err != nil {
		logger.Error("page: create failed", "entity", p.desc.Name, "error", err)
		p.notify.Failure(api.GenericError)
		return zero, err
	}
	if resp.StatusCode != http.StatusCreated {
		msg := resp.FirstMessage()
		p.notify.Failure(msg)
		return zero, fmt.Errorf("crud: create %s: %s", p.desc.Name, msg)
	}

	var rec R
	if err := resp.JSON(&rec); err != nil {
		p.notify.Failure(api.GenericError)
		return zero, err
	}

	p.items = append(p.items, rec)
	p.notify.Success(p.desc.Name + " created")
	return rec, nil
}

// Update PATCHes the record. A 200 replaces the matching collection entry
// with the server's returned representation; when the response body carries
// no record the draft is merged over the client-known entry instead. Entries
// with other ids are untouched.
func (p *Page[R, D]) Update(ctx context.Context, id int, draft D) (R, error) {
	var zero R

	resp, err := p.client.Patch(ctx, fmt.Sprintf("%s/%d", p.desc.Path, id), draft)
	if err != nil {
		logger.Error("page: update failed", "entity", p.desc.Name, "id", id, "error", err)
		p.notify.Failure(api.GenericError)
		return zero, err
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.FirstMessage()
		p.notify.Failure(msg)
		return zero, fmt.Errorf("crud: update %s %d: %s", p.desc.Name, id, msg)
	}

	idx := collection.IndexOf(p.items, func(r R) bool { return r.RecordID() == id })

	var rec R
	if err := resp.JSON(&rec); err != nil || rec.RecordID() == 0 {
		// Server returned no usable body; fall back to a client-side merge of
		// the partial draft over the known record.
		if idx == -1 {
			p.notify.Success(p.desc.Name + " updated")
			return zero, nil
		}
		rec, err = merge(p.items[idx], draft)
		if err != nil {
			p.notify.Failure(api.GenericError)
			return zero, err
		}
	}

	if idx != -1 {
		p.items[idx] = rec
	}
	p.notify.Success(p.desc.Name + " updated")
	return rec, nil
}

// Delete removes the record server-side. A 204 drops the matching entry from
// the collection; any other outcome (including a 404 for an id that no longer
// exists) leaves the collection unchanged and surfaces the server's message.
func (p *Page[R, D]) Delete(ctx context.Context, id int) error {
	resp, err := p.client.Delete(ctx, fmt.Sprintf("%s/%d", p.desc.Path, id))
	if err != nil {
		logger.Error("page: delete failed", "entity", p.desc.Name, "id", id, "error", err)
		p.notify.Failure(api.GenericError)
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		msg := resp.FirstMessage()
		p.notify.Failure(msg)
		return fmt.Errorf("crud: delete %s %d: %s", p.desc.Name, id, msg)
	}

	p.items = collection.Reject(p.items, func(r R) bool { return r.RecordID() == id })
	p.notify.Success(p.desc.Name + " deleted")
	return nil
}

// Edit populates the form from the collection entry with the given id (the
// table row's edit action).
func (p *Page[R, D]) Edit(id int) bool {
	rec, ok := collection.First(p.items, func(r R) bool { return r.RecordID() == id })
	if !ok {
		return false
	}
	p.form.Populate(id, p.desc.ToDraft(rec))
	return true
}

// Submit validates the form's draft and dispatches it: create when no record
// is selected, update otherwise. Validation failures are returned as a
// field→message map and the network is never touched. A successful submit
// resets (and hides) the form; a failed one preserves the draft for retry.
func (p *Page[R, D]) Submit(ctx context.Context) (map[string]string, error) {
	draft := p.form.Draft()
	if errs := validate.Struct(draft); validate.HasErrors(errs) {
		return errs, nil
	}

	if id, editing := p.form.Editing(); editing {
		if _, err := p.Update(ctx, id, draft); err != nil {
			return nil, err
		}
	} else {
		if _, err := p.Create(ctx, draft); err != nil {
			return nil, err
		}
	}

	p.form.Reset()
	return nil, nil
}

// merge overlays the draft's fields onto an existing record via a JSON
// round-trip, mirroring a partial-PATCH result.
func merge[R Record, D any](rec R, draft D) (R, error) {
	var zero R

	base, err := json.Marshal(rec)
	if err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}
	patch, err := json.Marshal(draft)
	if err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(base, &m); err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}
	var p map[string]json.RawMessage
	if err := json.Unmarshal(patch, &p); err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}
	for k, v := range p {
		m[k] = v
	}

	out, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}
	var merged R
	if err := json.Unmarshal(out, &merged); err != nil {
		return zero, fmt.Errorf("crud: merge: %w", err)
	}
	return merged, nil
}
