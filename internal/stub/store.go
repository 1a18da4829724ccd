package stub

import (
	"sync"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/auth"
	"github.com/shashiranjanraj/shopctl/pkg/collection"
)

// table is a mutex-guarded in-memory collection of one record type.
// withID stamps a fresh id onto a record on insert.
type table[R any] struct {
	mu     sync.RWMutex
	rows   map[int]R
	next   int
	id     func(R) int
	withID func(R, int) R
}

func newTable[R any](id func(R) int, withID func(R, int) R) *table[R] {
	return &table[R]{rows: make(map[int]R), next: 1, id: id, withID: withID}
}

// List returns all rows sorted by id.
func (t *table[R]) List() []R {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]R, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, r)
	}
	return collection.SortBy(out, func(a, b R) bool { return t.id(a) < t.id(b) })
}

func (t *table[R]) Get(id int) (R, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	return r, ok
}

// Insert stamps the next id onto r and stores it.
func (t *table[R]) Insert(r R) R {
	t.mu.Lock()
	defer t.mu.Unlock()

	r = t.withID(r, t.next)
	t.rows[t.next] = r
	t.next++
	return r
}

// Update applies fn to the stored row under the write lock. fn receives a
// copy; the returned value replaces the row.
func (t *table[R]) Update(id int, fn func(R) (R, error)) (R, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero R
	cur, ok := t.rows[id]
	if !ok {
		return zero, false, nil
	}
	next, err := fn(cur)
	if err != nil {
		return zero, true, err
	}
	next = t.withID(next, id)
	t.rows[id] = next
	return next, true, nil
}

func (t *table[R]) Delete(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// seed inserts rows without touching their ids, advancing next past the
// highest one. Only used while building the initial dataset.
func (t *table[R]) seed(rows ...R) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range rows {
		id := t.id(r)
		t.rows[id] = r
		if id >= t.next {
			t.next = id + 1
		}
	}
}

// account is a login identity known to the stub.
type account struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Store holds the whole in-memory dataset of the stub server.
type Store struct {
	Categories *table[models.Category]
	Suppliers  *table[models.Supplier]
	Products   *table[models.Product]
	Employees  *table[models.Employee]
	Customers  *table[models.Customer]
	Orders     *table[models.Order]

	mu       sync.RWMutex
	accounts map[string]account
}

// NewStore builds a store pre-seeded with a small demo dataset and the
// default demo account.
func NewStore() *Store {
	s := &Store{
		Categories: newTable(
			func(r models.Category) int { return r.ID },
			func(r models.Category, id int) models.Category { r.ID = id; return r },
		),
		Suppliers: newTable(
			func(r models.Supplier) int { return r.ID },
			func(r models.Supplier, id int) models.Supplier { r.ID = id; return r },
		),
		Products: newTable(
			func(r models.Product) int { return r.ID },
			func(r models.Product, id int) models.Product { r.ID = id; return r },
		),
		Employees: newTable(
			func(r models.Employee) int { return r.ID },
			func(r models.Employee, id int) models.Employee { r.ID = id; return r },
		),
		Customers: newTable(
			func(r models.Customer) int { return r.ID },
			func(r models.Customer, id int) models.Customer { r.ID = id; return r },
		),
		Orders: newTable(
			func(r models.Order) int { return r.ID },
			func(r models.Order, id int) models.Order { r.ID = id; return r },
		),
		accounts: make(map[string]account),
	}
	s.seedDemo()
	return s
}

// Account looks up a login identity by username.
func (s *Store) Account(username string) (account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts[username]
	return a, ok
}

// AddAccount registers a login identity with a bcrypt-hashed password.
func (s *Store) AddAccount(username, name, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[username] = account{Username: username, Name: name, PasswordHash: hash}
	return nil
}
