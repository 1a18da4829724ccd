// Package stub runs a self-contained in-memory rendition of the shop API so
// the CLI can be exercised without the real backend. It speaks the same wire
// contract: bare record payloads, {"message": [...]} errors, bearer-token
// auth on every /online-shop route.
package stub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/shopctl/app/models"
	"github.com/shashiranjanraj/shopctl/pkg/logger"
	"github.com/shashiranjanraj/shopctl/pkg/metrics"
	"github.com/shashiranjanraj/shopctl/pkg/middleware"
)

type Server struct {
	store  *Store
	router chi.Router
}

// NewServer builds the stub router around the given store.
func NewServer(store *Store) *Server {
	s := &Server{store: store}

	r := chi.NewRouter()
	r.Use(metrics.Middleware())
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	r.Post("/auth/login", s.handleLogin)
	r.Get("/metrics", metrics.Handler())

	r.Route("/online-shop", func(r chi.Router) {
		r.Use(middleware.Auth)

		(&resource[models.Category, models.CategoryDraft]{tbl: store.Categories}).mount(r, "/categories")
		(&resource[models.Supplier, models.SupplierDraft]{tbl: store.Suppliers}).mount(r, "/suppliers")
		(&resource[models.Product, models.ProductDraft]{
			tbl:      store.Products,
			finalize: s.embedProductRefs,
		}).mount(r, "/products")
		(&resource[models.Employee, models.EmployeeDraft]{tbl: store.Employees}).mount(r, "/employees")
		(&resource[models.Customer, models.CustomerDraft]{tbl: store.Customers}).mount(r, "/customers")
		(&resource[models.Order, models.OrderDraft]{tbl: store.Orders}).mount(r, "/orders")
	})

	s.router = r
	return s
}

// embedProductRefs resolves the category and supplier snapshots a product
// response carries alongside its foreign keys.
func (s *Server) embedProductRefs(p models.Product) (models.Product, error) {
	cat, ok := s.store.Categories.Get(p.CategoriesID)
	if !ok {
		return p, fmt.Errorf("category %d does not exist", p.CategoriesID)
	}
	sup, ok := s.store.Suppliers.Get(p.SupplierID)
	if !ok {
		return p, fmt.Errorf("supplier %d does not exist", p.SupplierID)
	}
	p.Categories = cat
	p.Supplier = sup
	return p, nil
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the stub until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("stub listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
