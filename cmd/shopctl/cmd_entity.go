package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopctl/app/pages"
	"github.com/shashiranjanraj/shopctl/config"
	"github.com/shashiranjanraj/shopctl/pkg/api"
	"github.com/shashiranjanraj/shopctl/pkg/crud"
	"github.com/shashiranjanraj/shopctl/pkg/notify"
	"github.com/shashiranjanraj/shopctl/pkg/session"
)

// newClient builds an API client backed by the stored session.
func newClient() (*api.Client, error) {
	sess, err := session.Load(config.SessionFile())
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return nil, errors.New("not logged in, run `shopctl login` first")
		}
		return nil, err
	}
	return api.NewClient(config.APIBaseURL(), sess), nil
}

// pageFunc is the constructor shape every entity page exposes.
type pageFunc[R crud.Record, D any] func(*api.Client, notify.Notifier) *crud.Page[R, D]

// entityCommands builds the list/get/create/update/delete/edit subcommand
// set for one entity. Every entity shares the exact same behavior; only the
// page constructor differs.
func entityCommands[R crud.Record, D any](use, plural string, open pageFunc[R, D]) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: "Manage " + plural,
	}

	var draftFile string

	withPage := func(run func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return run(cmd, args, open(client, notify.NewTerminal()))
		}
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all " + plural,
		Args:  cobra.NoArgs,
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			if err := p.Load(cmd.Context()); err != nil {
				return err
			}
			return p.RenderTable(os.Stdout)
		}),
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := p.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(os.Stdout, rec)
		}),
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create from a JSON draft (-f file, or stdin)",
		Args:  cobra.NoArgs,
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			var draft D
			if err := readDraft(draftFile, &draft); err != nil {
				return err
			}

			form := p.Form()
			form.Show()
			form.SetDraft(draft)
			return submit(cmd, p)
		}),
	}

	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update from a JSON draft (-f file, or stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := p.Load(cmd.Context()); err != nil {
				return err
			}
			if !p.Edit(id) {
				return fmt.Errorf("no %s with id %d", use, id)
			}

			// Overlay the provided fields onto the populated draft so a
			// partial file updates only what it names.
			form := p.Form()
			draft := form.Draft()
			if err := readDraft(draftFile, &draft); err != nil {
				return err
			}
			form.SetDraft(draft)
			return submit(cmd, p)
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(1),
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return p.Delete(cmd.Context(), id)
		}),
	}

	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Print the editable draft of a record as JSON",
		Long: "Prints the record's editable fields as a JSON draft. Adjust it and feed\n" +
			"it back with `update <id> -f draft.json`.",
		Args: cobra.ExactArgs(1),
		RunE: withPage(func(cmd *cobra.Command, args []string, p *crud.Page[R, D]) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := p.Load(cmd.Context()); err != nil {
				return err
			}
			if !p.Edit(id) {
				return fmt.Errorf("no %s with id %d", use, id)
			}
			return printJSON(os.Stdout, p.Form().Draft())
		}),
	}

	create.Flags().StringVarP(&draftFile, "file", "f", "", "draft JSON file (default: stdin)")
	update.Flags().StringVarP(&draftFile, "file", "f", "", "draft JSON file (default: stdin)")

	parent.AddCommand(list, get, create, update, del, edit)
	return parent
}

// submit runs the page's form submission and reports validation failures.
func submit[R crud.Record, D any](cmd *cobra.Command, p *crud.Page[R, D]) error {
	errs, err := p.Submit(cmd.Context())
	if len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for f := range errs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f, errs[f])
		}
		return errors.New("draft is invalid")
	}
	return err
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// readDraft decodes a JSON draft from path, or stdin when path is empty
// or "-".
func readDraft(path string, dest interface{}) error {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dest); err != nil {
		return fmt.Errorf("invalid draft JSON: %w", err)
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var (
	categoriesCmd = entityCommands("categories", "categories", pages.Categories)
	suppliersCmd  = entityCommands("suppliers", "suppliers", pages.Suppliers)
	productsCmd   = entityCommands("products", "products", pages.Products)
	employeesCmd  = entityCommands("employees", "employees", pages.Employees)
	customersCmd  = entityCommands("customers", "customers", pages.Customers)
	ordersCmd     = entityCommands("orders", "orders", pages.Orders)
)

// products lookups — the reference data the product form offers.
var productLookupsCmd = &cobra.Command{
	Use:   "lookups",
	Short: "List the categories and suppliers a product can reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		cats, sups, err := pages.ProductLookups(cmd.Context(), client)
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString("Categories:\n")
		for _, c := range cats {
			fmt.Fprintf(&b, "  %d\t%s\n", c.ID, c.Name)
		}
		b.WriteString("Suppliers:\n")
		for _, s := range sups {
			fmt.Fprintf(&b, "  %d\t%s\n", s.ID, s.Name)
		}
		_, err = io.WriteString(os.Stdout, b.String())
		return err
	},
}

func init() {
	productsCmd.AddCommand(productLookupsCmd)
}
