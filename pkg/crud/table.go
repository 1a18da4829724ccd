package crud

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// RenderTable writes the page's collection as an aligned table in array order.
// The leading "#" column is the row position (a display artifact, not a
// stable key — the id column is the durable reference).
func (p *Page[R, D]) RenderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	fmt.Fprint(tw, "#")
	for _, col := range p.desc.Columns {
		fmt.Fprintf(tw, "\t%s", col.Header)
	}
	fmt.Fprintln(tw)

	for i, rec := range p.items {
		fmt.Fprintf(tw, "%d", i+1)
		for _, col := range p.desc.Columns {
			fmt.Fprintf(tw, "\t%s", col.Value(rec))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
