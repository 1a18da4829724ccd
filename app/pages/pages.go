// Package pages instantiates the generic CRUD pattern for each back-office
// entity. Every screen is the same crud.Page; only the descriptor differs.
package pages

import (
	"strconv"
)

func itoa(n int) string { return strconv.Itoa(n) }

// truncate shortens long text cells the way the list screens do.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
