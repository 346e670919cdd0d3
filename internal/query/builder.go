package query

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Builder assembles a parameterized SQL predicate from optional filters.
// Placeholders are numbered positionally ($1, $2, ...) in the order the
// filters are added, so the index of a new placeholder is always derived
// from the current parameter count. The same predicate and parameter list
// serve both the data query and its matching COUNT query.
type Builder struct {
	conditions []string
	args       []any
}

// In adds a membership condition against a comma-separated list of
// values. An empty input adds nothing.
func (b *Builder) In(column, csv string) {
	if csv == "" {
		return
	}
	b.conditions = append(b.conditions, fmt.Sprintf("%s = ANY($%d)", column, len(b.args)+1))
	b.args = append(b.args, pq.Array(strings.Split(csv, ",")))
}

// AtLeast adds an inclusive lower bound. An empty value adds nothing.
func (b *Builder) AtLeast(column, value string) {
	if value == "" {
		return
	}
	b.conditions = append(b.conditions, fmt.Sprintf("%s >= $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
}

// AtMost adds an inclusive upper bound. An empty value adds nothing.
func (b *Builder) AtMost(column, value string) {
	if value == "" {
		return
	}
	b.conditions = append(b.conditions, fmt.Sprintf("%s <= $%d", column, len(b.args)+1))
	b.args = append(b.args, value)
}

// Where returns the assembled predicate with a leading " WHERE ", or the
// empty string when no filter was added.
func (b *Builder) Where() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conditions, " AND ")
}

// Args returns a copy of the filter parameters in placeholder order.
// This is the full parameter list for the COUNT query.
func (b *Builder) Args() []any {
	return append([]any(nil), b.args...)
}

// Paginate returns a LIMIT/OFFSET clause whose placeholders continue the
// filter numbering, together with the complete parameter list for the
// data query. Non-positive page and limit values are clamped to the
// defaults so the computed offset is never negative.
func (b *Builder) Paginate(page, limit int) (string, []any) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	clause := fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)+1, len(b.args)+2)
	args := append(b.Args(), limit, (page-1)*limit)
	return clause, args
}

// OrderBy returns an ORDER BY clause for the given column, ascending only
// on an explicit "asc" and descending otherwise. The direction token is
// generated here, never taken verbatim from the request.
func OrderBy(column, dir string) string {
	if strings.EqualFold(dir, "asc") {
		return " ORDER BY " + column + " ASC"
	}
	return " ORDER BY " + column + " DESC"
}
