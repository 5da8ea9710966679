// Package models defines the records stored in the users, projects and tasks
// tables together with the column rules the repositories enforce.
package models

import (
	"fmt"
	"sort"

	"github.com/dmitrijs2005/projectmanager/internal/common"
)

// Fields is an arbitrary partial update as received from a client.
type Fields map[string]any

// Assignment is one validated "column = value" pair of a partial update.
type Assignment struct {
	Column string
	Value  string
}

// Assignments checks fields against the mutable columns of a table and
// returns them sorted by column name. Unknown or immutable columns yield
// common.ErrorUnknownField, non-string values common.ErrorInvalidValue.
func Assignments(fields Fields, mutable []string) ([]Assignment, error) {
	allowed := make(map[string]bool, len(mutable))
	for _, c := range mutable {
		allowed[c] = true
	}

	out := make([]Assignment, 0, len(fields))
	for col, raw := range fields {
		if !allowed[col] {
			return nil, fmt.Errorf("%w: %q", common.ErrorUnknownField, col)
		}
		v, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: column %q expects a string, got %T", common.ErrorInvalidValue, col, raw)
		}
		out = append(out, Assignment{Column: col, Value: v})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Column < out[j].Column })
	return out, nil
}

func oneOf[T ~string](v T, allowed ...T) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Split returns the columns and values of a as parallel slices.
func Split(a []Assignment) ([]string, []any) {
	cols := make([]string, len(a))
	vals := make([]any, len(a))
	for i, x := range a {
		cols[i] = x.Column
		vals[i] = x.Value
	}
	return cols, vals
}
