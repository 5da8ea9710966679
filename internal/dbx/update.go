package dbx

import (
	"fmt"
	"strings"
)

// UpdateByID builds "UPDATE table SET c1 = $1, ... WHERE id = $n RETURNING ..."
// for the given columns. Column names must come from a trusted whitelist;
// only values are passed as arguments.
func UpdateByID(table string, columns []string, values []any, id string, returning string) (string, []any) {
	sets := make([]string, len(columns))
	for i, c := range columns {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	args := make([]any, 0, len(values)+1)
	args = append(args, values...)
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(sets, ", "), len(args), returning)

	return query, args
}
