package orderworks

import (
	"strings"

	"github.com/jackc/pgx/v5"

	errorsx "github.com/stockworks/stockworks-api/internal/errors"
)

// orderAliases lists the aliases tried, in priority order, when choosing the
// sort keys. Every matched alias becomes a descending sort key; "id" is the
// deterministic fallback.
var orderAliases = []string{"makerworksCreatedAt", "createdAt", "id"}

// quoteIdentifier quotes a single identifier, escaping embedded quotes, so
// reserved words and mixed-case names are tolerated.
func quoteIdentifier(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}

// splitTableIdentifier splits an optionally schema-qualified table name.
func splitTableIdentifier(ident string) (schema, table string) {
	if i := strings.IndexByte(ident, '.'); i >= 0 {
		return ident[:i], ident[i+1:]
	}
	return "", ident
}

// quoteTable quotes an optionally schema-qualified table name.
func quoteTable(schema, table string) string {
	if schema != "" {
		return pgx.Identifier{schema, table}.Sanitize()
	}
	return quoteIdentifier(table)
}

// buildJobsQuery assembles the read-only jobs projection against whatever
// columns the shared table currently has. Optional fields missing from the
// schema are projected as NULL so the output shape stays stable; a missing
// required field fails the build. The query takes one bound parameter, the
// row limit.
func buildJobsQuery(available []string) (string, error) {
	selectParts := make([]string, 0, len(jobColumnMappings))
	columnExprs := make(map[string]string, len(jobColumnMappings))

	for _, mapping := range jobColumnMappings {
		aliasSQL := quoteIdentifier(mapping.Alias)
		matched, ok := resolveColumn(available, mapping.Names)
		if !ok {
			if mapping.Required {
				return "", errorsx.Unavailablef(
					"OrderWorks table %s is missing required column(s): %s",
					jobTable, strings.Join(mapping.Names, ", "),
				)
			}
			selectParts = append(selectParts, "NULL AS "+aliasSQL)
			continue
		}
		expr := quoteIdentifier(matched)
		selectParts = append(selectParts, expr+" AS "+aliasSQL)
		columnExprs[mapping.Alias] = expr
	}

	var orderParts []string
	for _, alias := range orderAliases {
		if expr, ok := columnExprs[alias]; ok {
			orderParts = append(orderParts, expr+" DESC")
		}
	}
	if len(orderParts) == 0 {
		orderParts = append(orderParts, quoteIdentifier("id")+" DESC")
	}

	schema, table := splitTableIdentifier(jobTable)
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(selectParts, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(quoteTable(schema, table))
	sb.WriteString(" ORDER BY ")
	sb.WriteString(strings.Join(orderParts, ", "))
	sb.WriteString(" LIMIT $1")
	return sb.String(), nil
}
