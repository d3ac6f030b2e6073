package postgres

import (
	"fmt"

	"github.com/user/extraction-console/internal/repository"
)

// orderClause builds an ORDER BY fragment from list params. Sort keys are
// mapped through a per-table whitelist; unknown keys fall back to the default
// column so client input never reaches the SQL text directly.
func orderClause(params repository.ListParams, whitelist map[string]string, fallback string) string {
	column, ok := whitelist[params.SortKey]
	if !ok {
		column = fallback
	}
	direction := "ASC"
	if params.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, direction)
}
