package repository

// ListParams is the one-page window a list endpoint asks a repository for.
// SortKey is the table column key as exposed to the client; adapters map it
// to a real column and ignore keys they do not recognize.
type ListParams struct {
	Page     int
	PerPage  int
	SortKey  string
	SortDesc bool
}

// Offset returns the row offset of the first item of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}
