// Package tableview bridges HTTP list requests and the table component. Each
// request mounts a fresh table instance, restores the sort state carried in
// the query string, and renders one frame; navigation intent flows back as
// the next request's query parameters instead of in-process callbacks.
package tableview

import (
	"net/http"
	"strconv"

	"github.com/user/extraction-console/internal/repository"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/pkg/metrics"
)

// Params is the table state a list request carries: page, per_page, sort,
// and dir query parameters.
type Params struct {
	Page     int
	PerPage  int
	SortKey  string
	SortDesc bool
}

// Parse reads table params from the query string, clamping per_page to
// [1, maxPerPage] and page to at least 1.
func Parse(r *http.Request, defaultPerPage, maxPerPage int) Params {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return Params{
		Page:     page,
		PerPage:  perPage,
		SortKey:  q.Get("sort"),
		SortDesc: q.Get("dir") == "desc",
	}
}

// ListParams converts the request params into the repository paging window.
func (p Params) ListParams() repository.ListParams {
	return repository.ListParams{
		Page:     p.Page,
		PerPage:  p.PerPage,
		SortKey:  p.SortKey,
		SortDesc: p.SortDesc,
	}
}

func (p Params) sortState() *table.SortState {
	if p.SortKey == "" {
		return nil
	}
	dir := table.Asc
	if p.SortDesc {
		dir = table.Desc
	}
	return &table.SortState{Key: p.SortKey, Direction: dir}
}

// Server renders one already-fetched page through a server-mode table. The
// repository did the sorting and slicing; the table only shapes the view.
func Server[T any](columns []table.Column[T], items []T, total int, p Params, empty *table.EmptyState) table.View {
	totalPages := 0
	if p.PerPage > 0 {
		totalPages = (total + p.PerPage - 1) / p.PerPage
	}
	t := table.New(table.Props[T]{
		Data:    items,
		Columns: columns,
		Pagination: &table.Pagination{
			Page:       p.Page,
			PerPage:    p.PerPage,
			Total:      total,
			TotalPages: totalPages,
			Mode:       table.ModeServer,
		},
		Empty: empty,
	})
	t.SetSortState(p.sortState())
	metrics.TableRendersTotal.WithLabelValues(string(table.ModeServer)).Inc()
	return t.Render()
}

// Client renders a full in-memory collection through a client-mode table,
// which sorts and slices locally.
func Client[T any](columns []table.Column[T], data []T, p Params, empty *table.EmptyState) table.View {
	t := table.New(table.Props[T]{
		Data:    data,
		Columns: columns,
		Pagination: &table.Pagination{
			Page:    p.Page,
			PerPage: p.PerPage,
			Mode:    table.ModeClient,
		},
		Empty: empty,
	})
	t.SetSortState(p.sortState())
	metrics.TableRendersTotal.WithLabelValues(string(table.ModeClient)).Inc()
	return t.Render()
}
