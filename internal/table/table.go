// Package table implements the generic data table used by every list view in
// the console. One component renders rows from column definitions, resolves
// which of two pagination strategies is active, and owns local sort state when
// the caller does not sort server-side.
//
// The component performs no I/O. In server mode the caller supplies exactly
// one page of rows and the table only renders and relays navigation intent; in
// client mode the table sorts and slices the full collection itself.
package table

// Mode selects the pagination strategy. The flag is explicit by contract:
// the table never infers the mode from the shape of the data.
type Mode string

const (
	ModeClient Mode = "client"
	ModeServer Mode = "server"
)

// DefaultPerPage is the client-mode page size used when no pagination
// descriptor is supplied.
const DefaultPerPage = 10

// Pagination describes the pagination contract between table and caller.
//
// In server mode the data passed to the table is assumed to already be the
// current page's slice and Page, PerPage, Total, and TotalPages are used
// verbatim for display math. In client mode the descriptor only seeds the
// table's local page state; totals are computed from the data.
type Pagination struct {
	Page            int               `json:"page"`
	PerPage         int               `json:"per_page"`
	Total           int               `json:"total"`
	TotalPages      int               `json:"total_pages"`
	Mode            Mode              `json:"mode"`
	OnPageChange    func(page int)    `json:"-"`
	OnPerPageChange func(perPage int) `json:"-"`
}

// EmptyState is rendered when the effective row count is zero and neither the
// loading nor the error state applies.
type EmptyState struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Props is everything a caller supplies to a table instance. After a callback
// fires, the caller is expected to re-supply fresh props (typically after a
// re-fetch); the table holds no reference to stale data beyond the last
// SetProps call.
type Props[T any] struct {
	Data       []T
	Columns    []Column[T]
	Pagination *Pagination
	Loading    bool
	Error      string
	Empty      *EmptyState
	Actions    func(row T, index int) string
	// OnSort, when set, delegates sorting to the caller: the table tracks
	// and forwards sort intent but never reorders data itself.
	OnSort func(key string, dir Direction)
}

// Table is one mounted table instance. Sort and client-mode pagination state
// are scoped to the instance; concurrent tables on the same page do not share
// anything.
type Table[T any] struct {
	props   Props[T]
	sort    *SortState
	page    int
	perPage int
}

// New creates a table from the given props. When a client-mode descriptor is
// supplied, its Page and PerPage seed the local pagination state.
func New[T any](props Props[T]) *Table[T] {
	t := &Table[T]{
		props:   props,
		page:    1,
		perPage: DefaultPerPage,
	}
	if p := props.Pagination; p != nil && t.mode() == ModeClient {
		if p.Page >= 1 {
			t.page = p.Page
		}
		if p.PerPage >= 1 {
			t.perPage = p.PerPage
		}
	}
	return t
}

// SetProps replaces the caller-supplied props, preserving local sort and
// pagination state across the re-render.
func (t *Table[T]) SetProps(props Props[T]) {
	t.props = props
}

// SortState returns a copy of the active sort state, or nil when no sortable
// header has been clicked yet.
func (t *Table[T]) SortState() *SortState {
	if t.sort == nil {
		return nil
	}
	s := *t.sort
	return &s
}

// SetSortState restores sort state, e.g. when a request/response cycle mounts
// a fresh instance per render and the active sort arrives with the request.
// Unknown and non-sortable keys are ignored.
func (t *Table[T]) SetSortState(s *SortState) {
	if s == nil {
		t.sort = nil
		return
	}
	col, ok := t.column(s.Key)
	if !ok || !col.Sortable {
		return
	}
	copied := *s
	if copied.Direction != Desc {
		copied.Direction = Asc
	}
	t.sort = &copied
}

// ClickHeader handles a column-header click. Clicking a non-sortable or
// unknown column is a no-op. A non-active sortable column always starts at
// asc; the active column flips direction. With OnSort set, the table only
// tracks and forwards the intent and leaves the data untouched.
func (t *Table[T]) ClickHeader(key string) {
	col, ok := t.column(key)
	if !ok || !col.Sortable {
		return
	}
	if t.sort != nil && t.sort.Key == key {
		t.sort = &SortState{Key: key, Direction: t.sort.Direction.flip()}
	} else {
		t.sort = &SortState{Key: key, Direction: Asc}
	}
	if t.props.OnSort != nil {
		t.props.OnSort(t.sort.Key, t.sort.Direction)
	}
}

// Previous navigates one page back. At page 1 it is a no-op; the rendered
// control is disabled there as well.
func (t *Table[T]) Previous() {
	t.GoToPage(t.currentPage() - 1)
}

// Next navigates one page forward, bounded by the last known page.
func (t *Table[T]) Next() {
	t.GoToPage(t.currentPage() + 1)
}

// GoToPage navigates to the given page. Requests outside [1, totalPages] are
// ignored, mirroring the disabled boundary controls.
func (t *Table[T]) GoToPage(page int) {
	if page < 1 || page > t.totalPages() {
		return
	}
	if t.mode() == ModeServer {
		if t.props.Pagination.OnPageChange != nil {
			t.props.Pagination.OnPageChange(page)
		}
		return
	}
	t.page = page
	if p := t.props.Pagination; p != nil && p.OnPageChange != nil {
		p.OnPageChange(page)
	}
}

// SetPerPage changes the page size. In client mode the local page resets to 1
// so the viewport never shows an out-of-range page.
func (t *Table[T]) SetPerPage(perPage int) {
	if perPage < 1 {
		return
	}
	if t.mode() == ModeServer {
		if t.props.Pagination.OnPerPageChange != nil {
			t.props.Pagination.OnPerPageChange(perPage)
		}
		return
	}
	t.perPage = perPage
	t.page = 1
	if p := t.props.Pagination; p != nil && p.OnPerPageChange != nil {
		p.OnPerPageChange(perPage)
	}
}

func (t *Table[T]) mode() Mode {
	if t.props.Pagination != nil && t.props.Pagination.Mode == ModeServer {
		return ModeServer
	}
	return ModeClient
}

func (t *Table[T]) column(key string) (Column[T], bool) {
	for _, c := range t.props.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (t *Table[T]) currentPage() int {
	if t.mode() == ModeServer {
		return t.props.Pagination.Page
	}
	return t.page
}

func (t *Table[T]) currentPerPage() int {
	if t.mode() == ModeServer {
		return t.props.Pagination.PerPage
	}
	return t.perPage
}

func (t *Table[T]) totalItems() int {
	if t.mode() == ModeServer {
		return t.props.Pagination.Total
	}
	return len(t.props.Data)
}

func (t *Table[T]) totalPages() int {
	if t.mode() == ModeServer {
		return t.props.Pagination.TotalPages
	}
	if t.perPage < 1 {
		return 0
	}
	return (len(t.props.Data) + t.perPage - 1) / t.perPage
}

// effectiveRows resolves the rows the current render shows: in client mode
// the locally sorted data sliced to the current page, in server mode the
// caller-supplied page untouched. The second return value is the index of the
// first row within the logical collection.
func (t *Table[T]) effectiveRows() ([]T, int) {
	if t.mode() == ModeServer {
		return t.props.Data, (t.props.Pagination.Page - 1) * t.props.Pagination.PerPage
	}
	rows := t.props.Data
	if t.sort != nil && t.props.OnSort == nil {
		rows = sortRows(rows, t.sort.Key, t.sort.Direction)
	}
	start := (t.page - 1) * t.perPage
	if start >= len(rows) {
		return nil, start
	}
	end := start + t.perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], start
}
