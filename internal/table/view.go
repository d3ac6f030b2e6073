package table

import (
	"fmt"
	"strings"
)

// State names which single region of the table is visible. Precedence is
// loading > error > empty > populated.
type State string

const (
	StateLoading   State = "loading"
	StateError     State = "error"
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
)

// actionsWidth is the fixed grid track appended when an actions renderer is
// supplied.
const actionsWidth = "80px"

// HeaderCell is one rendered header: its column identity plus the active sort
// indicator.
type HeaderCell struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Sortable  bool      `json:"sortable"`
	Align     Alignment `json:"align"`
	Active    bool      `json:"active"`
	Direction Direction `json:"direction,omitempty"`
}

// Row is one rendered grid row.
type Row struct {
	Cells   []string `json:"cells"`
	Actions string   `json:"actions,omitempty"`
}

// Pager is the rendered pagination control. It is present only when more than
// one page exists; Previous/Next are disabled at the bounds so navigation can
// never leave the known page range.
type Pager struct {
	Page         int  `json:"page"`
	PerPage      int  `json:"per_page"`
	TotalPages   int  `json:"total_pages"`
	TotalItems   int  `json:"total_items"`
	PrevDisabled bool `json:"prev_disabled"`
	NextDisabled bool `json:"next_disabled"`
}

// View is one rendered frame of the table. Exactly one of the four states is
// active; fields irrelevant to the active state are zero.
type View struct {
	State        State        `json:"state"`
	Error        string       `json:"error,omitempty"`
	Empty        *EmptyState  `json:"empty,omitempty"`
	GridTemplate string       `json:"grid_template,omitempty"`
	Header       []HeaderCell `json:"header,omitempty"`
	Rows         []Row        `json:"rows,omitempty"`
	Caption      string       `json:"caption,omitempty"`
	Pager        *Pager       `json:"pager,omitempty"`
	Sort         *SortState   `json:"sort,omitempty"`
}

// Render produces the current frame. It is pure with respect to the props:
// server-mode data is never re-sliced or re-sorted, and while loading the
// data is ignored entirely.
func (t *Table[T]) Render() View {
	if t.props.Loading {
		return View{State: StateLoading}
	}
	if t.props.Error != "" {
		return View{State: StateError, Error: t.props.Error}
	}

	rows, offset := t.effectiveRows()
	if len(rows) == 0 && t.props.Empty != nil {
		return View{State: StateEmpty, Empty: t.props.Empty}
	}

	view := View{
		State:        StatePopulated,
		GridTemplate: t.gridTemplate(),
		Header:       t.header(),
		Rows:         make([]Row, 0, len(rows)),
		Caption:      t.caption(),
		Sort:         t.SortState(),
	}
	for i, row := range rows {
		index := offset + i
		r := Row{Cells: make([]string, 0, len(t.props.Columns))}
		for _, col := range t.props.Columns {
			r.Cells = append(r.Cells, col.cell(row, index))
		}
		if t.props.Actions != nil {
			r.Actions = t.props.Actions(row, index)
		}
		view.Rows = append(view.Rows, r)
	}
	if tp := t.totalPages(); tp > 1 {
		page := t.currentPage()
		view.Pager = &Pager{
			Page:         page,
			PerPage:      t.currentPerPage(),
			TotalPages:   tp,
			TotalItems:   t.totalItems(),
			PrevDisabled: page <= 1,
			NextDisabled: page >= tp,
		}
	}
	return view
}

// gridTemplate concatenates the column width tracks in column order, with a
// fixed trailing track only when an actions renderer is present. The same
// template applies to the header and every row, so alignment cannot drift.
func (t *Table[T]) gridTemplate() string {
	tracks := make([]string, 0, len(t.props.Columns)+1)
	for _, col := range t.props.Columns {
		tracks = append(tracks, col.width())
	}
	if t.props.Actions != nil {
		tracks = append(tracks, actionsWidth)
	}
	return strings.Join(tracks, " ")
}

func (t *Table[T]) header() []HeaderCell {
	cells := make([]HeaderCell, 0, len(t.props.Columns))
	for _, col := range t.props.Columns {
		h := HeaderCell{
			Key:      col.Key,
			Label:    col.Label,
			Sortable: col.Sortable,
			Align:    col.align(),
		}
		if t.sort != nil && t.sort.Key == col.Key {
			h.Active = true
			h.Direction = t.sort.Direction
		}
		cells = append(cells, h)
	}
	return cells
}

func (t *Table[T]) caption() string {
	page := t.currentPage()
	perPage := t.currentPerPage()
	total := t.totalItems()
	start := (page-1)*perPage + 1
	end := page * perPage
	if end > total {
		end = total
	}
	if total == 0 {
		start = 0
	}
	return fmt.Sprintf("Showing %d to %d of %d items", start, end, total)
}
