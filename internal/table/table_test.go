package table

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Size  int64      `json:"size"`
	Score *float64   `json:"score"`
	At    *time.Time `json:"at"`
}

func score(v float64) *float64 { return &v }

func testColumns() []Column[testRow] {
	return []Column[testRow]{
		{Key: "id", Label: "ID", Width: "80px"},
		{Key: "name", Label: "Name", Sortable: true},
		{Key: "size", Label: "Size", Sortable: true, Align: AlignRight},
		{Key: "score", Label: "Score", Sortable: true},
	}
}

func rowIDs(t *testing.T, view View) []string {
	t.Helper()
	ids := make([]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		ids = append(ids, r.Cells[0])
	}
	return ids
}

func makeRows(n int) []testRow {
	rows := make([]testRow, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, testRow{ID: i, Name: fmt.Sprintf("doc-%03d", i), Size: int64(i * 100)})
	}
	return rows
}

func TestClientModeSlicing(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(25), Columns: testColumns()})

	view := tbl.Render()
	require.Equal(t, StatePopulated, view.State)
	require.Len(t, view.Rows, 10)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, rowIDs(t, view))
	assert.Equal(t, "Showing 1 to 10 of 25 items", view.Caption)

	require.NotNil(t, view.Pager)
	assert.Equal(t, 3, view.Pager.TotalPages)
	assert.True(t, view.Pager.PrevDisabled)
	assert.False(t, view.Pager.NextDisabled)

	tbl.GoToPage(3)
	view = tbl.Render()
	require.Len(t, view.Rows, 5)
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, rowIDs(t, view))
	assert.Equal(t, "Showing 21 to 25 of 25 items", view.Caption)
	assert.True(t, view.Pager.NextDisabled)
	assert.False(t, view.Pager.PrevDisabled)
}

func TestClientModeDescriptorSeedsLocalState(t *testing.T) {
	tbl := New(Props[testRow]{
		Data:       makeRows(9),
		Columns:    testColumns(),
		Pagination: &Pagination{Page: 2, PerPage: 4, Mode: ModeClient},
	})

	view := tbl.Render()
	assert.Equal(t, []string{"5", "6", "7", "8"}, rowIDs(t, view))
	assert.Equal(t, "Showing 5 to 8 of 9 items", view.Caption)
	assert.Equal(t, 3, view.Pager.TotalPages)
}

func TestServerModePassthrough(t *testing.T) {
	// Deliberately unsorted input: server mode must render it item-for-item.
	data := []testRow{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	var sortCalls []string
	tbl := New(Props[testRow]{
		Data:    data,
		Columns: testColumns(),
		Pagination: &Pagination{
			Page: 2, PerPage: 3, Total: 8, TotalPages: 3, Mode: ModeServer,
		},
		OnSort: func(key string, dir Direction) {
			sortCalls = append(sortCalls, key+":"+string(dir))
		},
	})

	tbl.ClickHeader("name")
	tbl.ClickHeader("name")

	view := tbl.Render()
	assert.Equal(t, []string{"3", "1", "2"}, rowIDs(t, view), "server mode must never reorder data")
	assert.Equal(t, []string{"name:asc", "name:desc"}, sortCalls)

	// Display math comes verbatim from the descriptor.
	assert.Equal(t, "Showing 4 to 6 of 8 items", view.Caption)
	require.NotNil(t, view.Pager)
	assert.Equal(t, 2, view.Pager.Page)
	assert.Equal(t, 3, view.Pager.TotalPages)
	assert.False(t, view.Pager.PrevDisabled)
	assert.False(t, view.Pager.NextDisabled)
}

func TestServerModeNavigationFiresCallback(t *testing.T) {
	var pages []int
	var perPages []int
	tbl := New(Props[testRow]{
		Data:    makeRows(3),
		Columns: testColumns(),
		Pagination: &Pagination{
			Page: 1, PerPage: 3, Total: 9, TotalPages: 3, Mode: ModeServer,
			OnPageChange:    func(p int) { pages = append(pages, p) },
			OnPerPageChange: func(pp int) { perPages = append(perPages, pp) },
		},
	})

	tbl.Next()
	tbl.Previous() // still on descriptor page 1, ignored
	tbl.GoToPage(3)
	tbl.GoToPage(4) // out of range, ignored
	tbl.SetPerPage(25)

	assert.Equal(t, []int{2, 3}, pages)
	assert.Equal(t, []int{25}, perPages)
}

func TestSortToggleLaw(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(3), Columns: testColumns()})

	require.Nil(t, tbl.SortState())

	tbl.ClickHeader("name")
	require.Equal(t, &SortState{Key: "name", Direction: Asc}, tbl.SortState())

	tbl.ClickHeader("name")
	require.Equal(t, &SortState{Key: "name", Direction: Desc}, tbl.SortState())

	// A new column never inherits the previous direction.
	tbl.ClickHeader("size")
	require.Equal(t, &SortState{Key: "size", Direction: Asc}, tbl.SortState())
}

func TestClickNonSortableOrUnknownIsNoop(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(3), Columns: testColumns()})

	tbl.ClickHeader("id") // not sortable
	assert.Nil(t, tbl.SortState())

	tbl.ClickHeader("missing")
	assert.Nil(t, tbl.SortState())
}

func TestSortStability(t *testing.T) {
	data := []testRow{
		{ID: 1, Name: "b"},
		{ID: 2, Name: "a"},
		{ID: 3, Name: "c"},
		{ID: 4, Name: "a"},
		{ID: 5, Name: "b"},
	}
	tbl := New(Props[testRow]{Data: data, Columns: testColumns()})

	tbl.ClickHeader("name")
	assert.Equal(t, []string{"2", "4", "1", "5", "3"}, rowIDs(t, tbl.Render()),
		"ascending ties must keep input order")

	tbl.ClickHeader("name")
	assert.Equal(t, []string{"3", "1", "5", "2", "4"}, rowIDs(t, tbl.Render()),
		"descending ties must keep input order")
}

func TestNilValuesSortLastBothDirections(t *testing.T) {
	data := []testRow{
		{ID: 1, Score: score(0.4)},
		{ID: 2},
		{ID: 3, Score: score(0.9)},
		{ID: 4},
		{ID: 5, Score: score(0.1)},
	}
	tbl := New(Props[testRow]{Data: data, Columns: testColumns()})

	tbl.ClickHeader("score")
	assert.Equal(t, []string{"5", "1", "3", "2", "4"}, rowIDs(t, tbl.Render()))

	tbl.ClickHeader("score")
	assert.Equal(t, []string{"3", "1", "5", "2", "4"}, rowIDs(t, tbl.Render()),
		"nil scores stay last even descending")
}

func TestDelegatedSortNeverSortsLocally(t *testing.T) {
	data := []testRow{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	tbl := New(Props[testRow]{
		Data:    data,
		Columns: testColumns(),
		OnSort:  func(string, Direction) {},
	})

	tbl.ClickHeader("name")
	assert.Equal(t, []string{"2", "1"}, rowIDs(t, tbl.Render()),
		"with OnSort set the caller supplies sorted data")
	require.Equal(t, &SortState{Key: "name", Direction: Asc}, tbl.SortState())
}

func TestStatePrecedence(t *testing.T) {
	props := Props[testRow]{
		Data:    nil,
		Columns: testColumns(),
		Loading: true,
		Error:   "boom",
		Empty:   &EmptyState{Title: "Nothing here", Description: "Add something."},
	}
	tbl := New(props)

	view := tbl.Render()
	assert.Equal(t, StateLoading, view.State)
	assert.Empty(t, view.Error)
	assert.Nil(t, view.Empty)

	props.Loading = false
	tbl.SetProps(props)
	view = tbl.Render()
	assert.Equal(t, StateError, view.State)
	assert.Equal(t, "boom", view.Error)
	assert.Nil(t, view.Empty)

	props.Error = ""
	tbl.SetProps(props)
	view = tbl.Render()
	assert.Equal(t, StateEmpty, view.State)
	require.NotNil(t, view.Empty)
	assert.Equal(t, "Nothing here", view.Empty.Title)

	props.Data = makeRows(1)
	tbl.SetProps(props)
	view = tbl.Render()
	assert.Equal(t, StatePopulated, view.State)
	assert.Nil(t, view.Pager, "single page renders no pager")
}

func TestEmptyStateRequiresEmptyEffectiveRows(t *testing.T) {
	// 4 rows, perPage 2: page 3 is out of range, so the effective slice is
	// empty even though data is not.
	tbl := New(Props[testRow]{
		Data:       makeRows(4),
		Columns:    testColumns(),
		Pagination: &Pagination{Page: 3, PerPage: 2, Mode: ModeClient},
		Empty:      &EmptyState{Title: "empty", Description: "d"},
	})
	assert.Equal(t, StateEmpty, tbl.Render().State)
}

func TestPerPageChangeResetsPage(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(30), Columns: testColumns()})

	tbl.GoToPage(3)
	require.Equal(t, 3, tbl.Render().Pager.Page)

	tbl.SetPerPage(15)
	view := tbl.Render()
	require.NotNil(t, view.Pager)
	assert.Equal(t, 1, view.Pager.Page)
	assert.Equal(t, 15, view.Pager.PerPage)
	assert.Equal(t, 2, view.Pager.TotalPages)
}

func TestPageNavigationBounds(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(15), Columns: testColumns()})

	tbl.Previous()
	assert.Equal(t, 1, tbl.Render().Pager.Page)

	tbl.GoToPage(99)
	assert.Equal(t, 1, tbl.Render().Pager.Page)

	tbl.GoToPage(2)
	tbl.Next() // already last page
	assert.Equal(t, 2, tbl.Render().Pager.Page)
}

func TestGridTemplate(t *testing.T) {
	props := Props[testRow]{Data: makeRows(1), Columns: testColumns()}
	tbl := New(props)
	assert.Equal(t, "80px 1fr 1fr 1fr", tbl.Render().GridTemplate)

	props.Actions = func(row testRow, _ int) string { return "edit" }
	tbl.SetProps(props)
	view := tbl.Render()
	assert.Equal(t, "80px 1fr 1fr 1fr 80px", view.GridTemplate)
	require.Len(t, view.Rows, 1)
	assert.Equal(t, "edit", view.Rows[0].Actions)
	assert.Len(t, view.Rows[0].Cells, 4, "actions never count as a data column")
}

func TestZeroColumns(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(25), Columns: nil})
	view := tbl.Render()
	assert.Equal(t, StatePopulated, view.State)
	require.Len(t, view.Rows, 10)
	assert.Empty(t, view.Rows[0].Cells)
	require.NotNil(t, view.Pager, "pagination stays active with zero columns")
	assert.Equal(t, 3, view.Pager.TotalPages)
}

func TestHeaderSortIndicator(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(2), Columns: testColumns()})
	tbl.ClickHeader("size")

	view := tbl.Render()
	require.Len(t, view.Header, 4)
	for _, hc := range view.Header {
		if hc.Key == "size" {
			assert.True(t, hc.Active)
			assert.Equal(t, Asc, hc.Direction)
		} else {
			assert.False(t, hc.Active)
		}
	}
	assert.Equal(t, AlignRight, view.Header[2].Align)
	assert.Equal(t, AlignLeft, view.Header[0].Align, "alignment defaults to left")
}

func TestMissingKeyRendersEmptyCell(t *testing.T) {
	cols := []Column[testRow]{{Key: "nope", Label: "Nope"}}
	tbl := New(Props[testRow]{Data: makeRows(1), Columns: cols})
	view := tbl.Render()
	assert.Equal(t, "", view.Rows[0].Cells[0])
}

func TestCustomRenderReceivesLogicalIndex(t *testing.T) {
	cols := []Column[testRow]{{
		Key:   "n",
		Label: "#",
		Render: func(_ testRow, index int) string {
			return strconv.Itoa(index + 1)
		},
	}}
	tbl := New(Props[testRow]{Data: makeRows(12), Columns: cols})
	tbl.GoToPage(2)
	view := tbl.Render()
	assert.Equal(t, "11", view.Rows[0].Cells[0],
		"index keeps counting across client-mode pages")
}

// The worked example: three rows, sortable name column, client mode with two
// rows per page.
func TestSortThenPaginateScenario(t *testing.T) {
	data := []testRow{
		{ID: 1, Name: "b"},
		{ID: 2, Name: "a"},
		{ID: 3, Name: "a"},
	}
	tbl := New(Props[testRow]{
		Data:       data,
		Columns:    testColumns(),
		Pagination: &Pagination{Page: 1, PerPage: 2, Mode: ModeClient},
	})

	tbl.ClickHeader("name")

	view := tbl.Render()
	assert.Equal(t, []string{"2", "3"}, rowIDs(t, view))
	assert.Equal(t, "Showing 1 to 2 of 3 items", view.Caption)
	require.NotNil(t, view.Pager)
	assert.Equal(t, 2, view.Pager.TotalPages)

	tbl.Next()
	view = tbl.Render()
	assert.Equal(t, []string{"1"}, rowIDs(t, view))
	assert.Equal(t, "Showing 3 to 3 of 3 items", view.Caption)
	assert.True(t, view.Pager.NextDisabled)
}

func TestLoadingIgnoresData(t *testing.T) {
	tbl := New(Props[testRow]{Data: makeRows(50), Columns: testColumns(), Loading: true})
	view := tbl.Render()
	assert.Equal(t, StateLoading, view.State)
	assert.Empty(t, view.Rows)
	assert.Nil(t, view.Pager)
	assert.Empty(t, view.GridTemplate)
}
