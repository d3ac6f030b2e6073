package tableview

import (
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/extraction-console/internal/table"
	"github.com/user/extraction-console/pkg/metrics"
)

func TestMain(m *testing.M) {
	metrics.Init()
	os.Exit(m.Run())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Params
	}{
		{"defaults", "", Params{Page: 1, PerPage: 10}},
		{"explicit", "page=3&per_page=25&sort=name&dir=desc",
			Params{Page: 3, PerPage: 25, SortKey: "name", SortDesc: true}},
		{"asc dir", "sort=name&dir=asc", Params{Page: 1, PerPage: 10, SortKey: "name"}},
		{"clamps per_page", "per_page=5000", Params{Page: 1, PerPage: 100}},
		{"rejects zero page", "page=0", Params{Page: 1, PerPage: 10}},
		{"rejects garbage", "page=abc&per_page=-2", Params{Page: 1, PerPage: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/things?"+tt.query, nil)
			assert.Equal(t, tt.want, Parse(r, 10, 100))
		})
	}
}

func TestListParams(t *testing.T) {
	p := Params{Page: 2, PerPage: 20, SortKey: "size", SortDesc: true}
	lp := p.ListParams()
	assert.Equal(t, 2, lp.Page)
	assert.Equal(t, 20, lp.PerPage)
	assert.Equal(t, "size", lp.SortKey)
	assert.True(t, lp.SortDesc)
	assert.Equal(t, 20, lp.Offset())
}

type item struct {
	Name string `json:"name"`
}

func itemColumns() []table.Column[item] {
	return []table.Column[item]{{Key: "name", Label: "Name", Sortable: true}}
}

func TestServerViewUsesDescriptorVerbatim(t *testing.T) {
	items := []item{{Name: "zeta"}, {Name: "alpha"}}
	p := Params{Page: 2, PerPage: 2, SortKey: "name", SortDesc: true}

	view := Server(itemColumns(), items, 5, p, nil)
	require.Equal(t, table.StatePopulated, view.State)

	// Rows come back in repository order, untouched.
	assert.Equal(t, "zeta", view.Rows[0].Cells[0])
	assert.Equal(t, "alpha", view.Rows[1].Cells[0])

	assert.Equal(t, "Showing 3 to 4 of 5 items", view.Caption)
	require.NotNil(t, view.Pager)
	assert.Equal(t, 3, view.Pager.TotalPages)

	require.NotNil(t, view.Sort)
	assert.Equal(t, "name", view.Sort.Key)
	assert.Equal(t, table.Desc, view.Sort.Direction)
}

func TestClientViewSortsAndSlices(t *testing.T) {
	data := make([]item, 0, 5)
	for _, n := range []string{"d", "b", "e", "a", "c"} {
		data = append(data, item{Name: n})
	}
	p := Params{Page: 2, PerPage: 2, SortKey: "name"}

	view := Client(itemColumns(), data, p, nil)
	require.Equal(t, table.StatePopulated, view.State)
	require.Len(t, view.Rows, 2)
	assert.Equal(t, "c", view.Rows[0].Cells[0])
	assert.Equal(t, "d", view.Rows[1].Cells[0])
	assert.Equal(t, "Showing 3 to 4 of 5 items", view.Caption)
	require.NotNil(t, view.Pager)
	assert.Equal(t, 3, view.Pager.TotalPages)
}

func TestEmptyStateFlowsThrough(t *testing.T) {
	empty := &table.EmptyState{Title: "Nothing", Description: "No rows."}

	view := Server(itemColumns(), nil, 0, Params{Page: 1, PerPage: 10}, empty)
	require.Equal(t, table.StateEmpty, view.State)
	assert.Equal(t, "Nothing", view.Empty.Title)

	view = Client(itemColumns(), nil, Params{Page: 1, PerPage: 10}, empty)
	assert.Equal(t, table.StateEmpty, view.State)
}

func TestServerViewIgnoresUnknownSortKey(t *testing.T) {
	view := Server(itemColumns(), []item{{Name: "a"}}, 1,
		Params{Page: 1, PerPage: 10, SortKey: "bogus"}, nil)
	assert.Nil(t, view.Sort)
}

func TestClientViewManyPagesCaption(t *testing.T) {
	data := make([]item, 0, 21)
	for i := 0; i < 21; i++ {
		data = append(data, item{Name: fmt.Sprintf("row-%02d", i)})
	}
	view := Client(itemColumns(), data, Params{Page: 3, PerPage: 10}, nil)
	assert.Equal(t, "Showing 21 to 21 of 21 items", view.Caption)
	assert.True(t, view.Pager.NextDisabled)
}
