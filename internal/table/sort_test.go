package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompareValues(t *testing.T) {
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	tests := []struct {
		name string
		a, b any
		dir  Direction
		want int
	}{
		{"both nil", nil, nil, Asc, 0},
		{"nil last asc", nil, "a", Asc, 1},
		{"nil last desc", nil, "a", Desc, 1},
		{"defined before nil desc", "a", nil, Desc, -1},
		{"strings asc", "alpha", "beta", Asc, -1},
		{"strings desc", "alpha", "beta", Desc, 1},
		{"string case folds", "a", "B", Asc, -1},
		{"ints", 3, 10, Asc, -1},
		{"mixed numeric widths", int64(5), 5.0, Asc, 0},
		{"floats desc", 1.5, 0.5, Desc, -1},
		{"times", earlier, later, Asc, -1},
		{"times desc", earlier, later, Desc, 1},
		{"bools false first", false, true, Asc, -1},
		{"mixed types fall back to text", 10, "2", Asc, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compareValues(tt.a, tt.b, tt.dir)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortRowsDoesNotMutateInput(t *testing.T) {
	data := []testRow{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}
	out := sortRows(data, "name", Asc)

	assert.Equal(t, 2, data[0].ID, "input order must survive")
	assert.Equal(t, 1, out[0].ID)
}

func TestDirectionFlip(t *testing.T) {
	assert.Equal(t, Desc, Asc.flip())
	assert.Equal(t, Asc, Desc.flip())
}
