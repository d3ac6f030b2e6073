package table

import (
	"reflect"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortState is the active sort column and direction. It is nil until the
// first sortable header is clicked and lives only as long as the table
// instance that owns it.
type SortState struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

var collator = collate.New(language.Und)

// sortRows stable-sorts a shallow copy of data by the value at key. Rows whose
// value is nil or unresolvable sort after all rows with defined values, in
// both directions. Ties keep their input order.
func sortRows[T any](data []T, key string, dir Direction) []T {
	out := make([]T, len(data))
	copy(out, data)
	sort.SliceStable(out, func(i, j int) bool {
		return compareValues(resolvePath(out[i], key), resolvePath(out[j], key), dir) < 0
	})
	return out
}

// compareValues orders two resolved sort-key values. The direction negates
// only defined-versus-defined comparisons, so nil values stay last either way.
func compareValues(a, b any, dir Direction) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c := compareDefined(a, b)
	if dir == Desc {
		c = -c
	}
	return c
}

func compareDefined(a, b any) int {
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return collator.CompareString(as, bs)
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	// Mixed or unrecognized types fall back to their textual form.
	return collator.CompareString(formatValue(a), formatValue(b))
}

func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
