package table

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Alignment controls horizontal alignment of a column's header and cells.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// DefaultWidth is the grid track used for columns that do not specify one.
const DefaultWidth = "1fr"

// Column describes one grid column: which field it shows, how the header is
// labelled, and optionally how cells are rendered.
//
// Key must address a property path resolvable on each row (struct field name,
// json tag, or map key; nested paths use dots) unless a custom Render is
// supplied, in which case Key is only an identity label used for sort routing.
type Column[T any] struct {
	Key      string                        `json:"key"`
	Label    string                        `json:"label"`
	Render   func(row T, index int) string `json:"-"`
	Sortable bool                          `json:"sortable"`
	Width    string                        `json:"width,omitempty"`
	Align    Alignment                     `json:"align,omitempty"`
}

func (c Column[T]) width() string {
	if c.Width == "" {
		return DefaultWidth
	}
	return c.Width
}

func (c Column[T]) align() Alignment {
	if c.Align == "" {
		return AlignLeft
	}
	return c.Align
}

// cell renders one cell. Without a custom renderer the value is resolved from
// the row by the column key; an unresolvable key renders as an empty cell.
func (c Column[T]) cell(row T, index int) string {
	if c.Render != nil {
		return c.Render(row, index)
	}
	return formatValue(resolvePath(row, c.Key))
}

// resolvePath walks a dot-separated property path over structs, pointers, and
// string-keyed maps. Struct segments match the exact field name first, then a
// case-insensitive field name, then the json tag, then the snake_case form of
// the field name. It returns nil whenever the path cannot be resolved.
func resolvePath(row any, path string) any {
	if path == "" {
		return nil
	}
	v := reflect.ValueOf(row)
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
		switch v.Kind() {
		case reflect.Struct:
			f := structField(v, segment)
			if !f.IsValid() {
				return nil
			}
			v = f
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return nil
			}
			v = v.MapIndex(reflect.ValueOf(segment))
			if !v.IsValid() {
				return nil
			}
		default:
			return nil
		}
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

func structField(v reflect.Value, name string) reflect.Value {
	t := v.Type()
	if _, ok := t.FieldByName(name); ok {
		return v.FieldByName(name)
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if strings.EqualFold(f.Name, name) {
			return v.Field(i)
		}
		tag := f.Tag.Get("json")
		if tag != "" {
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag == name {
				return v.Field(i)
			}
		}
		if snakeCase(f.Name) == name {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && name[i-1] >= 'a' && name[i-1] <= 'z' {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// formatValue produces the default cell text for a resolved value.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.RFC3339)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case error:
		return val.Error()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	}
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
