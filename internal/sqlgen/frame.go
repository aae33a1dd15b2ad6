package sqlgen

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// StaticFrame is a Frame backed by two parallel slices.
type StaticFrame struct {
	Names []string
	Types []string
}

func (f StaticFrame) Columns() []string { return f.Names }

func (f StaticFrame) DTypes() []string { return f.Types }

// InferFrame builds a Frame from the exported fields of a struct value.
// Column names come from the `db` tag, falling back to the snake-cased field name;
// a `db:"-"` tag skips the field. Types are the Go kind names (int64, string, float64...).
func InferFrame(v any) (Frame, error) {
	typ := reflect.TypeOf(v)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: cannot infer columns from %T", ErrInvalidSchema, v)
	}

	var frame StaticFrame
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("db")
		if name == "-" {
			continue
		}
		if name == "" {
			name = snakeCase(field.Name)
		}

		fieldType := field.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}

		frame.Names = append(frame.Names, name)
		frame.Types = append(frame.Types, fieldType.Kind().String())
	}

	return frame, nil
}

func snakeCase(name string) string {
	var sb strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before an upper-case rune that starts a new word: "RouteID" -> "route_id".
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
