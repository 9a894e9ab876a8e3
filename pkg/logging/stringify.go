package logging

import (
	"fmt"
	"reflect"
	"strings"
)

// stringify maps each item to its logged representation and joins the results
// with single spaces.
func stringify(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = stringifyItem(item)
	}
	return strings.Join(parts, " ")
}

// stringifyItem renders a single logged value. Absent values (nil interfaces
// and nil pointers) render as the literal "nil". Pointer-kinded values render
// their pointee type's name, never the value itself, even when the type has a
// String method. Everything else renders its default fmt representation.
func stringifyItem(item any) string {
	if item == nil {
		return "nil"
	}

	v := reflect.ValueOf(item)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "nil"
		}
		elem := v.Type().Elem()
		if name := elem.Name(); name != "" {
			return name
		}
		return elem.String()
	}

	return fmt.Sprint(item)
}
