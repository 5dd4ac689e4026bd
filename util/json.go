// util/json.go
// Copyright(c) 2024-2025 meshkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////
// JSON

func UnmarshalJSON[T any](r io.Reader, out *T) error {
	// Unfortunately we need the contents as an array of bytes so that we
	// can issue reasonable errors.
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return UnmarshalJSONBytes(b, out)
}

// UnmarshalJSONBytes unmarshals the bytes into the given type but goes to
// some effort to return useful error messages when the JSON is invalid.
func UnmarshalJSONBytes[T any](b []byte, out *T) error {
	err := json.Unmarshal(b, out)
	if err == nil {
		return nil
	}

	decodeOffset := func(offset int64) (line, char int) {
		line, char = 1, 1
		for i := 0; i < int(offset) && i < len(b); i++ {
			if b[i] == '\n' {
				line++
				char = 1
			} else {
				char++
			}
		}
		return
	}

	switch jerr := err.(type) {
	case *json.SyntaxError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %v", line, char, jerr)

	case *json.UnmarshalTypeError:
		line, char := decodeOffset(jerr.Offset)
		return fmt.Errorf("Error at line %d, character %d: %s value for %s.%s invalid for type %s",
			line, char, jerr.Value, jerr.Struct, jerr.Field, jerr.Type.String())

	default:
		return err
	}
}

// LoadJSONFile reads and type-checks the JSON file at path and unmarshals
// it into out. Problems are reported to e; the returned Boolean is true
// only if out was filled in successfully.
func LoadJSONFile[T any](path string, out *T, e *ErrorLogger) bool {
	e.Push(path)
	defer e.Pop()

	b, err := os.ReadFile(path)
	if err != nil {
		e.Error(err)
		return false
	}

	n := len(e.errors)
	CheckJSON[T](b, e)
	if len(e.errors) > n {
		return false
	}
	if err := UnmarshalJSONBytes(b, out); err != nil {
		e.Error(err)
		return false
	}
	return true
}

///////////////////////////////////////////////////////////////////////////

// CheckJSON checks whether the provided JSON is syntactically valid and
// then typechecks it with respect to the provided type T. Object keys
// that don't match any field of the corresponding struct are reported;
// encoding/json would silently ignore them.
func CheckJSON[T any](contents []byte, e *ErrorLogger) {
	defer e.CheckDepth(e.CurrentDepth())

	var items any
	if err := UnmarshalJSONBytes(contents, &items); err != nil {
		e.Error(err)
		return
	}

	ty := reflect.TypeOf((*T)(nil)).Elem()
	structTypeCache := make(map[reflect.Type]map[string]reflect.Type)
	typeCheckJSON(items, ty, structTypeCache, e)
}

func typeCheckJSON(json any, ty reflect.Type, structTypeCache map[reflect.Type]map[string]reflect.Type, e *ErrorLogger) {
	for ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}

	mismatch := func() {
		e.ErrorString("unexpected %s provided where %s was expected", jsonKind(json), ty)
	}

	switch ty.Kind() {
	case reflect.Array, reflect.Slice:
		array, ok := json.([]any)
		if !ok {
			mismatch()
			return
		}
		if ty.Kind() == reflect.Array && len(array) != ty.Len() {
			e.ErrorString("%d values provided for %s", len(array), ty)
		}
		for i, item := range array {
			e.Push(fmt.Sprintf("[%d]", i))
			typeCheckJSON(item, ty.Elem(), structTypeCache, e)
			e.Pop()
		}

	case reflect.Map:
		m, ok := json.(map[string]any)
		if !ok {
			mismatch()
			return
		}
		for k, v := range m {
			e.Push(k)
			typeCheckJSON(v, ty.Elem(), structTypeCache, e)
			e.Pop()
		}

	case reflect.Struct:
		items, ok := json.(map[string]any)
		if !ok {
			mismatch()
			return
		}

		// For each struct type encountered, structTypeCache holds a
		// map from the JSON name of each struct element to its
		// corresponding reflect.Type to avoid the cost of repeated calls
		// to reflect.VisibleFields.
		types, ok := structTypeCache[ty]
		if !ok {
			types = make(map[string]reflect.Type)
			for _, field := range reflect.VisibleFields(ty) {
				if jtag, ok := field.Tag.Lookup("json"); ok {
					name, _, _ := strings.Cut(jtag, ",")
					types[name] = field.Type
				}
			}
			structTypeCache[ty] = types
		}

		for item, values := range items {
			if ty, ok := types[item]; ok {
				e.Push(item)
				typeCheckJSON(values, ty, structTypeCache, e)
				e.Pop()
			} else {
				e.ErrorString("The entry %q is not an expected JSON object. Is it misspelled?", item)
			}
		}

	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int32, reflect.Int64:
		if _, ok := json.(float64); !ok {
			mismatch()
		}

	case reflect.Bool:
		if _, ok := json.(bool); !ok {
			mismatch()
		}

	case reflect.String:
		if _, ok := json.(string); !ok {
			mismatch()
		}
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
