// Copyright (C) 2025 the residence-yasmina maintainers
// See root-dir/LICENSE for more information

// Package form decodes url.Values into structs using `form` tags. Nested
// structs are addressed with dotted keys, e.g. "prices.calculator.title".
package form

import (
	"encoding"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout of <input type="date"> values.
const DateLayout = "2006-01-02"

var (
	timeType            = reflect.TypeOf(time.Time{})
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// Unmarshal sets the tagged fields of target from input. Keys without a
// matching field are ignored, as are fields without a value.
func Unmarshal(input url.Values, target any) error {
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &InvalidUnmarshalError{Type: reflect.TypeOf(target)}
	}
	return unmarshalStruct(input, "", val.Elem())
}

func unmarshalStruct(input url.Values, prefix string, v reflect.Value) error {
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("form: cannot decode into %s", v.Type())
	}
	ttype := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := ttype.Field(i)
		fieldName := field.Tag.Get("form")
		if fieldName == "" || fieldName == "-" || !field.IsExported() {
			continue
		}
		key := prefix + fieldName
		fieldVal := v.Field(i)

		if isNested(field.Type) {
			if err := unmarshalStruct(input, key+".", fieldVal); err != nil {
				return err
			}
			continue
		}

		value, exists := input[key]
		if !exists || len(value) == 0 {
			continue
		}
		if err := setField(fieldVal, value); err != nil {
			return &FieldError{Key: key, Err: err}
		}
	}
	return nil
}

func isNested(t reflect.Type) bool {
	if t.Kind() != reflect.Struct || t == timeType {
		return false
	}
	return !reflect.PointerTo(t).Implements(textUnmarshalerType)
}

func setField(fieldVal reflect.Value, value []string) error {
	// NOTE: Take only the first value, slices excepted.
	raw := value[0]

	if fieldVal.Type() == timeType {
		if raw == "" {
			return nil
		}
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return err
		}
		fieldVal.Set(reflect.ValueOf(t))
		return nil
	}
	if fieldVal.CanAddr() {
		if u, ok := fieldVal.Addr().Interface().(encoding.TextUnmarshaler); ok {
			if raw == "" {
				return nil
			}
			return u.UnmarshalText([]byte(raw))
		}
	}

	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(raw)
	case reflect.Bool:
		switch strings.ToLower(raw) {
		case "true", "on", "1":
			fieldVal.SetBool(true)
		default:
			fieldVal.SetBool(false)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, fieldVal.Type().Bits())
		if err != nil {
			return err
		}
		fieldVal.SetInt(n)
	case reflect.Float32, reflect.Float64:
		if raw == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), fieldVal.Type().Bits())
		if err != nil {
			return err
		}
		fieldVal.SetFloat(f)
	case reflect.Slice:
		if fieldVal.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", fieldVal.Type())
		}
		fieldVal.Set(reflect.ValueOf(append([]string(nil), value...)).Convert(fieldVal.Type()))
	default:
		return fmt.Errorf("unsupported type %s", fieldVal.Type())
	}
	return nil
}

// FieldError reports the key whose value could not be decoded.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return "form: field " + strconv.Quote(e.Key) + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "form: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "form: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "form: Unmarshal(nil " + e.Type.String() + ")"
}
