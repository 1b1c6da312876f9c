package clarg

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Bind copies parsed values into the struct pointed to by dst.
//
// Each exported field binds to the argument named by its `arg` tag, or to the
// field name with a lowercase first letter when untagged. `arg:"-"` skips the
// field. Fields whose argument has no value are left untouched. Conversion
// failures for all fields are returned together as a *BindError.
func Bind(res *Result, dst any) error {
	if res == nil {
		return fmt.Errorf("result is nil")
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil pointer to struct, got %T", dst)
	}
	v = v.Elem()
	t := v.Type()

	var fieldErrors []FieldError
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, skip := parseArgTag(field)
		if skip {
			continue
		}

		value, ok := res.Values[name]
		if !ok {
			continue
		}

		if err := assignValue(v.Field(i), value); err != nil {
			code := ErrCodeInvalidType
			if errors.Is(err, errUnsupportedKind) {
				code = ErrCodeUnsupported
			}
			fieldErrors = append(fieldErrors, FieldError{
				FieldPath: field.Name,
				Code:      code,
				Message:   fmt.Sprintf("argument %q: %v", name, err),
			})
		}
	}

	if len(fieldErrors) > 0 {
		return &BindError{FieldErrors: fieldErrors}
	}
	return nil
}

// parseArgTag returns the argument name for a field and whether to skip it.
func parseArgTag(field reflect.StructField) (string, bool) {
	tag := strings.TrimSpace(field.Tag.Get("arg"))
	switch tag {
	case "-":
		return "", true
	case "":
		return strings.ToLower(field.Name[:1]) + field.Name[1:], false
	default:
		return tag, false
	}
}

var errUnsupportedKind = errors.New("unsupported field type")

var durationType = reflect.TypeOf(time.Duration(0))

// assignValue converts a parsed value into the field's type and stores it.
func assignValue(field reflect.Value, value any) error {
	if value == nil {
		return nil
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return nil
	}

	if field.Kind() == reflect.Slice {
		return assignSlice(field, value)
	}

	str := fmt.Sprint(value)
	if s, ok := value.(string); ok {
		str = s
	}

	if field.Type() == durationType {
		d, err := time.ParseDuration(str)
		if err != nil {
			return fmt.Errorf("invalid duration %q", str)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			b = isTruthy(value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", str)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", str)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float %q", str)
		}
		field.SetFloat(f)
	default:
		return errUnsupportedKind
	}
	return nil
}

// assignSlice binds a list value (or a scalar, as one element) to a slice field.
func assignSlice(field reflect.Value, value any) error {
	elems, ok := value.([]any)
	if !ok {
		elems = []any{value}
	}

	out := reflect.MakeSlice(field.Type(), len(elems), len(elems))
	for i, e := range elems {
		if err := assignValue(out.Index(i), e); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	field.Set(out)
	return nil
}
