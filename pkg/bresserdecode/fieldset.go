package bresserdecode

import (
	"fmt"

	"github.com/matthias-bs/bresser-decode/internal/scalar"
)

// FieldSet offers typed helpers on top of the decoded frame.
type FieldSet struct {
	r Result
}

// FieldSet returns a FieldSet wrapper for the result's fields.
func (r Result) FieldSet() FieldSet {
	return FieldSet{r: r}
}

// Map converts the fields to plain Go values for callers that need raw access.
func (fs FieldSet) Map() map[string]any {
	return fs.r.Fields.Map()
}

// Keys returns the field names in wire order.
func (fs FieldSet) Keys() []string {
	return fs.r.Fields.Keys()
}

// Raw returns the stored value without conversions.
func (fs FieldSet) Raw(key string) (scalar.Value, bool) {
	return fs.r.Fields.Get(key)
}

// Float returns the field coerced to float64. Decimal fields are parsed.
func (fs FieldSet) Float(key string) (float64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	switch n := v.(type) {
	case scalar.Float:
		return float64(n), nil
	case scalar.Integer:
		return float64(n), nil
	case scalar.Decimal:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("field %q is not numeric: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// Int returns an integer field.
func (fs FieldSet) Int(key string) (int64, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, fmt.Errorf("field %q missing", key)
	}
	switch n := v.(type) {
	case scalar.Integer:
		return int64(n), nil
	case scalar.Flags:
		return int64(n.Bits()), nil
	default:
		return 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
}

// String returns the field rendered as a string.
func (fs FieldSet) String(key string) (string, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return "", fmt.Errorf("field %q missing", key)
	}
	return v.String(), nil
}

// Flag returns a single flag of a bitmap field.
func (fs FieldSet) Flag(key, flag string) (bool, error) {
	v, ok := fs.Raw(key)
	if !ok {
		return false, fmt.Errorf("field %q missing", key)
	}
	flags, ok := v.(scalar.Flags)
	if !ok {
		return false, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
	set, ok := flags.Get(flag)
	if !ok {
		return false, fmt.Errorf("field %q has no flag %q", key, flag)
	}
	return set, nil
}

// Coordinates returns a latitude/longitude field.
func (fs FieldSet) Coordinates(key string) (lat, lng float64, err error) {
	v, ok := fs.Raw(key)
	if !ok {
		return 0, 0, fmt.Errorf("field %q missing", key)
	}
	c, ok := v.(scalar.Coordinates)
	if !ok {
		return 0, 0, fmt.Errorf("field %q has unsupported type %T", key, v)
	}
	return c.Lat(), c.Lng(), nil
}
