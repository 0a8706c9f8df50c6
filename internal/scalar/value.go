package scalar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is the result of a single field decoder. The set of implementations is
// closed: Integer, Decimal, Float, Coordinates and Flags.
type Value interface {
	json.Marshaler
	fmt.Stringer
	value()
}

// Integer holds the unsigned integer decoders' output.
type Integer int64

// Decimal is a fixed-point number already rendered with one decimal digit.
type Decimal string

// Float is an unformatted floating-point reading.
type Float float64

// Coordinates is a [latitude, longitude] pair in degrees.
type Coordinates [2]float64

func (Integer) value()     {}
func (Decimal) value()     {}
func (Float) value()       {}
func (Coordinates) value() {}
func (Flags) value()       {}

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

// MarshalJSON implements json.Marshaler.
func (v Integer) MarshalJSON() ([]byte, error) { return []byte(v.String()), nil }

func (v Decimal) String() string { return string(v) }

// MarshalJSON implements json.Marshaler.
func (v Decimal) MarshalJSON() ([]byte, error) { return json.Marshal(string(v)) }

// Float64 parses the decimal back into a number.
func (v Decimal) Float64() (float64, error) { return strconv.ParseFloat(string(v), 64) }

func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// MarshalJSON implements json.Marshaler.
func (v Float) MarshalJSON() ([]byte, error) { return json.Marshal(float64(v)) }

// Lat returns the latitude in degrees.
func (c Coordinates) Lat() float64 { return c[0] }

// Lng returns the longitude in degrees.
func (c Coordinates) Lng() float64 { return c[1] }

func (c Coordinates) String() string {
	return fmt.Sprintf("[%s, %s]", Float(c[0]), Float(c[1]))
}

// MarshalJSON implements json.Marshaler.
func (c Coordinates) MarshalJSON() ([]byte, error) { return json.Marshal([2]float64(c)) }

// Flags is an 8-bit status bitmap bound to a fixed set of flag names.
type Flags struct {
	layout *[8]string
	bits   byte
}

// Bits returns the raw bitmap byte.
func (f Flags) Bits() byte { return f.bits }

// Get reports the state of the named flag. ok is false when the layout has no
// flag with that name.
func (f Flags) Get(name string) (set bool, ok bool) {
	if f.layout == nil {
		return false, false
	}
	expanded := expandBits(f.bits)
	for i, n := range f.layout {
		if n == name {
			return expanded[i], true
		}
	}
	return false, false
}

// Names lists the flags in rendering order, least significant bit first.
func (f Flags) Names() []string {
	if f.layout == nil {
		return nil
	}
	names := make([]string, 0, len(f.layout))
	for i := len(f.layout) - 1; i >= 0; i-- {
		names = append(names, f.layout[i])
	}
	return names
}

// Map copies the flags into a plain map.
func (f Flags) Map() map[string]bool {
	out := make(map[string]bool, 8)
	for _, name := range f.Names() {
		out[name], _ = f.Get(name)
	}
	return out
}

func (f Flags) String() string {
	return fmt.Sprintf("%08b", f.bits)
}

// MarshalJSON renders the flags as an object in Names order.
func (f Flags) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range f.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		set, _ := f.Get(name)
		buf.WriteString(strconv.FormatBool(set))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
