// Package frame holds the ordered result of decoding one uplink payload.
package frame

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"

	"github.com/matthias-bs/bresser-decode/internal/scalar"
)

// Frame maps field names to decoded values in profile order.
type Frame struct {
	fields *orderedmap.OrderedMap[string, scalar.Value]
}

// New returns an empty frame sized for n fields.
func New(n int) *Frame {
	return &Frame{fields: orderedmap.NewOrderedMapWithCapacity[string, scalar.Value](n)}
}

// Key returns the map key for the field at position idx. Unnamed fields are
// keyed by their decimal position.
func Key(name string, idx int) string {
	if name == "" {
		return strconv.Itoa(idx)
	}
	return name
}

// Set stores v under key. A repeated key keeps its original position.
func (f *Frame) Set(key string, v scalar.Value) {
	f.fields.Set(key, v)
}

// Get returns the value stored under key.
func (f *Frame) Get(key string) (scalar.Value, bool) {
	if f == nil {
		return nil, false
	}
	return f.fields.Get(key)
}

// Len returns the number of fields.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return f.fields.Len()
}

// Keys returns the field keys in insertion order.
func (f *Frame) Keys() []string {
	if f == nil {
		return nil
	}
	keys := make([]string, 0, f.fields.Len())
	for el := f.fields.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// Each calls fn for every field in order until fn returns false.
func (f *Frame) Each(fn func(key string, v scalar.Value) bool) {
	if f == nil {
		return
	}
	for el := f.fields.Front(); el != nil; el = el.Next() {
		if !fn(el.Key, el.Value) {
			return
		}
	}
}

// Map converts the frame to plain Go values: int64, string, float64,
// [2]float64 and map[string]bool.
func (f *Frame) Map() map[string]any {
	out := make(map[string]any, f.Len())
	f.Each(func(key string, v scalar.Value) bool {
		out[key] = plain(v)
		return true
	})
	return out
}

func plain(v scalar.Value) any {
	switch t := v.(type) {
	case scalar.Integer:
		return int64(t)
	case scalar.Decimal:
		return string(t)
	case scalar.Float:
		return float64(t)
	case scalar.Coordinates:
		return [2]float64(t)
	case scalar.Flags:
		return t.Map()
	default:
		return v
	}
}

// MarshalJSON renders the frame as a JSON object preserving field order.
func (f *Frame) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	f.Each(func(key string, v scalar.Value) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		var k, val []byte
		if k, err = json.Marshal(key); err != nil {
			return false
		}
		if val, err = v.MarshalJSON(); err != nil {
			return false
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
