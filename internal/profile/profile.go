// Package profile describes uplink wire layouts as ordered lists of field
// decoders.
package profile

import "github.com/matthias-bs/bresser-decode/internal/scalar"

// FieldSpec binds a decoder to the output field name. An empty name makes the
// field keyed by its position.
type FieldSpec struct {
	Decoder scalar.Decoder
	Name    string
}

// Profile is one device wire format. Field order defines both byte offsets
// and output order.
type Profile struct {
	Name   string
	Fields []FieldSpec
}

// New builds a named profile.
func New(name string, fields ...FieldSpec) Profile {
	return Profile{Name: name, Fields: fields}
}

// Field is shorthand for a FieldSpec literal.
func Field(d scalar.Decoder, name string) FieldSpec {
	return FieldSpec{Decoder: d, Name: name}
}

// Width returns the number of bytes the profile consumes.
func (p Profile) Width() int {
	total := 0
	for _, f := range p.Fields {
		total += f.Decoder.Width()
	}
	return total
}

// Names returns the field names in wire order.
func (p Profile) Names() []string {
	names := make([]string, len(p.Fields))
	for i, f := range p.Fields {
		names[i] = f.Name
	}
	return names
}
