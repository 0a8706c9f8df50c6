package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matthias-bs/bresser-decode/internal/scalar"
)

type fileProfile struct {
	Name   string      `yaml:"name"`
	Fields []fileField `yaml:"fields"`
}

type fileField struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Parse reads a YAML profile definition:
//
//	name: my-node
//	fields:
//	  - {name: status, type: bitmap}
//	  - {name: air_temp_c, type: temperature}
func Parse(data []byte) (Profile, error) {
	var fp fileProfile
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	if fp.Name == "" {
		return Profile{}, errors.New("profile name missing")
	}
	if len(fp.Fields) == 0 {
		return Profile{}, fmt.Errorf("profile %q has no fields", fp.Name)
	}
	p := Profile{Name: fp.Name, Fields: make([]FieldSpec, 0, len(fp.Fields))}
	for i, f := range fp.Fields {
		dec, ok := scalar.Lookup(f.Type)
		if !ok {
			return Profile{}, fmt.Errorf("profile %q field %d: unknown decoder type %q", fp.Name, i, f.Type)
		}
		p.Fields = append(p.Fields, Field(dec, f.Name))
	}
	return p, nil
}

// LoadFile reads and parses a YAML profile definition from path.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}
