// Package testutil loads golden uplink fixtures from the repository testdata
// directory.
package testutil

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadHex returns a trimmed hex string from a testdata relative path.
func LoadHex(t *testing.T, rel string) string {
	t.Helper()
	return strings.TrimSpace(string(readTestdata(t, rel)))
}

// LoadPayload returns the bytes of a hex fixture.
func LoadPayload(t *testing.T, rel string) []byte {
	t.Helper()
	data, err := hex.DecodeString(LoadHex(t, rel))
	if err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
	return data
}

// LoadJSON returns a golden JSON fixture in compact form, keys in file order.
func LoadJSON(t *testing.T, rel string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := json.Compact(&buf, readTestdata(t, rel)); err != nil {
		t.Fatalf("compact %s: %v", rel, err)
	}
	return buf.Bytes()
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
