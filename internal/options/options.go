package options

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/matthias-bs/bresser-decode/internal/profile"
)

// Encoding names the textual form of an uplink payload.
type Encoding string

const (
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

// ErrEmptyPayload is returned when the input holds no payload bytes.
var ErrEmptyPayload = errors.New("empty payload")

type contextKey struct{}

// WithProfile stores the profile used for decoding inside the context.
func WithProfile(ctx context.Context, p profile.Profile) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// ProfileFromContext retrieves the profile stored by WithProfile.
func ProfileFromContext(ctx context.Context) (profile.Profile, bool) {
	p, ok := ctx.Value(contextKey{}).(profile.Profile)
	return p, ok
}

// ParsePayload decodes a hex or base64 payload string. Hex input may contain
// whitespace, '|' or '_' separators and a 0x prefix.
func ParsePayload(input string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingHex, "":
		return parseHex(input)
	case EncodingBase64:
		return parseBase64(input)
	default:
		return nil, fmt.Errorf("unsupported payload encoding %q", enc)
	}
}

func parseHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(clean, "0x") || strings.HasPrefix(clean, "0X") {
		clean = clean[2:]
	}
	if clean == "" {
		return nil, ErrEmptyPayload
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex payload must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func parseBase64(input string) ([]byte, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return nil, ErrEmptyPayload
	}
	decoded, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return decoded, nil
}

// ParseFeatures splits a comma or whitespace separated list of firmware
// feature flags.
func ParseFeatures(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
