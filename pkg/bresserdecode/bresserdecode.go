// Package bresserdecode decodes Bresser weather sensor LoRaWAN uplinks into
// ordered, named fields.
package bresserdecode

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matthias-bs/bresser-decode/internal/frame"
	"github.com/matthias-bs/bresser-decode/internal/mask"
	"github.com/matthias-bs/bresser-decode/internal/options"
)

// Result captures the outcome of Decode.
type Result struct {
	Profile   string
	RawHex    string
	ByteCount int
	Fields    *frame.Frame
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := struct {
		Profile   string       `json:"profile"`
		ByteCount int          `json:"byte_count"`
		RawHex    string       `json:"raw_hex"`
		Fields    *frame.Frame `json:"fields,omitempty"`
	}{r.Profile, r.ByteCount, r.RawHex, r.Fields}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("profile: %s bytes:%d raw:%s (marshal error: %v)", r.Profile, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// Decode applies the selected profile to payload.
func Decode(ctx context.Context, payload []byte, opts DecodeOptions) (Result, error) {
	p, err := opts.resolve(ctx)
	if err != nil {
		return Result{}, err
	}
	fields, err := mask.Decode(payload, p)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Profile:   p.Name,
		RawHex:    strings.ToUpper(hex.EncodeToString(payload)),
		ByteCount: len(payload),
		Fields:    fields,
	}, nil
}

// DecodeHex parses a hex payload and decodes it.
func DecodeHex(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	payload, err := options.ParsePayload(raw, options.EncodingHex)
	if err != nil {
		return Result{}, err
	}
	return Decode(ctx, payload, opts)
}

// DecodeBase64 parses a base64 payload, as delivered by LoRaWAN network
// servers, and decodes it.
func DecodeBase64(ctx context.Context, raw string, opts DecodeOptions) (Result, error) {
	payload, err := options.ParsePayload(raw, options.EncodingBase64)
	if err != nil {
		return Result{}, err
	}
	return Decode(ctx, payload, opts)
}
