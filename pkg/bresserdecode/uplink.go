package bresserdecode

import (
	"context"

	"github.com/matthias-bs/bresser-decode/internal/frame"
)

// UplinkInput is the payload handed over by the network server.
type UplinkInput struct {
	Bytes []byte
	FPort int
}

// UplinkData wraps the decoded fields the way the network server expects.
type UplinkData struct {
	Bytes *frame.Frame `json:"bytes"`
}

// UplinkOutput is the payload formatter response envelope.
type UplinkOutput struct {
	Data     *UplinkData `json:"data,omitempty"`
	Warnings []string    `json:"warnings"`
	Errors   []string    `json:"errors"`
}

// DecodeUplink decodes in.Bytes and wraps the result into the response
// envelope. Decode failures are reported in Errors and Data is left nil.
func DecodeUplink(ctx context.Context, in UplinkInput, opts DecodeOptions) UplinkOutput {
	out := UplinkOutput{Warnings: []string{}, Errors: []string{}}
	res, err := Decode(ctx, in.Bytes, opts)
	if err != nil {
		out.Errors = append(out.Errors, err.Error())
		return out
	}
	out.Data = &UplinkData{Bytes: res.Fields}
	return out
}

// OK reports whether the envelope carries no errors.
func (o UplinkOutput) OK() bool {
	return len(o.Errors) == 0
}
