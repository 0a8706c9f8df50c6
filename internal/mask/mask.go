// Package mask applies a profile to an uplink payload in a single pass.
package mask

import (
	"errors"
	"fmt"

	"github.com/matthias-bs/bresser-decode/internal/frame"
	"github.com/matthias-bs/bresser-decode/internal/profile"
)

// ErrInsufficientBuffer is matched by every *InsufficientBufferError.
var ErrInsufficientBuffer = errors.New("insufficient buffer")

// InsufficientBufferError reports a payload shorter than the profile width.
type InsufficientBufferError struct {
	Expected int
	Actual   int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("mask length is %d whereas input is %d", e.Expected, e.Actual)
}

// Is makes errors.Is(err, ErrInsufficientBuffer) succeed.
func (e *InsufficientBufferError) Is(target error) bool {
	return target == ErrInsufficientBuffer
}

// Decode slices buf sequentially according to p and decodes every field.
// Bytes beyond the profile width are ignored. The first failing field aborts
// the call and no partial frame is returned.
func Decode(buf []byte, p profile.Profile) (*frame.Frame, error) {
	width := p.Width()
	if len(buf) < width {
		return nil, &InsufficientBufferError{Expected: width, Actual: len(buf)}
	}
	out := frame.New(len(p.Fields))
	offset := 0
	for idx, fs := range p.Fields {
		w := fs.Decoder.Width()
		v, err := fs.Decoder.Decode(buf[offset : offset+w])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", frame.Key(fs.Name, idx), err)
		}
		offset += w
		out.Set(frame.Key(fs.Name, idx), v)
	}
	return out, nil
}
