package bresserdecode

import (
	"context"

	internalopts "github.com/matthias-bs/bresser-decode/internal/options"
	"github.com/matthias-bs/bresser-decode/internal/profile"
)

// DecodeOptions selects the payload profile. Features wins over Profile; when
// both are empty a profile stored in the context is used, then the default.
type DecodeOptions struct {
	Profile  string
	Features []string
}

func (opts DecodeOptions) resolve(ctx context.Context) (profile.Profile, error) {
	switch {
	case len(opts.Features) > 0:
		return profile.FromFeatures(opts.Features)
	case opts.Profile != "":
		return profile.Lookup(opts.Profile)
	}
	if p, ok := internalopts.ProfileFromContext(ctx); ok {
		return p, nil
	}
	return profile.Lookup(profile.DefaultName)
}

// WithProfile makes Decode use p when DecodeOptions does not select one.
// Profiles loaded from YAML files reach the decoder this way.
func WithProfile(ctx context.Context, p profile.Profile) context.Context {
	return internalopts.WithProfile(ctx, p)
}

// Profiles lists the built-in profile names.
func Profiles() []string {
	return profile.Names()
}
