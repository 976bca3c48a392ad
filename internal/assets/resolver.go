package assets

import "errors"

// Resolver combines a custom filesystem loader with the embedded loader.
// Custom assets take precedence; anything the custom directory does not
// provide falls back to the embedded set. Read failures other than
// "not found" do not fall back — a present-but-broken asset is an error.
type Resolver struct {
	custom   Loader // nil when no custom path is configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath uses only embedded
// assets. Returns ErrInvalidBasePath if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		fs, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = fs
	}
	return r, nil
}

// Fonts resolves the font set, preferring the custom directory. The font set
// is resolved as a whole: a custom directory must either provide all four
// variants or none, so mismatched families cannot be mixed silently.
func (r *Resolver) Fonts() (*FontSet, error) {
	if r.custom == nil {
		return r.embedded.Fonts()
	}
	set, err := r.custom.Fonts()
	if err == nil {
		return set, nil
	}
	if errors.Is(err, ErrAssetNotFound) {
		return r.embedded.Fonts()
	}
	return nil, err
}

// Background resolves the default background, preferring the custom directory.
func (r *Resolver) Background() ([]byte, error) {
	if r.custom == nil {
		return r.embedded.Background()
	}
	data, err := r.custom.Background()
	if err == nil {
		return data, nil
	}
	if errors.Is(err, ErrAssetNotFound) {
		return r.embedded.Background()
	}
	return nil, err
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
