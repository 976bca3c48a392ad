package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed logical asset names inside a custom asset directory.
const (
	fontRegularName    = "fonts/regular.ttf"
	fontBoldName       = "fonts/bold.ttf"
	fontItalicName     = "fonts/italic.ttf"
	fontBoldItalicName = "fonts/bolditalic.ttf"
	backgroundName     = "backgrounds/default.png"
)

// FilesystemLoader loads assets from a directory using the fixed logical
// names documented on the package.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath if basePath is not an existing directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidBasePath, basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidBasePath, basePath)
	}
	return &FilesystemLoader{basePath: basePath}, nil
}

// Fonts reads all four font variants. A variant file that does not exist
// yields ErrAssetNotFound so the resolver can fall back per font set.
func (f *FilesystemLoader) Fonts() (*FontSet, error) {
	set := &FontSet{}
	for _, v := range []struct {
		name string
		dst  *[]byte
	}{
		{fontRegularName, &set.Regular},
		{fontBoldName, &set.Bold},
		{fontItalicName, &set.Italic},
		{fontBoldItalicName, &set.BoldItalic},
	} {
		data, err := f.read(v.name)
		if err != nil {
			return nil, err
		}
		*v.dst = data
	}
	return set, nil
}

// Background reads the default background image.
func (f *FilesystemLoader) Background() ([]byte, error) {
	return f.read(backgroundName)
}

func (f *FilesystemLoader) read(name string) ([]byte, error) {
	path := filepath.Join(f.basePath, filepath.FromSlash(name))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrAssetRead, name, err)
	}
	return data, nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
