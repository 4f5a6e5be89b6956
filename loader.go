package fontloader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/npillmayer/fontloader/fontcoll"
	"github.com/npillmayer/fontloader/resource"
)

// registration pairs a private font collection with the family it produced.
type registration struct {
	collection *fontcoll.Collection
	family     *fontcoll.Family
}

// Loader owns the fonts loaded from embedded resources: their temporary
// files, their private font collections, and a lookup by family name.
type Loader struct {
	store     resource.Store
	tempDir   string
	dpi       float64
	fonts     map[string]registration // family name -> registration
	order     []string                // family names in load order
	tempFiles []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithTempDir sets the directory temporary font files are written to.
// The default is os.TempDir().
func WithTempDir(dir string) Option {
	return func(l *Loader) {
		l.tempDir = dir
	}
}

// WithDPI sets the resolution used by NewFont. The default is 72 dpi.
func WithDPI(dpi float64) Option {
	return func(l *Loader) {
		l.dpi = dpi
	}
}

// New creates an empty loader reading resources from store.
func New(store resource.Store, opts ...Option) *Loader {
	l := &Loader{
		store: store,
		dpi:   fontcoll.DefaultDPI,
		fonts: make(map[string]registration),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFontsFromResources loads fonts from the resources given, in order.
//
// Loading stops at the first failing resource. Fonts loaded before the
// failure, including those from earlier calls, stay loaded, and their
// temporary files stay recorded for Dispose. Errors are of type *FontError
// with kind ResourceNotFound, EmptyFontFile or DuplicateFontFamily, or plain
// I/O errors if a resource cannot be read or a temporary file cannot be
// written.
func (l *Loader) LoadFontsFromResources(names ...string) error {
	for _, name := range names {
		if err := l.loadFontFromResource(name); err != nil {
			tracer().Errorf("loading font resource %q: %v", name, err)
			return err
		}
	}
	return nil
}

func (l *Loader) loadFontFromResource(name string) error {
	data, err := resource.ReadAll(l.store, name)
	if err != nil {
		if resource.IsNotFound(err) {
			return &FontError{Kind: ResourceNotFound, Resource: name, Err: fs.ErrNotExist}
		}
		return err
	}
	path, err := l.writeTempFile(data)
	if err != nil {
		return fmt.Errorf("extracting font resource %q: %w", name, err)
	}
	// one collection per resource: a broken font must not affect fonts
	// already loaded
	coll := fontcoll.New()
	if err = coll.AddFontFile(path); err != nil {
		coll.Close()
		return registrationError(name, err)
	}
	families := coll.Families()
	if len(families) == 0 {
		coll.Close()
		return &FontError{Kind: EmptyFontFile, Resource: name}
	}
	if len(families) > 1 {
		tracer().Infof("resource %q contains %d families, using %q only",
			name, len(families), families[0].Name())
	}
	family := families[0]
	if _, exists := l.fonts[family.Name()]; exists {
		coll.Close()
		return &FontError{Kind: DuplicateFontFamily, Resource: name, Family: family.Name()}
	}
	l.fonts[family.Name()] = registration{collection: coll, family: family}
	l.order = append(l.order, family.Name())
	tracer().Infof("loaded font family %q from resource %q", family.Name(), name)
	return nil
}

// registrationError classifies a failure to register a font file. Failing
// to read the file back is an I/O error; everything else means the file did
// not contain a usable font.
func registrationError(name string, err error) error {
	var pathErr *fs.PathError
	if errors.Is(err, fs.ErrNotExist) || errors.As(err, &pathErr) {
		return fmt.Errorf("registering font resource %q: %w", name, err)
	}
	return &FontError{Kind: EmptyFontFile, Resource: name, Err: err}
}

// writeTempFile writes data to a new, uniquely named file <tempdir>/<id>.ttf.
// The file is recorded for removal as soon as it exists.
func (l *Loader) writeTempFile(data []byte) (string, error) {
	f, err := os.CreateTemp(l.tempDir, "*.ttf")
	if err != nil {
		return "", err
	}
	l.tempFiles = append(l.tempFiles, f.Name())
	if _, err = f.Write(data); err != nil {
		f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	tracer().Debugf("extracted %d bytes to %s", len(data), f.Name())
	return f.Name(), nil
}

// GetFontFamilyByName returns a loaded family by its exact family name.
// If no such family has been loaded, the error has kind FontFamilyNotFound.
func (l *Loader) GetFontFamilyByName(name string) (*fontcoll.Family, error) {
	reg, ok := l.fonts[name]
	if !ok {
		return nil, &FontError{Kind: FontFamilyNotFound, Family: name}
	}
	return reg.family, nil
}

// NewFont creates a font of a loaded family in the given size (in points)
// and style.
func (l *Loader) NewFont(family string, size float64, style fontcoll.Style) (*fontcoll.Font, error) {
	fam, err := l.GetFontFamilyByName(family)
	if err != nil {
		return nil, err
	}
	return fam.NewFont(size, style, l.dpi)
}

// Families returns the names of the loaded families in load order.
func (l *Loader) Families() []string {
	names := make([]string, len(l.order))
	copy(names, l.order)
	return names
}

// TempFiles returns the paths of the temporary files created so far.
func (l *Loader) TempFiles() []string {
	files := make([]string, len(l.tempFiles))
	copy(files, l.tempFiles)
	return files
}

// Dispose releases all font collections and removes all temporary files.
// Failing to remove a file is ignored. Afterwards the loader is empty;
// calling Dispose again is harmless.
func (l *Loader) Dispose() {
	for name, reg := range l.fonts {
		if err := reg.collection.Close(); err != nil {
			tracer().Errorf("releasing font family %q: %v", name, err)
		}
	}
	for _, path := range l.tempFiles {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			tracer().Debugf("cannot remove temporary font file: %v", err)
		}
	}
	clear(l.fonts)
	l.order = l.order[:0]
	l.tempFiles = l.tempFiles[:0]
}

// Close disposes the loader. It always returns nil.
func (l *Loader) Close() error {
	l.Dispose()
	return nil
}
