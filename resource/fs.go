package resource

import (
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
)

// FS is a store over a file system, typically an embed.FS. Every regular
// file of the file system is a resource, named by its manifest name.
type FS struct {
	namespace string
	fsys      fs.FS
	paths     map[string]string // manifest name -> path in fsys
}

var _ Store = (*FS)(nil)

// NewFS indexes all regular files of fsys under namespace. Directories
// starting with a dot are skipped.
//
// Two paths mapping to the same manifest name (e.g. "a/b.ttf" and "a.b.ttf")
// are an error.
func NewFS(namespace string, fsys fs.FS) (*FS, error) {
	store := &FS{
		namespace: namespace,
		fsys:      fsys,
		paths:     make(map[string]string),
	}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := ManifestName(namespace, path)
		if other, ok := store.paths[name]; ok {
			return fmt.Errorf("resource name %q is ambiguous: %s and %s", name, other, path)
		}
		store.paths[name] = path
		tracer().Debugf("indexed resource %q -> %s", name, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// ManifestName returns the resource name of a slash-separated path within
// namespace, e.g. ("app", "fonts/Nevan RUS.ttf") -> "app.fonts.Nevan RUS.ttf".
func ManifestName(namespace, path string) string {
	name := strings.ReplaceAll(path, "/", ".")
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// Namespace returns the namespace of the store.
func (s *FS) Namespace() string {
	return s.namespace
}

// Open opens a resource by its manifest name.
func (s *FS) Open(name string) (io.ReadCloser, error) {
	path, ok := s.paths[name]
	if !ok {
		return nil, NotFound(name)
	}
	return s.fsys.Open(path)
}

// Names returns the sorted manifest names of all resources.
func (s *FS) Names() []string {
	names := make([]string, 0, len(s.paths))
	for name := range s.paths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
