package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
)

// Store is a collection of named resources.
type Store interface {
	// Open opens the resource with the exact name given. If no such resource
	// exists, the error wraps fs.ErrNotExist.
	Open(name string) (io.ReadCloser, error)
	// Names returns the names of all resources of the store, sorted.
	Names() []string
}

// NotFound creates the error returned by stores for an unknown resource name.
func NotFound(name string) error {
	return fmt.Errorf("resource %q: %w", name, fs.ErrNotExist)
}

// IsNotFound reports whether err signals a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// ReadAll opens a resource and reads its full content.
func ReadAll(store Store, name string) ([]byte, error) {
	r, err := store.Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading resource %q: %w", name, err)
	}
	tracer().Debugf("read resource %q (%d bytes)", name, len(data))
	return data, nil
}

// --- Map -------------------------------------------------------------------

// Map is an in-memory store. The byte slices must not be modified while
// the store is in use.
type Map map[string][]byte

var _ Store = Map{}

// Open opens a resource of the map.
func (m Map) Open(name string) (io.ReadCloser, error) {
	data, ok := m[name]
	if !ok {
		return nil, NotFound(name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Names returns the sorted names of the map's resources.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Chain -----------------------------------------------------------------

type chain []Store

// Chain combines stores. A resource is opened from the first store
// containing it.
func Chain(stores ...Store) Store {
	return chain(stores)
}

func (c chain) Open(name string) (io.ReadCloser, error) {
	for _, s := range c {
		r, err := s.Open(name)
		if err == nil {
			return r, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}
	return nil, NotFound(name)
}

func (c chain) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, s := range c {
		for _, name := range s.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
