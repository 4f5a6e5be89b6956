package fontcoll

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// ErrClosed is returned for operations on a collection which has been closed.
var ErrClosed = errors.New("font collection is closed")

// Collection is a private font collection. Families registered with it are
// owned by the collection and become unusable once it is closed.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	families []*Family
	byName   map[string]*Family
	closed   bool
}

// New creates an empty private font collection.
func New() *Collection {
	return &Collection{
		byName: make(map[string]*Family),
	}
}

// AddFontFile registers the fonts contained in a font file. The file may be
// a single font (TTF, OTF) or a font collection (TTC, OTC).
//
// The file is read completely; it may be removed after AddFontFile returns.
func (c *Collection) AddFontFile(path string) error {
	if c.closed {
		return ErrClosed
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err = c.AddMemoryFont(data); err != nil {
		return fmt.Errorf("font file %s: %w", path, err)
	}
	return nil
}

// AddMemoryFont registers the fonts contained in data. data must not be
// modified after the call.
//
// A font without a family name is skipped. Fonts of a family already known to
// the collection are added to that family.
func (c *Collection) AddMemoryFont(data []byte) error {
	if c.closed {
		return ErrClosed
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return err
	}
	var buf sfnt.Buffer
	for i, n := 0, coll.NumFonts(); i < n; i++ {
		f, err := coll.Font(i)
		if err != nil {
			tracer().Infof("skipping font #%d of collection: %v", i, err)
			continue
		}
		family, subfamily := familyName(f, &buf)
		if family == "" {
			tracer().Infof("skipping font #%d of collection: no family name", i)
			continue
		}
		fam, ok := c.byName[family]
		if !ok {
			fam = &Family{name: family, coll: c, fonts: make(map[Style]*sfnt.Font)}
			c.byName[family] = fam
			c.families = append(c.families, fam)
		}
		fam.add(styleFromSubfamily(subfamily), f)
		tracer().Debugf("registered font %q / %q", family, subfamily)
	}
	return nil
}

// Families returns the families registered with this collection, in the
// order in which they were first encountered.
func (c *Collection) Families() []*Family {
	if c.closed {
		return nil
	}
	fams := make([]*Family, len(c.families))
	copy(fams, c.families)
	return fams
}

// Close releases all registered families. Fonts created from them before
// Close keep working, but no new fonts can be created. Closing a closed
// collection is a no-op.
func (c *Collection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	for _, fam := range c.families {
		fam.fonts = nil
		fam.styles = nil
	}
	c.families = nil
	c.byName = nil
	return nil
}

// familyName extracts family and subfamily names from a font's 'name' table.
//
// Returned values are empty if no matching records exist or if records cannot
// be decoded.
func familyName(f *sfnt.Font, buf *sfnt.Buffer) (family, subfamily string) {
	var err error
	if family, err = f.Name(buf, sfnt.NameIDFamily); err != nil {
		family = ""
	}
	if subfamily, err = f.Name(buf, sfnt.NameIDSubfamily); err != nil {
		subfamily = ""
	}
	return
}
