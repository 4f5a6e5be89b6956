package fontcoll

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ErrStyleNotAvailable is returned if a family has no font for a requested style.
var ErrStyleNotAvailable = errors.New("font style not available")

// DefaultDPI is used for fonts created with a non-positive DPI.
const DefaultDPI = 72

// Family is a font family registered with a Collection.
type Family struct {
	name   string
	coll   *Collection
	fonts  map[Style]*sfnt.Font
	styles []Style // in order of registration
}

func (fam *Family) add(style Style, f *sfnt.Font) {
	if _, ok := fam.fonts[style]; ok {
		return // first font for a style wins
	}
	fam.fonts[style] = f
	fam.styles = append(fam.styles, style)
}

// Name returns the family name, e.g. "Go Mono".
func (fam *Family) Name() string {
	return fam.name
}

func (fam *Family) String() string {
	return fmt.Sprintf("Family(%s %v)", fam.name, fam.styles)
}

// Styles returns the styles available for this family.
func (fam *Family) Styles() []Style {
	styles := make([]Style, len(fam.styles))
	copy(styles, fam.styles)
	return styles
}

// IsStyleAvailable reports whether the family has a font for style.
func (fam *Family) IsStyleAvailable(style Style) bool {
	_, ok := fam.fonts[style]
	return ok
}

// NewFont creates a font of this family with a given size (in points) and
// style. A non-positive dpi selects DefaultDPI.
//
// NewFont fails with ErrClosed if the owning collection has been closed and
// with ErrStyleNotAvailable if the family has no font for style.
func (fam *Family) NewFont(size float64, style Style, dpi float64) (*Font, error) {
	if fam.coll == nil || fam.coll.closed {
		return nil, ErrClosed
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	sf, ok := fam.fonts[style]
	if !ok {
		return nil, fmt.Errorf("family %q, style %s: %w", fam.name, style, ErrStyleNotAvailable)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	face, err := opentype.NewFace(sf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("created font %s %gpt %s", fam.name, size, style)
	return &Font{
		Family: fam,
		Size:   size,
		Style:  style,
		DPI:    dpi,
		Face:   face,
	}, nil
}
