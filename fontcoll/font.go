package fontcoll

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Font is a family in a given size and style.
type Font struct {
	Family *Family
	Size   float64 // in points
	Style  Style
	DPI    float64
	Face   font.Face
}

func (f *Font) String() string {
	return fmt.Sprintf("%s %gpt %s", f.Family.Name(), f.Size, f.Style)
}

// LineHeight returns the recommended line height of the font, in pixels.
func (f *Font) LineHeight() int {
	if f.Face == nil {
		return 0
	}
	return f.Face.Metrics().Height.Ceil()
}

// Bounds measures text set in this font. It returns the bounding box relative
// to the origin of the first glyph and the advance width.
func (f *Font) Bounds(text string) (fixed.Rectangle26_6, fixed.Int26_6) {
	if f.Face == nil {
		return fixed.Rectangle26_6{}, 0
	}
	return font.BoundString(f.Face, text)
}

// Close releases the font's face. The font must not be used afterwards.
func (f *Font) Close() error {
	if f.Face == nil {
		return nil
	}
	err := f.Face.Close()
	f.Face = nil
	return err
}
