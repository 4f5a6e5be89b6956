package shell

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/npillmayer/fontloader/fontcoll"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Label is a single line of text in a font.
type Label struct {
	Text  string
	Color color.Color
	Font  *fontcoll.Font
}

// SetFont sets the label's font. A previous font is not closed.
func (l *Label) SetFont(f *fontcoll.Font) {
	l.Font = f
}

// DisplayText returns the label text in normalization form C, which lets
// precomposed characters map to single glyphs.
func (l *Label) DisplayText() string {
	return norm.NFC.String(l.Text)
}

// Size returns the width and height of the label in pixels. A label without
// a font has size zero.
func (l *Label) Size() (width, height int) {
	if l.Font == nil || l.Font.Face == nil {
		return 0, 0
	}
	_, advance := l.Font.Bounds(l.DisplayText())
	return advance.Ceil(), l.Font.LineHeight()
}

// Ascent returns the distance from the label's top to its baseline, in pixels.
func (l *Label) Ascent() int {
	if l.Font == nil || l.Font.Face == nil {
		return 0
	}
	return l.Font.Face.Metrics().Ascent.Ceil()
}

// DrawTo draws the label with its top left corner at pt.
func (l *Label) DrawTo(dst draw.Image, pt image.Point) {
	if l.Font == nil || l.Font.Face == nil {
		return
	}
	c := l.Color
	if c == nil {
		c = color.Black
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: l.Font.Face,
		Dot:  fixed.P(pt.X, pt.Y+l.Ascent()),
	}
	d.DrawString(l.DisplayText())
}

// RenderPNG renders the label on a white background with a margin of
// padding pixels and writes it to w as PNG.
func (l *Label) RenderPNG(w io.Writer, padding int) error {
	width, height := l.Size()
	img := image.NewRGBA(image.Rect(0, 0, width+2*padding, height+2*padding))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	l.DrawTo(img, image.Pt(padding, padding))
	return png.Encode(w, img)
}
