package fontcoll

import (
	"fmt"
	"strings"
)

// Style is a set of style flags for a font.
type Style uint8

const (
	Regular    Style = 0
	Bold       Style = 1 << 0
	Italic     Style = 1 << 1
	BoldItalic Style = Bold | Italic
)

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case BoldItalic:
		return "BoldItalic"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// ParseStyle parses a style name as produced by Style.String. Matching is
// case-insensitive; "Normal" is accepted for Regular and "Bold Italic" for
// BoldItalic.
func ParseStyle(name string) (Style, error) {
	n := strings.ReplaceAll(strings.TrimSpace(name), " ", "")
	switch {
	case strings.EqualFold(n, "Regular"), strings.EqualFold(n, "Normal"), n == "":
		return Regular, nil
	case strings.EqualFold(n, "Bold"):
		return Bold, nil
	case strings.EqualFold(n, "Italic"):
		return Italic, nil
	case strings.EqualFold(n, "BoldItalic"):
		return BoldItalic, nil
	}
	return Regular, fmt.Errorf("unknown font style %q", name)
}

// styleFromSubfamily derives the style flags from a font's subfamily name,
// e.g. "Bold Italic" or "Oblique".
func styleFromSubfamily(subfamily string) Style {
	sub := strings.ToLower(subfamily)
	var s Style
	if strings.Contains(sub, "bold") {
		s |= Bold
	}
	if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
		s |= Italic
	}
	return s
}
