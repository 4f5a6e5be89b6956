/*
Package fontcoll implements private font collections.

A Collection is an in-process registry of font files. Fonts added to it are
visible only through the collection and only for as long as the collection
is open; nothing is installed system-wide. Adding a file groups the fonts it
contains into families, keyed by the family name of the font's 'name' table
(name ID 1). A plain TTF or OTF file yields one family, a TrueType collection
(*.ttc) may yield several.

A Family is the queryable view of a registered family: its name, the styles
available, and a factory for sized fonts. A Font is a family in a given
size and style, ready to draw with a golang.org/x/image/font.Face.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontcoll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontloader.coll'
func tracer() tracing.Trace {
	return tracing.Select("fontloader.coll")
}
