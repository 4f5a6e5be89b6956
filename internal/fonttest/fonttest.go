/*
Package fonttest provides font fixtures for tests.

Fixtures are derived from the Go fonts (golang.org/x/image/font/gofont), so
tests do not depend on fonts installed on the host.
*/
package fonttest

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Regular, Bold and Mono return the bytes of the respective Go font.
func Regular() []byte { return goregular.TTF }
func Bold() []byte    { return gobold.TTF }
func Mono() []byte    { return gomono.TTF }

// FamilyName returns the family name (name ID 1) of a single font.
// It panics if the font cannot be parsed.
func FamilyName(ttf []byte) string {
	f, err := sfnt.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("fonttest: cannot parse font: %v", err))
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		panic(fmt.Sprintf("fonttest: font has no family name: %v", err))
	}
	return name
}

const (
	ttcHeaderSize   = 12 // tag, major, minor, numFonts
	sfntHeaderSize  = 12 // sfntVersion, numTables, searchRange, entrySelector, rangeShift
	tableRecordSize = 16 // tag, checksum, offset, length
)

// Collection packs single fonts (TTF or OTF) into a TrueType collection
// (TTC, version 1.0). Table offsets of every font are relocated to their
// position in the collection; tables are not shared between fonts.
//
// It panics if one of the fonts does not have a well-formed table directory.
func Collection(fonts ...[]byte) []byte {
	be := binary.BigEndian
	size := ttcHeaderSize + 4*len(fonts)
	out := make([]byte, size, size+totalLen(fonts)+4*len(fonts))
	copy(out[0:4], "ttcf")
	be.PutUint16(out[4:6], 1)
	be.PutUint16(out[6:8], 0)
	be.PutUint32(out[8:12], uint32(len(fonts)))
	for i, f := range fonts {
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
		base := len(out)
		be.PutUint32(out[ttcHeaderSize+4*i:], uint32(base))
		out = append(out, f...)
		font := out[base:]
		if len(font) < sfntHeaderSize {
			panic("fonttest: font too short")
		}
		numTables := int(be.Uint16(font[4:6]))
		if sfntHeaderSize+numTables*tableRecordSize > len(font) {
			panic("fonttest: table directory out of bounds")
		}
		for t := 0; t < numTables; t++ {
			rec := font[sfntHeaderSize+t*tableRecordSize:]
			offset := be.Uint32(rec[8:12])
			be.PutUint32(rec[8:12], offset+uint32(base))
		}
	}
	return out
}

func totalLen(fonts [][]byte) int {
	n := 0
	for _, f := range fonts {
		n += len(f)
	}
	return n
}
