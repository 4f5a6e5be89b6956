package resource

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// BundledNamespace is the namespace of the fonts returned by Bundled.
const BundledNamespace = "fontloader"

// Bundled returns a store with the Go fonts compiled into this module, named
// "fontloader.<Font-Name>.ttf", e.g. "fontloader.Go-Mono.ttf".
func Bundled() Map {
	ttfs := map[string][]byte{
		"Go-Regular.ttf":          goregular.TTF,
		"Go-Bold.ttf":             gobold.TTF,
		"Go-Italic.ttf":           goitalic.TTF,
		"Go-Bold-Italic.ttf":      gobolditalic.TTF,
		"Go-Medium.ttf":           gomedium.TTF,
		"Go-Medium-Italic.ttf":    gomediumitalic.TTF,
		"Go-Mono.ttf":             gomono.TTF,
		"Go-Mono-Bold.ttf":        gomonobold.TTF,
		"Go-Mono-Italic.ttf":      gomonoitalic.TTF,
		"Go-Mono-Bold-Italic.ttf": gomonobolditalic.TTF,
		"Go-Smallcaps.ttf":        gosmallcaps.TTF,
		"Go-Smallcaps-Italic.ttf": gosmallcapsitalic.TTF,
	}
	m := make(Map, len(ttfs))
	for file, ttf := range ttfs {
		m[ManifestName(BundledNamespace, file)] = ttf
	}
	return m
}
