/*
Package fontloader loads fonts embedded in an application binary.

A Loader takes font resources from a resource.Store, extracts each of them
to a temporary file and registers that file with a private font collection
(package fontcoll) of its own. The family the registration produces is
recorded under its family name, which is what clients look fonts up by:

	loader := fontloader.New(resource.Bundled())
	defer loader.Dispose()
	if err := loader.LoadFontsFromResources("fontloader.Go-Mono.ttf"); err != nil {
		return err
	}
	family, err := loader.GetFontFamilyByName("Go Mono")

Only the first family of a font file is registered; font collections
containing more than one family contribute their first family only.

Dispose releases all collections and removes the temporary files. A Loader
is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fontloader

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontloader'
func tracer() tracing.Trace {
	return tracing.Select("fontloader")
}
