/*
Package resource provides read access to resources compiled into the binary.

Resources are opaque byte blobs addressed by name. A name is namespace
qualified, the way manifest resources of an assembly are named: the
namespace, a dot, and the resource's path with path separators replaced by
dots, e.g. "fontloader.fonts.Go-Regular.ttf". How a name is resolved is up
to the Store; clients treat names as opaque keys.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resource

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontloader.resource'
func tracer() tracing.Trace {
	return tracing.Select("fontloader.resource")
}
