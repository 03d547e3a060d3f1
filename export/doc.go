/*
Package export renders artboards to HTML and CSS.

Every element becomes one HTML node, with its tag chosen by element type.
Styles are exported as a stylesheet: one rule per element holding the base
styles, followed by one @media block per breakpoint holding the overrides.
Media blocks are emitted in cascade order (laptop, tablet, mobile) with
decreasing max-widths, so browsers apply overrides exactly the way
style.Resolve does.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package export

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.export'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.export")
}
