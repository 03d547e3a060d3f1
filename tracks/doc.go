/*
Package tracks parses, serializes and resizes CSS grid track lists.

A track list like

    200px repeat(2, 1fr) auto

is represented as a slice of Track values, each holding a magnitude and a unit
(fr, px or auto). Track lists are edited interactively: dragging the divider
between two tracks redistributes the rendered size between them and writes
the result back in the units the tracks have been declared in. Flexible (fr)
tracks are rescaled proportionally, so the visual layout follows the pointer
without jumps.

The package does not perform layout. Rendered track sizes, line positions and
zoom factors are supplied by the rendering collaborator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tracks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.tracks'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.tracks")
}
