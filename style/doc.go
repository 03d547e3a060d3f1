/*
Package style holds style records for artboard elements and resolves them
for a given breakpoint.

Style Records

A style record (type Set) maps CSS property names to raw values, e.g.

    font-size: 14px
    display:   flex

Records are treated as immutable values: every modifying operation returns
a new record and leaves the receiver untouched. This lets documents share
records between snapshots without defensive copying.

Breakpoints

Styles cascade along a fixed chain of breakpoints

    desktop > laptop > tablet > mobile

where desktop is the unconditioned base. Every element carries a full base
record and, for each of the other breakpoints, an optional sparse record of
overrides (type Overrides). Overrides are cumulative and directional: a
property set for laptop is visible for tablet and mobile as well, unless it
is overridden again further down the chain.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.style'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.style")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("artboard.style: "+msg, msgargs...)
		panic(msg)
	}
}
