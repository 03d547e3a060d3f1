/*
Package droptarget finds the place where a dragged element would land.

While an element is dragged across an artboard, the rendering collaborator
reports which elements are under the pointer and where they are on screen
(interface Geometry). Resolve turns this into a Target: a parent and an
insertion index, ready to be handed to document.MoveElement.

Insertion indices are computed against the sibling list without the dragged
element, which is exactly how MoveElement interprets them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package droptarget

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.droptarget'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.droptarget")
}
