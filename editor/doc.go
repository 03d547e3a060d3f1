/*
Package editor is the state container of an artboard editing session.

An Editor owns the live project together with session state: the active
artboard and breakpoint, the selection, the clipboard and the undo history.
There is one logical writer (the UI calling Editor methods) and any number of
readers, which either take a Snapshot or Subscribe to state changes.

Every edit method delegates to package document and replaces the live
project as a whole. Before a changed project is installed, the previous one
is pushed onto the history, so Undo can restore it later.

Gestures

Interactive drags (resizing grid tracks, dragging span handles, moving an
element) produce a stream of edits, one per pointer move. Between
BeginGesture and EndGesture these edits replace the live project without
touching the history; EndGesture records a single history entry, and only if
the gesture left the project changed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.editor'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.editor")
}
