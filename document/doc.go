/*
Package document holds the artboard document model and the operations to edit it.

Model

A Project holds a set of artboards in display order. Every Artboard owns a
flat map of elements and an ordered list of root-level element ids. Elements
refer to their children by id only:

    Artboard
      ├── Elements:     id → *Element   (sole owner)
      └── RootChildren: [id, id, …]      (references)

Element.Children lists are references as well. Artboards are strict forests:
every element id is referenced from exactly one place, either RootChildren or
the Children list of exactly one other element.

Editing

All edit operations are pure functions. They take a project and return a new
project, together with a flag telling if anything has changed. Unchanged
artboards and elements are shared between the old and the new project; every
element to be modified is cloned first. Thus a project value taken before an
edit is never affected by the edit, and clients may keep old projects around
as snapshots (see package editor).

Edit operations fail soft: if an artboard, element or parent does not exist,
or if a move would create a cycle, the project is returned unchanged. Such
requests usually stem from UI races, not from programming errors.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package document

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.document'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.document")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("artboard.document: "+msg, msgargs...)
		panic(msg)
	}
}
