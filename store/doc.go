/*
Package store persists projects.

Two adapters are provided: FileStore keeps one JSON or YAML file per project
in a directory, SQLiteStore keeps projects as JSON records in an SQLite
database. Both check the element tree invariants when loading a project, so
clients may rely on a loaded project being a well-formed document.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package store

import (
	"context"
	"errors"

	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'artboard.store'.
func tracer() tracing.Trace {
	return tracing.Select("artboard.store")
}

// ErrNotFound is returned if no project with a given id is stored.
var ErrNotFound = errors.New("project not found")

// Store is the persistence boundary for projects.
type Store interface {
	Load(ctx context.Context, id string) (*document.Project, error)
	Save(ctx context.Context, p *document.Project) error
	List(ctx context.Context) ([]string, error)
}
