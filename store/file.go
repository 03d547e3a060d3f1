package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/artboard/document"
	"gopkg.in/yaml.v3"
)

// Format selects the file format of a FileStore.
type Format string

// File formats, named by file extension.
const (
	JSON Format = ".json"
	YAML Format = ".yaml"
)

// FileStore stores every project in a file <id>.json or <id>.yaml in Dir.
// New projects are saved in Format, which defaults to JSON. Loading accepts
// either format.
type FileStore struct {
	Dir    string
	Format Format
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store for dir, creating dir if necessary.
func NewFileStore(dir string, format Format) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	if format == "" {
		format = JSON
	}
	return &FileStore{Dir: dir, Format: format}, nil
}

func (fst *FileStore) path(id string, f Format) string {
	return filepath.Join(fst.Dir, id+string(f))
}

// Load reads and validates the project with the given id.
func (fst *FileStore) Load(ctx context.Context, id string) (*document.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, f := range []Format{JSON, YAML} {
		data, err := os.ReadFile(fst.path(id, f))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("loading project %s: %w", id, err)
		}
		tracer().Debugf("loading project %s from %s", id, fst.path(id, f))
		return decode(data, f)
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func decode(data []byte, f Format) (*document.Project, error) {
	if f == JSON {
		return document.UnmarshalProject(data)
	}
	p := &document.Project{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}
	document.Normalize(p)
	if err := document.ValidateProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p to Dir. A file of p in the other format is removed.
func (fst *FileStore) Save(ctx context.Context, p *document.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p == nil || p.ID == "" {
		return errors.New("cannot save project without id")
	}
	f := fst.Format
	if f == "" {
		f = JSON
	}
	var data []byte
	var err error
	if f == YAML {
		data, err = yaml.Marshal(p)
	} else {
		data, err = document.MarshalProject(p)
	}
	if err != nil {
		return fmt.Errorf("encoding project %s: %w", p.ID, err)
	}
	tmp := fst.path(p.ID, f) + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("saving project %s: %w", p.ID, err)
	}
	if err = os.Rename(tmp, fst.path(p.ID, f)); err != nil {
		return fmt.Errorf("saving project %s: %w", p.ID, err)
	}
	other := YAML
	if f == YAML {
		other = JSON
	}
	if err = os.Remove(fst.path(p.ID, other)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("saving project %s: %w", p.ID, err)
	}
	return nil
}

// List returns the ids of all stored projects, sorted.
func (fst *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(fst.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != string(JSON) && ext != string(YAML) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(ids)
	return ids, nil
}
