package document

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalProject serializes p into its plain JSON record form.
func MarshalProject(p *Project) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// UnmarshalProject deserializes a project and checks the forest invariant of
// all its artboards.
func UnmarshalProject(data []byte) (*Project, error) {
	p := &Project{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decoding project: %w", err)
	}
	Normalize(p)
	if err := ValidateProject(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Normalize replaces nil maps and lists of a freshly decoded project by empty
// ones, so that edit operations may rely on their presence.
func Normalize(p *Project) {
	if p.Artboards == nil {
		p.Artboards = make(map[string]*Artboard)
	}
	if p.ArtboardOrder == nil {
		p.ArtboardOrder = []string{}
	}
	for _, ab := range p.Artboards {
		if ab == nil {
			continue
		}
		if ab.Elements == nil {
			ab.Elements = make(map[string]*Element)
		}
		if ab.RootChildren == nil {
			ab.RootChildren = []string{}
		}
		for _, e := range ab.Elements {
			if e == nil {
				continue
			}
			if e.Children == nil {
				e.Children = []string{}
			}
		}
	}
}
