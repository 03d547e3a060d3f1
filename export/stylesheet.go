package export

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/style"
)

// ElementIDPrefix is prepended to element ids to form HTML id attributes.
// Generated ids may start with a digit, which CSS id selectors do not allow.
const ElementIDPrefix = "el-"

// Selector returns the CSS selector for element e. Elements with a class name
// that is unique within the artboard are selected by class, all others by id.
func Selector(e *document.Element, classes map[string]int) string {
	if e.ClassName != "" && classes[e.ClassName] == 1 {
		return "." + e.ClassName
	}
	return "#" + ElementIDPrefix + e.ID
}

func classUsage(ab *document.Artboard) map[string]int {
	classes := make(map[string]int, len(ab.Elements))
	for _, e := range ab.Elements {
		if e.ClassName != "" {
			classes[e.ClassName]++
		}
	}
	return classes
}

// Stylesheet creates a stylesheet for the elements of ab.
func Stylesheet(ab *document.Artboard) (*css.Stylesheet, error) {
	sheet := css.NewStylesheet()
	classes := classUsage(ab)
	var order []*document.Element
	err := document.Walk(ab, func(e *document.Element, _ int) error {
		order = append(order, e)
		if base := baseStyles(e); len(base) > 0 {
			sheet.Rules = append(sheet.Rules, rule(Selector(e, classes), base, 0))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, bp := range style.Breakpoints[1:] {
		media := css.NewRule(css.AtRule)
		media.Name = "@media"
		media.Prelude = fmt.Sprintf("(max-width: %dpx)", bp.MaxWidth())
		for _, e := range order {
			if ov := e.BreakpointStyles.At(bp); len(ov) > 0 {
				media.Rules = append(media.Rules, rule(Selector(e, classes), ov, 1))
			}
		}
		if len(media.Rules) > 0 {
			sheet.Rules = append(sheet.Rules, media)
		}
	}
	tracer().Debugf("stylesheet for artboard %s has %d top-level rules", ab.ID, len(sheet.Rules))
	return sheet, nil
}

// baseStyles returns the base styles of e, including position and pin
// offsets for positioned elements.
func baseStyles(e *document.Element) style.Set {
	s := e.Styles
	if e.Position != document.Static {
		s = s.With("position", style.Property(e.Position.String()))
	}
	pinned := document.PositionPattern[bool](e.Position).OneOf(document.PositionPatterns[bool]{
		Relative: true,
		Absolute: true,
		Fixed:    true,
		Sticky:   true,
	})
	if pinned && e.Pin != nil {
		s = s.Merge(e.Pin.Styles())
	}
	return s
}

func rule(selector string, s style.Set, level int) *css.Rule {
	r := css.NewRule(css.QualifiedRule)
	r.Prelude = selector
	r.Selectors = []string{selector}
	r.EmbedLevel = level
	for _, kv := range s.Properties() {
		r.Declarations = append(r.Declarations, &css.Declaration{
			Property: kv.Key,
			Value:    kv.Value.String(),
		})
	}
	return r
}
