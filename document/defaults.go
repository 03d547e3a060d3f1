package document

import (
	"github.com/npillmayer/artboard/style"
)

// Default styles for newly created elements. Containers are laid out as flex
// rows with neutral padding, grids get two flexible columns, and leaves size
// intrinsically.
//
// Records in this table are shared by all new elements. This is fine as
// style records are never modified in place.
var defaultStyles = map[ElementType]style.Set{
	Container: containerStyles("flex", "row"),
	Section:   containerStyles("flex", "column"),
	Stack:     containerStyles("flex", "column"),
	Grid: containerStyles("grid", "").
		With("grid-template-columns", "1fr 1fr").
		With("grid-template-rows", "auto"),
	Text: intrinsic().
		With("font-size", "16px").
		With("line-height", "1.5"),
	Heading: intrinsic().
		With("font-size", "32px").
		With("font-weight", "700").
		With("line-height", "1.2"),
	Button: intrinsic().
		With("padding-top", "8px").
		With("padding-bottom", "8px").
		With("padding-left", "16px").
		With("padding-right", "16px").
		With("background-color", "#2563eb").
		With("color", "#ffffff").
		With("cursor", "pointer"),
	Image: intrinsic().
		With("max-width", "100%").
		With("object-fit", "cover"),
	Link: intrinsic().
		With("color", "#2563eb").
		With("text-decoration", "underline"),
}

func containerStyles(display, direction string) style.Set {
	s := style.SetOf(
		style.KeyValue{Key: "display", Value: style.Property(display)},
		style.KeyValue{Key: "gap", Value: "8px"},
		style.KeyValue{Key: "padding-top", Value: "16px"},
		style.KeyValue{Key: "padding-right", Value: "16px"},
		style.KeyValue{Key: "padding-bottom", Value: "16px"},
		style.KeyValue{Key: "padding-left", Value: "16px"},
	)
	return s.With("flex-direction", style.Property(direction))
}

func intrinsic() style.Set {
	return style.SetOf(
		style.KeyValue{Key: "width", Value: "auto"},
		style.KeyValue{Key: "height", Value: "auto"},
	)
}

var defaultNames = map[ElementType]string{
	Container: "Container",
	Section:   "Section",
	Grid:      "Grid",
	Stack:     "Stack",
	Text:      "Text",
	Heading:   "Heading",
	Button:    "Button",
	Image:     "Image",
	Link:      "Link",
}

var defaultContent = map[ElementType]string{
	Text:    "Lorem ipsum dolor sit amet.",
	Heading: "Heading",
	Button:  "Button",
	Link:    "Link",
}

// DefaultStyles returns the base style record for new elements of type t.
func DefaultStyles(t ElementType) style.Set {
	return defaultStyles[t]
}

// newElement creates an element of type t with default name, class, styles
// and content.
func newElement(id string, t ElementType) *Element {
	name := defaultNames[t]
	return &Element{
		ID:        id,
		Name:      name,
		ClassName: Slugify(name),
		Type:      t,
		Position:  Static,
		Styles:    DefaultStyles(t).Clone(),
		Children:  []string{},
		Content:   defaultContent[t],
	}
}
