package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/artboard/document"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var tagForType = map[document.ElementType]atom.Atom{
	document.Container: atom.Div,
	document.Section:   atom.Section,
	document.Grid:      atom.Div,
	document.Stack:     atom.Div,
	document.Text:      atom.P,
	document.Heading:   atom.H2,
	document.Button:    atom.Button,
	document.Image:     atom.Img,
	document.Link:      atom.A,
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// HTML creates an HTML fragment for ab: a div of the artboard's design width
// holding the element tree.
func HTML(ab *document.Artboard) (*html.Node, error) {
	root := element(atom.Div,
		attr("class", "artboard"),
		attr("data-artboard", ab.ID),
		attr("style", "width: "+strconv.FormatFloat(ab.Width, 'f', -1, 64)+"px"),
	)
	nodes := make(map[string]*html.Node, len(ab.Elements))
	err := document.Walk(ab, func(e *document.Element, _ int) error {
		n := node(e)
		nodes[e.ID] = n
		parent, _ := document.ParentOf(ab, e.ID)
		if p, ok := nodes[parent]; ok {
			p.AppendChild(n)
		} else {
			root.AppendChild(n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return root, nil
}

func node(e *document.Element) *html.Node {
	a, ok := tagForType[e.Type]
	if !ok {
		a = atom.Div
	}
	attrs := []html.Attribute{attr("id", ElementIDPrefix+e.ID)}
	if e.ClassName != "" {
		attrs = append(attrs, attr("class", e.ClassName))
	}
	switch e.Type {
	case document.Image:
		return element(a, append(attrs, attr("src", e.Content), attr("alt", e.Name))...)
	case document.Link:
		attrs = append(attrs, attr("href", "#"))
	}
	n := element(a, attrs...)
	if e.Content != "" && !e.IsContainer() {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.Content})
	}
	return n
}

// Page creates a complete HTML document for ab, embedding its stylesheet.
func Page(ab *document.Artboard) (*html.Node, error) {
	body, err := HTML(ab)
	if err != nil {
		return nil, err
	}
	sheet, err := Stylesheet(ab)
	if err != nil {
		return nil, err
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	h := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(element(atom.Meta, attr("name", "viewport"),
		attr("content", "width=device-width, initial-scale=1")))
	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: ab.Name})
	head.AppendChild(title)
	st := element(atom.Style)
	st.AppendChild(&html.Node{Type: html.TextNode, Data: "\n" + sheet.String() + "\n"})
	head.AppendChild(st)
	b := element(atom.Body)
	b.AppendChild(body)
	h.AppendChild(head)
	h.AppendChild(b)
	doc.AppendChild(h)
	return doc, nil
}

// RenderHTML writes a complete HTML document for ab to w.
func RenderHTML(ab *document.Artboard, w io.Writer) error {
	doc, err := Page(ab)
	if err != nil {
		return err
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering artboard %s: %w", ab.ID, err)
	}
	return nil
}
