/*
Package boarddbg implements helpers to debug artboard element trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package boarddbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/style"
	tp "github.com/xlab/treeprint"
)

// Tree returns a printable tree of the elements of ab.
func Tree(ab *document.Artboard) string {
	header := fmt.Sprintf("Artboard %s %q (%g×%g)\n", ab.ID, ab.Name, ab.Width, ab.Height)
	p := tp.New()
	for _, id := range ab.RootChildren {
		ppt(p, ab, id)
	}
	return header + p.String()
}

func ppt(p tp.Tree, ab *document.Artboard, id string) {
	e, ok := ab.Element(id)
	if !ok {
		p.AddNode("<missing " + id + ">")
		return
	}
	label := e.String()
	if !e.BreakpointStyles.IsEmpty() {
		label += " " + e.BreakpointStyles.String()
	}
	if len(e.Children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range e.Children {
		ppt(branch, ab, ch)
	}
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	Breakpoint     style.Breakpoint
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

// ToGraphViz outputs a diagram for the element tree of an artboard. The
// diagram is in GraphViz (DOT) format. Every element is connected to a table
// of its effective styles at breakpoint bp.
func ToGraphViz(ab *document.Artboard, bp style.Breakpoint, w io.Writer) error {
	tmpl, err := template.New("board").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Breakpoint: bp}
	gparams.NodeTmpl = template.Must(template.New("elnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(elNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("eledge").Parse(elEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[string]string, len(ab.Elements))
	err = document.Walk(ab, func(e *document.Element, _ int) error {
		if err := elNode(e, w, dict, &gparams); err != nil {
			return err
		}
		if parent, ok := document.ParentOf(ab, e.ID); ok && parent != "" {
			return elEdge(dict[parent], dict[e.ID], w, &gparams)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an artboard and a testing.T, it will
// create a Graphiviz image of the element tree and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(ab *document.Artboard, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "board.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing element digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(ab, style.Desktop, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing element tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	E    *document.Element
	Name string
}

func elNode(e *document.Element, w io.Writer, dict map[string]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[e.ID] = name
	if err := gparams.NodeTmpl.Execute(w, &node{e, name}); err != nil {
		return err
	}
	styles := styleTable{Node: name, Breakpoint: gparams.Breakpoint.String(),
		Properties: e.EffectiveStyles(gparams.Breakpoint).Properties()}
	if err := gparams.StylegroupTmpl.Execute(w, styles); err != nil {
		return err
	}
	return gparams.PgedgeTmpl.Execute(w, styles)
}

type styleTable struct {
	Node       string
	Breakpoint string
	Properties []style.KeyValue
}

func elEdge(from, to string, w io.Writer, gparams *graphParamsType) error {
	return gparams.EdgeTmpl.Execute(w, []string{from, to})
}

func shortText(e *document.Element) string {
	s := e.Content
	if len(s) > 10 {
		s = s[:10] + "..."
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="{{ .Breakpoint }}" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elNodeTmpl = `{{ if .E.IsContainer }}
{{ .Name }}	[ label={{ printf "%q" .E.Name }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .E }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .Node }}_styles [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Breakpoint }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const elEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Node }} -> {{ .Node }}_styles [dir=none weight=1 style="dashed"] ;
`
