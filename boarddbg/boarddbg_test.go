package boarddbg

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/idgen"
	"github.com/npillmayer/artboard/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(t *testing.T) *document.Artboard {
	gen := idgen.Sequence("")
	p := document.NewProject("dbg", gen)
	p, abID := document.AddArtboard(p, "Desktop", 1200, 800, gen)
	p, s, _ := document.AddElement(p, abID, document.Section, "", gen)
	p, _, _ = document.AddElement(p, abID, document.Heading, s, gen)
	p, b, _ := document.AddElement(p, abID, document.Button, s, gen)
	p, _ = document.UpdateElement(p, abID, b, document.StylePatch(style.Set{"width": "100%"}), style.Mobile)
	ab, ok := p.Artboard(abID)
	require.True(t, ok)
	return ab
}

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.boarddbg")
	defer teardown()
	//
	ab := board(t)
	out := Tree(ab)
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "Artboard 2 \"Desktop\""))
	assert.Equal(t, 3, strings.Count(out, "── "), "one line per element")
	assert.Contains(t, out, "mobile")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.boarddbg")
	defer teardown()
	//
	ab := board(t)
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(ab, style.Mobile, &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 2, strings.Count(dot, "[weight=1] ;"), "two parent-child edges")
	assert.Contains(t, dot, "<td>100%</td>")
	if _, err := exec.LookPath("dot"); err == nil {
		Dotty(ab, t)
	}
}
