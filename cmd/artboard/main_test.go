package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns its trimmed output.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), "artboard %s", strings.Join(args, " "))
	return strings.TrimSpace(out.String())
}

func workflow(t *testing.T, storePath string) {
	s := []string{"--store", storePath}
	with := func(args ...string) []string {
		return append(args, s...)
	}
	p := run(t, with("new", "Landing")...)
	require.NotEmpty(t, p)
	ab := run(t, with("add-artboard", p, "Desktop", "--width", "1200")...)
	require.NotEmpty(t, ab)
	hero := run(t, with("add", p, ab, "section")...)
	txt := run(t, with("add", p, ab, "text", "--parent", hero)...)
	require.NotEmpty(t, txt)
	run(t, with("style", p, ab, txt, "font-size: 18px; color: red")...)
	run(t, with("style", p, ab, txt, "font-size: 14px", "--breakpoint", "tablet")...)
	//
	resolved := run(t, with("resolve", p, ab, txt, "--breakpoint", "mobile")...)
	t.Logf("\n%s", resolved)
	assert.Regexp(t, `font-size:\s+14px\s+\(tablet\)`, resolved)
	assert.Regexp(t, `color:\s+red\s+\(desktop\)`, resolved)
	//
	tree := run(t, with("tree", p)...)
	t.Logf("\n%s", tree)
	assert.Contains(t, tree, "<section "+hero)
	assert.Contains(t, tree, "<text "+txt)
	//
	css := run(t, with("export", p, ab, "--format", "css")...)
	assert.Contains(t, css, "@media (max-width: 1024px)")
	html := run(t, with("export", p, ab)...)
	assert.Contains(t, html, `<section id="el-`+hero+`"`)
	//
	assert.Equal(t, p, run(t, with("list")...))
}

func TestFileStoreWorkflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.cmd")
	defer teardown()
	//
	workflow(t, t.TempDir())
}

func TestSQLiteWorkflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.cmd")
	defer teardown()
	//
	workflow(t, filepath.Join(t.TempDir(), "projects.db"))
}

func TestTracksResize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.cmd")
	defer teardown()
	//
	out := run(t, "tracks", "resize", "1fr 1fr", "--sizes", "100,100", "--delta", "50")
	assert.Equal(t, "1.5fr 0.5fr", out)
	out = run(t, "tracks", "resize", "200px 1fr", "--sizes", "200px, 300px", "--delta", "40", "--zoom", "2")
	assert.Equal(t, "220px 0.93fr", out)
}

func TestPositionCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.cmd")
	defer teardown()
	//
	dir := t.TempDir()
	p := run(t, "new", "x", "--store", dir)
	ab := run(t, "add-artboard", p, "A", "--store", dir)
	box := run(t, "add", p, ab, "container", "--store", dir)
	run(t, "position", p, ab, box, "absolute", "--top", "10px", "--left", "5%", "--store", dir)
	css := run(t, "export", p, ab, "--format", "css", "--store", dir)
	assert.Contains(t, css, "position: absolute;")
	assert.Contains(t, css, "top: 10px;")
	assert.Contains(t, css, "left: 5%;")
	assert.NotRegexp(t, `[^-]bottom:`, css)
	//
	run(t, "position", p, ab, box, "static", "--store", dir)
	css = run(t, "export", p, ab, "--format", "css", "--store", dir)
	assert.NotContains(t, css, "position:")
	assert.NotContains(t, css, "top: 10px;")
}

func TestUnknownExportFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "artboard.cmd")
	defer teardown()
	//
	dir := t.TempDir()
	p := run(t, "new", "x", "--store", dir)
	ab := run(t, "add-artboard", p, "A", "--store", dir)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"export", p, ab, "--format", "pdf", "--store", dir})
	assert.Error(t, root.Execute())
}
