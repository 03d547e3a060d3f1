package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/artboard/boarddbg"
	"github.com/npillmayer/artboard/document"
	"github.com/npillmayer/artboard/editor"
	"github.com/npillmayer/artboard/export"
	"github.com/npillmayer/artboard/style"
	"github.com/npillmayer/artboard/tracks"
	"github.com/spf13/cobra"
)

// session loads a project into an editor, with ab as the active artboard
// (if ab is non-empty).
func (a *app) session(ctx context.Context, projectID, ab string) (*editor.Editor, error) {
	p, err := a.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ed := editor.New(p, a.opts)
	if ab != "" && !ed.SetActiveArtboard(ab) {
		return nil, fmt.Errorf("project %s has no artboard %s", projectID, ab)
	}
	return ed, nil
}

func (a *app) artboard(ctx context.Context, projectID, ab string) (*document.Artboard, error) {
	p, err := a.store.Load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	board, ok := p.Artboard(ab)
	if !ok {
		return nil, fmt.Errorf("project %s has no artboard %s", projectID, ab)
	}
	return board, nil
}

func breakpointFlag(cmd *cobra.Command, bp *string) {
	cmd.Flags().StringVarP(bp, "breakpoint", "b", "desktop", "breakpoint: desktop|laptop|tablet|mobile")
}

func (a *app) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create an empty project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := document.NewProject(args[0], a.opts.IDs)
			if err := a.store.Save(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
}

func (a *app) addArtboardCmd() *cobra.Command {
	var width, height float64
	cmd := &cobra.Command{
		Use:   "add-artboard <project> <name>",
		Short: "Add an artboard to a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := a.session(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			id := ed.AddArtboard(args[1], width, height)
			if err = a.store.Save(cmd.Context(), ed.Project()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1440, "design viewport width in px")
	cmd.Flags().Float64Var(&height, "height", 900, "design viewport height in px")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var parent string
	cmd := &cobra.Command{
		Use:   "add <project> <artboard> <type>",
		Short: "Add an element to an artboard",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := document.ParseElementType(args[2])
			if err != nil {
				return err
			}
			ed, err := a.session(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			id := ed.AddElement(t, parent)
			if id == "" {
				return fmt.Errorf("could not add %s to artboard %s", t, args[1])
			}
			if err = a.store.Save(cmd.Context(), ed.Project()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "id of the parent container")
	return cmd
}

func (a *app) styleCmd() *cobra.Command {
	var bp string
	cmd := &cobra.Command{
		Use:   "style <project> <artboard> <element> <css-declarations>",
		Short: "Set styles of an element for a breakpoint",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakpoint, err := style.ParseBreakpoint(bp)
			if err != nil {
				return err
			}
			delta, err := style.ParseDeclarations(args[3])
			if err != nil {
				return err
			}
			ed, err := a.session(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			ed.SetBreakpoint(breakpoint)
			if !ed.UpdateElement(args[2], document.StylePatch(delta)) {
				tracer().Infof("element %s unchanged", args[2])
				return nil
			}
			return a.store.Save(cmd.Context(), ed.Project())
		},
	}
	breakpointFlag(cmd, &bp)
	return cmd
}

func (a *app) positionCmd() *cobra.Command {
	var offsets [4]string
	cmd := &cobra.Command{
		Use:   "position <project> <artboard> <element> <static|relative|absolute|fixed|sticky>",
		Short: "Set the position mode and pin offsets of an element",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := document.ParsePosition(style.Property(args[3]))
			if !ok {
				return fmt.Errorf("unknown position mode %q", args[3])
			}
			var pin document.Pin
			if mode != document.Static {
				for d := document.Top; d <= document.Left; d++ {
					pin = pin.WithOffset(d, style.Property(strings.TrimSpace(offsets[d])))
				}
			}
			patch := document.Patch{}.WithPosition(mode)
			if mode == document.Static || !pin.IsEmpty() {
				patch = patch.WithPin(pin) // an empty pin clears the offsets
			}
			ed, err := a.session(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !ed.UpdateElement(args[2], patch) {
				tracer().Infof("element %s unchanged", args[2])
				return nil
			}
			return a.store.Save(cmd.Context(), ed.Project())
		},
	}
	for d := document.Top; d <= document.Left; d++ {
		cmd.Flags().StringVar(&offsets[d], d.String(), "", d.String()+" offset, e.g. 10px")
	}
	return cmd
}

func (a *app) treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <project>",
		Short: "Print the element trees of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s %q\n", p.ID, p.Name)
			for _, ab := range p.Ordered() {
				fmt.Fprint(cmd.OutOrStdout(), boarddbg.Tree(ab))
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the ids of all stored projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := a.store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func (a *app) resolveCmd() *cobra.Command {
	var bp string
	cmd := &cobra.Command{
		Use:   "resolve <project> <artboard> <element>",
		Short: "Print the effective styles of an element at a breakpoint",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			breakpoint, err := style.ParseBreakpoint(bp)
			if err != nil {
				return err
			}
			ab, err := a.artboard(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			e, ok := ab.Element(args[2])
			if !ok {
				return fmt.Errorf("artboard %s has no element %s", args[1], args[2])
			}
			for _, kv := range e.EffectiveStyles(breakpoint).Properties() {
				from, _ := style.ResolvedFrom(e.Styles, e.BreakpointStyles, breakpoint, kv.Key)
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-16s (%s)\n", kv.Key+":", kv.Value, from)
			}
			return nil
		},
	}
	breakpointFlag(cmd, &bp)
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var format, out string
	var bp string
	cmd := &cobra.Command{
		Use:   "export <project> <artboard>",
		Short: "Export an artboard as HTML, CSS or GraphViz",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ab, err := a.artboard(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return write(ab, format, bp, w)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html|css|dot")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	breakpointFlag(cmd, &bp)
	return cmd
}

func write(ab *document.Artboard, format, bp string, w io.Writer) error {
	switch strings.ToLower(format) {
	case "html":
		return export.RenderHTML(ab, w)
	case "css":
		sheet, err := export.Stylesheet(ab)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, sheet.String())
		return err
	case "dot":
		breakpoint, err := style.ParseBreakpoint(bp)
		if err != nil {
			return err
		}
		return boarddbg.ToGraphViz(ab, breakpoint, w)
	}
	return fmt.Errorf("unknown export format %q", format)
}

func (a *app) tracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks",
		Short: "Work with grid track lists",
		// track arithmetic needs neither configuration nor a store
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.initTracing()
			return nil
		},
	}
	var sizes string
	var divider int
	var delta, zoom float64
	resize := &cobra.Command{
		Use:   "resize <track-list>",
		Short: "Resize two adjacent tracks by dragging the divider between them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := tracks.Parse(args[0])
			if err != nil {
				return err
			}
			rendered, err := parseSizes(sizes)
			if err != nil {
				return err
			}
			if len(rendered) != len(list) {
				return fmt.Errorf("%d rendered sizes given for %d tracks", len(rendered), len(list))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tracks.Serialize(tracks.Resize(list, rendered, divider, delta, zoom)))
			return nil
		},
	}
	resize.Flags().StringVar(&sizes, "sizes", "", "comma separated rendered track sizes in px")
	resize.Flags().IntVar(&divider, "divider", 0, "index of the divider (0 is between tracks 1 and 2)")
	resize.Flags().Float64Var(&delta, "delta", 0, "pointer movement in screen px")
	resize.Flags().Float64Var(&zoom, "zoom", 1, "canvas zoom factor")
	cmd.AddCommand(resize)
	return cmd
}

func parseSizes(s string) ([]float64, error) {
	var sizes []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed track size %q: %w", f, err)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

