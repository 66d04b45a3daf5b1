package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/projective/internal/config"
	"github.com/Faultbox/projective/internal/logger"
	"github.com/Faultbox/projective/internal/meshserver"
	"github.com/Faultbox/projective/pkg/meshio"
	"github.com/Faultbox/projective/pkg/surface"
)

const defaultSegments = 64

// meshFlags are the generation options shared by info and export.
type meshFlags struct {
	u, v    *int
	shading *string
	layout  *string
	closure *string
}

func newMeshFlags(fs *flag.FlagSet) meshFlags {
	return meshFlags{
		u:       fs.Int("u", defaultSegments, "Segments along u"),
		v:       fs.Int("v", defaultSegments, "Segments along v"),
		shading: fs.String("shading", "smooth", "Normal mode: flat or smooth"),
		layout:  fs.String("layout", "block", "Buffer layout: block or interleaved"),
		closure: fs.String("closure", "auto", "Closure: auto, closed, open, open_u or open_v"),
	}
}

// surfaceConfig builds the surface section for name from the flags.
func (f meshFlags) surfaceConfig(name string) config.SurfaceConfig {
	return config.SurfaceConfig{
		Name:      name,
		USegments: *f.u,
		VSegments: *f.v,
		Shading:   *f.shading,
		Layout:    *f.layout,
		Closure:   *f.closure,
	}
}

func cmdList(w io.Writer) error {
	for _, e := range surface.Catalog() {
		fmt.Fprintf(w, "  %-10s %s\n", e.Name, e.Description)
	}
	return nil
}

func cmdInfo(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	mf := newMeshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.New("usage: surftool info [options] <surface|all>")
	}

	names := []string{fs.Arg(0)}
	if fs.Arg(0) == "all" {
		names = surface.Names()
	}

	reqs := make([]surface.Request, len(names))
	for i, name := range names {
		entry, opts, err := mf.surfaceConfig(name).Generator()
		if err != nil {
			return err
		}
		reqs[i] = surface.Request{Function: entry.Function, Options: opts, USegments: *mf.u, VSegments: *mf.v}
	}

	start := time.Now()
	bufs, err := surface.GenerateAll(context.Background(), reqs)
	if err != nil {
		return err
	}
	logger.Debug("generated", zap.Int("surfaces", len(bufs)), zap.Duration("duration", time.Since(start)))

	for i, buf := range bufs {
		printInfo(w, names[i], reqs[i].Options, buf)
	}
	return nil
}

func printInfo(w io.Writer, name string, opts surface.Options, buf *surface.VertexBuffer) {
	b := buf.Bounds()
	zero := 0
	for i := range buf.VertexCount() {
		if buf.Normal(i).IsZero() {
			zero++
		}
	}

	fmt.Fprintf(w, "Surface:   %s\n", name)
	fmt.Fprintf(w, "Grid:      %dx%d (open u: %t, open v: %t)\n", buf.Grid.U, buf.Grid.V, opts.Closure.OpenU, opts.Closure.OpenV)
	fmt.Fprintf(w, "Shading:   %s\n", opts.Shading)
	fmt.Fprintf(w, "Triangles: %d\n", buf.TriangleCount())
	fmt.Fprintf(w, "Vertices:  %d (%d zero normals)\n", buf.VertexCount(), zero)
	fmt.Fprintf(w, "Size:      %.2f KB\n", float64(buf.SizeBytes())/1024)
	fmt.Fprintf(w, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintln(w)
}

func cmdExport(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	mf := newMeshFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("usage: surftool export [options] <surface> <out.obj|out.bin>")
	}
	name, out := fs.Arg(0), fs.Arg(1)

	entry, opts, err := mf.surfaceConfig(name).Generator()
	if err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(out))
	if ext != ".obj" && ext != ".bin" {
		return fmt.Errorf("unsupported output format %q (want .obj or .bin)", ext)
	}

	buf := surface.New(entry.Function, opts).Generate(*mf.u, *mf.v)

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".obj":
		err = meshio.WriteOBJ(f, buf, name)
	case ".bin":
		err = meshio.WriteRaw(f, buf)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	logger.Info("exported",
		zap.String("surface", name),
		zap.String("path", out),
		zap.Int("triangles", buf.TriangleCount()),
	)
	fmt.Fprintf(w, "Wrote %s (%d triangles)\n", out, buf.TriangleCount())
	return f.Close()
}

func cmdConfig(w io.Writer, args []string) error {
	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

func cmdServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "Listen address")
	maxSegments := fs.Int("max", config.Default().Viewer.MaxSegments, "Largest segment count served per axis")
	if err := fs.Parse(args); err != nil {
		return err
	}

	srv := meshserver.New(*maxSegments)
	logger.Info("mesh server listening", zap.String("addr", *addr), zap.Int("max_segments", *maxSegments))
	fmt.Printf("Serving meshes on ws://%s/ws\n", *addr)
	return http.ListenAndServe(*addr, srv.Handler())
}
