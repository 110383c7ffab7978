package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/config"
	"github.com/zooyer/dxf2path/logger"
	"github.com/zooyer/dxf2path/toolpath"
)

type extractFlags struct {
	format          string
	out             string
	layer           string
	detectSeed      bool
	skipUnsupported bool
	explode         bool
	vertices        bool
	pause           bool
}

func (f *extractFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text|csv|yaml")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Write points to this file instead of stdout")
	cmd.Flags().StringVar(&f.layer, "layer", "", "Only use entities on this layer")
	cmd.Flags().BoolVar(&f.detectSeed, "detect-seed", false, "Start at the entity whose start point no other entity ends on")
	cmd.Flags().BoolVar(&f.skipUnsupported, "skip-unsupported", false, "Skip entities that cannot be resolved instead of failing")
	cmd.Flags().BoolVar(&f.explode, "explode", false, "Expand block references before ordering")
	cmd.Flags().BoolVar(&f.vertices, "vertices", false, "Emit interior polyline vertices")
	cmd.Flags().BoolVar(&f.pause, "pause", false, "Wait for a key press before exiting")
}

// apply overlays the flags the user set on top of the config.
func (f extractFlags) apply(cmd *cobra.Command, cfg config.Config) config.Config {
	if cmd.Flags().Changed("layer") {
		cfg.Layer = f.layer
	}
	cfg.DetectSeed = cfg.DetectSeed || f.detectSeed
	cfg.SkipUnsupported = cfg.SkipUnsupported || f.skipUnsupported
	cfg.ExplodeInserts = cfg.ExplodeInserts || f.explode
	cfg.Vertices = cfg.Vertices || f.vertices
	return cfg
}

func extractCmd(cfg *config.Config) *cobra.Command {
	var f extractFlags

	c := &cobra.Command{
		Use:   "extract [file...]",
		Short: "Extract toolpaths from DXF or YAML toolpath files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, cfg, f)
		},
	}
	f.register(c)
	return c
}

func runExtract(cmd *cobra.Command, args []string, cfg *config.Config, f extractFlags) error {
	if f.pause {
		defer xos.PauseExit()
	}

	switch f.format {
	case "text", "csv", "yaml":
	default:
		return fmt.Errorf("unknown format %q", f.format)
	}

	if len(args) == 0 {
		file, err := zenity.SelectFile(
			zenity.Title("Open Toolpath"),
			zenity.FileFilters{
				{Name: "Toolpaths", Patterns: []string{"*.dxf", "*.yaml", "*.yml"}},
			},
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("select file: %w", err)
		}
		args = []string{file}
	}

	if f.out != "" && f.format == "yaml" && len(args) > 1 {
		return fmt.Errorf("--out with yaml format takes one input file, got %d", len(args))
	}
	if err := startOutput(cmd.OutOrStdout(), f.out, f.format); err != nil {
		return err
	}

	effective := f.apply(cmd, *cfg)
	for i, path := range args {
		points, err := loadToolpath(path, effective)
		if err != nil {
			logger.L().Error("toolpath.load_failed", "path", path, "error", err)
			return fmt.Errorf("%s: %w", path, err)
		}

		logger.L().Info("toolpath.loaded",
			"path", path,
			"points", points.Len(),
			"frame_id", effective.FrameID,
			"closed", isClosed(points, effective.Tolerance),
			"length", points.Length(),
		)
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded toolpath from %s, containing %d points\n", path, points.Len())

		if i > 0 && f.format == "yaml" {
			fmt.Fprintln(cmd.OutOrStdout(), "---")
		}
		if err := writeToolpath(cmd.OutOrStdout(), f.out, f.format, points); err != nil {
			return err
		}
	}
	return nil
}

// loadToolpath reads a YAML toolpath as is, or extracts one from a DXF drawing.
func loadToolpath(path string, cfg config.Config) (toolpath.Polyline, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return toolpath.ReadYAML(f)
	default:
		doc, err := dxf.Open(path)
		if err != nil {
			return nil, err
		}
		return toolpath.Extract(doc, cfg.Options()...)
	}
}

// isClosed compares the first and last point coordinate by coordinate.
func isClosed(points toolpath.Polyline, tol float64) bool {
	if len(points) < 3 {
		return false
	}
	first, last := points[0], points[len(points)-1]
	return xmath.Equal(first.X, last.X, tol) &&
		xmath.Equal(first.Y, last.Y, tol) &&
		xmath.Equal(first.Z, last.Z, tol)
}

// startOutput truncates the output file and writes the CSV header once, so
// every input file can be appended after it.
func startOutput(stdout io.Writer, out, format string) error {
	var header string
	if format == "csv" {
		header = csvHeader
	}
	if out == "" {
		_, err := io.WriteString(stdout, header)
		return err
	}
	return os.WriteFile(out, []byte(header), 0644)
}

func writeToolpath(stdout io.Writer, out, format string, points toolpath.Polyline) error {
	if format == "yaml" {
		if out == "" {
			return points.WriteYAML(stdout)
		}
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err = points.WriteYAML(f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	lines := formatPoints(format, points)
	if out == "" {
		_, err := io.WriteString(stdout, strings.Join(lines, ""))
		return err
	}

	for _, line := range lines {
		if err := xos.AppendFile(out, []byte(line), 0644); err != nil {
			return err
		}
	}
	return nil
}

const csvHeader = "x,y,z\n"

func formatPoints(format string, points toolpath.Polyline) []string {
	var lines = make([]string, 0, len(points))
	for _, p := range points {
		switch format {
		case "csv":
			lines = append(lines, fmt.Sprintf("%g,%g,%g\n", p.X, p.Y, p.Z))
		default:
			lines = append(lines, fmt.Sprintf("%g %g %g\n", p.X, p.Y, p.Z))
		}
	}
	return lines
}
