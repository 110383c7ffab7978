package config

import (
	"errors"
	"fmt"

	"github.com/zooyer/dxf2path/toolpath"
)

var ErrInvalid = errors.New("invalid config")

// Error wraps a configuration failure with the operation and file involved.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Config holds the settings the command line tool applies to every extraction.
type Config struct {
	FrameID         string // frame the toolpath is expressed in
	Layer           string
	Tolerance       float64
	DetectSeed      bool
	SkipUnsupported bool
	ExplodeInserts  bool
	Vertices        bool
	Scales          toolpath.ScaleTable
}

func Default() Config {
	return Config{
		FrameID:   "implant",
		Tolerance: toolpath.Tolerance,
		Scales:    toolpath.DefaultScales(),
	}
}

func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", ErrInvalid, c.Tolerance)
	}
	scales := map[string]float64{
		"unitless":   c.Scales.Unitless,
		"millimeter": c.Scales.Millimeter,
		"meter":      c.Scales.Meter,
		"other":      c.Scales.Other,
	}
	for name, v := range scales {
		if v <= 0 {
			return fmt.Errorf("%w: scale %s must be positive, got %g", ErrInvalid, name, v)
		}
	}
	return nil
}

// Options converts the config to extraction options.
func (c Config) Options() []toolpath.Option {
	opts := []toolpath.Option{
		toolpath.WithTolerance(c.Tolerance),
		toolpath.WithScales(c.Scales),
	}
	if c.Layer != "" {
		opts = append(opts, toolpath.OnLayer(c.Layer))
	}
	if c.DetectSeed {
		opts = append(opts, toolpath.DetectSeed())
	}
	if c.SkipUnsupported {
		opts = append(opts, toolpath.SkipUnsupported())
	}
	if c.ExplodeInserts {
		opts = append(opts, toolpath.ExplodeInserts())
	}
	if c.Vertices {
		opts = append(opts, toolpath.WithVertices())
	}
	return opts
}
