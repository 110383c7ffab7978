package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	dxf "github.com/zooyer/dxf2path"
	"github.com/zooyer/dxf2path/config"
	"github.com/zooyer/dxf2path/entities"
	"github.com/zooyer/dxf2path/utils"
)

func infoCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "info file",
		Short: "Show units, entity counts and extents of a DXF drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dxf.Open(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), doc, *cfg)
			return nil
		},
	}
}

func printInfo(w io.Writer, doc *dxf.Document, cfg config.Config) {
	var (
		counts = make(map[string]int)
		closed int
		parsed = make(map[string]bool)
	)
	for _, name := range entities.Registered() {
		parsed[name] = true
	}
	for _, e := range doc.Entities {
		counts[e.Type()]++
		if c, ok := e.(interface{ Closed() bool }); ok && c.Closed() {
			closed++
		}
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	fmt.Fprintf(w, "units:    %s (scale %g)\n", doc.Units, cfg.Scales.Scale(doc.Units))
	fmt.Fprintf(w, "blocks:   %d\n", len(doc.Blocks))
	fmt.Fprintf(w, "entities: %d\n", len(doc.Entities))
	for _, t := range types {
		if parsed[t] {
			fmt.Fprintf(w, "  %-12s %d\n", t, counts[t])
		} else {
			fmt.Fprintf(w, "  %-12s %d (not parsed)\n", t, counts[t])
		}
	}
	fmt.Fprintf(w, "closed:   %d\n", closed)

	box := utils.DocumentBBox(doc)
	size := utils.Size(box)
	fmt.Fprintf(w, "extents:  %v - %v (%g x %g x %g)\n", box.Min, box.Max, size.X, size.Y, size.Z)
}
