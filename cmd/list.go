package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/zooyer/dxf2path/logger"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List drawings and toolpath files in a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			} else {
				picked, err := zenity.SelectFile(zenity.Title("Open Toolpath Directory"), zenity.Directory())
				if errors.Is(err, zenity.ErrCanceled) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Select a directory first")
					return nil
				}
				if err != nil {
					return fmt.Errorf("select directory: %w", err)
				}
				dir = picked
			}

			logger.L().Info("toolpath.refresh_list", "dir", dir)
			files, err := listToolpaths(dir)
			if err != nil {
				return err
			}
			for _, name := range files {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// listToolpaths returns the regular files in dir whose names mention dxf or toolpath.
func listToolpaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if strings.Contains(name, "dxf") || strings.Contains(name, "toolpath") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
