package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxf2path/config"
	"github.com/zooyer/dxf2path/logger"
)

type globalFlags struct {
	config string
	debug  bool
	log    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		g   globalFlags
		cfg config.Config
		ef  extractFlags
	)

	cmd := &cobra.Command{
		Use:          "toolpath [file...]",
		Short:        "Extract an ordered toolpath from DXF drawings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			cleanup, err := logger.Setup(logger.Config{Path: g.log, Debug: g.debug})
			if err != nil {
				return fmt.Errorf("setup logger: %w", err)
			}
			cobra.OnFinalize(func() { _ = cleanup() })

			if cfg, err = config.Load(g.config); err != nil {
				return err
			}
			logger.L().Debug("config.loaded", "path", g.config, "frame_id", cfg.FrameID)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, &cfg, ef)
		},
	}

	cmd.PersistentFlags().StringVar(&g.config, "config", "toolpath.yaml", "Config file (defaults apply when it does not exist)")
	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&g.log, "log", "", "Write JSON logs to this file instead of stderr")
	ef.register(cmd)

	cmd.AddCommand(
		extractCmd(&cfg),
		listCmd(),
		infoCmd(&cfg),
	)
	return cmd
}
