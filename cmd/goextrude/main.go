package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/internal/config"
	"github.com/philipparndt/goextrude/internal/logging"
	"github.com/philipparndt/goextrude/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "goextrude",
	Short: "Draw polygons on a ground plane and extrude them into solids",
	Long: `goextrude is an interactive 3D editor: click points on the ground plane to
outline a polygon, close it with a right click, then extrude, move and
reshape the result. The replay command runs recorded interactions headless.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
}

// loadConfig reads the config file and builds the logger it describes
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(cfg.Log, cmd.ErrOrStderr()), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
