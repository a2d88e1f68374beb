package main

import (
	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/internal/app"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive editor window",
	Long: `Open the editor window. Keys 1-4 switch between Draw, Move, Edit Vertex
and Extrude. The config file is watched and colors and extrusion settings
are reloaded when it changes.`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return app.Run(app.Options{Config: cfg, ConfigPath: configPath, Log: log})
}
