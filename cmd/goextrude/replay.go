package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goextrude/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Run a recorded interaction without a window",
	Long: `Run a YAML event script against a headless scene and print the resulting
polygons with their vertex and index buffers and measurements.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	session, err := replay.Run(script, cfg, log)
	if err != nil {
		return fmt.Errorf("replay failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Replay: %s (%d steps)\n", args[0], len(script.Steps))
	fmt.Fprintln(out, "==========")
	session.Report(out)
	return nil
}
