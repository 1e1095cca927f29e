package commands

import (
	"context"
	"fmt"
	"os"

	"electiontracker/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var configPath *string

var rootCmd = &cobra.Command{
	Use:   "electiontracker",
	Short: "electiontracker tracks upcoming local elections across the US.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "Path to the configuration file.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newService() (*tracker.Service, error) {
	cfg, err := tracker.LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	return tracker.NewService(cfg), nil
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
