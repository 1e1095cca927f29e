package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"electiontracker/lib/elections"
	"electiontracker/lib/serviceutil"
	"electiontracker/lib/timezone"

	"github.com/spf13/cobra"
)

var (
	exportFormat *string
	exportOutput *string
)

func init() {
	exportFormat = exportCmd.Flags().String("format", "csv", "Export format: csv or json.")
	exportOutput = exportCmd.Flags().String("output", "", "Output file path.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [--format csv|json] [--output path]",
	Short: "Export the record store to a file.",
	Run: func(cmd *cobra.Command, args []string) {
		format := *exportFormat
		if format != "csv" && format != "json" {
			serviceutil.Fatal("unknown export format", fmt.Errorf("expected csv or json, got %q", format))
		}

		svc, err := newService()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		records, err := svc.LoadAll()
		if err != nil {
			serviceutil.Fatal("failed to load record store", err)
		}

		output := *exportOutput
		if output == "" {
			output = fmt.Sprintf("elections_export_%s.%s", timezone.Now().Format("20060102"), format)
		}

		f, err := os.Create(output)
		if err != nil {
			serviceutil.Fatal("failed to create output file", err)
		}
		defer f.Close()

		switch format {
		case "json":
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			err = enc.Encode(records)
		case "csv":
			err = elections.WriteCSV(f, records)
		}
		if err != nil {
			serviceutil.Fatal("failed to write export", err)
		}

		fmt.Printf("exported %d records to %s\n", len(records), output)
	},
}
