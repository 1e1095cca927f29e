package commands

import (
	"fmt"
	"strings"

	"electiontracker/lib/serviceutil"
	"electiontracker/services/tracker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record store statistics and the per-state breakdown.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}
		renderStatistics(svc)
		renderStateBreakdown(svc)
	},
}

func renderStatistics(svc *tracker.Service) {
	stats, err := svc.Statistics()
	if err != nil {
		serviceutil.Fatal("failed to load record store", err)
	}

	avg := "N/A"
	if stats.AvgRPlus != nil {
		avg = fmt.Sprintf("%.2f", *stats.AvgRPlus)
	}

	t := newTable()
	t.AppendHeader(table.Row{"Statistic", "Value"})
	t.AppendRow(table.Row{"Total elections", stats.TotalElections})
	t.AppendRow(table.Row{"Uncontested races", stats.UncontestedCount})
	t.AppendRow(table.Row{"States covered", stats.StatesCovered})
	t.AppendRow(table.Row{"Office types tracked", stats.OfficesTracked})
	t.AppendRow(table.Row{"Average R+", avg})
	t.Render()
}

func renderStateBreakdown(svc *tracker.Service) {
	summaries, err := svc.StateBreakdown()
	if err != nil {
		serviceutil.Fatal("failed to load record store", err)
	}
	if len(summaries) == 0 {
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"State", "Elections", "Uncontested", "Offices"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.State,
			s.TotalElections,
			s.UncontestedCount,
			strings.Join(s.Offices, ", "),
		})
	}
	t.Render()
}
