package main

import (
	"context"
	"log/slog"

	"electiontracker/cmd/electiontracker/commands"
	"electiontracker/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	err := telemetry.SetupFromEnv(context.Background(), "electiontracker")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer telemetry.Shutdown(context.Background())

	commands.ExecuteContext(context.Background())
}
