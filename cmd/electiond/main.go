package main

import (
	"context"
	"net/http"

	"electiontracker/lib/serviceutil"
	"electiontracker/lib/telemetry"
	"electiontracker/services/tracker"
)

func main() {
	telemetry.InitSlog(false)

	ctx := serviceutil.SignalContext()
	err := telemetry.SetupFromEnv(ctx, "electiond")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	cfg, err := tracker.LoadConfig("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	svc := tracker.NewService(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/elections", handleElections(svc))
	mux.HandleFunc("GET /api/stats", handleStats(svc))
	mux.HandleFunc("GET /api/states", handleStates(svc))

	serviceutil.StartHttpServer(cfg.Port, mux)
}
