package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"electiontracker/lib/configutil"

	"github.com/lmittmann/tint"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

var active struct {
	traces  *trace.TracerProvider
	metrics *metric.MeterProvider
}

// InitSlog installs a tint handler on the default logger.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// SetupFromEnv searches up the filesystem from the cwd for a
// telemetry.json5 config and sets up the otel providers from it. Not
// having one is fine, traces and metrics simply stay on the no-op
// providers.
func SetupFromEnv(ctx context.Context, serviceName string) error {
	config, err := configutil.ReadRecursively[Config]("telemetry.json5")
	if os.IsNotExist(err) {
		slog.Debug("no telemetry.json5 found, otel export disabled")
		return nil
	}
	if err != nil {
		return err
	}
	return Setup(ctx, serviceName, config)
}

func Setup(ctx context.Context, serviceName string, config Config) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName)
	if err != nil {
		return err
	}

	traceProvider, err := newTraceProvider(ctx, r, config)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(traceProvider)
	active.traces = traceProvider

	meterProvider, err := newMetricProvider(ctx, r, config)
	if err != nil {
		return err
	}
	otel.SetMeterProvider(meterProvider)
	active.metrics = meterProvider

	return nil
}

func Shutdown(ctx context.Context) error {
	var errlist []error
	if active.traces != nil {
		err := active.traces.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
		active.traces = nil
	}
	if active.metrics != nil {
		err := active.metrics.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
		active.metrics = nil
	}
	return errors.Join(errlist...)
}
