package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jsmin/internal/trace"
)

var traceCleanup func()

func addTraceFlags(pf *pflag.FlagSet) {
	pf.String("trace", "", "write trace events to a file (\"-\" for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson|chrome)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 disables)")
	pf.String("trace-dump", "", "write the ring buffer here on exit (ring|both modes)")
}

func runTraceCleanup() {
	if traceCleanup != nil {
		traceCleanup()
		traceCleanup = nil
	}
}

// setupTracing reads the trace flags, attaches the tracer to the command
// context and returns the function that flushes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	// флаги зарегистрированы в addTraceFlags, ошибки Get* невозможны
	output, _ := pf.GetString("trace")
	levelStr, _ := pf.GetString("trace-level")
	modeStr, _ := pf.GetString("trace-mode")
	formatStr, _ := pf.GetString("trace-format")
	ringSize, _ := pf.GetInt("trace-ring-size")
	heartbeat, _ := pf.GetDuration("trace-heartbeat")
	dumpPath, _ := pf.GetString("trace-dump")

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && output != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: output,
		RingSize:   ringSize,
		Heartbeat:  heartbeat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	span := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	ctx := trace.WithSpan(trace.WithTracer(cmd.Context(), tracer), span)
	cmd.SetContext(ctx)
	hb := trace.StartHeartbeat(tracer, heartbeat)
	started := time.Now()

	return func() {
		hb.Stop()
		span.WithExtra("elapsed", time.Since(started).String()).End("")
		if dumpPath != "" {
			if err := dumpRing(tracer, dumpPath, format); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

func dumpRing(t trace.Tracer, path string, format trace.Format) error {
	ring := trace.RingOf(t)
	if ring == nil {
		return fmt.Errorf("--trace-dump needs --trace-mode=ring or both")
	}
	if format == trace.FormatAuto {
		format = trace.FormatText
	}
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return err
	}
	if err := ring.Dump(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
