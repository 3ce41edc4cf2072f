package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"golang.org/x/term"

	errs "github.com/amirhossein-jamali/digichron/internal/domain/error"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/dispatcher"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/state"
	"github.com/amirhossein-jamali/digichron/internal/domain/usecase/status"
	deviceadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/device"
	displayadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/display"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/terminal"
	timeadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/digichron/internal/infrastructure/config"
)

const (
	tracerName       = "github.com/amirhossein-jamali/digichron"
	schedulerBacklog = 16
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "digichron:", err)
		os.Exit(errs.ExitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return errs.NewStartupError("config", err)
	}

	appLogger, err := newLogger(cfg.Logger)
	if err != nil {
		return errs.NewStartupError("logger", err)
	}
	defer appLogger.Flush()

	sessionID := uuid.NewString()
	appLogger = appLogger.With(map[string]any{"session_id": sessionID})
	appLogger.Info("Starting digichron", map[string]any{
		"env":     cfg.Environment,
		"driver":  cfg.Persistence.Driver,
		"faces":   len(cfg.Faces),
		"dot_env": cfg.DotEnvFile,
	})

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errs.NewStartupError("terminal", errors.New("stdout is not a terminal"))
	}

	cleanup := &teardown{logger: appLogger}
	shutdown := func(cause error) error {
		if err := cleanup.run(context.Background()); err != nil {
			return errors.Join(cause, err)
		}
		return cause
	}

	tp := timeadapter.NewRealTimeProvider()

	// Open the store
	store, err := openStore(ctx, cfg.Persistence, cfg.Logger.Level, appLogger, tp)
	if err != nil {
		return shutdown(errs.NewStartupError("store", err))
	}
	cleanup.push("store close", func(context.Context) error { return store.Close() })
	states := state.NewRepository(store, appLogger)

	// Display, vibrator and status
	panel := displayadapter.NewPanel(cfg.Display.Use24Hour)
	cleanup.push("display clear", func(context.Context) error {
		panel.Clear()
		return nil
	})

	vibrator := deviceadapter.NewTerminalVibrator(os.Stderr, tp, appLogger)

	scheduler := timeadapter.NewLoopScheduler(schedulerBacklog)
	cleanup.push("scheduler close", func(context.Context) error {
		scheduler.Close()
		return nil
	})

	statusSource := deviceadapter.NewSimulatedStatus(deviceadapter.StatusConfig{
		BatteryPercent: uint8(cfg.Status.BatteryPercent),
		Charging:       cfg.Status.Charging,
		Bluetooth:      cfg.Status.Bluetooth,
		PowerSupplyDir: cfg.Status.PowerSupplyDir,
	}, appLogger)
	forwarder := status.NewForwarder(statusSource, panel, vibrator, appLogger)
	forwarder.Start()
	cleanup.push("status stop", func(context.Context) error {
		forwarder.Stop()
		return nil
	})

	// Faces and dispatcher
	faces, err := buildFaces(ctx, cfg.Faces, faceDeps{
		display:      panel,
		vibrator:     vibrator,
		timeProvider: tp,
		scheduler:    scheduler,
		logger:       appLogger,
	}, states)
	if err != nil {
		return shutdown(errs.NewStartupError("faces", err))
	}

	d, err := dispatcher.New(faces, panel, states, tp, appLogger, otel.Tracer(tracerName))
	if err != nil {
		return shutdown(errs.NewStartupError("dispatcher", err))
	}
	if err := d.Start(ctx); err != nil {
		return shutdown(errs.NewStartupError("dispatcher", err))
	}
	cleanup.push("dispatcher stop", d.Stop)

	// Run the host loop
	model := terminal.NewModel(ctx, d, panel, vibrator, statusSource, scheduler.Fired(), tp, appLogger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, runErr := program.Run()
	if runErr != nil && (errors.Is(runErr, tea.ErrProgramKilled) || errors.Is(runErr, context.Canceled)) {
		appLogger.Info("Interrupted, shutting down", nil)
		runErr = nil
	}
	if runErr != nil {
		appLogger.Error("Terminal program failed", map[string]any{"error": runErr.Error()})
	}

	err = shutdown(runErr)
	if err == nil {
		appLogger.Info("digichron exited", nil)
	}
	return err
}

func newLogger(cfg config.LoggerConfig) (coreport.Logger, error) {
	opts := logger.Options{
		Production: cfg.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Level),
	}
	if cfg.Output != "" {
		opts.OutputPaths = []string{cfg.Output}
	}
	return logger.NewZapLogger(opts)
}
