package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lbussy/portlock/internal/config"
	portlockErrors "github.com/lbussy/portlock/pkg/errors"
	"github.com/lbussy/portlock/pkg/lock"
)

// Exit codes reported to the shell
const (
	exitOK          = 0
	exitContention  = 1
	exitSystemError = 2
)

// Locker manages the single-instance lock
type Locker interface {
	Acquire() error
	Release()
}

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger *zerolog.Logger
	Locker Locker

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit func(code int)
}

// App is the main portlock application
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Locker Locker

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	exit func(code int)

	loggerSet bool
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo
	cfg.LoadFromEnvironment()

	opts := AppOptions{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
	}

	return NewApp(opts)
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config: opts.Config,
		Locker: opts.Locker,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
		exit:   opts.Exit,
	}

	if opts.Logger != nil {
		app.Logger = *opts.Logger
		app.loggerSet = true
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}

	return app
}

// Initialize sets up components not provided during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		// Config.Finalize() already returns a properly wrapped error,
		// so we don't need to wrap it again if it's our error type
		if portlockErrors.Is(err, portlockErrors.ErrInvalidConfiguration) {
			return err
		}
		return portlockErrors.Wrap(portlockErrors.ErrInvalidConfiguration, err.Error())
	}

	if !a.loggerSet {
		level := zerolog.InfoLevel
		if !a.Config.Verbose {
			level = zerolog.ErrorLevel
		}
		a.Logger = zerolog.New(zerolog.ConsoleWriter{Out: a.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		a.loggerSet = true
	}

	if a.Locker == nil {
		a.Locker = lock.New(uint16(a.Config.Port), lock.WithLogger(a.Logger))
	}

	return nil
}

// Run executes the application with the given context.
// Handles special flags, acquires the lock, and optionally holds it
// until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	// Ensure the app is fully initialised before doing any work.
	if err := a.Initialize(); err != nil {
		return err
	}

	// Handle special flags first
	if a.Config.Version {
		a.ShowVersion()
		return nil
	}

	if err := a.Locker.Acquire(); err != nil {
		// Locker.Acquire() already returns a properly wrapped error
		if portlockErrors.Is(err, portlockErrors.ErrAlreadyRunning) {
			return err
		}
		return portlockErrors.Wrap(portlockErrors.ErrLockAcquisitionFailure, err.Error())
	}

	defer a.Close()

	a.Logger.Info().Int("port", a.Config.Port).Msg("instance lock acquired; no other instance is running")

	if a.Config.Wait {
		a.Logger.Info().Msg("holding lock until interrupted")
		<-ctx.Done()
		a.Logger.Info().Msg("interrupted, releasing lock")
	}

	return nil
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "portlock %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// Close releases resources held by the App. Safe to call more than once.
func (a *App) Close() {
	if a.Locker != nil {
		a.Locker.Release()
	}
}

// exitCode maps a Run error to the process exit status, distinguishing
// contention from unexpected system failures.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case portlockErrors.Is(err, portlockErrors.ErrAlreadyRunning):
		return exitContention
	default:
		return exitSystemError
	}
}
