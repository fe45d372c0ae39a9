// Package bootstrap runs a long-lived process and tears it down on SIGINT or SIGTERM.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// DefaultShutdownTimeout bounds the time given to shutdown hooks.
const DefaultShutdownTimeout = 10 * time.Second

type closer struct {
	name string
	fn   func(ctx context.Context) error
}

// App runs a process and closes registered resources in reverse registration order.
type App struct {
	mu              sync.Mutex
	closers         []closer
	shutdownTimeout time.Duration
	signals         []os.Signal
	logger          *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithShutdownTimeout overrides DefaultShutdownTimeout.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		a.shutdownTimeout = d
	}
}

// WithSignals overrides the signals that start a shutdown.
func WithSignals(signals ...os.Signal) Option {
	return func(a *App) {
		a.signals = signals
	}
}

// WithLogger sets the logger used for shutdown progress.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{
		shutdownTimeout: DefaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// OnShutdown registers fn under name. Safe for concurrent use.
func (a *App) OnShutdown(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closers = append(a.closers, closer{name: name, fn: fn})
}

// Run calls run and blocks until it returns or a signal arrives.
// On a signal the closers run, then Run waits for run to return within the shutdown timeout.
// An error returned by run before any signal is returned unchanged and no closer runs.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, a.signals...)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	var runErr error
	returned := false
	select {
	case runErr = <-done:
		if ctx.Err() == nil {
			return runErr
		}
		returned = true
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", slog.Duration("timeout", a.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	closeErr := a.close(shutdownCtx)
	if !returned {
		select {
		case runErr = <-done:
		case <-shutdownCtx.Done():
			runErr = fmt.Errorf("run did not return: %w", shutdownCtx.Err())
		}
	}
	return errors.Join(closeErr, runErr)
}

func (a *App) close(ctx context.Context) error {
	a.mu.Lock()
	closers := make([]closer, len(a.closers))
	copy(closers, a.closers)
	a.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		c := closers[i]
		if err := c.fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
			continue
		}
		a.logger.Debug("closed", slog.String("name", c.name))
	}
	return errors.Join(errs...)
}
