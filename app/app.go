package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jekabolt/currency-exchange/config"
	httpapi "github.com/jekabolt/currency-exchange/internal/api/http"
	"github.com/jekabolt/currency-exchange/internal/rates"
	"github.com/jekabolt/currency-exchange/internal/reference"
)

// App is the main application
type App struct {
	hs      *httpapi.Server
	ref     *reference.Resolver
	rates   *rates.Client
	c       *config.Config
	version string
	done    chan struct{}
	once    sync.Once
}

// New returns a new instance of App
func New(c *config.Config, version string) *App {
	return &App{
		c:       c,
		version: version,
		done:    make(chan struct{}),
	}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting currency exchange",
		slog.String("version", a.version),
	)

	a.ref = reference.New(&a.c.Reference)
	n, err := a.ref.CountEntries(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "couldn't load currency reference dataset",
			slog.String("err", err.Error()),
		)
		return err
	}
	slog.Default().InfoContext(ctx, "currency reference dataset loaded",
		slog.Int("entries", n),
	)

	a.rates = rates.New(&a.c.Rates)

	// start API server
	a.hs = httpapi.New(&a.c.HTTP, a.ref, a.rates, a.version)
	if err = a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	go func() {
		<-a.hs.Done()
		a.close()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown error",
				slog.String("err", err.Error()),
			)
		}
	}
	a.close()
}

// Addr returns the address the http server listens on.
func (a *App) Addr() string {
	if a.hs == nil {
		return ""
	}
	return a.hs.Addr()
}

func (a *App) close() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
