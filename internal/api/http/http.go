package httpapi

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jekabolt/currency-exchange/internal/dependency"
	"github.com/jekabolt/currency-exchange/internal/metrics"
	"github.com/jekabolt/currency-exchange/internal/middleware"
)

const apiPrefix = "/api/v1/currency"

var (
	//go:embed static
	fs embed.FS

	pages = map[string]string{
		"/":             "static/swagger/index.html",
		"/swagger.json": "static/swagger/swagger.json",
	}
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Development exposes 5xx error details to clients.
	Development bool `mapstructure:"development"`
	// Host and Scheme are advertised in the API document.
	Host            string        `mapstructure:"host"`
	Scheme          string        `mapstructure:"scheme"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Server is the http server
type Server struct {
	hs      *http.Server
	ln      net.Listener
	c       *Config
	router  chi.Router
	ref     dependency.Reference
	rates   dependency.Rates
	version string
	done    chan struct{}
}

// New creates a new server
func New(config *Config, ref dependency.Reference, rates dependency.Rates, version string) *Server {
	s := &Server{
		c:       config,
		ref:     ref,
		rates:   rates,
		version: version,
		done:    make(chan struct{}),
	}
	s.router = s.setupHTTPAPI()
	return s
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Handler returns the request router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Routes exposes the route tree for documentation.
func (s *Server) Routes() chi.Routes {
	return s.router
}

// Addr returns the bound listener address, empty before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *Server) setupHTTPAPI() chi.Router {
	r := chi.NewRouter()

	timeout := s.c.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.ClientIdentifier)
	r.Use(middleware.Logger(slog.Default()))
	r.Use(chimw.Recoverer)
	r.Use(s.cors())
	r.Use(chimw.Timeout(timeout))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, ErrMethodNotAllowed)
	})

	// api documentation
	r.Get("/", s.page("text/html; charset=utf-8"))
	r.Get("/swagger.json", s.page("application/json"))

	r.Get("/healthz", s.health)
	r.Handle("/metrics", metrics.Handler())

	r.Route(apiPrefix, func(r chi.Router) {
		r.Get("/", s.getRates)
		r.Post("/search", s.search)
		r.Get("/{amount}/{fromCode}/{toCode}", s.convert)
	})

	return r
}

type pageData struct {
	Host    string
	Scheme  string
	Version string
	SpecURL string
}

func (s *Server) page(contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		tpl, err := template.ParseFS(fs, page)
		if err != nil {
			slog.Default().ErrorContext(r.Context(), "get swagger template error",
				slog.String("err", err.Error()),
			)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		if err := tpl.Execute(w, s.pageData(r)); err != nil {
			slog.Default().ErrorContext(r.Context(), "render swagger template error",
				slog.String("err", err.Error()),
			)
		}
	}
}

func (s *Server) pageData(r *http.Request) pageData {
	host := s.c.Host
	if host == "" {
		host = r.Host
	}
	scheme := s.c.Scheme
	if scheme == "" {
		scheme = "http"
	}
	version := s.version
	if version == "" {
		version = "dev"
	}
	return pageData{
		Host:    host,
		Scheme:  scheme,
		Version: version,
		SpecURL: "/swagger.json",
	}
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	ln, err := net.Listen("tcp", listenerAddr)
	if err != nil {
		return fmt.Errorf("could not listen on %s: %w", listenerAddr, err)
	}
	s.ln = ln
	s.hs = &http.Server{
		Handler:           h2c.NewHandler(s.router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("currency-exchange new listener on: http://%v", ln.Addr()))
		err := s.hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	timeout := s.c.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.hs.Shutdown(ctx)
}

// cors answers preflights and adds CORS headers for allowed origins.
func (s *Server) cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return isOriginAllowed(origin, s.c.AllowedOrigins)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	// Always allow localhost origins
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "https://localhost:") {
		return true
	}
	for _, allowedOrigin := range allowedOrigins {
		if allowedOrigin == "*" || origin == allowedOrigin {
			return true
		}
	}
	return false
}
