package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/invoicesplit/internal/config"
	"github.com/mmynk/invoicesplit/internal/metrics"
	"github.com/mmynk/invoicesplit/internal/middleware"
	"github.com/mmynk/invoicesplit/internal/quote"
	"github.com/mmynk/invoicesplit/internal/service"
	"github.com/mmynk/invoicesplit/internal/storage/sqlite"
	"github.com/mmynk/invoicesplit/internal/validation"
	"github.com/mmynk/invoicesplit/pkg/api"
	"github.com/mmynk/invoicesplit/pkg/logging"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	var m *metrics.Metrics
	registry := prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
		m.Preload()
	}

	engine := &quote.Engine{
		Validator:         validation.Validator{Strict: cfg.StrictNumbers},
		DescriptionPrefix: cfg.DescriptionPrefix,
	}
	slog.Info("Quote engine configured",
		"strict_numbers", cfg.StrictNumbers,
		"description_prefix", cfg.DescriptionPrefix,
	)

	mux := http.NewServeMux()

	// Register Connect service
	invoicePath, invoiceHandler := api.NewInvoiceServiceHandler(
		service.NewInvoiceService(store, engine, m),
		connect.WithInterceptors(
			middleware.ClientIdentity(),
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(m),
		),
	)
	mux.Handle(invoicePath, invoiceHandler)

	if cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if err := mountStatic(mux, cfg.StaticPath); err != nil {
		return err
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(requestLogger(corsMiddleware(mux)), &http2.Server{})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// mountStatic serves the browser frontend from dir when it exists.
func mountStatic(mux *http.ServeMux, dir string) error {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve static path: %w", err)
	}
	if info, err := os.Stat(staticDir); err != nil || !info.IsDir() {
		slog.Warn("Static directory not found, frontend disabled", "path", staticDir)
		return nil
	}
	slog.Info("Serving static files", "path", staticDir)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		// Unknown RPC paths must not fall through to the frontend
		if strings.HasPrefix(r.URL.Path, "/invoicesplit.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	})
	return nil
}

// requestLogger logs non-RPC HTTP requests at debug level; RPCs are
// logged by the Connect interceptor.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		if strings.HasPrefix(r.URL.Path, "/"+api.InvoiceServiceName+"/") {
			return
		}
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, "+api.ClientIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
