package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/comps-engine/internal/engine"
	"github.com/sells-group/comps-engine/internal/input"
	"github.com/sells-group/comps-engine/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the appraisal HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng := engine.New(cfg.Engine)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Post("/v1/appraisals", func(w http.ResponseWriter, req *http.Request) {
			handleAppraisal(eng, cfg.Engine.MaxComparables, w, req)
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownGracefully(srv, shutdownTimeout)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// shutdownTimeout bounds the drain window for in-flight requests.
const shutdownTimeout = 10 * time.Second

// shutdownGracefully drains in-flight requests on a fresh context. The signal
// context is already canceled by the time shutdown starts, so reusing it would
// abort the drain immediately.
func shutdownGracefully(srv *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Warn("server shutdown did not complete cleanly", zap.Error(err))
	}
}

func handleAppraisal(eng *engine.Engine, maxComparables int, w http.ResponseWriter, req *http.Request) {
	raw, err := readBody(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	doc, err := input.Parse(raw, maxComparables)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	sensitivity := req.URL.Query().Get("sensitivity") == "true"

	result, err := eng.Analyze(req.Context(), &doc.Subject, doc.Comparables, &doc.MarketParameters, engine.Options{
		Sensitivity: sensitivity,
	})
	if err != nil {
		var cerr *model.ConfigurationError
		var ierr *model.InsufficientDataError
		if eris.As(err, &cerr) || eris.As(err, &ierr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		zap.L().Error("appraisal failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func readBody(req *http.Request) ([]byte, error) {
	defer req.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(io.LimitReader(req.Body, maxRequestBytes))
	if err != nil {
		return nil, eris.Wrap(err, "serve: read request body")
	}
	if len(raw) == 0 {
		return nil, eris.New("serve: empty request body")
	}
	return raw, nil
}

// maxRequestBytes bounds request bodies; comparable sets are small.
const maxRequestBytes = 4 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
