package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pancake-labs/lead-ingest/internal/model"
	"github.com/pancake-labs/lead-ingest/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pancake webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := newStore(ctx)
		if err != nil {
			return err
		}
		ing := pipeline.NewIngestor(st)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: buildRouter(ing),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// buildRouter assembles the HTTP surface around an ingestor.
func buildRouter(ing *pipeline.Ingestor) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Pancake webhook is running")
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Post("/webhook", func(w http.ResponseWriter, req *http.Request) {
		deliveryID := uuid.NewString()
		log := zap.L().With(zap.String("delivery_id", deliveryID))

		var payload model.WebhookPayload
		if err := json.NewDecoder(req.Body).Decode(&payload); err != nil {
			log.Warn("webhook: undecodable body", zap.Error(err))
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		res := ing.Process(req.Context(), &payload)

		// A delivery with nothing actionable is frequent, expected traffic
		// and answers 200; only an unreachable store is a server failure.
		status := http.StatusOK
		if !res.OK() {
			status = http.StatusInternalServerError
		}

		log.Info("webhook: delivery processed",
			zap.String("shape", string(payload.Shape())),
			zap.Int("appended", res.Appended),
			zap.Int("skipped", res.Skipped),
			zap.Int("failed", res.Failed),
			zap.Int("status", status))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	})

	return r
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
