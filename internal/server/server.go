// Package server exposes the decoder as an HTTP uplink webhook.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/matthias-bs/bresser-decode/internal/profile"
	"github.com/matthias-bs/bresser-decode/pkg/bresserdecode"
)

const maxBodyBytes = 64 << 10

// Server decodes uplinks posted by a LoRaWAN network server.
type Server struct {
	profile  profile.Profile
	log      logrus.FieldLogger
	registry *prometheus.Registry
	metrics  *Metrics
}

// New returns a server decoding every uplink with p.
func New(p profile.Profile, log logrus.FieldLogger) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		profile:  p,
		log:      log,
		registry: reg,
		metrics:  NewMetrics(reg),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Instrument)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/uplink", s.handleUplink)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(logrus.Fields{"listen": addr, "profile": s.profile.Name}).Info("uplink webhook listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleUplink(w http.ResponseWriter, r *http.Request) {
	var req uplinkRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	payload, fport, err := req.payload()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := bresserdecode.WithProfile(r.Context(), s.profile)
	out := bresserdecode.DecodeUplink(ctx, bresserdecode.UplinkInput{Bytes: payload, FPort: fport}, bresserdecode.DecodeOptions{})
	s.metrics.RecordUplink(s.profile.Name, len(payload), out.OK())
	if !out.OK() {
		s.log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"bytes":      len(payload),
			"errors":     out.Errors,
		}).Warn("uplink decode failed")
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to write response")
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start),
		}).Debug("request")
	})
}
