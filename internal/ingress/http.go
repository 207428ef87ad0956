package ingress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pitchside/pitchside/internal/config"
	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/orchestrator"
)

// Answerer resolves one natural-language query to an outcome.
type Answerer interface {
	Answer(ctx context.Context, userQuery string) (*orchestrator.Outcome, error)
}

// HTTPServer exposes the answer operation over HTTP.
type HTTPServer struct {
	answerer Answerer
	health   func(ctx context.Context) error
	server   *http.Server
}

func NewHTTPServer(cfg config.ServerConfig, answerer Answerer, health func(ctx context.Context) error) (*HTTPServer, error) {
	readTimeout, err := config.DurationOrDefault(cfg.ReadTimeout, config.DefaultServerReadTimeout)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := config.DurationOrDefault(cfg.WriteTimeout, config.DefaultServerWriteTimeout)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := config.DurationOrDefault(cfg.IdleTimeout, config.DefaultServerIdleTimeout)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	s := &HTTPServer{
		answerer: answerer,
		health:   health,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      mux,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}

	mux.HandleFunc("/api/v1/answer", s.handleAnswer)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s, nil
}

// Start starts the HTTP server in a goroutine.
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting HTTP server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()
}

// Stop stops the HTTP server gracefully.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type answerRequest struct {
	Query string `json:"query"`
}

type answerResponse struct {
	QueryID  string `json:"query_id"`
	Answer   string `json:"answer"`
	Function string `json:"function,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

func (s *HTTPServer) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "Missing required field: query", http.StatusBadRequest)
		return
	}

	outcome, err := s.answerer.Answer(r.Context(), req.Query)
	if err != nil {
		if outcome == nil || errors.Is(err, context.Canceled) {
			// Client disconnected; nothing left to write.
			return
		}

		status := http.StatusBadGateway
		if apperrors.IsKind(err, apperrors.ErrModelUnavailable) || apperrors.IsKind(err, apperrors.ErrDataAccess) {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, answerResponse{
			QueryID: outcome.QueryID,
			Answer:  outcome.Answer,
			Kind:    outcome.ErrKind,
		})
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		QueryID:  outcome.QueryID,
		Answer:   outcome.Answer,
		Function: outcome.Function,
	})
}

func (s *HTTPServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.health != nil {
		if err := s.health(ctx); err != nil {
			slog.Warn("Health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
