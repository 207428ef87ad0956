package model

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/pitchside/pitchside/internal/config"
	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/model/contract"
	"github.com/pitchside/pitchside/internal/model/providers/anthropic"
	"github.com/pitchside/pitchside/internal/model/providers/gemini"
	"github.com/pitchside/pitchside/internal/model/providers/openai"
)

type registeredModel struct {
	provider Provider
	timeout  time.Duration
}

// DefaultRouter maps model names from the config registry to providers.
// Immutable after construction, safe for concurrent readers.
type DefaultRouter struct {
	models map[string]registeredModel
}

func NewRouter(cfg config.ModelsConfig) (*DefaultRouter, error) {
	r := &DefaultRouter{models: make(map[string]registeredModel)}

	for _, entry := range cfg.Registry {
		timeout, err := config.DurationOrDefault(entry.RequestTimeout, config.DefaultModelRequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", entry.Name, err)
		}

		var provider Provider
		switch entry.Provider {
		case "openai":
			provider = openai.New(entry.APIKey, entry.BaseURL)
		case "anthropic":
			provider = anthropic.New(entry.APIKey)
		case "gemini":
			p, err := gemini.New(entry.APIKey)
			if err != nil {
				return nil, fmt.Errorf("model %q: %w", entry.Name, err)
			}
			provider = p
		default:
			return nil, fmt.Errorf("model %q: unsupported provider %q", entry.Name, entry.Provider)
		}

		r.models[entry.Name] = registeredModel{provider: provider, timeout: timeout}
	}

	if len(r.models) == 0 {
		return nil, fmt.Errorf("no models configured")
	}
	return r, nil
}

func (r *DefaultRouter) Route(ctx context.Context, model string, req contract.CompletionRequest) (*contract.CompletionResponse, error) {
	entry, ok := r.models[model]
	if !ok {
		return nil, apperrors.ModelUnavailable(fmt.Sprintf("model %q not configured", model), nil)
	}

	ctx, cancel := context.WithTimeout(ctx, entry.timeout)
	defer cancel()

	req.Model = model
	start := time.Now()
	resp, err := entry.provider.Complete(ctx, req)
	if err != nil {
		slog.Warn("Completion failed",
			"provider", entry.provider.Name(),
			"model", model,
			"duration", time.Since(start),
			"query_id", logger.GetQueryID(ctx),
			"error", err)
		return nil, apperrors.MapModelError(err)
	}

	slog.Debug("Completion ok",
		"provider", entry.provider.Name(),
		"model", model,
		"duration", time.Since(start),
		"query_id", logger.GetQueryID(ctx))
	return resp, nil
}

func (r *DefaultRouter) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
