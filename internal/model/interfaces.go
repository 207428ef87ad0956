package model

import (
	"context"

	"github.com/pitchside/pitchside/internal/model/contract"
)

// Provider is one upstream completion backend.
type Provider interface {
	Complete(ctx context.Context, req contract.CompletionRequest) (*contract.CompletionResponse, error)
	Name() string
}

// Router resolves a model name to a provider and forwards the request.
type Router interface {
	Route(ctx context.Context, model string, req contract.CompletionRequest) (*contract.CompletionResponse, error)
	ListModels() []string
}
