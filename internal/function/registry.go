package function

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/model/contract"
)

// Registry holds the authoritative catalog of callable operations.
// Populated once at startup; read-only afterwards, safe for concurrent readers.
type Registry struct {
	specs    map[string]Spec
	handlers map[string]Handler
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{
		specs:    make(map[string]Spec),
		handlers: make(map[string]Handler),
	}
}

// Register binds a spec to its handler. Registration order is preserved for
// SchemaForModel.
func (r *Registry) Register(spec Spec, handler Handler) error {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return fmt.Errorf("function name is empty")
	}
	if handler == nil {
		return fmt.Errorf("function %q has no handler", name)
	}
	if !spec.Category.Valid() {
		return fmt.Errorf("function %q has unknown category %q", name, spec.Category)
	}
	for param, ps := range spec.Parameters {
		if !ps.Type.Valid() {
			return fmt.Errorf("function %q parameter %q has unknown type %q", name, param, ps.Type)
		}
	}
	if _, exists := r.specs[name]; exists {
		return apperrors.DuplicateName(name)
	}

	spec.Name = name
	r.specs[name] = spec
	r.handlers[name] = handler
	r.order = append(r.order, name)
	return nil
}

// SchemaForModel serializes the registered specs for the model-call payload.
// Pure and side-effect free; order matches registration.
func (r *Registry) SchemaForModel() []contract.FunctionDef {
	defs := make([]contract.FunctionDef, 0, len(r.order))
	for _, name := range r.order {
		spec := r.specs[name]
		defs = append(defs, contract.FunctionDef{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  parametersSchema(spec.Parameters),
		})
	}
	return defs
}

func parametersSchema(params map[string]ParamSpec) map[string]interface{} {
	properties := make(map[string]interface{}, len(params))
	var required []string
	for name, ps := range params {
		prop := map[string]interface{}{"type": string(ps.Type)}
		if ps.Description != "" {
			prop["description"] = ps.Description
		}
		properties[name] = prop
		if ps.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Spec returns the registered spec for a name.
func (r *Registry) Spec(name string) (Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Names returns registered function names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Dispatch validates a call request and invokes its handler. Validation always
// happens before the handler runs, so a bad call never touches the store.
func (r *Registry) Dispatch(ctx context.Context, req *CallRequest) (*Result, error) {
	name := strings.TrimSpace(req.Name)
	spec, ok := r.specs[name]
	if !ok {
		return nil, apperrors.UnknownFunction(name)
	}

	if err := ValidateArgs(spec.Parameters, req.Args); err != nil {
		slog.Warn("Function call rejected",
			"function", name,
			"query_id", logger.GetQueryID(ctx),
			"error", err)
		return nil, err
	}

	start := time.Now()
	result, err := r.handlers[name](ctx, req)
	if err != nil {
		slog.Error("Function handler failed",
			"function", name,
			"duration", time.Since(start),
			"query_id", logger.GetQueryID(ctx),
			"error", err)
		return nil, apperrors.MapStoreError(err)
	}

	slog.Info("Function dispatched",
		"function", name,
		"found", result.Found,
		"duration", time.Since(start),
		"query_id", logger.GetQueryID(ctx))
	return result, nil
}
