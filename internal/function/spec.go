package function

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/model/contract"
)

// ParamType is the declared wire type of one function parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
	TypeArray   ParamType = "array"
)

func (t ParamType) Valid() bool {
	switch t {
	case TypeString, TypeNumber, TypeInteger, TypeBoolean, TypeArray:
		return true
	}
	return false
}

// Category tags a spec with the query family its handler serves.
type Category string

const (
	CategoryTeamInsights    Category = "team_insights"
	CategoryLeagueStandings Category = "league_standings"
	CategoryMatchHistory    Category = "match_history"
	CategoryTeamSWOT        Category = "team_swot"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTeamInsights, CategoryLeagueStandings, CategoryMatchHistory, CategoryTeamSWOT:
		return true
	}
	return false
}

type ParamSpec struct {
	Type        ParamType `yaml:"type"`
	Required    bool      `yaml:"required"`
	Description string    `yaml:"description"`
}

// Spec is the declared contract for one callable operation.
// Immutable once registered.
type Spec struct {
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	Category    Category             `yaml:"category"`
	Parameters  map[string]ParamSpec `yaml:"parameters"`
}

// CallRequest is the model's function-call decision after argument decoding.
type CallRequest struct {
	ID   string
	Name string
	Args map[string]any
}

// ParseCall decodes the raw argument JSON from a model function call.
func ParseCall(call *contract.FunctionCall) (*CallRequest, error) {
	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return nil, apperrors.InvalidArgument("arguments", "is not a JSON object")
		}
	}
	return &CallRequest{ID: call.ID, Name: call.Name, Args: args}, nil
}

// Result is the structured outcome of a dispatched function. Found=false is
// the "not found" sentinel: a normal outcome the model summarizes, not an error.
type Result struct {
	Found   bool           `json:"found"`
	Fields  map[string]any `json:"fields,omitempty"`
	Message string         `json:"message,omitempty"`
}

// NotFound builds the sentinel result for a missing entity.
func NotFound(format string, args ...any) *Result {
	return &Result{Found: false, Message: fmt.Sprintf(format, args...)}
}

// MarshalForModel renders the result as the function-role message body.
func (r *Result) MarshalForModel() string {
	b, err := json.Marshal(r)
	if err != nil {
		return `{"found":false,"message":"result could not be encoded"}`
	}
	return string(b)
}

// Handler executes one validated call against the data store.
type Handler func(ctx context.Context, req *CallRequest) (*Result, error)
