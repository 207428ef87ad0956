package orchestrator

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/model"
	"github.com/pitchside/pitchside/internal/model/contract"

	"github.com/oklog/ulid/v2"
)

// State is one step of the per-query state machine.
type State string

const (
	StateDrafting         State = "drafting"
	StateAwaitingDecision State = "awaiting_function_decision"
	StateDispatching      State = "dispatching"
	StateSummarizing      State = "summarizing"
	StateDone             State = "done"
	StateFailed           State = "failed"
)

// FailureMessage is the only text a caller sees on failure. Internal error
// detail goes to the log, keyed by the query ID.
const FailureMessage = "Sorry, I couldn't answer that right now. Please try again in a moment."

// Outcome is the terminal result of one query.
type Outcome struct {
	QueryID  string `json:"query_id"`
	State    State  `json:"state"`
	Answer   string `json:"answer"`
	Function string `json:"function,omitempty"`
	ErrKind  string `json:"err_kind,omitempty"`
}

type Options struct {
	Model        string
	SystemPrompt string
	StoreTimeout time.Duration
	// MaxCorrectiveReprompts bounds how often a rejected model call is fed
	// back for correction before the query fails.
	MaxCorrectiveReprompts int
}

// Orchestrator runs the two-phase model interaction for a single query:
// the model decides a function call, the host executes it, the model
// summarizes the result. Stateless across queries; safe for concurrent use.
type Orchestrator struct {
	registry *function.Registry
	router   model.Router
	opts     Options
}

func New(registry *function.Registry, router model.Router, opts Options) *Orchestrator {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 10 * time.Second
	}
	if opts.MaxCorrectiveReprompts < 0 {
		opts.MaxCorrectiveReprompts = 0
	}
	return &Orchestrator{registry: registry, router: router, opts: opts}
}

// query carries the mutable state of one Answer call.
type query struct {
	state      State
	transcript *transcript
	decision   *contract.CompletionResponse
	dispatched string
	reprompts  int
	answer     string
	failure    error
}

// Answer resolves a natural-language query to a final answer. The returned
// Outcome is always usable: on failure its Answer holds the user-safe message
// and the error carries the underlying kind for the transport layer to log.
func (o *Orchestrator) Answer(ctx context.Context, userQuery string) (*Outcome, error) {
	queryID := ulid.Make().String()
	ctx = logger.WithQueryID(ctx, queryID)
	start := time.Now()

	q := &query{state: StateDrafting}
	for q.state != StateDone && q.state != StateFailed {
		if err := ctx.Err(); err != nil {
			// Client gone: stop without synthesizing an answer.
			return nil, err
		}

		switch q.state {
		case StateDrafting:
			o.draft(ctx, q, userQuery)
		case StateAwaitingDecision:
			o.interpret(ctx, q)
		case StateDispatching:
			o.dispatch(ctx, q)
		case StateSummarizing:
			o.summarize(ctx, q)
		}
	}

	outcome := &Outcome{
		QueryID:  queryID,
		State:    q.state,
		Answer:   q.answer,
		Function: q.dispatched,
	}

	if q.state == StateFailed {
		outcome.Answer = FailureMessage
		outcome.ErrKind = apperrors.Kind(q.failure)
		slog.Error("Query failed",
			"query_id", queryID,
			"kind", outcome.ErrKind,
			"duration", time.Since(start),
			"error", q.failure)
		return outcome, q.failure
	}

	slog.Info("Query answered",
		"query_id", queryID,
		"function", q.dispatched,
		"duration", time.Since(start))
	return outcome, nil
}

// draft builds the initial transcript and issues the first completion.
func (o *Orchestrator) draft(ctx context.Context, q *query, userQuery string) {
	q.transcript = newTranscript(o.opts.SystemPrompt, userQuery)
	o.complete(ctx, q)
}

// complete sends the current transcript plus the function schema to the model
// and parks the response for interpretation.
func (o *Orchestrator) complete(ctx context.Context, q *query) {
	resp, err := o.router.Route(ctx, o.opts.Model, contract.CompletionRequest{
		Messages:  q.transcript.messages,
		Functions: o.registry.SchemaForModel(),
	})
	if err != nil {
		q.failure = err
		q.state = StateFailed
		return
	}

	q.decision = resp
	q.state = StateAwaitingDecision
}

// interpret routes the model's response: free text resolves the query,
// a function-call decision moves on to dispatch.
func (o *Orchestrator) interpret(_ context.Context, q *query) {
	if len(q.decision.Calls) == 0 {
		q.answer = q.decision.Content
		q.state = StateDone
		return
	}
	q.state = StateDispatching
}

// dispatch validates and executes the model's chosen call. A call the
// registry rejects earns at most one corrective re-prompt; infrastructure
// failures fail the query outright.
func (o *Orchestrator) dispatch(ctx context.Context, q *query) {
	call := q.decision.Calls[0]

	req, err := function.ParseCall(call)
	if err == nil {
		storeCtx, cancel := context.WithTimeout(ctx, o.opts.StoreTimeout)
		var result *function.Result
		result, err = o.registry.Dispatch(storeCtx, req)
		cancel()

		if err == nil {
			q.dispatched = call.Name
			q.transcript.appendAssistantCall(call)
			q.transcript.appendFunctionResult(call.ID, result.MarshalForModel())
			q.state = StateSummarizing
			return
		}
	}

	if apperrors.IsKind(err, apperrors.ErrUnknownFunction) || apperrors.IsKind(err, apperrors.ErrInvalidArgument) {
		if q.reprompts < o.opts.MaxCorrectiveReprompts {
			q.reprompts++
			slog.Warn("Re-prompting after rejected call",
				"function", call.Name,
				"attempt", q.reprompts,
				"query_id", logger.GetQueryID(ctx),
				"error", err)
			q.transcript.appendValidationFailure(call, err.Error())
			o.complete(ctx, q)
			return
		}
	}

	q.failure = err
	q.state = StateFailed
}

// summarize issues the second completion so the model can phrase the
// function result as the final answer.
func (o *Orchestrator) summarize(ctx context.Context, q *query) {
	resp, err := o.router.Route(ctx, o.opts.Model, contract.CompletionRequest{
		Messages:  q.transcript.messages,
		Functions: o.registry.SchemaForModel(),
	})
	if err != nil {
		q.failure = err
		q.state = StateFailed
		return
	}

	q.transcript.appendAssistantText(resp.Content)
	q.answer = resp.Content
	q.state = StateDone
}
