package orchestrator

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/pitchside/pitchside/internal/errors"
	"github.com/pitchside/pitchside/internal/function"
	"github.com/pitchside/pitchside/internal/function/builtin"
	"github.com/pitchside/pitchside/internal/model/contract"
	"github.com/pitchside/pitchside/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routerStep struct {
	resp *contract.CompletionResponse
	err  error
}

// fakeRouter replays a script of completion responses and records every
// request it receives.
type fakeRouter struct {
	script   []routerStep
	requests []contract.CompletionRequest
}

func (f *fakeRouter) Route(ctx context.Context, model string, req contract.CompletionRequest) (*contract.CompletionResponse, error) {
	f.requests = append(f.requests, req)
	if len(f.script) == 0 {
		return nil, apperrors.ModelUnavailable("script exhausted", nil)
	}
	step := f.script[0]
	f.script = f.script[1:]
	return step.resp, step.err
}

func (f *fakeRouter) ListModels() []string { return []string{"fake"} }

func newOrchestrator(t *testing.T, router *fakeRouter) *Orchestrator {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Seed(ctx))

	reg := function.NewRegistry()
	require.NoError(t, builtin.Bind(reg, function.DefaultCatalog(), db))

	return New(reg, router, Options{
		Model:                  "fake",
		SystemPrompt:           "You are a sports analytics assistant.",
		StoreTimeout:           time.Second,
		MaxCorrectiveReprompts: 1,
	})
}

func insightsCall(args string) *contract.CompletionResponse {
	return &contract.CompletionResponse{
		Calls: []*contract.FunctionCall{{ID: "call_1", Name: "get_team_insights", Arguments: args}},
	}
}

func TestAnswer_DirectTextResponse(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: &contract.CompletionResponse{Content: "Football is played with eleven players a side."}},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "How many players are on a football team?")
	require.NoError(t, err)
	assert.Equal(t, StateDone, outcome.State)
	assert.Empty(t, outcome.Function)
	assert.Equal(t, "Football is played with eleven players a side.", outcome.Answer)

	require.Len(t, router.requests, 1)
	assert.Len(t, router.requests[0].Functions, 4, "schema must accompany the first completion")
}

func TestAnswer_FunctionCallThenSummary(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: insightsCall(`{"team_name":"Lansdowne"}`)},
		{resp: &contract.CompletionResponse{Content: "Lansdowne scored 65 goals this season but remain weak on set pieces."}},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "What are the strengths and weaknesses of Lansdowne?")
	require.NoError(t, err)
	assert.Equal(t, StateDone, outcome.State)
	assert.Equal(t, "get_team_insights", outcome.Function)
	assert.Contains(t, outcome.Answer, "65")
	assert.Contains(t, outcome.Answer, "set pieces")

	// The second completion must carry the function result back to the model.
	require.Len(t, router.requests, 2)
	messages := router.requests[1].Messages
	last := messages[len(messages)-1]
	assert.Equal(t, "function", last.Role)
	assert.Contains(t, last.Content, `"scored":65`)
	assert.Contains(t, last.Content, "Weak on set pieces")
}

func TestAnswer_NotFoundStillReachesDone(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: insightsCall(`{"team_name":"Nonexistent FC"}`)},
		{resp: &contract.CompletionResponse{Content: "I have no data for Nonexistent FC."}},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "Tell me about Nonexistent FC")
	require.NoError(t, err)
	assert.Equal(t, StateDone, outcome.State)
	assert.Contains(t, outcome.Answer, "no data")

	messages := router.requests[1].Messages
	last := messages[len(messages)-1]
	assert.Contains(t, last.Content, `"found":false`)
}

func TestAnswer_UnknownFunctionRecoversAfterReprompt(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: &contract.CompletionResponse{Calls: []*contract.FunctionCall{{ID: "call_1", Name: "get_weather", Arguments: `{}`}}}},
		{resp: insightsCall(`{"team_name":"Lansdowne"}`)},
		{resp: &contract.CompletionResponse{Content: "Lansdowne lead the league."}},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "How is Lansdowne doing?")
	require.NoError(t, err)
	assert.Equal(t, StateDone, outcome.State)
	assert.Equal(t, "get_team_insights", outcome.Function)
	require.Len(t, router.requests, 3)

	// The re-prompt must describe the rejected call to the model.
	messages := router.requests[1].Messages
	last := messages[len(messages)-1]
	assert.Equal(t, "function", last.Role)
	assert.Contains(t, last.Content, "get_weather")
}

func TestAnswer_UnknownFunctionFailsAfterOneReprompt(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: &contract.CompletionResponse{Calls: []*contract.FunctionCall{{ID: "call_1", Name: "get_weather", Arguments: `{}`}}}},
		{resp: &contract.CompletionResponse{Calls: []*contract.FunctionCall{{ID: "call_2", Name: "get_forecast", Arguments: `{}`}}}},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "How is Lansdowne doing?")
	require.Error(t, err)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "ErrUnknownFunction", outcome.ErrKind)
	assert.Equal(t, FailureMessage, outcome.Answer)
	assert.Len(t, router.requests, 2, "exactly one corrective re-prompt")
}

func TestAnswer_MissingArgumentFailsAfterOneReprompt(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{resp: insightsCall(`{}`)},
		{resp: insightsCall(`{}`)},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "How is Lansdowne doing?")
	require.Error(t, err)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "ErrInvalidArgument", outcome.ErrKind)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestAnswer_ModelTimeoutFailsCleanly(t *testing.T) {
	router := &fakeRouter{script: []routerStep{
		{err: apperrors.ModelUnavailable("completion timed out", context.DeadlineExceeded)},
	}}
	orch := newOrchestrator(t, router)

	outcome, err := orch.Answer(context.Background(), "How is Lansdowne doing?")
	require.Error(t, err)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "ErrModelUnavailable", outcome.ErrKind)
	assert.Equal(t, FailureMessage, outcome.Answer)
	assert.NotContains(t, outcome.Answer, "timed out", "no raw error text for the user")
}

func TestAnswer_CancelledContext(t *testing.T) {
	router := &fakeRouter{}
	orch := newOrchestrator(t, router)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := orch.Answer(ctx, "How is Lansdowne doing?")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, outcome)
	assert.Empty(t, router.requests)
}

func TestAnswer_SameQueryDispatchesSameFunction(t *testing.T) {
	run := func() (*Outcome, string) {
		router := &fakeRouter{script: []routerStep{
			{resp: insightsCall(`{"team_name":"Lansdowne"}`)},
			{resp: &contract.CompletionResponse{Content: "Lansdowne are top of the table."}},
		}}
		orch := newOrchestrator(t, router)
		outcome, err := orch.Answer(context.Background(), "How is Lansdowne doing?")
		require.NoError(t, err)
		messages := router.requests[1].Messages
		return outcome, messages[len(messages)-1].Content
	}

	first, firstResult := run()
	second, secondResult := run()
	assert.Equal(t, first.Function, second.Function)
	assert.Equal(t, firstResult, secondResult, "unchanged store yields identical retrieved data")
}
