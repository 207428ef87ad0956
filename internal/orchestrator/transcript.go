package orchestrator

import (
	"encoding/json"

	"github.com/pitchside/pitchside/internal/model/contract"
)

// transcript is the append-only conversation for one query's lifecycle.
// It is discarded when the query resolves; no session state survives it.
type transcript struct {
	messages []contract.Message
}

func newTranscript(systemPrompt, userQuery string) *transcript {
	return &transcript{
		messages: []contract.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userQuery},
		},
	}
}

func (t *transcript) appendAssistantText(content string) {
	t.messages = append(t.messages, contract.Message{Role: "assistant", Content: content})
}

func (t *transcript) appendAssistantCall(call *contract.FunctionCall) {
	t.messages = append(t.messages, contract.Message{
		Role:  "assistant",
		Calls: []*contract.FunctionCall{call},
	})
}

func (t *transcript) appendFunctionResult(callID, body string) {
	t.messages = append(t.messages, contract.Message{
		Role:    "function",
		CallID:  callID,
		Content: body,
	})
}

// appendValidationFailure feeds a rejected call back to the model as a
// function-role message so it can correct itself on the re-prompt.
func (t *transcript) appendValidationFailure(call *contract.FunctionCall, reason string) {
	body, _ := json.Marshal(map[string]string{
		"error": reason,
		"hint":  "call one of the listed functions and supply every required parameter with the declared type",
	})
	t.appendAssistantCall(call)
	t.appendFunctionResult(call.ID, string(body))
}
