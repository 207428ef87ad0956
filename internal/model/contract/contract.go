package contract

// Message is one role-tagged entry in a conversation transcript.
// Roles follow the provider convention: system, user, assistant, function.
type Message struct {
	Role    string          `json:"role"`
	Content string          `json:"content"`
	CallID  string          `json:"call_id,omitempty"`
	Calls   []*FunctionCall `json:"calls,omitempty"`
}

type CompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []Message     `json:"messages"`
	Functions []FunctionDef `json:"functions,omitempty"`
}

// FunctionDef is the serialized form of a registered function sent to the model.
type FunctionDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// CompletionResponse carries either free text or a structured call decision.
type CompletionResponse struct {
	Content string          `json:"content"`
	Calls   []*FunctionCall `json:"calls,omitempty"`
}

// FunctionCall is the model's decision to invoke a named function.
// Arguments is the raw JSON object produced by the model, unvalidated.
type FunctionCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}
