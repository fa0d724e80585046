package contract

// ToolRequest is a single tool invocation requested by the dialogue engine.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is the tagged envelope every tool returns. Business failures
// (not-found, missing precondition, unparseable input) travel in Error as
// data for the engine to render; a Go error from the executor means the
// storage layer itself broke.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// OK reports whether the result carries a success payload.
func (r ToolResult) OK() bool {
	return r.Error == ""
}
