package entities

import (
	"bytes"
	"encoding/json"
)

// ToolkitResult is the decoded reply from the GitHub toolkit service. The
// response field is either a JSON string holding the final answer text, or
// an object whose output field holds it.
type ToolkitResult struct {
	Response json.RawMessage `json:"response"`
}

func NewToolkitResult(rawJSON []byte) (*ToolkitResult, error) {
	var result ToolkitResult
	if err := json.Unmarshal(rawJSON, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Text returns the response as the answer text. A JSON string decodes to
// its value; anything else is returned as compact JSON so the caller always
// has something to stream.
func (r *ToolkitResult) Text() string {
	var s string
	if err := json.Unmarshal(r.Response, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, r.Response); err != nil {
		return string(r.Response)
	}
	return buf.String()
}

// Output returns the output field of an object-shaped response, or "" when
// the response carries none.
func (r *ToolkitResult) Output() string {
	var payload struct {
		Output string `json:"output"`
	}
	if err := json.Unmarshal(r.Response, &payload); err != nil {
		return ""
	}
	return payload.Output
}

// ToolInvocation is one tool call made by the agent, serialized upstream as
// a JSON string inside a message's content field. It is parsed transiently
// for display and never persisted.
type ToolInvocation struct {
	ToolName   string          `json:"tool_name"`
	ToolInput  json.RawMessage `json:"tool_input"`
	ToolOutput json.RawMessage `json:"tool_output"`
}

// ParseToolInvocation decodes a message content string. The content must be
// valid JSON or the invocation is not displayable.
func ParseToolInvocation(content string) (*ToolInvocation, error) {
	var inv ToolInvocation
	if err := json.Unmarshal([]byte(content), &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// InputJSON returns the tool input pretty-printed with a two space indent.
func (t *ToolInvocation) InputJSON() string {
	return prettyJSON(t.ToolInput)
}

// OutputText returns the tool output: raw when it is a JSON string,
// pretty-printed otherwise.
func (t *ToolInvocation) OutputText() string {
	var s string
	if err := json.Unmarshal(t.ToolOutput, &s); err == nil {
		return s
	}
	return prettyJSON(t.ToolOutput)
}

func prettyJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
