package model

import "time"

// RequestContext carries one inbound message through a routing pass.
// It is immutable once constructed and shared read-only across every
// handler invoked for the request.
type RequestContext struct {
	Message   string
	UserID    string // optional identity; empty when anonymous
	Timestamp time.Time
}

// HandlerResult is the envelope every handler returns. The orchestrator
// never looks past these three fields.
type HandlerResult struct {
	Response string                 `json:"response"`
	Agent    string                 `json:"agent"`
	Metadata map[string]interface{} `json:"metadata"`
}

// NewHandlerResult builds a result with a non-nil metadata map.
func NewHandlerResult(agent, response string) HandlerResult {
	return HandlerResult{
		Response: response,
		Agent:    agent,
		Metadata: make(map[string]interface{}),
	}
}
