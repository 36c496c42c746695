package orchestrator

import (
	"context"
	"fmt"
	"time"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
)

// Process implements agent.Handler. This is the single entry point for
// inbound messages: every outcome, including a panic in a downstream
// handler, comes back as a HandlerResult carrying processing_time_ms.
func (o *Orchestrator) Process(ctx context.Context, rc model.RequestContext) (result model.HandlerResult, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "internal.agent.orchestrator.Process: panic: %v", r)
			result = o.catchAll(fmt.Errorf("%v", r))
		}
		if result.Metadata == nil {
			result.Metadata = make(map[string]interface{})
		}
		result.Metadata["processing_time_ms"] = time.Since(start).Milliseconds()
		err = nil
	}()

	result = o.route(ctx, rc)
	return result, nil
}

// HealthCheck implements agent.Handler.
func (o *Orchestrator) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

func (o *Orchestrator) route(ctx context.Context, rc model.RequestContext) model.HandlerResult {
	available := o.registry.AvailableIntents()

	// With nothing to route to there is nothing to classify: skip the
	// oracle call entirely and answer directly.
	if len(available) == 0 {
		result := o.directReply(ctx, rc)
		result.Metadata["note"] = "no handlers registered"
		return result
	}

	intent, needsAgent := o.classify(ctx, rc, available)
	if !needsAgent {
		return o.directReply(ctx, rc)
	}

	candidates := o.registry.FindByIntent(intent)
	if len(candidates) == 0 {
		result := o.directReply(ctx, rc)
		result.Metadata["note"] = fmt.Sprintf("no handler for intent %s", intent)
		return result
	}

	selected := selectHandlers(candidates)
	results := o.dispatch(ctx, rc, selected)
	response := o.aggregate(ctx, rc, results)

	names := make([]string, 0, len(selected))
	for _, md := range selected {
		names = append(names, md.Name)
	}

	result := model.HandlerResult{Response: response, Agent: HandlerName, Metadata: make(map[string]interface{})}
	if len(results) == 1 {
		result.Agent = results[0].Agent
	}
	result.Metadata["intent"] = string(intent)
	result.Metadata["selected_agents"] = names
	result.Metadata["agent_responses"] = results
	result.Metadata["confidence"] = 0.9
	return result
}

// catchAll is the last-resort result: the client always gets a reply, never
// a transport-level failure caused by routing internals.
func (o *Orchestrator) catchAll(cause error) model.HandlerResult {
	result := model.NewHandlerResult(HandlerName, fmt.Sprintf(catchAllResponseFormat, cause, cause))
	result.Metadata["confidence"] = 0.0
	result.Metadata["error"] = true
	return result
}
