package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/fieldparse"
)

// intentOrder fixes the listing order in the classifier prompt. Map
// iteration order would reshuffle the prompt between calls.
var intentOrder = []model.IntentCategory{
	model.IntentProductInfo,
	model.IntentCustomerSupport,
	model.IntentGeneralQuestion,
	model.IntentSystemTesting,
}

// classify asks the oracle for an intent label. It always produces a usable
// routing decision: every failure mode collapses to the general question
// intent with agent dispatch enabled.
func (o *Orchestrator) classify(ctx context.Context, rc model.RequestContext, available map[model.IntentCategory][]agent.Metadata) (model.IntentCategory, bool) {
	prompt := fmt.Sprintf(classifyPromptTemplate, intentLines(available), rc.Message)

	reply, err := o.oracle.Complete(ctx, prompt)
	if err != nil {
		o.l.Warnf(ctx, "internal.agent.orchestrator.classify: oracle failed: %v", err)
		return model.IntentGeneralQuestion, true
	}

	fields := fieldparse.Parse(reply)
	label, _ := fields.String("intent")
	needsAgent := fields.Bool("needs_agent", true)

	switch model.IntentCategory(label) {
	case model.IntentProductInfo, model.IntentCustomerSupport,
		model.IntentGeneralQuestion, model.IntentSystemTesting:
		return model.IntentCategory(label), needsAgent
	}

	if label == model.CasualGreetingLabel {
		return model.IntentGeneralQuestion, false
	}

	o.l.Warnf(ctx, "internal.agent.orchestrator.classify: unknown label %q", label)
	return model.IntentGeneralQuestion, true
}

// directReply answers small talk without dispatching a handler.
func (o *Orchestrator) directReply(ctx context.Context, rc model.RequestContext) model.HandlerResult {
	result := model.NewHandlerResult(HandlerName, "")
	result.Metadata["intent"] = model.CasualGreetingLabel
	result.Metadata["direct_response"] = true

	reply, err := o.oracle.Complete(ctx, fmt.Sprintf(directReplyPromptTemplate, rc.Message))
	if err != nil {
		o.l.Warnf(ctx, "internal.agent.orchestrator.directReply: oracle failed: %v", err)
		result.Response = directFallbackResponse
		result.Metadata["confidence"] = 0.5
		result.Metadata["error"] = true
		return result
	}

	result.Response = strings.TrimSpace(reply)
	result.Metadata["confidence"] = 0.8
	return result
}

func intentLines(available map[model.IntentCategory][]agent.Metadata) string {
	var b strings.Builder
	for _, intent := range intentOrder {
		handlers, ok := available[intent]
		if !ok {
			continue
		}
		names := make([]string, 0, len(handlers))
		for _, md := range handlers {
			names = append(names, md.Name)
		}
		fmt.Fprintf(&b, "- %s: handled by %s\n", intent, strings.Join(names, ", "))
	}
	return b.String()
}
