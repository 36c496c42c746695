package knowledge

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
	"customer-support-agents/internal/rag"
)

// Process implements agent.Handler. Failures never surface as errors here:
// the handler degrades to a canned bilingual response so routing can still
// aggregate something useful.
func (k *Knowledge) Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error) {
	chunks, sources, err := k.retriever.RetrieveWithSources(ctx, rc.Message)
	if err != nil {
		k.l.Warnf(ctx, "internal.agent.knowledge.Process: retrieval failed: %v", err)
		return k.degraded(errorResponse, err), nil
	}

	if len(chunks) == 0 {
		result := model.NewHandlerResult(HandlerName, noContextResponse)
		result.Metadata["confidence"] = 0.0
		result.Metadata["sources"] = []string{}
		return result, nil
	}

	answer, err := k.oracle.Complete(ctx, k.buildPrompt(rc.Message, chunks, sources))
	if err != nil {
		k.l.Warnf(ctx, "internal.agent.knowledge.Process: generation failed: %v", err)
		return k.degraded(errorResponse, err), nil
	}

	result := model.NewHandlerResult(HandlerName, strings.TrimSpace(answer))
	result.Metadata["confidence"] = 0.9
	result.Metadata["sources"] = sources
	result.Metadata["chunks_used"] = len(chunks)
	return result, nil
}

// HealthCheck implements agent.Handler.
func (k *Knowledge) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

func (k *Knowledge) buildPrompt(question string, chunks []rag.Chunk, sources []string) string {
	var excerpts strings.Builder
	for i, chunk := range chunks {
		fmt.Fprintf(&excerpts, "[%d] %s\n", i+1, chunk.Text)
	}

	sourceList := "none"
	if len(sources) > 0 {
		sourceList = strings.Join(sources, "\n")
	}

	return fmt.Sprintf(answerPromptTemplate, excerpts.String(), sourceList, question)
}

func (k *Knowledge) degraded(response string, cause error) model.HandlerResult {
	result := model.NewHandlerResult(HandlerName, response)
	result.Metadata["confidence"] = 0.0
	result.Metadata["degraded"] = true
	result.Metadata["cause"] = cause.Error()
	return result
}
