package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agents/internal/model"
)

// aggregate reduces handler results to one client-facing response. A single
// result passes through untouched; multiple results are synthesized by the
// oracle, with plain concatenation as the degraded path.
func (o *Orchestrator) aggregate(ctx context.Context, rc model.RequestContext, results []model.HandlerResult) string {
	if len(results) == 1 {
		return results[0].Response
	}

	var answers strings.Builder
	for i, r := range results {
		fmt.Fprintf(&answers, "[%d] from %s:\n%s\n\n", i+1, r.Agent, r.Response)
	}

	combined, err := o.oracle.Complete(ctx, fmt.Sprintf(synthesizePromptTemplate, rc.Message, answers.String()))
	if err != nil {
		o.l.Warnf(ctx, "internal.agent.orchestrator.aggregate: synthesis failed: %v", err)
		parts := make([]string, 0, len(results))
		for _, r := range results {
			parts = append(parts, r.Response)
		}
		return strings.Join(parts, " / ")
	}

	return strings.TrimSpace(combined)
}
