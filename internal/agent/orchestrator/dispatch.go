package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
)

// selectHandlers orders candidates by priority and keeps the winner. The
// runner-up joins only on an exact priority tie, and fan-out never exceeds
// two: a third tied handler is dropped.
func selectHandlers(candidates []agent.Metadata) []agent.Metadata {
	ordered := make([]agent.Metadata, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	selected := ordered[:1]
	if len(ordered) >= maxFanOut && ordered[1].Priority == ordered[0].Priority {
		selected = ordered[:maxFanOut]
	}
	return selected
}

// dispatch runs the selected handlers and returns one result per handler, in
// selection order. A failing or panicking handler is replaced by a synthetic
// error result so one bad handler never sinks the whole request.
func (o *Orchestrator) dispatch(ctx context.Context, rc model.RequestContext, selected []agent.Metadata) []model.HandlerResult {
	results := make([]model.HandlerResult, len(selected))

	if len(selected) == 1 {
		results[0] = o.runOne(ctx, rc, selected[0])
		return results
	}

	var wg sync.WaitGroup
	for i, md := range selected {
		wg.Add(1)
		go func(i int, md agent.Metadata) {
			defer wg.Done()
			results[i] = o.runOne(ctx, rc, md)
		}(i, md)
	}
	wg.Wait()

	return results
}

func (o *Orchestrator) runOne(ctx context.Context, rc model.RequestContext, md agent.Metadata) (result model.HandlerResult) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "internal.agent.orchestrator.runOne: %s panicked: %v", md.Name, r)
			result = syntheticError(md.Name, fmt.Errorf("%v", r))
		}
	}()

	result, err := md.Handler.Process(ctx, rc)
	if err != nil {
		o.l.Warnf(ctx, "internal.agent.orchestrator.runOne: %s failed: %v", md.Name, err)
		return syntheticError(md.Name, err)
	}
	if result.Agent == "" {
		result.Agent = md.Name
	}
	return result
}

func syntheticError(name string, cause error) model.HandlerResult {
	result := model.NewHandlerResult(name, fmt.Sprintf("Error from %s: %v", name, cause))
	result.Metadata["error"] = true
	return result
}
