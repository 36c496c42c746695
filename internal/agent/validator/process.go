package validator

import (
	"context"
	"fmt"
	"strings"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
)

// Process implements agent.Handler. Three shapes of request reach this
// handler: a full-suite trigger, a message matching a suite question, or an
// ad hoc probe question.
func (v *Validator) Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error) {
	message := normalize(rc.Message)

	if message == "run_all" || message == "run all" || message == "run all tests" {
		suite := v.RunAll(ctx)
		result := model.NewHandlerResult(HandlerName, summarize(suite))
		result.Metadata["suite_result"] = suite
		return result, nil
	}

	if tc, ok := v.findCase(rc.Message); ok {
		cr := v.RunCase(ctx, tc)
		result := model.NewHandlerResult(HandlerName, summarizeCase(cr))
		result.Metadata["case_result"] = cr
		return result, nil
	}

	answer, err := v.Probe(ctx, rc.Message)
	if err != nil {
		return model.HandlerResult{}, err
	}
	result := model.NewHandlerResult(HandlerName, answer)
	result.Metadata["probe"] = true
	return result, nil
}

// HealthCheck implements agent.Handler.
func (v *Validator) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

func summarize(s SuiteResult) string {
	if s.Total == 0 {
		return "No test cases loaded."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suite finished: %d/%d passed (%.1f%%), %d failed, %d errored.\n",
		s.Passed, s.Total, s.PassRate*100, s.Failed, s.Errored)
	for _, cr := range s.Cases {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", cr.Status, cr.CaseID, cr.Question)
	}
	return strings.TrimRight(b.String(), "\n")
}

func summarizeCase(cr CaseResult) string {
	switch cr.Status {
	case StatusError:
		return fmt.Sprintf("[%s] %s: %s", cr.Status, cr.CaseID, cr.Error)
	default:
		return fmt.Sprintf("[%s] %s (confidence %.2f): %s",
			cr.Status, cr.CaseID, cr.Verdict.Confidence, cr.Verdict.Reason)
	}
}
