package validator

import (
	"context"
	"fmt"
	"time"

	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/fieldparse"
)

// RunAll replays every suite case sequentially, in corpus order. Sequential
// replay keeps the runs comparable: concurrent cases would contend for the
// oracle's rate budget and skew latencies.
func (v *Validator) RunAll(ctx context.Context) SuiteResult {
	start := time.Now()
	result := SuiteResult{Cases: make([]CaseResult, 0, len(v.suite))}

	for _, tc := range v.suite {
		cr := v.RunCase(ctx, tc)
		result.Cases = append(result.Cases, cr)
		switch cr.Status {
		case StatusPass:
			result.Passed++
		case StatusFail:
			result.Failed++
		default:
			result.Errored++
		}
	}

	result.Total = len(result.Cases)
	if result.Total > 0 {
		result.PassRate = float64(result.Passed) / float64(result.Total)
	}
	result.TotalTimeMs = time.Since(start).Milliseconds()

	v.l.Infof(ctx, "internal.agent.validator.RunAll: total=%d passed=%d failed=%d errored=%d total_ms=%d",
		result.Total, result.Passed, result.Failed, result.Errored, result.TotalTimeMs)

	return result
}

// RunCase replays one case: ask the answering handler, then judge the reply.
func (v *Validator) RunCase(ctx context.Context, tc TestCase) (cr CaseResult) {
	start := time.Now()
	defer func() { cr.ProcessingTimeMs = time.Since(start).Milliseconds() }()

	cr = CaseResult{
		CaseID:   tc.ID,
		Question: tc.Question,
		Expected: tc.ExpectedAnswer,
	}

	actual, err := v.ask(ctx, tc.Question)
	if err != nil {
		cr.Status = StatusError
		cr.Error = err.Error()
		return cr
	}
	cr.Actual = actual

	verdict, err := v.compare(ctx, tc, actual)
	if err != nil {
		cr.Status = StatusError
		cr.Error = err.Error()
		return cr
	}
	cr.Verdict = verdict

	if verdict.Match && verdict.Confidence > passConfidenceThreshold {
		cr.Status = StatusPass
	} else {
		cr.Status = StatusFail
	}
	return cr
}

// Probe sends an ad hoc question through the answering handler without
// judging it. Used for spot checks outside the suite.
func (v *Validator) Probe(ctx context.Context, question string) (string, error) {
	return v.ask(ctx, question)
}

func (v *Validator) ask(ctx context.Context, question string) (string, error) {
	md, ok := v.registry.GetByName(targetHandler)
	if !ok {
		return "", fmt.Errorf("validator: target handler %q not registered", targetHandler)
	}

	result, err := md.Handler.Process(ctx, model.RequestContext{Message: question})
	if err != nil {
		return "", fmt.Errorf("validator: target handler failed: %w", err)
	}
	return result.Response, nil
}

// compare asks the oracle to judge the pair and parses its free-text reply.
// An unparseable reply yields the default failing verdict, not an error.
func (v *Validator) compare(ctx context.Context, tc TestCase, actual string) (Verdict, error) {
	prompt := fmt.Sprintf(comparePromptTemplate, tc.Question, tc.ExpectedAnswer, actual)

	reply, err := v.oracle.Complete(ctx, prompt)
	if err != nil {
		return Verdict{}, fmt.Errorf("validator: comparison failed: %w", err)
	}

	fields := fieldparse.Parse(reply)
	if _, ok := fields.String("match"); !ok {
		return Verdict{Reason: defaultVerdictReason}, nil
	}

	return Verdict{
		Match:        fields.Bool("match", false),
		Confidence:   fields.Float("confidence", 0.0),
		Differences:  fields.List("differences"),
		Similarities: fields.List("similarities"),
		Reason:       stringOr(fields, "reason", defaultVerdictReason),
	}, nil
}

func stringOr(fields fieldparse.Fields, label, def string) string {
	if s, ok := fields.String(label); ok && s != "" {
		return s
	}
	return def
}
