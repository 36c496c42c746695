package validator_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/agent/validator"
	"customer-support-agents/internal/model"
	"customer-support-agents/pkg/log"
)

type fakeAnswerer struct {
	answer string
	err    error
	failOn string
	delay  time.Duration
	asked  []string
}

func (f *fakeAnswerer) Name() string { return "knowledge_agent" }

func (f *fakeAnswerer) Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error) {
	f.asked = append(f.asked, rc.Message)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil || (f.failOn != "" && rc.Message == f.failOn) {
		if f.err != nil {
			return model.HandlerResult{}, f.err
		}
		return model.HandlerResult{}, errors.New("answerer down")
	}
	return model.NewHandlerResult(f.Name(), f.answer), nil
}

func (f *fakeAnswerer) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

type mockOracle struct {
	reply string
	err   error
}

func (m *mockOracle) Complete(ctx context.Context, prompt string) (string, error) {
	return m.reply, m.err
}

// keyedOracle picks its verdict by the question embedded in the prompt.
type keyedOracle struct {
	replies map[string]string
}

func (k *keyedOracle) Complete(ctx context.Context, prompt string) (string, error) {
	for key, reply := range k.replies {
		if strings.Contains(prompt, key) {
			return reply, nil
		}
	}
	return "", errors.New("no reply scripted")
}

func newValidator(answerer agent.Handler, oracle agent.Oracle, suite []validator.TestCase) *validator.Validator {
	reg := agent.NewRegistry()
	if answerer != nil {
		reg.Register(agent.Metadata{Name: answerer.Name(), Handler: answerer})
	}
	return validator.New(reg, oracle, suite, log.NewNop())
}

var sampleSuite = []validator.TestCase{
	{ID: "case_001", Question: "How much does it cost?", ExpectedAnswer: "Ten dollars."},
	{ID: "case_002", Question: "What are the hours?", ExpectedAnswer: "Nine to five."},
}

func TestLoadSuite(t *testing.T) {
	t.Run("Loads Cases In Order", func(t *testing.T) {
		suite, err := validator.LoadSuite(filepath.Join("testdata", "test_suite.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(suite) != 3 {
			t.Fatalf("expected 3 cases, got %d", len(suite))
		}
		if suite[0].ID != "case_001" || suite[2].ID != "case_003" {
			t.Errorf("unexpected order: %s, %s", suite[0].ID, suite[2].ID)
		}
	})

	t.Run("Missing File Is Not An Error", func(t *testing.T) {
		suite, err := validator.LoadSuite(filepath.Join("testdata", "nope.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if suite != nil {
			t.Errorf("expected nil suite, got %v", suite)
		}
	})
}

func TestValidator_RunCase(t *testing.T) {
	ctx := context.Background()
	tc := sampleSuite[0]

	t.Run("Pass", func(t *testing.T) {
		oracle := &mockOracle{reply: "match: true\nconfidence: 0.9\ndifferences: none\nsimilarities: price\nreason: same price stated"}
		v := newValidator(&fakeAnswerer{answer: "It costs ten dollars."}, oracle, sampleSuite)

		cr := v.RunCase(ctx, tc)
		if cr.Status != validator.StatusPass {
			t.Errorf("expected PASS, got %s (%+v)", cr.Status, cr)
		}
		if cr.Verdict.Confidence != 0.9 {
			t.Errorf("unexpected confidence: %v", cr.Verdict.Confidence)
		}
	})

	t.Run("Match With Low Confidence Fails", func(t *testing.T) {
		oracle := &mockOracle{reply: "match: true\nconfidence: 0.6\nreason: partially similar"}
		v := newValidator(&fakeAnswerer{answer: "maybe"}, oracle, sampleSuite)

		if cr := v.RunCase(ctx, tc); cr.Status != validator.StatusFail {
			t.Errorf("expected FAIL, got %s", cr.Status)
		}
	})

	t.Run("Mismatch Fails", func(t *testing.T) {
		oracle := &mockOracle{reply: "match: false\nconfidence: 0.95\nreason: different price"}
		v := newValidator(&fakeAnswerer{answer: "Twenty dollars."}, oracle, sampleSuite)

		if cr := v.RunCase(ctx, tc); cr.Status != validator.StatusFail {
			t.Errorf("expected FAIL, got %s", cr.Status)
		}
	})

	t.Run("Unparseable Judge Reply Fails With Default Verdict", func(t *testing.T) {
		oracle := &mockOracle{reply: "I think they are pretty much the same."}
		v := newValidator(&fakeAnswerer{answer: "ten"}, oracle, sampleSuite)

		cr := v.RunCase(ctx, tc)
		if cr.Status != validator.StatusFail {
			t.Errorf("expected FAIL, got %s", cr.Status)
		}
		if cr.Verdict.Reason != "Could not parse comparison" {
			t.Errorf("unexpected reason: %s", cr.Verdict.Reason)
		}
	})

	t.Run("Answerer Failure Errors", func(t *testing.T) {
		v := newValidator(&fakeAnswerer{err: errors.New("boom")}, &mockOracle{}, sampleSuite)

		cr := v.RunCase(ctx, tc)
		if cr.Status != validator.StatusError {
			t.Errorf("expected ERROR, got %s", cr.Status)
		}
		if cr.Error == "" {
			t.Error("expected error detail")
		}
	})

	t.Run("Missing Answerer Errors", func(t *testing.T) {
		v := newValidator(nil, &mockOracle{}, sampleSuite)

		if cr := v.RunCase(ctx, tc); cr.Status != validator.StatusError {
			t.Errorf("expected ERROR, got %s", cr.Status)
		}
	})

	t.Run("Judge Failure Errors", func(t *testing.T) {
		v := newValidator(&fakeAnswerer{answer: "ten"}, &mockOracle{err: errors.New("quota")}, sampleSuite)

		if cr := v.RunCase(ctx, tc); cr.Status != validator.StatusError {
			t.Errorf("expected ERROR, got %s", cr.Status)
		}
	})
}

func TestValidator_RunAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Aggregates In Corpus Order", func(t *testing.T) {
		oracle := &mockOracle{reply: "match: true\nconfidence: 0.9\nreason: same"}
		answerer := &fakeAnswerer{answer: "fine"}
		v := newValidator(answerer, oracle, sampleSuite)

		result := v.RunAll(ctx)
		if result.Total != 2 || result.Passed != 2 {
			t.Errorf("unexpected totals: %+v", result)
		}
		if result.PassRate != 1 {
			t.Errorf("unexpected pass rate: %v", result.PassRate)
		}
		if result.Cases[0].CaseID != "case_001" || result.Cases[1].CaseID != "case_002" {
			t.Errorf("cases out of order: %+v", result.Cases)
		}
		if answerer.asked[0] != "How much does it cost?" {
			t.Errorf("unexpected first question: %s", answerer.asked[0])
		}
	})

	t.Run("Mixed Statuses", func(t *testing.T) {
		suite := []validator.TestCase{
			{ID: "c1", Question: "q one", ExpectedAnswer: "a one"},
			{ID: "c2", Question: "q two", ExpectedAnswer: "a two"},
			{ID: "c3", Question: "q three", ExpectedAnswer: "a three"},
		}
		oracle := &keyedOracle{replies: map[string]string{
			"q one": "match: true\nconfidence: 0.9\nreason: same",
			"q two": "match: false\nconfidence: 0.9\nreason: different",
		}}
		// Third case never reaches the judge: the answerer fails on it.
		v := newValidator(&fakeAnswerer{answer: "fine", failOn: "q three"}, oracle, suite)

		result := v.RunAll(ctx)
		if result.Passed != 1 || result.Failed != 1 || result.Errored != 1 {
			t.Fatalf("unexpected tallies: %+v", result)
		}
		if result.PassRate != 1.0/3.0 {
			t.Errorf("unexpected pass rate: %v", result.PassRate)
		}
		statuses := []string{result.Cases[0].Status, result.Cases[1].Status, result.Cases[2].Status}
		if statuses[0] != validator.StatusPass || statuses[1] != validator.StatusFail || statuses[2] != validator.StatusError {
			t.Errorf("unexpected statuses: %v", statuses)
		}
	})

	t.Run("Records Elapsed Time", func(t *testing.T) {
		oracle := &mockOracle{reply: "match: true\nconfidence: 0.9\nreason: same"}
		v := newValidator(&fakeAnswerer{answer: "fine", delay: 5 * time.Millisecond}, oracle, sampleSuite)

		result := v.RunAll(ctx)
		if result.TotalTimeMs < 10 {
			t.Errorf("expected total time covering both cases, got %dms", result.TotalTimeMs)
		}
		for _, cr := range result.Cases {
			if cr.ProcessingTimeMs < 5 {
				t.Errorf("case %s: expected per-case time, got %dms", cr.CaseID, cr.ProcessingTimeMs)
			}
		}
	})

	t.Run("Empty Suite", func(t *testing.T) {
		v := newValidator(&fakeAnswerer{}, &mockOracle{}, nil)

		result := v.RunAll(ctx)
		if result.Total != 0 || result.PassRate != 0 {
			t.Errorf("unexpected result: %+v", result)
		}
	})
}

func TestValidator_Process(t *testing.T) {
	ctx := context.Background()
	oracle := &mockOracle{reply: "match: true\nconfidence: 0.9\nreason: same"}

	t.Run("Run All Trigger", func(t *testing.T) {
		v := newValidator(&fakeAnswerer{answer: "ok"}, oracle, sampleSuite)

		result, err := v.Process(ctx, model.RequestContext{Message: "  Run All  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.Response, "2/2 passed") {
			t.Errorf("unexpected response: %s", result.Response)
		}
		if _, ok := result.Metadata["suite_result"]; !ok {
			t.Error("expected suite_result metadata")
		}
	})

	t.Run("Suite Question Match", func(t *testing.T) {
		v := newValidator(&fakeAnswerer{answer: "ok"}, oracle, sampleSuite)

		result, err := v.Process(ctx, model.RequestContext{Message: "how much does it cost?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.Response, "case_001") {
			t.Errorf("unexpected response: %s", result.Response)
		}
	})

	t.Run("Ad Hoc Probe", func(t *testing.T) {
		answerer := &fakeAnswerer{answer: "probed answer"}
		v := newValidator(answerer, oracle, sampleSuite)

		result, err := v.Process(ctx, model.RequestContext{Message: "something else entirely"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Response != "probed answer" {
			t.Errorf("unexpected response: %s", result.Response)
		}
		if result.Metadata["probe"] != true {
			t.Errorf("expected probe metadata, got %v", result.Metadata)
		}
	})
}
