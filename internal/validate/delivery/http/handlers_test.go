package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/agent/validator"
	validateHTTP "customer-support-agents/internal/validate/delivery/http"
	"customer-support-agents/pkg/log"
	"customer-support-agents/pkg/response"
)

type fakeHarness struct {
	suite    []validator.TestCase
	lastCase validator.TestCase
}

func (f *fakeHarness) RunAll(ctx context.Context) validator.SuiteResult {
	return validator.SuiteResult{Total: 2, Passed: 2, PassRate: 1}
}

func (f *fakeHarness) RunCase(ctx context.Context, tc validator.TestCase) validator.CaseResult {
	f.lastCase = tc
	return validator.CaseResult{CaseID: tc.ID, Status: validator.StatusPass}
}

func (f *fakeHarness) CaseByID(id string) (validator.TestCase, bool) {
	for _, tc := range f.suite {
		if tc.ID == id {
			return tc, true
		}
	}
	return validator.TestCase{}, false
}

func (f *fakeHarness) Suite() []validator.TestCase { return f.suite }

func newTestServer(harness validateHTTP.Harness) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := validateHTTP.New(log.NewNop(), harness)
	validateHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func TestRunSuite(t *testing.T) {
	engine := newTestServer(&fakeHarness{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/run", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if data["total"] != float64(2) || data["pass_rate"] != float64(1) {
		t.Errorf("unexpected payload: %v", data)
	}
}

func TestRunCase(t *testing.T) {
	suite := []validator.TestCase{{ID: "case_001", Question: "q", ExpectedAnswer: "a"}}

	t.Run("By ID", func(t *testing.T) {
		harness := &fakeHarness{suite: suite}
		engine := newTestServer(harness)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/case", strings.NewReader(`{"id": "case_001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
		}
		if harness.lastCase.ID != "case_001" {
			t.Errorf("unexpected case: %+v", harness.lastCase)
		}
	})

	t.Run("Unknown ID", func(t *testing.T) {
		engine := newTestServer(&fakeHarness{suite: suite})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/case", strings.NewReader(`{"id": "case_999"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("Ad Hoc Case", func(t *testing.T) {
		harness := &fakeHarness{}
		engine := newTestServer(harness)

		body := `{"question": "what is x?", "expected_answer": "x is y"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/case", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		if harness.lastCase.Question != "what is x?" {
			t.Errorf("unexpected case: %+v", harness.lastCase)
		}
	})

	t.Run("Empty Selector", func(t *testing.T) {
		engine := newTestServer(&fakeHarness{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/validate/case", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}
