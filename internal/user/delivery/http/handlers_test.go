package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"customer-support-agents/internal/store"
	userHTTP "customer-support-agents/internal/user/delivery/http"
	"customer-support-agents/pkg/log"
	"customer-support-agents/pkg/response"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.New()
	st.Seed()
	engine := gin.New()
	h := userHTTP.New(log.NewNop(), st)
	userHTTP.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape: %v", resp.Data)
	}
	return data
}

func TestUserDetail(t *testing.T) {
	engine := newTestServer()

	t.Run("Known User", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/users/user_001", "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		if data := decodeData(t, w); data["name"] != "João Silva" {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/users/user_999", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestUserTransactions(t *testing.T) {
	engine := newTestServer()

	t.Run("With Limit", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/users/user_001/transactions?limit=1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d", w.Code)
		}
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		items := resp.Data.([]interface{})
		if len(items) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(items))
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/api/v1/users/user_999/transactions", "")
		if w.Code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestUserCreateTicket(t *testing.T) {
	engine := newTestServer()

	t.Run("Creates Ticket", func(t *testing.T) {
		w := do(t, engine, http.MethodPost, "/api/v1/users/user_002/tickets", `{"issue": "card blocked"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("unexpected status: %d (%s)", w.Code, w.Body.String())
		}
		data := decodeData(t, w)
		if data["status"] != "open" || data["issue"] != "card blocked" {
			t.Errorf("unexpected payload: %v", data)
		}
	})

	t.Run("Missing Issue", func(t *testing.T) {
		w := do(t, engine, http.MethodPost, "/api/v1/users/user_002/tickets", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		w := do(t, engine, http.MethodPost, "/api/v1/users/user_999/tickets", `{"issue": "x"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("unexpected status: %d", w.Code)
		}
	})
}

func TestServiceStatus(t *testing.T) {
	engine := newTestServer()

	w := do(t, engine, http.MethodGet, "/api/v1/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", w.Code)
	}
	if data := decodeData(t, w); data["status"] != "operational" {
		t.Errorf("unexpected payload: %v", data)
	}
}
