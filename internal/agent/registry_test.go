package agent_test

import (
	"context"
	"testing"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/model"
)

type stubHandler struct {
	name string
}

func (s *stubHandler) Name() string { return s.name }
func (s *stubHandler) Process(ctx context.Context, rc model.RequestContext) (model.HandlerResult, error) {
	return model.NewHandlerResult(s.name, "ok"), nil
}
func (s *stubHandler) HealthCheck(ctx context.Context) agent.HealthStatus {
	return agent.Healthy()
}

func md(name string, priority int, intents ...model.IntentCategory) agent.Metadata {
	return agent.Metadata{
		Name:     name,
		Intents:  intents,
		Priority: priority,
		Handler:  &stubHandler{name: name},
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("Idempotent Registration", func(t *testing.T) {
		r := agent.NewRegistry()

		first := md("x", 1, model.IntentProductInfo)
		first.Description = "first"
		r.Register(first)

		second := md("x", 7, model.IntentCustomerSupport)
		second.Description = "second"
		r.Register(second)

		if got := len(r.All()); got != 1 {
			t.Fatalf("expected exactly 1 entry, got %d", got)
		}

		entry, ok := r.GetByName("x")
		if !ok {
			t.Fatal("expected x to be registered")
		}
		if entry.Description != "second" || entry.Priority != 7 {
			t.Errorf("expected second registration to win, got %+v", entry)
		}
	})

	t.Run("Registration Order Preserved", func(t *testing.T) {
		r := agent.NewRegistry()
		r.Register(md("a", 1, model.IntentGeneralQuestion))
		r.Register(md("b", 5, model.IntentGeneralQuestion))
		r.Register(md("c", 3, model.IntentGeneralQuestion))

		// Overwrite a; it must keep its original position.
		r.Register(md("a", 9, model.IntentGeneralQuestion))

		got := r.FindByIntent(model.IntentGeneralQuestion)
		want := []string{"a", "b", "c"}
		if len(got) != len(want) {
			t.Fatalf("expected %d handlers, got %d", len(want), len(got))
		}
		for i, name := range want {
			if got[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, got[i].Name)
			}
		}
	})
}

func TestRegistry_FindByIntent(t *testing.T) {
	r := agent.NewRegistry()
	r.Register(md("knowledge", 3, model.IntentProductInfo, model.IntentGeneralQuestion))
	r.Register(md("support", 5, model.IntentCustomerSupport))

	t.Run("Match", func(t *testing.T) {
		got := r.FindByIntent(model.IntentProductInfo)
		if len(got) != 1 || got[0].Name != "knowledge" {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("No Match", func(t *testing.T) {
		if got := r.FindByIntent(model.IntentSystemTesting); len(got) != 0 {
			t.Errorf("expected no handlers, got %+v", got)
		}
	})
}

func TestRegistry_FindByCapability(t *testing.T) {
	r := agent.NewRegistry()
	a := md("a", 1, model.IntentProductInfo)
	a.Capabilities = []string{"rag_retrieval", "product_info"}
	b := md("b", 1, model.IntentCustomerSupport)
	b.Capabilities = []string{"support_tickets"}
	r.Register(a)
	r.Register(b)

	got := r.FindByCapability("rag_retrieval")
	if len(got) != 1 || got[0].Name != "a" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestRegistry_AvailableIntents(t *testing.T) {
	t.Run("Only Served Intents Appear", func(t *testing.T) {
		r := agent.NewRegistry()
		r.Register(md("knowledge", 3, model.IntentProductInfo, model.IntentGeneralQuestion))
		r.Register(md("router", 0)) // routes but handles no intents

		intents := r.AvailableIntents()
		if len(intents) != 2 {
			t.Fatalf("expected 2 intents, got %d: %v", len(intents), intents)
		}
		if _, ok := intents[model.IntentCustomerSupport]; ok {
			t.Error("customer_support should not be listed without a handler")
		}
		if got := intents[model.IntentProductInfo]; len(got) != 1 || got[0].Name != "knowledge" {
			t.Errorf("unexpected product_info handlers: %+v", got)
		}
	})

	t.Run("Empty Registry", func(t *testing.T) {
		r := agent.NewRegistry()
		if got := r.AvailableIntents(); len(got) != 0 {
			t.Errorf("expected empty map, got %v", got)
		}
	})
}
