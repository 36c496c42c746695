package tools_test

import (
	"context"
	"testing"

	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/agent/tools"
	"customer-support-agents/internal/store"
)

func registry() (*agent.ToolRegistry, *store.Store) {
	st := store.New()
	st.Seed()
	reg := agent.NewToolRegistry()
	tools.RegisterAll(reg, st)
	return reg, st
}

func TestRegisterAll(t *testing.T) {
	reg, _ := registry()

	names := []string{
		"check_account_status",
		"get_transaction_history",
		"create_support_ticket",
		"check_service_status",
	}
	list := reg.List()
	if len(list) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(list))
	}
	for i, name := range names {
		if list[i].Name() != name {
			t.Errorf("expected %s at position %d, got %s", name, i, list[i].Name())
		}
	}

	decls := reg.ToFunctionDeclarations()
	if len(decls) != 1 || len(decls[0].FunctionDeclarations) != len(names) {
		t.Errorf("unexpected function declarations: %+v", decls)
	}
}

func TestCheckAccountStatus(t *testing.T) {
	reg, _ := registry()
	tool, _ := reg.Get("check_account_status")

	t.Run("Known User", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), "user_001", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["name"] != "João Silva" {
			t.Errorf("unexpected name: %v", m["name"])
		}
	})

	t.Run("Unknown User", func(t *testing.T) {
		if _, err := tool.Execute(context.Background(), "user_999", nil); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestGetTransactionHistory(t *testing.T) {
	reg, _ := registry()
	tool, _ := reg.Get("get_transaction_history")

	t.Run("Default Limit", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), "user_001", map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["count"] != 2 {
			t.Errorf("unexpected count: %v", m["count"])
		}
	})

	t.Run("Limit From Args", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), "user_001", map[string]interface{}{"limit": float64(1)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["count"] != 1 {
			t.Errorf("unexpected count: %v", m["count"])
		}
	})
}

func TestCreateSupportTicket(t *testing.T) {
	reg, st := registry()
	tool, _ := reg.Get("create_support_ticket")

	t.Run("Creates Ticket", func(t *testing.T) {
		out, err := tool.Execute(context.Background(), "user_002", map[string]interface{}{"issue": "app crashes"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		m := out.(map[string]interface{})
		if m["status"] != "open" {
			t.Errorf("unexpected status: %v", m["status"])
		}
		if _, ok := st.GetTicket(context.Background(), m["ticket_id"].(string)); !ok {
			t.Error("ticket not persisted")
		}
	})

	t.Run("Missing Issue", func(t *testing.T) {
		if _, err := tool.Execute(context.Background(), "user_002", map[string]interface{}{}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestCheckServiceStatus(t *testing.T) {
	reg, _ := registry()
	tool, _ := reg.Get("check_service_status")

	out, err := tool.Execute(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := out.(map[string]interface{})
	if m["status"] != "operational" {
		t.Errorf("unexpected status: %v", m["status"])
	}
}
