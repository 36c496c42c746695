package agent

import (
	"sync"

	"customer-support-agents/internal/model"
)

// Registry is the process-wide directory of handler metadata. It is built
// by dependency injection at startup, not as a hidden global: each concrete
// handler registers itself exactly once at construction, before traffic.
//
// Registration is a boot-time phase; after it completes the registry is
// read concurrently by every in-flight request. The RWMutex makes late
// registration safe anyway.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Metadata
	order    []string // registration order, stable across overwrites
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Metadata),
	}
}

// Register inserts or overwrites metadata by name. Re-registering a name
// replaces the prior entry (last-write-wins) but keeps its original
// position in registration order, so reinitialization is idempotent.
func (r *Registry) Register(md Metadata) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[md.Name]; !exists {
		r.order = append(r.order, md.Name)
	}
	r.handlers[md.Name] = md
}

// GetByName returns the metadata registered under name.
func (r *Registry) GetByName(name string) (Metadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	md, ok := r.handlers[name]
	return md, ok
}

// FindByIntent returns all handlers listing the intent, in registration
// order. Priority ordering is the orchestrator's job, not the registry's.
func (r *Registry) FindByIntent(intent model.IntentCategory) []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Metadata
	for _, name := range r.order {
		if md := r.handlers[name]; md.HandlesIntent(intent) {
			out = append(out, md)
		}
	}
	return out
}

// FindByCapability returns all handlers carrying the capability tag, in
// registration order.
func (r *Registry) FindByCapability(tag string) []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Metadata
	for _, name := range r.order {
		if md := r.handlers[name]; md.HasCapability(tag) {
			out = append(out, md)
		}
	}
	return out
}

// All returns every registered handler in registration order.
func (r *Registry) All() []Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metadata, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.handlers[name])
	}
	return out
}

// AvailableIntents maps each intent that currently has at least one
// registered handler to those handlers. The classifier prompt is built from
// this map, so the oracle is never offered an intent nobody can serve.
func (r *Registry) AvailableIntents() map[model.IntentCategory][]Metadata {
	r.mu.RLock()
	defer r.mu.RUnlock()

	intents := make(map[model.IntentCategory][]Metadata)
	for _, name := range r.order {
		md := r.handlers[name]
		for _, intent := range md.Intents {
			intents[intent] = append(intents[intent], md)
		}
	}
	return intents
}
