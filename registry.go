package toolschema

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
)

// Registry is the collection interface over decorated callables: lookup by
// name or tag, aggregate schema export, and invocation through the stored
// middleware chain. Safe for concurrent use.
type Registry struct {
	mu          sync.Mutex
	tools       map[string]*ToolEnabled
	invokers    map[string]Invoker // tools wrapped with middlewares
	middlewares []Middleware
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]*ToolEnabled),
		invokers: make(map[string]Invoker),
	}
}

// Register adds a decorated callable. A callable with the same name is
// replaced. Stored middlewares (see Use) are applied before registration.
func (r *Registry) Register(t *ToolEnabled) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
	r.invokers[t.Name()] = wrap(t, r.middlewares)
}

// Use stores the middlewares and reapplies them from scratch to every
// registered callable (onion order: first middleware is outermost). Calling
// Use again replaces the chain, avoiding double-wrapping.
func (r *Registry) Use(middlewares ...Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = middlewares
	for name, t := range r.tools {
		r.invokers[name] = wrap(t, middlewares)
	}
}

func wrap(t *ToolEnabled, middlewares []Middleware) Invoker {
	var inv Invoker = t
	for i := len(middlewares) - 1; i >= 0; i-- {
		inv = middlewares[i](inv)
	}
	return inv
}

// All returns the registered callables sorted by name for deterministic
// order.
func (r *Registry) All() []*ToolEnabled {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	out := make([]*ToolEnabled, 0, len(names))
	for _, name := range names {
		out = append(out, r.tools[name])
	}
	return out
}

// Find returns the callable with the given name, failing with
// ErrUnknownCallable if absent.
func (r *Registry) Find(name string) (*ToolEnabled, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("callable %q: %w", name, ErrUnknownCallable)
	}
	return t, nil
}

// FindByTag returns the callables carrying the tag, sorted by name, failing
// with ErrUnknownTag when there are none.
func (r *Registry) FindByTag(tag string) ([]*ToolEnabled, error) {
	var out []*ToolEnabled
	for _, t := range r.All() {
		if t.HasTag(tag) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("tag %q: %w", tag, ErrUnknownTag)
	}
	return out, nil
}

// Call invokes a callable by name through the stored middleware chain.
func (r *Registry) Call(name string, args map[string]any) (any, error) {
	r.mu.Lock()
	inv, ok := r.invokers[name]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("callable %q: %w", name, ErrUnknownCallable)
	}
	return inv.Call(args)
}

// Schemas returns the schema of every registered callable in the given
// shape, sorted by callable name.
func (r *Registry) Schemas(st SchemaType) []map[string]any {
	all := r.All()
	out := make([]map[string]any, 0, len(all))
	for _, t := range all {
		out = append(out, t.ToJSON(st))
	}
	return out
}

// SaveSchemas writes the aggregate schema collection to path as JSON.
func (r *Registry) SaveSchemas(path string, st SchemaType) error {
	data, err := json.MarshalIndent(r.Schemas(st), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
