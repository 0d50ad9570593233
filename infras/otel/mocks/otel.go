package mocks

import (
	"context"
	"reservo/infras/otel"
	"sync"
)

// Otel hands out a fresh no-op Scope per call and keeps them for inspection.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{}

	if o.scopes == nil {
		o.scopes = map[string]*Scope{}
	}

	o.scopes[spanName] = scope

	return ctx, scope
}

// Scope returns the most recent scope opened under spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func NewOtel() otel.Otel {
	return &Otel{}
}
