package mocks

import (
	"reservo/infras/otel"
	"sync"
)

// Scope is a no-op otel.Scope that remembers the errors it was asked to trace.
type Scope struct {
	mu     sync.Mutex
	errors []error
	events []string
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, name)
}

func (s *Scope) End() {}

func (s *Scope) SetAttribute(_ string, _ any) {}

func (s *Scope) SetAttributes(_ map[string]any) {}

func (s *Scope) TraceError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errors = append(s.errors, err)
}

func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]error(nil), s.errors...)
}

func (s *Scope) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.events...)
}

func NewScope() otel.Scope {
	return &Scope{}
}
