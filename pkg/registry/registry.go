// Package registry resolves configured strategies into submissions. Every
// strategy kind is registered once at startup; nothing is loaded at run
// time.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/boristopalov/bandits/pkg/config"
	"github.com/boristopalov/bandits/pkg/core"
)

var (
	ErrKindExists   = errors.New("strategy kind already registered")
	ErrKindNotFound = errors.New("strategy kind not found")
)

// Builder turns one agent configuration into a factory
type Builder func(ctx context.Context, ac config.AgentConfig) (core.Factory, error)

type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

func (r *Registry) Register(kind string, b Builder) error {
	if kind == "" {
		return errors.New("strategy kind is required")
	}
	if b == nil {
		return errors.New("builder is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[kind]; exists {
		return fmt.Errorf("%w: %s", ErrKindExists, kind)
	}
	r.builders[kind] = b
	return nil
}

// Kinds returns the registered kinds in sorted order
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.builders))
	for k := range r.builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build resolves one configured agent. Missing labels fall back to the
// agent's key and kind.
func (r *Registry) Build(ctx context.Context, ac config.AgentConfig) (core.Submission, error) {
	r.mu.RLock()
	b, ok := r.builders[ac.Kind]
	r.mu.RUnlock()
	if !ok {
		return core.Submission{}, fmt.Errorf("%w: %s", ErrKindNotFound, ac.Kind)
	}

	factory, err := b(ctx, ac)
	if err != nil {
		return core.Submission{}, fmt.Errorf("failed to build %s: %w", ac.Key(), err)
	}

	sub := core.Submission{
		Name:      ac.Key(),
		Team:      ac.Team,
		Algorithm: ac.Algorithm,
		Factory:   factory,
	}
	if sub.Algorithm == "" {
		sub.Algorithm = ac.Key()
	}
	return sub, nil
}

// BuildAll resolves every configured agent, stopping at the first error
func (r *Registry) BuildAll(ctx context.Context, acs []config.AgentConfig) ([]core.Submission, error) {
	subs := make([]core.Submission, 0, len(acs))
	for _, ac := range acs {
		sub, err := r.Build(ctx, ac)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}
