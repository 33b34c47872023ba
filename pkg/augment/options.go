package augment

import (
	"math/rand"

	"github.com/askiada/go-augment/pkg/augment/model"
)

type Option func(o *Orchestrator)

// WithSource makes the orchestrator draw from src.
func WithSource(src Source) Option {
	return func(o *Orchestrator) {
		o.rng = src
	}
}

// WithSeed makes the orchestrator draw from a generator seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Orchestrator) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // augmentation is not security sensitive
	}
}

// WithConcurrency processes every stage with up to concurrent workers.
func WithConcurrency(concurrent int) Option {
	return func(o *Orchestrator) {
		o.concurrent = concurrent
	}
}

// WithHooks attaches observers to the orchestrator.
func WithHooks(hooks ...model.Hook) Option {
	return func(o *Orchestrator) {
		o.hooks = append(o.hooks, hooks...)
	}
}
