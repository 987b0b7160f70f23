// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// options.go — functional options for the generator engine.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the engine itself never panics at runtime.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.

package synth

import (
	"math/rand" // RNG source for all stochastic draws
)

// Option customizes generator and assembler behavior by mutating a config
// instance before any sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithRand provides an explicit RNG shared by every draw and the final
// shuffle. Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("synth: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and fixtures to lock outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draws, subtypes, and shuffle order.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithFreshCount overrides the default floor(total/2) fresh split for
// BuildDataset. The value is validated against the requested total at
// assembly time (ErrBadSplit), not here, because the total is unknown yet;
// only a negative count is rejected eagerly. Panics if n < 0.
// Complexity: O(1).
func WithFreshCount(n int) Option {
	if n < 0 {
		panic("synth: WithFreshCount(n<0)")
	}

	return func(c *config) {
		c.freshCount = n
		c.splitSet = true
	}
}

// WithProgress registers a callback invoked after every generated row with
// (done, total). The callback must be cheap; it runs inside the generation
// loop. Panics on nil.
// Complexity: O(1) to set; O(total) invocations during assembly.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("synth: WithProgress(nil)")
	}

	return func(c *config) {
		c.progress = fn
	}
}
