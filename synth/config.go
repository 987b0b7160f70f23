// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all engine knobs.
//   • newConfig applies options in-order (later overrides earlier).
//   • rng == nil after resolution means "self-seed from the clock":
//     runs are non-reproducible unless the caller injects a source.

package synth

import (
	"math/rand" // stochastic draws
	"time"      // clock-based fallback seed
)

// config aggregates all knobs used by the generator and assembler.
// It is held by value inside Generator (immutable to callers).
type config struct {
	// rng drives every uniform/normal draw and the final shuffle;
	// nil means "not injected" and is resolved by rngFrom.
	rng *rand.Rand

	// freshCount is the explicit fresh split for BuildDataset;
	// meaningful only when splitSet is true.
	freshCount int
	splitSet   bool

	// progress, when non-nil, observes per-row generation progress.
	progress func(done, total int)
}

// newConfig constructs a config with defaults and applies all options in
// order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if the caller injected one (shared stream), else
// a fresh clock-seeded source. The fallback keeps default runs independent
// across invocations, matching the no-seeding-contract default.
func rngFrom(cfg config) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
