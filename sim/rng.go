package sim

import (
	"hash/fnv"
	"math/rand"
)

// === Subsystem Constants ===

const (
	// SubsystemPlacement is the RNG subsystem that draws initial user
	// distances from the access point.
	SubsystemPlacement = "placement"

	// SubsystemBackoff is the RNG subsystem that draws contention backoff
	// durations.
	SubsystemBackoff = "backoff"

	// SubsystemMedium is the RNG subsystem that draws carrier-sense
	// outcomes for the CSMA policy.
	SubsystemMedium = "medium"
)

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
// Two runs with the same master seed and identical configuration MUST produce
// identical event sequences; isolating subsystems keeps backoff draws from
// perturbing user placement.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Each simulation run owns its own instance.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.seed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed used to create this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
