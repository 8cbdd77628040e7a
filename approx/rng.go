package approx

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Seed identifies a reproducible sequence of random point sets.
// Two runs with the same Seed and identical requests MUST generate
// identical points.
type Seed int64

// SubsystemPoints is the RNG subsystem for random point generation.
// Uses the master seed directly so a Grid seeded with s draws the same
// points as rand.New(rand.NewSource(s)).
const SubsystemPoints = "points"

// SubsystemSize returns the subsystem name for point-set size n. Timing
// experiments draw the per-repetition grid seeds of size n from it.
func SubsystemSize(n int) string {
	return fmt.Sprintf("size_%d", n)
}

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemPoints: uses the master seed directly
//   - For all other subsystems: seed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	seed       Seed
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a Seed.
func NewPartitionedRNG(seed Seed) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same name always returns the same *rand.Rand instance. Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derived := int64(p.seed)
	if name != SubsystemPoints {
		derived ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
