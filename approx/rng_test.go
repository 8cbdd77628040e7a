package approx

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// Same seed+name produces same sequence
	rng1 := NewPartitionedRNG(Seed(42))
	rng2 := NewPartitionedRNG(Seed(42))

	for i := 0; i < 3; i++ {
		assert.Equal(t,
			rng1.ForSubsystem(SubsystemSize(100)).Float64(),
			rng2.ForSubsystem(SubsystemSize(100)).Float64(),
			"value %d", i)
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// Drawing from subsystem A doesn't affect subsystem B
	rngA := NewPartitionedRNG(Seed(42))
	rngB := NewPartitionedRNG(Seed(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemPoints).Float64()
	}
	aFirst := rngA.ForSubsystem(SubsystemSize(100)).Float64()
	bFirst := rngB.ForSubsystem(SubsystemSize(100)).Float64()
	assert.Equal(t, bFirst, aFirst)
}

func TestPartitionedRNG_PointsUsesSeedDirectly(t *testing.T) {
	p := NewPartitionedRNG(Seed(12345))
	direct := rand.New(rand.NewSource(12345))
	for i := 0; i < 5; i++ {
		assert.Equal(t, direct.Int63(), p.ForSubsystem(SubsystemPoints).Int63())
	}
}

func TestPartitionedRNG_DerivedSubsystemsDiffer(t *testing.T) {
	p := NewPartitionedRNG(Seed(7))
	assert.NotEqual(t,
		p.ForSubsystem(SubsystemSize(100)).Int63(),
		p.ForSubsystem(SubsystemSize(200)).Int63())
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	p := NewPartitionedRNG(Seed(1))
	assert.Same(t, p.ForSubsystem("x"), p.ForSubsystem("x"))
}

func TestSubsystemSize(t *testing.T) {
	assert.Equal(t, "size_0", SubsystemSize(0))
	assert.Equal(t, "size_5000", SubsystemSize(5000))
}

func TestFnv1a64_Deterministic(t *testing.T) {
	assert.Equal(t, fnv1a64("size_10"), fnv1a64("size_10"))
	assert.NotEqual(t, fnv1a64("size_1"), fnv1a64("size_2"))
}
