package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomRangeBounds(t *testing.T) {
	ng := NewNoiseGenerator(3)
	for i := 0; i < 1000; i++ {
		v := ng.RandomRange(-2, 5)
		assert.GreaterOrEqual(t, v, -2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewNoiseGenerator(99)
	b := NewNoiseGenerator(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.White(), b.White())
	}
}

func TestPerlin1DZeroAtLatticePoints(t *testing.T) {
	ng := NewNoiseGenerator(1)
	for x := -5; x <= 5; x++ {
		assert.InDelta(t, 0.0, ng.Perlin1D(float64(x)), 1e-12)
	}
}

func TestPerlin1DRange(t *testing.T) {
	ng := NewNoiseGenerator(7)
	for i := 0; i < 2000; i++ {
		x := float64(i) * 0.037
		v := ng.Perlin1D(x)
		assert.LessOrEqual(t, v, 1.0)
		assert.GreaterOrEqual(t, v, -1.0)
	}
}

func TestFBM1D(t *testing.T) {
	ng := NewNoiseGenerator(11)
	assert.Equal(t, 0.0, ng.FBM1D(0.5, 0, 2, 0.5))
	for i := 0; i < 500; i++ {
		v := ng.FBM1D(float64(i)*0.05, 4, 2, 0.5)
		assert.LessOrEqual(t, v, 1.0)
		assert.GreaterOrEqual(t, v, -1.0)
	}
}
