package noise

import (
	"math"
	"math/rand"
)

// NoiseGenerator produces seeded random samples and 1D gradient noise for
// sound synthesis.
type NoiseGenerator struct {
	rng  *rand.Rand
	seed int64
}

// NewNoiseGenerator creates a new noise generator with the given seed
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	return &NoiseGenerator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// RandomFloat returns a random float in range [0.0, 1.0)
func (ng *NoiseGenerator) RandomFloat() float64 {
	return ng.rng.Float64()
}

// RandomRange returns a random float in range [min, max)
func (ng *NoiseGenerator) RandomRange(min, max float64) float64 {
	return min + ng.rng.Float64()*(max-min)
}

// White returns one white noise sample in [-1, 1)
func (ng *NoiseGenerator) White() float64 {
	return ng.RandomRange(-1, 1)
}

// Perlin1D generates 1D Perlin noise in [-1, 1]
func (ng *NoiseGenerator) Perlin1D(x float64) float64 {
	x0 := math.Floor(x)
	x1 := x0 + 1.0

	sx := smoothstep(x - x0)

	g0 := gradient1D(hash(int(x0), int(ng.seed)))
	g1 := gradient1D(hash(int(x1), int(ng.seed)))

	v0 := g0 * (x - x0)
	v1 := g1 * (x - x1)

	return lerp(v0, v1, sx) * 2.0
}

// FBM1D sums octaves of Perlin1D, normalized back to [-1, 1]
func (ng *NoiseGenerator) FBM1D(x float64, octaves int, lacunarity, gain float64) float64 {
	if octaves <= 0 {
		return 0
	}
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		result += ng.Perlin1D(x*frequency+float64(i)*17.0) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	return result / max
}

// hash mixes a lattice coordinate with the seed
func hash(x, seed int) int {
	h := seed + x*374761393
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// gradient1D generates a 1D gradient from a hash
func gradient1D(hash int) float64 {
	if hash&1 == 0 {
		return 1.0
	}
	return -1.0
}

// lerp performs linear interpolation
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// smoothstep applies a smoothing function to t
func smoothstep(t float64) float64 {
	// 6t^5 - 15t^4 + 10t^3
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}
