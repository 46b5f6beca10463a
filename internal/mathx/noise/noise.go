package noise

import (
	"math"
	"math/rand"
)

// Generator produces repeatable gradient noise. The same seed always yields
// the same noise field, so procedural audio stays stable across runs.
type Generator struct {
	perm [512]int
}

// NewGenerator creates a noise generator seeded with the given value
func NewGenerator(seed int64) *Generator {
	g := &Generator{}
	rng := rand.New(rand.NewSource(seed))

	p := rng.Perm(256)
	for i := 0; i < 256; i++ {
		g.perm[i] = p[i]
		g.perm[i+256] = p[i]
	}

	return g
}

// fade is the classic Perlin smoothing curve 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad1(hash int, x float64) float64 {
	if hash&1 == 0 {
		return x
	}
	return -x
}

func grad2(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}

// Perlin1D generates 1D gradient noise in roughly [-1, 1]
func (g *Generator) Perlin1D(x float64) float64 {
	xi := int(math.Floor(x)) & 255
	xf := x - math.Floor(x)

	u := fade(xf)

	a := grad1(g.perm[xi], xf)
	b := grad1(g.perm[xi+1], xf-1)

	return lerp(a, b, u)
}

// Perlin2D generates 2D gradient noise in roughly [-1, 1]
func (g *Generator) Perlin2D(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)

	u := fade(xf)
	v := fade(yf)

	aa := g.perm[g.perm[xi]+yi]
	ab := g.perm[g.perm[xi]+yi+1]
	ba := g.perm[g.perm[xi+1]+yi]
	bb := g.perm[g.perm[xi+1]+yi+1]

	x1 := lerp(grad2(aa, xf, yf), grad2(ba, xf-1, yf), u)
	x2 := lerp(grad2(ab, xf, yf-1), grad2(bb, xf-1, yf-1), u)

	// 2D gradients reach sqrt(2); scale back into [-1, 1]
	return lerp(x1, x2, v) / math.Sqrt2
}

// FBM1D generates 1D fractal brownian motion noise, normalized to [-1, 1]
func (g *Generator) FBM1D(x float64, octaves int, lacunarity, gain float64) float64 {
	result := 0.0
	amplitude := 1.0
	frequency := 1.0
	max := 0.0

	for i := 0; i < octaves; i++ {
		result += g.Perlin1D(x*frequency) * amplitude
		max += amplitude
		amplitude *= gain
		frequency *= lacunarity
	}

	if max == 0 {
		return 0
	}
	return result / max
}
