package engine

// Color is a packed RGB value. All arithmetic saturates: channels never
// wrap, they clamp to [0, 255].
type Color struct {
	R, G, B uint8
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a color from its channel values
func NewColor(r, g, b uint8) Color {
	return Color{r, g, b}
}

func saturateAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Add adds two colors channel-wise, saturating at white
func (c Color) Add(other Color) Color {
	return Color{
		R: saturateAdd(c.R, other.R),
		G: saturateAdd(c.G, other.G),
		B: saturateAdd(c.B, other.B),
	}
}

// Scale multiplies every channel by a factor, clamping to [0, 255]
func (c Color) Scale(factor float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * factor),
		G: clampChannel(float64(c.G) * factor),
		B: clampChannel(float64(c.B) * factor),
	}
}

// LerpColor interpolates between two colors; factor 0 yields c1, 1 yields c2
func LerpColor(c1, c2 Color, factor float64) Color {
	return Color{
		R: clampChannel(float64(c1.R)*(1-factor) + float64(c2.R)*factor),
		G: clampChannel(float64(c1.G)*(1-factor) + float64(c2.G)*factor),
		B: clampChannel(float64(c1.B)*(1-factor) + float64(c2.B)*factor),
	}
}
