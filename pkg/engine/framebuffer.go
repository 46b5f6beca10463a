package engine

// Framebuffer is a row-major RGBA pixel buffer sized once at construction.
// The layout matches what the screen renderer uploads to the GPU.
type Framebuffer struct {
	Width  int
	Height int
	pix    []uint8
}

// NewFramebuffer allocates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// SetPixel writes a color at (x, y). Out-of-range coordinates are ignored.
func (f *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 255
}

// At returns the color stored at (x, y)
func (f *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Black
	}
	i := (y*f.Width + x) * 4
	return Color{f.pix[i], f.pix[i+1], f.pix[i+2]}
}

// Pix exposes the raw RGBA bytes for texture upload
func (f *Framebuffer) Pix() []uint8 {
	return f.pix
}
