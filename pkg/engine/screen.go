package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ScreenRenderer presents a CPU framebuffer on screen: the pixel buffer is
// uploaded into a texture every frame and drawn as a fullscreen quad.
type ScreenRenderer struct {
	width  int
	height int

	shaderProgram uint32
	quadVAO       uint32
	quadVBO       uint32
	quadEBO       uint32
	texture       uint32
}

// NewScreenRenderer initializes OpenGL state for presenting frames of the
// given size. The GL context must be current on the calling thread.
func NewScreenRenderer(width, height int) (*ScreenRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %v", err)
	}

	r := &ScreenRenderer{width: width, height: height}

	var err error
	if r.shaderProgram, err = createShaderProgram(blitVertexShaderSource, blitFragmentShaderSource); err != nil {
		return nil, err
	}

	r.setupQuad()
	r.setupTexture()

	gl.ClearColor(0, 0, 0, 1)

	return r, nil
}

// setupQuad creates the fullscreen quad the frame texture is drawn on
func (r *ScreenRenderer) setupQuad() {
	vertices := []float32{
		// Positions        // Texture coords
		-1.0, -1.0, 0.0, 0.0, 1.0,
		1.0, -1.0, 0.0, 1.0, 1.0,
		1.0, 1.0, 0.0, 1.0, 0.0,
		-1.0, 1.0, 0.0, 0.0, 0.0,
	}
	indices := []uint32{0, 1, 2, 2, 3, 0}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.GenBuffers(1, &r.quadEBO)

	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.quadEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// setupTexture allocates the frame texture the pixel buffer is streamed into
func (r *ScreenRenderer) setupTexture() {
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(r.width), int32(r.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// Present uploads the framebuffer and draws it
func (r *ScreenRenderer) Present(fb *Framebuffer) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shaderProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(fb.Pix()))

	gl.BindVertexArray(r.quadVAO)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)
}

// Close releases OpenGL resources
func (r *ScreenRenderer) Close() {
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteBuffers(1, &r.quadEBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteProgram(r.shaderProgram)
}

// createShaderProgram compiles and links a vertex/fragment shader pair
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)

		return 0, fmt.Errorf("shader program linking failed: %v", log)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a single shader stage
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)

		return 0, fmt.Errorf("shader compilation failed: %v", log)
	}

	return shader, nil
}
