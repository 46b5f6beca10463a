package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"oasis/internal/logger"
	"oasis/pkg/config"
)

// Engine owns the window and drives the frame loop: input, scene rebuild,
// full-frame trace, present.
type Engine struct {
	window    *glfw.Window
	config    *config.Config
	logger    *logger.Logger
	raytracer *Raytracer
	scene     *Scene
	camera    *Camera
	fb        *Framebuffer
	screen    *ScreenRenderer
	input     *InputHandler
	audio     *AudioEngine

	isRunning bool
	startTime time.Time
	frameRate int
}

// NewEngine creates the window, GL context and all subsystems
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Graphics.Width, cfg.Graphics.Height, cfg.Graphics.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	screen, err := NewScreenRenderer(cfg.Raytracer.Width, cfg.Raytracer.Height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize screen renderer: %v", err)
	}

	engine := &Engine{
		window:    window,
		config:    cfg,
		logger:    log,
		raytracer: NewRaytracer(cfg.Raytracer),
		scene:     NewScene(cfg.Scene),
		camera: NewCamera(
			Vector3{X: 5, Y: 5, Z: 10},
			Vector3{X: 0, Y: 2, Z: 0},
			Vector3{X: 0, Y: 1, Z: 0},
		),
		fb:        NewFramebuffer(cfg.Raytracer.Width, cfg.Raytracer.Height),
		screen:    screen,
		input:     NewInputHandler(window),
		frameRate: cfg.Graphics.FrameRate,
	}

	// Ambience is optional: a missing audio device should not kill the render
	audio, err := NewAudioEngine(cfg.Audio)
	if err != nil {
		log.Warnf("Audio disabled: %v", err)
	} else {
		engine.audio = audio
	}

	return engine, nil
}

// Run starts the main loop and blocks until the window closes
func (e *Engine) Run() {
	e.isRunning = true
	e.startTime = time.Now()

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()

		glfw.PollEvents()
		e.input.Update()
		e.processInput()

		e.scene.Advance()
		elapsed := time.Since(e.startTime).Seconds()

		objects := e.scene.Objects(elapsed)
		lights := e.scene.LightPositions()
		ambient := AmbientLightIntensity(e.scene.SunPosition())

		e.raytracer.Render(e.fb, objects, e.camera, lights, ambient)
		e.screen.Present(e.fb)

		if e.audio != nil {
			e.audio.SetDaylight(ambient)
		}

		e.window.SwapBuffers()

		// Cap the frame rate
		if e.frameRate > 0 {
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime := time.Since(frameStart); frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// processInput maps keyboard and scroll state onto camera commands
func (e *Engine) processInput() {
	if e.input.IsKeyPressed(glfw.KeyEscape) {
		e.isRunning = false
		return
	}

	step := e.config.Camera.MoveStep
	orbit := e.config.Camera.OrbitSpeed

	if e.input.IsKeyDown(glfw.KeyW) {
		e.camera.Move(MoveForward, step)
	}
	if e.input.IsKeyDown(glfw.KeyS) {
		e.camera.Move(MoveBackward, step)
	}
	if e.input.IsKeyDown(glfw.KeyLeft) {
		e.camera.Move(MoveLeft, step)
	}
	if e.input.IsKeyDown(glfw.KeyRight) {
		e.camera.Move(MoveRight, step)
	}

	if e.input.IsKeyDown(glfw.KeyA) {
		e.camera.Orbit(orbit, 0)
	}
	if e.input.IsKeyDown(glfw.KeyD) {
		e.camera.Orbit(-orbit, 0)
	}
	if e.input.IsKeyDown(glfw.KeyUp) {
		e.camera.Orbit(0, -orbit)
	}
	if e.input.IsKeyDown(glfw.KeyDown) {
		e.camera.Orbit(0, orbit)
	}

	if wheel := e.input.WheelDelta(); wheel != 0 {
		if wheel > 0 {
			e.camera.Move(MoveForward, wheel*step)
		} else {
			e.camera.Move(MoveBackward, -wheel*step)
		}
	}
}

// cleanup releases every subsystem before exit
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if e.audio != nil {
		e.audio.Shutdown()
	}
	e.screen.Close()
	glfw.Terminate()
}
