package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"

	"oasis/internal/mathx/noise"
	"oasis/internal/util"
	"oasis/pkg/config"
)

const (
	sampleRate      = 44100
	framesPerBuffer = 1024
	numChannels     = 2
)

// AudioEngine plays a procedural shore ambience: noise-shaped surf during
// the day, a wind bed that rises at night. The mix follows the daylight
// intensity the renderer computes each frame.
type AudioEngine struct {
	config   config.AudioConfig
	noiseGen *noise.Generator
	stream   *portaudio.Stream

	mutex    sync.Mutex
	daylight float64

	// Noise-field read positions, advanced per generated sample
	swellPhase float64
	surfPhase  float64
	windPhase  float64

	isRunning bool
}

// NewAudioEngine creates and starts the ambience engine. A disabled config
// yields a silent engine with no stream.
func NewAudioEngine(cfg config.AudioConfig) (*AudioEngine, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := &AudioEngine{
		config:   cfg,
		noiseGen: noise.NewGenerator(seed),
		daylight: 1.0,
	}

	if !cfg.Enabled {
		return engine, nil
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %v", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, numChannels, sampleRate, framesPerBuffer, engine.audioCallback)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %v", err)
	}
	engine.stream = stream

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %v", err)
	}
	engine.isRunning = true

	return engine, nil
}

// audioCallback fills the output buffer with the ambience mix
func (ae *AudioEngine) audioCallback(out []float32) {
	ae.mutex.Lock()
	daylight := ae.daylight
	ae.mutex.Unlock()

	volume := util.Clamp(ae.config.Volume, 0, 1)
	const dt = 1.0 / sampleRate

	for i := 0; i < len(out); i += numChannels {
		// Slow swell envelope so the surf breathes instead of droning
		swell := 0.5 * (1 + ae.noiseGen.Perlin1D(ae.swellPhase))
		surf := ae.noiseGen.FBM1D(ae.surfPhase, 3, 2.0, 0.5) * swell

		wind := ae.noiseGen.FBM1D(ae.windPhase, 4, 2.0, 0.5)

		surfLevel := 0.3 + 0.7*daylight
		windLevel := 1.0 - daylight

		sample := float32((surf*surfLevel + wind*windLevel*0.6) * volume)
		for ch := 0; ch < numChannels; ch++ {
			out[i+ch] = sample
		}

		ae.swellPhase += 0.3 * dt
		ae.surfPhase += 900 * dt
		ae.windPhase += 280 * dt
	}
}

// SetDaylight updates the ambient daylight intensity the mix follows
func (ae *AudioEngine) SetDaylight(intensity float64) {
	ae.mutex.Lock()
	ae.daylight = util.Clamp(intensity, 0, 1)
	ae.mutex.Unlock()
}

// Shutdown stops the stream and releases PortAudio
func (ae *AudioEngine) Shutdown() {
	if !ae.isRunning {
		return
	}
	ae.isRunning = false

	ae.stream.Stop()
	ae.stream.Close()
	portaudio.Terminate()
}
