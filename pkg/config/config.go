package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Raytracer RaytracerConfig `yaml:"raytracer"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Audio     AudioConfig     `yaml:"audio"`
	LogLevel  string          `yaml:"log_level"`
}

// GraphicsConfig contains window-related configuration
type GraphicsConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	VSync     bool   `yaml:"vsync"`
	FrameRate int    `yaml:"framerate"`
	Title     string `yaml:"title"`
}

// RaytracerConfig contains raytracer configuration
type RaytracerConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	NumThreads int     `yaml:"num_threads"`
	MaxDepth   int     `yaml:"max_depth"`
	FOV        float64 `yaml:"fov"` // Vertical field of view in degrees
}

// CameraConfig contains camera movement configuration
type CameraConfig struct {
	MoveStep   float64 `yaml:"move_step"`
	OrbitSpeed float64 `yaml:"orbit_speed"`
}

// SceneConfig contains scene animation configuration
type SceneConfig struct {
	WaterGridSize int     `yaml:"water_grid_size"`
	WaterCubeSize float64 `yaml:"water_cube_size"`
	SunRadius     float64 `yaml:"sun_radius"`
	SunSpeed      float64 `yaml:"sun_speed"` // Radians advanced per frame
}

// AudioConfig contains ambience configuration
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	Seed    int64   `yaml:"seed"` // 0 means time-based
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:     800,
			Height:    600,
			VSync:     true,
			FrameRate: 60,
			Title:     "Oasis",
		},
		Raytracer: RaytracerConfig{
			Width:      800,
			Height:     600,
			NumThreads: 4,
			MaxDepth:   3,
			FOV:        60.0,
		},
		Camera: CameraConfig{
			MoveStep:   0.3,
			OrbitSpeed: 0.05,
		},
		Scene: SceneConfig{
			WaterGridSize: 6,
			WaterCubeSize: 0.5,
			SunRadius:     15.0,
			SunSpeed:      0.05,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
			Seed:    0,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
