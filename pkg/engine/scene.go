package engine

import (
	"math"

	"oasis/internal/util"
	"oasis/pkg/config"
)

// Scene materials
var (
	sandMaterial = Material{
		Diffuse:  NewColor(237, 201, 175),
		Specular: 1.0,
		Albedo:   [4]float64{0.9, 0.1, 0, 0},
	}
	trunkMaterial = Material{
		Diffuse:  NewColor(139, 69, 19),
		Specular: 1.0,
		Albedo:   [4]float64{0.9, 0.1, 0, 0},
	}
	leafMaterial = Material{
		Diffuse:  NewColor(34, 139, 34),
		Specular: 1.0,
		Albedo:   [4]float64{0.9, 0.1, 0, 0},
	}
	waterMaterial = Material{
		Diffuse:  NewColor(0, 191, 255),
		Specular: 1.0,
		Albedo:   [4]float64{0.9, 0.1, 0, 0},
	}
	lampMaterial = Material{
		Emission:   NewColor(255, 223, 0),
		IsEmissive: true,
	}
)

// Positions of the two emissive lamp cubes
var lampPositions = []Vector3{
	{X: 1.0, Y: 5.2, Z: -4.0},
	{X: 4.5, Y: 5.2, Z: 2.0},
}

// Scene owns the object list. Static geometry (terrain, lamps, palm) is
// built once; the animated water grid, the sand border and the sand house
// are regenerated each frame into a reused slice, so the static part is
// never reallocated.
type Scene struct {
	config config.SceneConfig

	static []Object
	frame  []Object
	lights []Vector3

	sunAngle float64
}

// NewScene assembles the static scene
func NewScene(cfg config.SceneConfig) *Scene {
	if cfg.WaterGridSize < 2 {
		cfg.WaterGridSize = 6
	}
	if cfg.WaterCubeSize <= 0 {
		cfg.WaterCubeSize = 0.5
	}

	s := &Scene{config: cfg}

	// Sand terrain block everything stands on
	s.static = append(s.static, Object{
		Geometry: Cube{Center: Vector3{}, Size: 10.0, Material: sandMaterial},
	})

	// Emissive lamp cubes, doubling as light sources
	for _, pos := range lampPositions {
		s.static = append(s.static, Object{
			Geometry: Cube{Center: pos, Size: 0.5, Material: lampMaterial},
			IsLight:  true,
		})
	}

	// Palm trunk: stacked cubes starting at the terrain surface
	const (
		trunkStartY   = 5.0
		trunkCubeSize = 0.4
		numTrunkCubes = 5
	)
	for i := 0; i < numTrunkCubes; i++ {
		s.static = append(s.static, Object{
			Geometry: Cube{
				Center:   Vector3{Y: trunkStartY + float64(i)*trunkCubeSize},
				Size:     trunkCubeSize,
				Material: trunkMaterial,
			},
		})
	}

	// Palm crown
	leafStartY := trunkStartY + numTrunkCubes*trunkCubeSize
	leafOffsets := []Vector3{
		{X: 0, Z: 0},
		{X: 0.5, Z: 0.5},
		{X: -0.5, Z: 0.5},
		{X: 0.5, Z: -0.5},
		{X: -0.5, Z: -0.5},
	}
	for _, off := range leafOffsets {
		s.static = append(s.static, Object{
			Geometry: Cube{
				Center:   Vector3{X: off.X, Y: leafStartY, Z: off.Z},
				Size:     0.5,
				Material: leafMaterial,
			},
		})
	}

	return s
}

// Advance moves the sun one frame further along its orbit
func (s *Scene) Advance() {
	s.sunAngle += s.config.SunSpeed
}

// SunPosition returns the orbiting sun's current world position
func (s *Scene) SunPosition() Vector3 {
	return Vector3{
		X: s.config.SunRadius * math.Cos(s.sunAngle),
		Y: s.config.SunRadius * math.Sin(s.sunAngle),
	}
}

// LightPositions returns the world positions of all active lights: the two
// lamp cubes plus the sun. The slice is rebuilt per call into reused
// storage.
func (s *Scene) LightPositions() []Vector3 {
	s.lights = s.lights[:0]
	s.lights = append(s.lights, lampPositions...)
	s.lights = append(s.lights, s.SunPosition())
	return s.lights
}

// Objects returns the full object list for the frame at the given elapsed
// time: the static prefix plus freshly generated water, border and house
// geometry.
func (s *Scene) Objects(elapsedTime float64) []Object {
	s.frame = s.frame[:0]
	s.frame = append(s.frame, s.static...)
	s.frame = s.appendWaveGrid(s.frame, elapsedTime)
	s.frame = s.appendSandBorder(s.frame)
	s.frame = appendSandHouse(s.frame, Vector3{X: -4.5, Y: 5.2, Z: -4.0}, 0.5)
	return s.frame
}

// appendWaveGrid emits the animated water surface: a grid of cubes bobbing
// on a sine wave
func (s *Scene) appendWaveGrid(objects []Object, elapsedTime float64) []Object {
	gridSize := s.config.WaterGridSize
	cubeSize := s.config.WaterCubeSize

	for x := 0; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			waveHeight := math.Sin(elapsedTime*2+(float64(x)+float64(z))*0.5) * 0.2
			objects = append(objects, Object{
				Geometry: Cube{
					Center: Vector3{
						X: float64(x) * cubeSize,
						Y: 4.9 + waveHeight,
						Z: float64(z) * cubeSize,
					},
					Size:     cubeSize,
					Material: waterMaterial,
				},
			})
		}
	}

	return objects
}

// appendSandBorder rims the water grid with sand cubes
func (s *Scene) appendSandBorder(objects []Object) []Object {
	gridSize := s.config.WaterGridSize
	cubeSize := s.config.WaterCubeSize

	for x := 0; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			if x != 0 && x != gridSize-1 && z != 0 && z != gridSize-1 {
				continue
			}
			objects = append(objects, Object{
				Geometry: Cube{
					Center: Vector3{
						X: float64(x) * cubeSize,
						Y: 4.9,
						Z: float64(z) * cubeSize,
					},
					Size:     cubeSize,
					Material: sandMaterial,
				},
			})
		}
	}

	return objects
}

// appendSandHouse builds the sand house: walls with a door and window gaps,
// topped by a full roof layer
func appendSandHouse(objects []Object, start Vector3, cubeSize float64) []Object {
	const (
		houseWidth  = 5
		houseHeight = 3
		houseDepth  = 5
	)

	for x := 0; x < houseWidth; x++ {
		for y := 0; y < houseHeight; y++ {
			for z := 0; z < houseDepth; z++ {
				isDoor := x == 2 && z == 0 && y < 2
				isWindow := y == 1 && (x == 1 || x == 3) && (z == 0 || z == houseDepth-1)
				if isDoor || isWindow {
					continue
				}
				objects = append(objects, Object{
					Geometry: Cube{
						Center: Vector3{
							X: start.X + float64(x)*cubeSize,
							Y: start.Y + float64(y)*cubeSize,
							Z: start.Z + float64(z)*cubeSize,
						},
						Size:     cubeSize,
						Material: sandMaterial,
					},
				})
			}
		}
	}

	for x := 0; x < houseWidth; x++ {
		for z := 0; z < houseDepth; z++ {
			objects = append(objects, Object{
				Geometry: Cube{
					Center: Vector3{
						X: start.X + float64(x)*cubeSize,
						Y: start.Y + houseHeight*cubeSize,
						Z: start.Z + float64(z)*cubeSize,
					},
					Size:     cubeSize,
					Material: sandMaterial,
				},
			})
		}
	}

	return objects
}

// AmbientLightIntensity derives the day/night scalar from the sun's height:
// 0.2 at night, climbing to 1.0 as the sun rises.
func AmbientLightIntensity(lightPosition Vector3) float64 {
	const (
		minIntensity = 0.2
		maxIntensity = 1.0
	)
	heightFactor := util.Clamp(math.Max(lightPosition.Y+1, 0)/10, 0, 1)
	return minIntensity + (maxIntensity-minIntensity)*heightFactor
}
