package engine

import (
	"math"
	"sync"

	"oasis/internal/util"
	"oasis/pkg/config"
)

// originBias displaces shadow-ray origins off the surface they start from,
// so floating-point error cannot re-intersect the originating face.
const originBias = 1e-4

// recursionSkybox is returned when the trace depth guard trips
var recursionSkybox = NewColor(68, 142, 228)

// Day and night palettes for the sky gradient
var (
	skyDay      = NewColor(135, 206, 235)
	groundDay   = NewColor(222, 184, 135)
	skyNight    = NewColor(25, 25, 112)
	groundNight = NewColor(50, 50, 50)
)

// Raytracer shades primary rays against an object list
type Raytracer struct {
	config config.RaytracerConfig
}

// NewRaytracer creates a raytracer with the given configuration
func NewRaytracer(cfg config.RaytracerConfig) *Raytracer {
	if cfg.NumThreads < 1 {
		cfg.NumThreads = 1
	}
	if cfg.MaxDepth < 1 {
		cfg.MaxDepth = 3
	}
	if cfg.FOV <= 0 {
		cfg.FOV = 60.0
	}
	return &Raytracer{config: cfg}
}

// offsetOrigin nudges the hit point off its surface along the normal,
// toward the side the continuation ray leaves on
func offsetOrigin(intersect *Intersect, direction Vector3) Vector3 {
	offset := intersect.Normal.Mul(originBias)
	if direction.Dot(intersect.Normal) < 0 {
		return intersect.Point.Sub(offset)
	}
	return intersect.Point.Add(offset)
}

func reflect(incident, normal Vector3) Vector3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}

// fresnel is Schlick's reflectance approximation. A refractive index of -1
// would zero the denominator; that degenerate material reflects nothing.
func fresnel(cosTheta, refractiveIndex float64) float64 {
	denom := 1 + refractiveIndex
	if denom == 0 {
		return 0
	}
	r0 := (1 - refractiveIndex) / denom
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosTheta, 5)
}

// castShadow traces from the hit point toward a light and reports occlusion
// in [0,1]. The scan stops at the FIRST occluder in list order, not the
// nearest one; the attenuation falls off with the square of how close to
// the surface the occluder sits.
func castShadow(intersect *Intersect, lightPosition Vector3, objects []Object) float64 {
	toLight := lightPosition.Sub(intersect.Point)
	lightDir := toLight.Normalize()
	lightDistance := toLight.Length()

	shadowOrigin := offsetOrigin(intersect, lightDir)

	for _, object := range objects {
		shadowIntersect := object.Geometry.RayIntersect(shadowOrigin, lightDir)
		if shadowIntersect.IsIntersecting && shadowIntersect.Distance < lightDistance {
			ratio := shadowIntersect.Distance / lightDistance
			return 1 - math.Min(ratio*ratio, 1)
		}
	}

	return 0
}

// skyboxColor evaluates the sky/ground gradient for a ray that hit nothing.
// The palette slides between night and day with the ambient intensity; the
// ray's vertical component picks where on the gradient it lands.
func skyboxColor(direction Vector3, ambientIntensity float64) Color {
	t := 0.5 * (direction.Y + 1)

	sky := LerpColor(skyNight, skyDay, ambientIntensity)
	ground := LerpColor(groundNight, groundDay, ambientIntensity)

	return LerpColor(ground, sky, t)
}

// CastRay finds the nearest hit along the ray and shades it. Misses fall
// back to the sky gradient; the depth guard exists for future bounce rays
// and returns a fixed skybox color once exceeded.
func (rt *Raytracer) CastRay(origin, direction Vector3, objects []Object, lightPositions []Vector3, depth int, ambientIntensity float64) Color {
	if depth > rt.config.MaxDepth {
		return recursionSkybox
	}

	var nearest Intersect
	zbuffer := math.Inf(1)

	for _, object := range objects {
		intersect := object.Geometry.RayIntersect(origin, direction)
		if intersect.IsIntersecting && intersect.Distance < zbuffer {
			zbuffer = intersect.Distance
			nearest = intersect
		}
	}

	if !nearest.IsIntersecting {
		return skyboxColor(direction, ambientIntensity)
	}

	totalDiffuse := Black
	totalSpecular := Black

	for _, lightPosition := range lightPositions {
		lightDir := lightPosition.Sub(nearest.Point).Normalize()
		viewDir := origin.Sub(nearest.Point).Normalize()
		reflectDir := reflect(lightDir.Neg(), nearest.Normal).Normalize()

		shadowIntensity := castShadow(&nearest, lightPosition, objects)
		lightIntensity := 1.5 * (1 - shadowIntensity)

		cosTheta := math.Max(direction.Neg().Dot(nearest.Normal), 0)
		fresnelEffect := fresnel(cosTheta, nearest.Material.RefractiveIndex)

		diffuseIntensity := util.Clamp(nearest.Normal.Dot(lightDir), 0, 1)
		totalDiffuse = totalDiffuse.Add(
			nearest.Material.Diffuse.Scale(nearest.Material.Albedo[0] * diffuseIntensity * lightIntensity))

		specularIntensity := math.Pow(math.Max(viewDir.Dot(reflectDir), 0), nearest.Material.Specular)
		totalSpecular = totalSpecular.Add(
			White.Scale(nearest.Material.Albedo[1] * specularIntensity * lightIntensity * fresnelEffect))
	}

	emission := Black
	if nearest.Material.IsEmissive {
		emission = nearest.Material.Emission
	}

	return totalDiffuse.Add(totalSpecular).Add(emission)
}

// Render traces one primary ray per framebuffer pixel. Rows are split into
// bands across NumThreads goroutines; every pixel reads only the immutable
// frame snapshot, so the bands never contend.
func (rt *Raytracer) Render(fb *Framebuffer, objects []Object, camera *Camera, lightPositions []Vector3, ambientIntensity float64) {
	width := float64(fb.Width)
	height := float64(fb.Height)
	aspectRatio := width / height
	fov := rt.config.FOV * math.Pi / 180
	perspectiveScale := math.Tan(fov / 2)

	renderRows := func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < fb.Width; x++ {
				// NDC in [-1,1], screen-up positive
				screenX := (2*float64(x))/width - 1
				screenY := -(2*float64(y))/height + 1

				screenX *= aspectRatio * perspectiveScale
				screenY *= perspectiveScale

				local := Vector3{X: screenX, Y: screenY, Z: -1}.Normalize()
				rayDirection := camera.BaseChange(local)

				pixel := rt.CastRay(camera.Eye, rayDirection, objects, lightPositions, 0, ambientIntensity)
				fb.SetPixel(x, y, pixel)
			}
		}
	}

	numThreads := rt.config.NumThreads
	if numThreads == 1 {
		renderRows(0, fb.Height)
		return
	}

	var wg sync.WaitGroup
	rowsPerThread := fb.Height / numThreads

	for t := 0; t < numThreads; t++ {
		startRow := t * rowsPerThread
		endRow := startRow + rowsPerThread
		if t == numThreads-1 {
			endRow = fb.Height
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			renderRows(startRow, endRow)
		}(startRow, endRow)
	}

	wg.Wait()
}
