package engine

import (
	"bytes"
	"testing"

	"oasis/pkg/config"
)

func testRaytracer(numThreads int) *Raytracer {
	return NewRaytracer(config.RaytracerConfig{
		Width:      800,
		Height:     600,
		NumThreads: numThreads,
		MaxDepth:   3,
		FOV:        60.0,
	})
}

func TestCastRayMissReturnsSkybox(t *testing.T) {
	rt := testRaytracer(1)

	cases := []struct {
		name      string
		direction Vector3
		ambient   float64
		want      Color
	}{
		{"day sky", Vector3{Y: 1}, 1.0, skyDay},
		{"night sky", Vector3{Y: 1}, 0.0, skyNight},
		{"day ground", Vector3{Y: -1}, 1.0, groundDay},
		{"night ground", Vector3{Y: -1}, 0.0, groundNight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rt.CastRay(Vector3{}, tc.direction, nil, nil, 0, tc.ambient)
			if got != tc.want {
				t.Fatalf("CastRay = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCastRayDepthGuard(t *testing.T) {
	rt := testRaytracer(1)
	objects := []Object{{Geometry: testCube()}}

	got := rt.CastRay(Vector3{Z: 5}, Vector3{Z: -1}, objects, nil, 4, 1.0)
	if got != recursionSkybox {
		t.Fatalf("depth-exceeded ray = %+v, want %+v", got, recursionSkybox)
	}
}

func TestCastRayPicksNearestHit(t *testing.T) {
	rt := testRaytracer(1)

	near := Cube{Center: Vector3{Z: 2}, Size: 1, Material: lampMaterial}
	far := Cube{Center: Vector3{Z: -2}, Size: 1, Material: sandMaterial}
	// Far object listed first; the nearer hit must still win
	objects := []Object{{Geometry: far}, {Geometry: near}}

	got := rt.CastRay(Vector3{Z: 10}, Vector3{Z: -1}, objects, nil, 0, 1.0)
	if got != lampMaterial.Emission {
		t.Fatalf("got %+v, want the near emissive cube's %+v", got, lampMaterial.Emission)
	}
}

func TestCastRayEmission(t *testing.T) {
	rt := testRaytracer(1)
	lamp := Cube{Center: Vector3{}, Size: 2, Material: lampMaterial}
	objects := []Object{{Geometry: lamp, IsLight: true}}
	lights := []Vector3{{Y: 10}}

	// Zero albedo: diffuse and specular contribute nothing, only emission
	got := rt.CastRay(Vector3{Z: 5}, Vector3{Z: -1}, objects, lights, 0, 1.0)
	if got != lampMaterial.Emission {
		t.Fatalf("emissive hit = %+v, want %+v", got, lampMaterial.Emission)
	}
}

func TestFresnel(t *testing.T) {
	// Head-on incidence collapses to r0
	ior := 1.5
	r0 := (1 - ior) / (1 + ior)
	r0 *= r0
	if got := fresnel(1, ior); !approxEq(got, r0, 1e-12) {
		t.Fatalf("fresnel(1, 1.5) = %v, want %v", got, r0)
	}

	// Grazing incidence reflects fully
	if got := fresnel(0, ior); !approxEq(got, 1, 1e-12) {
		t.Fatalf("fresnel(0, 1.5) = %v, want 1", got)
	}

	// Degenerate index must not divide by zero
	if got := fresnel(0.5, -1); got != 0 {
		t.Fatalf("fresnel(0.5, -1) = %v, want 0", got)
	}
}

func TestCastShadowUnobstructed(t *testing.T) {
	objects := []Object{{Geometry: testCube()}}
	hit := Intersect{
		Point:          Vector3{Y: 1},
		Normal:         Vector3{Y: 1},
		IsIntersecting: true,
	}

	if got := castShadow(&hit, Vector3{Y: 10}, objects); got != 0 {
		t.Fatalf("shadow = %v, want 0 with a clear path to the light", got)
	}
}

func TestCastShadowFalloff(t *testing.T) {
	hit := Intersect{
		Point:          Vector3{},
		Normal:         Vector3{Y: 1},
		IsIntersecting: true,
	}
	light := Vector3{Y: 10}

	nearOccluder := []Object{{Geometry: Cube{Center: Vector3{Y: 5}, Size: 1, Material: sandMaterial}}}
	farOccluder := []Object{{Geometry: Cube{Center: Vector3{Y: 7}, Size: 1, Material: sandMaterial}}}

	sNear := castShadow(&hit, light, nearOccluder)
	sFar := castShadow(&hit, light, farOccluder)

	if sNear <= 0 || sNear >= 1 {
		t.Fatalf("near shadow = %v, want in (0,1)", sNear)
	}
	if sFar <= 0 || sFar >= 1 {
		t.Fatalf("far shadow = %v, want in (0,1)", sFar)
	}
	if sNear <= sFar {
		t.Fatalf("occluder closer to the surface should darken more: near %v, far %v", sNear, sFar)
	}
}

func TestCastShadowStopsAtFirstOccluder(t *testing.T) {
	hit := Intersect{
		Point:          Vector3{},
		Normal:         Vector3{Y: 1},
		IsIntersecting: true,
	}
	light := Vector3{Y: 10}

	near := Object{Geometry: Cube{Center: Vector3{Y: 5}, Size: 1, Material: sandMaterial}}
	far := Object{Geometry: Cube{Center: Vector3{Y: 7}, Size: 1, Material: sandMaterial}}

	// List order decides which occluder is reported, not distance
	sFarFirst := castShadow(&hit, light, []Object{far, near})
	sFarOnly := castShadow(&hit, light, []Object{far})
	if sFarFirst != sFarOnly {
		t.Fatalf("shadow = %v, want %v from the first listed occluder", sFarFirst, sFarOnly)
	}
}

func TestSkyboxColorGradient(t *testing.T) {
	// Horizon sits halfway between ground and sky
	got := skyboxColor(Vector3{X: 1}, 1.0)
	want := LerpColor(groundDay, skyDay, 0.5)
	if got != want {
		t.Fatalf("horizon = %+v, want %+v", got, want)
	}

	// Mid ambient lands between the night and day palettes
	mid := skyboxColor(Vector3{Y: 1}, 0.5)
	if mid.B <= skyNight.B || mid.B >= skyDay.B {
		t.Fatalf("mid-ambient sky blue = %d, want between %d and %d", mid.B, skyNight.B, skyDay.B)
	}
}

func TestAmbientLightIntensity(t *testing.T) {
	cases := []struct {
		y    float64
		want float64
	}{
		{-1, 0.2},
		{-20, 0.2},
		{4, 0.6},
		{9, 1.0},
		{100, 1.0},
	}
	for _, tc := range cases {
		got := AmbientLightIntensity(Vector3{Y: tc.y})
		if !approxEq(got, tc.want, 1e-12) {
			t.Errorf("AmbientLightIntensity(y=%v) = %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestRenderLitTerrain(t *testing.T) {
	rt := testRaytracer(4)
	fb := NewFramebuffer(800, 600)

	terrain := Cube{Center: Vector3{}, Size: 10, Material: sandMaterial}
	objects := []Object{{Geometry: terrain}}
	camera := NewCamera(Vector3{X: 5, Y: 15, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})
	light := Vector3{Y: 20}
	lights := []Vector3{light}

	// The center ray looks down onto the top face
	hit := terrain.RayIntersect(camera.Eye, camera.Forward())
	if !hit.IsIntersecting {
		t.Fatal("center ray misses the terrain")
	}
	if !vecApproxEq(hit.Normal, Vector3{Y: 1}, 1e-12) {
		t.Fatalf("center-ray normal = %+v, want +y", hit.Normal)
	}
	lightDir := light.Sub(hit.Point).Normalize()
	if hit.Normal.Dot(lightDir) <= 0 {
		t.Fatal("top face is not facing the light")
	}
	if shadow := castShadow(&hit, light, objects); shadow != 0 {
		t.Fatalf("shadow = %v, want 0 for an unoccluded top face", shadow)
	}

	rt.Render(fb, objects, camera, lights, 1.0)

	// Pixel (400,300) maps to the exact view axis
	pixel := fb.At(400, 300)
	if pixel == skyboxColor(camera.Forward(), 1.0) {
		t.Fatal("center pixel shows sky instead of the terrain")
	}
	if pixel.R == 0 && pixel.G == 0 && pixel.B == 0 {
		t.Fatal("lit terrain rendered black")
	}

	// Every pixel got written
	pix := fb.Pix()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 255 {
			t.Fatalf("pixel %d left unwritten", i/4)
		}
	}
}

func TestRenderSkyAboveGroundBelow(t *testing.T) {
	rt := testRaytracer(1)
	fb := NewFramebuffer(8, 6)
	camera := NewCamera(Vector3{Z: 10}, Vector3{}, Vector3{Y: 1})

	rt.Render(fb, nil, camera, nil, 1.0)

	top := fb.At(4, 0)
	bottom := fb.At(4, 5)
	if top.B <= top.R {
		t.Fatalf("top pixel %+v does not look like day sky", top)
	}
	if bottom.R <= bottom.B {
		t.Fatalf("bottom pixel %+v does not look like sunlit ground", bottom)
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	scene := NewScene(config.DefaultConfig().Scene)
	objects := scene.Objects(1.23)
	lights := scene.LightPositions()
	camera := NewCamera(Vector3{X: 5, Y: 5, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})
	ambient := AmbientLightIntensity(scene.SunPosition())

	serial := NewFramebuffer(64, 48)
	parallel := NewFramebuffer(64, 48)

	testRaytracer(1).Render(serial, objects, camera, lights, ambient)
	testRaytracer(4).Render(parallel, objects, camera, lights, ambient)

	if !bytes.Equal(serial.Pix(), parallel.Pix()) {
		t.Fatal("parallel render differs from the serial one")
	}
}
