package engine

import (
	"math"
	"testing"
)

func checkOrthonormal(t *testing.T, cam *Camera) {
	t.Helper()
	f, r, u := cam.Forward(), cam.Right(), cam.UpBasis()
	for name, v := range map[string]Vector3{"forward": f, "right": r, "up": u} {
		if !approxEq(v.Length(), 1, 1e-9) {
			t.Fatalf("%s length = %v, want 1", name, v.Length())
		}
	}
	if !approxEq(f.Dot(r), 0, 1e-9) || !approxEq(f.Dot(u), 0, 1e-9) || !approxEq(r.Dot(u), 0, 1e-9) {
		t.Fatalf("basis not orthogonal: f·r=%v f·u=%v r·u=%v", f.Dot(r), f.Dot(u), r.Dot(u))
	}
}

func TestCameraBasis(t *testing.T) {
	cam := NewCamera(Vector3{X: 5, Y: 5, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})
	checkOrthonormal(t, cam)

	wantForward := Vector3{X: -5, Y: -3, Z: -10}.Normalize()
	if !vecApproxEq(cam.Forward(), wantForward, 1e-9) {
		t.Fatalf("forward = %+v, want %+v", cam.Forward(), wantForward)
	}
}

func TestCameraBaseChange(t *testing.T) {
	cam := NewCamera(Vector3{X: 5, Y: 5, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})

	// Local -z is the view direction
	got := cam.BaseChange(Vector3{Z: -1})
	if !vecApproxEq(got, cam.Forward(), 1e-9) {
		t.Fatalf("BaseChange(-z) = %+v, want forward %+v", got, cam.Forward())
	}

	got = cam.BaseChange(Vector3{X: 1})
	if !vecApproxEq(got, cam.Right(), 1e-9) {
		t.Fatalf("BaseChange(+x) = %+v, want right %+v", got, cam.Right())
	}

	if !approxEq(cam.BaseChange(Vector3{X: 0.3, Y: -0.2, Z: -1}).Length(), 1, 1e-9) {
		t.Fatal("BaseChange result not normalized")
	}
}

func TestCameraOrbitRoundTrip(t *testing.T) {
	cam := NewCamera(Vector3{X: 5, Y: 5, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})
	eye := cam.Eye

	cam.Orbit(0.3, 0.2)
	cam.Orbit(-0.3, -0.2)

	if !vecApproxEq(cam.Eye, eye, 1e-9) {
		t.Fatalf("eye drifted after round trip: %+v, want %+v", cam.Eye, eye)
	}
	checkOrthonormal(t, cam)
}

func TestCameraOrbitPreservesRadius(t *testing.T) {
	cam := NewCamera(Vector3{Z: 10}, Vector3{}, Vector3{Y: 1})
	r := cam.Eye.Sub(cam.Center).Length()

	for i := 0; i < 50; i++ {
		cam.Orbit(0.11, 0.07)
		got := cam.Eye.Sub(cam.Center).Length()
		if !approxEq(got, r, 1e-9) {
			t.Fatalf("radius drifted to %v after %d orbits, want %v", got, i+1, r)
		}
	}
}

func TestCameraOrbitPitchClamp(t *testing.T) {
	cam := NewCamera(Vector3{Z: 10}, Vector3{}, Vector3{Y: 1})

	cam.Orbit(0, 10)
	if cam.Eye.Y >= 10 {
		t.Fatalf("eye.Y = %v, pitch should be clamped below the pole", cam.Eye.Y)
	}
	wantY := 10 * math.Sin(maxPitch)
	if !approxEq(cam.Eye.Y, wantY, 1e-9) {
		t.Fatalf("eye.Y = %v, want %v", cam.Eye.Y, wantY)
	}
	checkOrthonormal(t, cam)

	cam.Orbit(0, -20)
	if !approxEq(cam.Eye.Y, -wantY, 1e-9) {
		t.Fatalf("eye.Y = %v, want %v", cam.Eye.Y, -wantY)
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewCamera(Vector3{X: 5, Y: 5, Z: 10}, Vector3{Y: 2}, Vector3{Y: 1})
	eye, center := cam.Eye, cam.Center
	forward := cam.Forward()

	cam.Move(MoveForward, 0.5)

	wantEye := eye.Add(forward.Mul(0.5))
	wantCenter := center.Add(forward.Mul(0.5))
	if !vecApproxEq(cam.Eye, wantEye, 1e-9) {
		t.Fatalf("eye = %+v, want %+v", cam.Eye, wantEye)
	}
	if !vecApproxEq(cam.Center, wantCenter, 1e-9) {
		t.Fatalf("center = %+v, want %+v", cam.Center, wantCenter)
	}

	cam.Move(MoveBackward, 0.5)
	if !vecApproxEq(cam.Eye, eye, 1e-9) || !vecApproxEq(cam.Center, center, 1e-9) {
		t.Fatal("forward then backward did not return to the start")
	}

	cam.Move(MoveLeft, 1)
	cam.Move(MoveRight, 1)
	if !vecApproxEq(cam.Eye, eye, 1e-9) {
		t.Fatal("left then right did not return to the start")
	}
}
