package engine

import (
	"math"

	"oasis/internal/util"
)

// maxPitch keeps the orbit away from the poles, where the view basis
// would degenerate.
const maxPitch = math.Pi/2 - 0.01

// MoveDirection is a camera translation command
type MoveDirection int

// Movement commands
const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Camera holds the eye position, the look-at target and the derived
// orthonormal view basis. The basis is rebuilt after every change, so up
// can never drift parallel to forward.
type Camera struct {
	Eye    Vector3
	Center Vector3
	Up     Vector3

	forward Vector3
	right   Vector3
	up      Vector3
}

// NewCamera creates a camera looking from eye at center
func NewCamera(eye, center, up Vector3) *Camera {
	c := &Camera{Eye: eye, Center: center, Up: up}
	c.updateBasis()
	return c
}

func (c *Camera) updateBasis() {
	c.forward = c.Center.Sub(c.Eye).Normalize()
	c.right = c.forward.Cross(c.Up).Normalize()
	c.up = c.right.Cross(c.forward)
}

// BaseChange maps a camera-local ray direction (x right, y up, -z forward)
// into world space
func (c *Camera) BaseChange(direction Vector3) Vector3 {
	world := c.right.Mul(direction.X).
		Add(c.up.Mul(direction.Y)).
		Sub(c.forward.Mul(direction.Z))
	return world.Normalize()
}

// Forward returns the unit view direction
func (c *Camera) Forward() Vector3 {
	return c.forward
}

// Right returns the unit right basis vector
func (c *Camera) Right() Vector3 {
	return c.right
}

// UpBasis returns the recomputed unit up basis vector
func (c *Camera) UpBasis() Vector3 {
	return c.up
}

// Move translates eye and center together along the view basis
func (c *Camera) Move(direction MoveDirection, step float64) {
	var delta Vector3
	switch direction {
	case MoveForward:
		delta = c.forward.Mul(step)
	case MoveBackward:
		delta = c.forward.Mul(-step)
	case MoveLeft:
		delta = c.right.Mul(-step)
	case MoveRight:
		delta = c.right.Mul(step)
	}

	c.Eye = c.Eye.Add(delta)
	c.Center = c.Center.Add(delta)
	c.updateBasis()
}

// Orbit rotates the eye around the look-at target on a sphere of constant
// radius. Pitch is clamped short of the poles.
func (c *Camera) Orbit(yawDelta, pitchDelta float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z)
	pitch := math.Asin(util.Clamp(offset.Y/radius, -1, 1))

	yaw += yawDelta
	pitch = util.Clamp(pitch+pitchDelta, -maxPitch, maxPitch)

	offset = Vector3{
		X: radius * math.Cos(pitch) * math.Sin(yaw),
		Y: radius * math.Sin(pitch),
		Z: radius * math.Cos(pitch) * math.Cos(yaw),
	}

	c.Eye = c.Center.Add(offset)
	c.updateBasis()
}
