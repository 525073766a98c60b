// Package camera implements a first-person perspective camera driven by
// euler angles, with an additional orbit mode around a target point.
package camera

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
)

type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// defaults
const (
	Yaw         = -90.0
	Pitch       = 0.0
	Speed       = 2.5
	Sensitivity = 0.1
	Zoom        = 45.0

	MinZoom  = 1.0
	MaxZoom  = 45.0
	MaxPitch = 89.0
)

type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// degrees
	Yaw, Pitch float32

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // vertical field of view in degrees
}

func New(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position: position,
		WorldUp:  worldUp.Normalize(),
		Yaw:      yaw,
		Pitch:    pitch,

		MovementSpeed:    Speed,
		MouseSensitivity: Sensitivity,
		Zoom:             Zoom,
	}
	c.updateVectors()

	return c
}

// NewDefault returns a camera three units in front of the origin, looking at it.
func NewDefault() *Camera {
	return New(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, Yaw, Pitch)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) Projection(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), aspect, near, far)
}

func (c *Camera) Move(d Direction, dt float32) {
	velocity := c.MovementSpeed * dt

	switch d {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Mul(velocity))
	}
}

// Look turns the camera by a mouse offset in screen units.
func (c *Camera) Look(xoffset, yoffset float32, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

func (c *Camera) ZoomBy(yoffset float32) {
	c.Zoom = mgl32.Clamp(c.Zoom-yoffset, MinZoom, MaxZoom)
}

// Orbit rotates the camera position around target while keeping its
// distance, then turns the camera to face the target again.
func (c *Camera) Orbit(target mgl32.Vec3, xoffset, yoffset float32) {
	distance := c.Position.Sub(target)
	if distance.Len() == 0 {
		return
	}

	yaw := mgl32.DegToRad(-xoffset * c.MouseSensitivity)
	pitch := mgl32.DegToRad(yoffset * c.MouseSensitivity)

	// keep away from the poles, the up vector flips there
	current := float32(m.Asin(float64(mgl32.Clamp(distance.Normalize().Dot(c.WorldUp), -1, 1))))
	limit := mgl32.DegToRad(MaxPitch)
	pitch = mgl32.Clamp(current+pitch, -limit, limit) - current

	rotation := mgl32.QuatRotate(yaw, c.WorldUp)
	if axis := c.WorldUp.Cross(distance); axis.Len() > 0 {
		rotation = rotation.Mul(mgl32.QuatRotate(-pitch, axis.Normalize()))
	}

	c.Position = rotation.Rotate(distance).Add(target)
	c.LookAt(target)
}

// LookAt points the camera at target, deriving yaw and pitch from the new front.
func (c *Camera) LookAt(target mgl32.Vec3) {
	front := target.Sub(c.Position)
	if front.Len() == 0 {
		return
	}
	front = front.Normalize()

	c.Pitch = mgl32.RadToDeg(float32(m.Asin(float64(mgl32.Clamp(front[1], -1, 1)))))
	c.Yaw = mgl32.RadToDeg(float32(m.Atan2(float64(front[2]), float64(front[0]))))
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)

	c.updateVectors()
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	c.Front = mgl32.Vec3{
		float32(m.Cos(yaw) * m.Cos(pitch)),
		float32(m.Sin(pitch)),
		float32(m.Sin(yaw) * m.Cos(pitch)),
	}.Normalize()

	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
