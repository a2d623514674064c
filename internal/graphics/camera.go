package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a first-person camera. Yaw turns about +Y, positive pitch looks
// down. Angles are in degrees.
type Camera struct {
	Eye         mgl32.Vec3
	Yaw         float32
	Pitch       float32
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		FOV:         fov,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Orientation is the world-to-view rotation.
func (c *Camera) Orientation() mgl32.Quat {
	yaw := mgl32.QuatRotate(mgl32.DegToRad(c.Yaw), mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(mgl32.DegToRad(c.Pitch), mgl32.Vec3{1, 0, 0})
	return pitch.Mul(yaw).Normalize()
}

func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(-c.Eye.X(), -c.Eye.Y(), -c.Eye.Z())
	return c.Orientation().Mat4().Mul4(t)
}

// Forward is the world-space view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Orientation().Inverse().Rotate(mgl32.Vec3{0, 0, -1})
}

// Right is the world-space direction to the right of the view.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Orientation().Inverse().Rotate(mgl32.Vec3{1, 0, 0})
}

// Move translates the eye along the view axes.
func (c *Camera) Move(forward, right, up float32) {
	c.Eye = c.Eye.Add(c.Forward().Mul(forward)).Add(c.Right().Mul(right)).Add(mgl32.Vec3{0, up, 0})
}

// Turn adds to yaw and pitch, clamping pitch short of straight up or down.
func (c *Camera) Turn(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -89, 89)
}

// Frame places the camera in front of and above the box lo..hi, looking at
// its center.
func (c *Camera) Frame(lo, hi mgl32.Vec3) {
	center := lo.Add(hi).Mul(0.5)
	extent := hi.Sub(lo).Len()
	if extent == 0 {
		extent = 1
	}
	offset := mgl32.Vec3{0, extent * 0.5, extent}
	c.Eye = center.Add(offset)
	c.Yaw = 0
	c.Pitch = mgl32.RadToDeg(float32(math.Atan2(float64(offset.Y()), float64(offset.Z()))))
	c.FarPlane = max(c.FarPlane, extent*4)
}
