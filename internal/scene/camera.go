package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
)

const (
	defaultYaw   = -90.0
	defaultZoom  = 45.0
	pitchLimit   = 89.0
	minZoom      = 1.0
	nearPlane    = 0.1
	farPlane     = 100.0
	defaultSpeed = 2.5
)

// Camera provides a fly camera to navigate a scene
type Camera struct {
	// camera attributes
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3
	// euler angles
	yaw, pitch float32
	// camera options
	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

func NewCamera(position mgl32.Vec3) *Camera {
	c := &Camera{
		position:         position,
		worldUp:          mgl32.Vec3{0.0, 1.0, 0.0},
		yaw:              defaultYaw,
		zoom:             defaultZoom,
		mouseSensitivity: 0.1,
		movementSpeed:    defaultSpeed,
	}
	c.updateVectors()
	return c
}

func (c *Camera) SetSpeed(speed float32)             { c.movementSpeed = speed }
func (c *Camera) SetSensitivity(sensitivity float32) { c.mouseSensitivity = sensitivity }
func (c *Camera) SetPosition(p mgl32.Vec3)           { c.position = p }

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }

// SetFront points the camera along dir. Yaw and pitch are recovered from
// the direction so later mouse movement continues from it.
func (c *Camera) SetFront(dir mgl32.Vec3) {
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	pitch := mgl32.RadToDeg(float32(math.Asin(float64(mgl32.Clamp(dir.Y(), -1, 1)))))
	c.pitch = mgl32.Clamp(pitch, -pitchLimit, pitchLimit)
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir.Z()), float64(dir.X()))))
	c.updateVectors()
}

func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32, constrainPitch bool) {
	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity

	if constrainPitch {
		c.pitch = mgl32.Clamp(c.pitch, -pitchLimit, pitchLimit)
	}

	c.updateVectors()
}

func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.zoom = mgl32.Clamp(c.zoom-yOffset, minZoom, defaultZoom)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.position.Add(c.front), c.up)
}

func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, nearPlane, farPlane)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	// length of right shrinks towards 0 near the poles, which would slow movement
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func lookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up.Normalize()).Normalize()
	up = right.Cross(forward)
	rotation := mgl32.Mat4{
		right.X(), up.X(), -forward.X(), 0,
		right.Y(), up.Y(), -forward.Y(), 0,
		right.Z(), up.Z(), -forward.Z(), 0,
		0, 0, 0, 1,
	}
	translation := mgl32.Translate3D(-eye.X(), -eye.Y(), -eye.Z())

	return rotation.Mul4(translation)
}
