package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default camera settings.
const (
	DefaultYaw              float32 = -90
	DefaultPitch            float32 = 0
	DefaultMovementSpeed    float32 = 5
	DefaultMouseSensitivity float32 = 0.1
	DefaultZoom             float32 = 45

	// MaxPitch is the pitch limit in degrees applied by constrained look updates.
	MaxPitch float32 = 89
	// MinZoom and MaxZoom bound the zoom angle in degrees.
	MinZoom float32 = 1
	MaxZoom float32 = 45
)

// Movement is a direction the camera can be displaced in.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// String returns the movement name.
func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// Camera is a first-person camera described by a position and Euler angles in degrees.
// Front, right and up form an orthonormal basis recomputed on every orientation change;
// world up is fixed at construction. Yaw -90 looks down -Z.
// The camera does not own a projection; Zoom is the field of view callers should use.
type Camera interface {
	// Position returns the camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	Position() mgl32.Vec3

	// SetPosition moves the camera without changing its orientation.
	//
	// Parameters:
	//   - position: the new world-space position
	SetPosition(position mgl32.Vec3)

	// Front returns the unit view direction.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Up returns the unit camera up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Right returns the unit camera right vector.
	//
	// Returns:
	//   - mgl32.Vec3: the right vector
	Right() mgl32.Vec3

	// WorldUp returns the fixed reference up direction.
	//
	// Returns:
	//   - mgl32.Vec3: the world up vector
	WorldUp() mgl32.Vec3

	// Yaw returns the heading in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the elevation in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// Zoom returns the zoom angle in degrees, within [MinZoom, MaxZoom].
	//
	// Returns:
	//   - float32: the zoom angle
	Zoom() float32

	// MovementSpeed returns the displacement speed in units per second.
	//
	// Returns:
	//   - float32: the movement speed
	MovementSpeed() float32

	// SetMovementSpeed sets the displacement speed in units per second.
	//
	// Parameters:
	//   - speed: the movement speed
	SetMovementSpeed(speed float32)

	// MouseSensitivity returns the scale applied to raw look offsets.
	//
	// Returns:
	//   - float32: degrees per raw offset unit
	MouseSensitivity() float32

	// SetMouseSensitivity sets the scale applied to raw look offsets.
	//
	// Parameters:
	//   - sensitivity: degrees per raw offset unit
	SetMouseSensitivity(sensitivity float32)

	// ViewMatrix returns lookAt(position, position + front, up).
	//
	// Returns:
	//   - mgl32.Mat4: the view transform
	ViewMatrix() mgl32.Mat4

	// ProcessMovement displaces the camera by MovementSpeed * elapsed along front, right or
	// world up.
	//
	// Parameters:
	//   - direction: the movement direction
	//   - elapsed: elapsed time in seconds
	ProcessMovement(direction Movement, elapsed float32)

	// ProcessLook scales raw offsets by MouseSensitivity, adds them to yaw and pitch and
	// recomputes the basis. With constrainPitch, pitch is clamped to [-MaxPitch, MaxPitch].
	//
	// Parameters:
	//   - xOffset: raw horizontal offset, positive turns right
	//   - yOffset: raw vertical offset, positive looks up
	//   - constrainPitch: whether to clamp pitch
	ProcessLook(xOffset, yOffset float32, constrainPitch bool)

	// ProcessZoom subtracts a scroll offset from the zoom angle and clamps it to
	// [MinZoom, MaxZoom].
	//
	// Parameters:
	//   - offset: the vertical scroll offset
	ProcessZoom(offset float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a camera at the origin looking down -Z with world up +Y.
// Pitch supplied through options is clamped to [-MaxPitch, MaxPitch].
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		front:            mgl32.Vec3{0, 0, -1},
		right:            mgl32.Vec3{1, 0, 0},
		up:               mgl32.Vec3{0, 1, 0},
		worldUp:          mgl32.Vec3{0, 1, 0},
		yaw:              DefaultYaw,
		pitch:            DefaultPitch,
		movementSpeed:    DefaultMovementSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		zoom:             DefaultZoom,
	}
	for _, option := range options {
		option(c)
	}
	c.pitch = common.Clamp(c.pitch, -MaxPitch, MaxPitch)
	c.zoom = common.Clamp(c.zoom, MinZoom, MaxZoom)
	c.updateVectors()
	return c
}

// updateVectors recomputes front, right and up from yaw and pitch.
// When front is parallel to world up the previous right vector is kept.
// Caller must hold the mutex or own c exclusively.
func (c *cameraImpl) updateVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	c.front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()

	if right := c.front.Cross(c.worldUp); right.Len() > 1e-6 {
		c.right = right.Normalize()
	}
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Right() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeed = speed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseSensitivity = sensitivity
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProcessMovement(direction Movement, elapsed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	velocity := c.movementSpeed * elapsed
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	case Up:
		c.position = c.position.Add(c.worldUp.Mul(velocity))
	case Down:
		c.position = c.position.Sub(c.worldUp.Mul(velocity))
	}
}

func (c *cameraImpl) ProcessLook(xOffset, yOffset float32, constrainPitch bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.yaw += xOffset * c.mouseSensitivity
	c.pitch += yOffset * c.mouseSensitivity
	if constrainPitch {
		c.pitch = common.Clamp(c.pitch, -MaxPitch, MaxPitch)
	}
	c.updateVectors()
}

func (c *cameraImpl) ProcessZoom(offset float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = common.Clamp(c.zoom-offset, MinZoom, MaxZoom)
}
