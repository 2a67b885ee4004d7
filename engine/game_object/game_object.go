package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine/model"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	enabled atomic.Bool
	mesh    model.Mesh

	position      mgl32.Vec3
	rotation      mgl32.Vec3
	scale         mgl32.Vec3
	rotationSpeed mgl32.Vec3
}

// GameObject places a borrowed Mesh in the world with its own transform.
// Several objects may share one mesh; the caller keeps the mesh alive.
type GameObject interface {
	// ID returns the object's identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// Mesh returns the mesh drawn for this object, or nil if not set.
	//
	// Returns:
	//   - model.Mesh: the mesh or nil
	Mesh() model.Mesh

	// SetMesh assigns the mesh drawn for this object.
	//
	// Parameters:
	//   - m: the mesh, or nil to draw nothing
	SetMesh(m model.Mesh)

	// Position returns the world-space translation.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the world-space translation.
	//
	// Parameters:
	//   - p: the position
	SetPosition(p mgl32.Vec3)

	// Rotation returns the euler angles in radians, applied Z then Y then X.
	//
	// Returns:
	//   - mgl32.Vec3: rotation around X, Y and Z
	Rotation() mgl32.Vec3

	// SetRotation sets the euler angles in radians.
	//
	// Parameters:
	//   - r: rotation around X, Y and Z
	SetRotation(r mgl32.Vec3)

	// Scale returns the per-axis scale.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - s: the scale
	SetScale(s mgl32.Vec3)

	// RotationSpeed returns the angular velocity in radians per second.
	//
	// Returns:
	//   - mgl32.Vec3: angular velocity around X, Y and Z
	RotationSpeed() mgl32.Vec3

	// SetRotationSpeed sets the angular velocity applied by Update.
	//
	// Parameters:
	//   - speed: radians per second around X, Y and Z
	SetRotationSpeed(speed mgl32.Vec3)

	// Update advances the rotation by RotationSpeed * elapsed. Angles wrap to (-2π, 2π).
	//
	// Parameters:
	//   - elapsed: seconds since the last update
	Update(elapsed float32)

	// ModelMatrix composes Translation * RotZ * RotY * RotX * Scale.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// Draw draws the mesh with this object's model matrix. Does nothing while disabled or
	// without a mesh.
	//
	// Parameters:
	//   - view: the camera view matrix
	//   - projection: the projection matrix
	Draw(view, projection mgl32.Mat4)
}

var _ GameObject = &gameObject{}

// NewGameObject creates an enabled object at the origin with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the new object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.Mutex{},
		scale: mgl32.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (o *gameObject) ID() uint64 {
	return o.id
}

func (o *gameObject) Enabled() bool {
	return o.enabled.Load()
}

func (o *gameObject) SetEnabled(enabled bool) {
	o.enabled.Store(enabled)
}

func (o *gameObject) Mesh() model.Mesh {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.mesh
}

func (o *gameObject) SetMesh(m model.Mesh) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.mesh = m
}

func (o *gameObject) Position() mgl32.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.position
}

func (o *gameObject) SetPosition(p mgl32.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.position = p
}

func (o *gameObject) Rotation() mgl32.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rotation
}

func (o *gameObject) SetRotation(r mgl32.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rotation = r
}

func (o *gameObject) Scale() mgl32.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.scale
}

func (o *gameObject) SetScale(s mgl32.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.scale = s
}

func (o *gameObject) RotationSpeed() mgl32.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rotationSpeed
}

func (o *gameObject) SetRotationSpeed(speed mgl32.Vec3) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rotationSpeed = speed
}

func (o *gameObject) Update(elapsed float32) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.rotation {
		o.rotation[i] = math32.Mod(o.rotation[i]+o.rotationSpeed[i]*elapsed, 2*math32.Pi)
	}
}

func (o *gameObject) ModelMatrix() mgl32.Mat4 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return common.BuildModelMatrix(o.position, o.rotation, o.scale)
}

func (o *gameObject) Draw(view, projection mgl32.Mat4) {
	if !o.Enabled() {
		return
	}
	m := o.Mesh()
	if m == nil {
		return
	}
	m.Draw(o.ModelMatrix(), view, projection)
}
