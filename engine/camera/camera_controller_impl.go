package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/common"
)

// cameraControllerImpl is the implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	camera Camera

	bindings map[int]Movement
	held     map[int]bool

	firstMouse     bool
	lastX, lastY   float64
	constrainPitch bool
	invertY        bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller for cam with W/S/A/D bound to forward,
// backward, left and right, and Q/E bound to up and down.
//
// Parameters:
//   - cam: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(cam Camera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		camera: cam,
		bindings: map[int]Movement{
			common.KeyW: Forward,
			common.KeyS: Backward,
			common.KeyA: Left,
			common.KeyD: Right,
			common.KeyQ: Up,
			common.KeyE: Down,
		},
		held:           make(map[int]bool),
		firstMouse:     true,
		constrainPitch: true,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() Camera {
	return cc.camera
}

func (cc *cameraControllerImpl) KeyDown(key int) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.held[key] = true
}

func (cc *cameraControllerImpl) KeyUp(key int) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	delete(cc.held, key)
}

func (cc *cameraControllerImpl) Held(key int) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.held[key]
}

func (cc *cameraControllerImpl) CursorMoved(x, y float64) {
	cc.mu.Lock()
	if cc.firstMouse {
		cc.lastX, cc.lastY = x, y
		cc.firstMouse = false
		cc.mu.Unlock()
		return
	}

	xOffset := float32(x - cc.lastX)
	yOffset := float32(cc.lastY - y)
	if cc.invertY {
		yOffset = -yOffset
	}
	cc.lastX, cc.lastY = x, y
	constrain := cc.constrainPitch
	cc.mu.Unlock()

	cc.camera.ProcessLook(xOffset, yOffset, constrain)
}

func (cc *cameraControllerImpl) Scrolled(yOffset float64) {
	cc.camera.ProcessZoom(float32(yOffset))
}

func (cc *cameraControllerImpl) Update(elapsed float32) {
	cc.mu.Lock()
	moves := make([]Movement, 0, len(cc.held))
	for key := range cc.held {
		if m, ok := cc.bindings[key]; ok {
			moves = append(moves, m)
		}
	}
	cc.mu.Unlock()

	for _, m := range moves {
		cc.camera.ProcessMovement(m, elapsed)
	}
}

func (cc *cameraControllerImpl) ResetMouse() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.firstMouse = true
}

func (cc *cameraControllerImpl) ConstrainPitch() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.constrainPitch
}

func (cc *cameraControllerImpl) SetConstrainPitch(constrain bool) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.constrainPitch = constrain
}

func (cc *cameraControllerImpl) Bind(key int, movement Movement) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.bindings[key] = movement
}

func (cc *cameraControllerImpl) Unbind(key int) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	delete(cc.bindings, key)
}
