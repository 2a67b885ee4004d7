package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithBindings replaces the default key bindings.
//
// Parameters:
//   - bindings: key code to movement map
//
// Returns:
//   - CameraControllerOption: functional option to set the bindings
func WithBindings(bindings map[int]Movement) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings = make(map[int]Movement, len(bindings))
		for k, m := range bindings {
			cc.bindings[k] = m
		}
	}
}

// WithKeyBinding adds or replaces a single key binding.
//
// Parameters:
//   - key: the key code
//   - movement: the movement applied while the key is held
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithKeyBinding(key int, movement Movement) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings[key] = movement
	}
}

// WithConstrainPitch sets whether look updates clamp pitch. Defaults to true.
//
// Parameters:
//   - constrain: true to clamp pitch
//
// Returns:
//   - CameraControllerOption: functional option to set pitch clamping
func WithConstrainPitch(constrain bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.constrainPitch = constrain
	}
}

// WithInvertY flips vertical look so moving the cursor up looks down.
//
// Parameters:
//   - invert: true to invert the vertical axis
//
// Returns:
//   - CameraControllerOption: functional option to set vertical inversion
func WithInvertY(invert bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.invertY = invert
	}
}
