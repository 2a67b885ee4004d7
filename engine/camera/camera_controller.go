package camera

// CameraController turns window input into camera updates for a first-person fly camera.
// Key events mark keys held or released; Update applies one movement step per held,
// bound key. Cursor positions are converted to look offsets relative to the previous
// position, with the first sample after a reset producing no rotation. Scrolling zooms.
// Key codes are the GLFW values in common/key_codes.go.
type CameraController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera
	Camera() Camera

	// KeyDown marks a key as held.
	//
	// Parameters:
	//   - key: the key code
	KeyDown(key int)

	// KeyUp marks a key as released.
	//
	// Parameters:
	//   - key: the key code
	KeyUp(key int)

	// Held reports whether a key is currently held.
	//
	// Parameters:
	//   - key: the key code
	//
	// Returns:
	//   - bool: true between KeyDown and KeyUp
	Held(key int) bool

	// CursorMoved feeds an absolute cursor position. Screen y grows downwards, so moving
	// the cursor up produces a positive pitch offset.
	//
	// Parameters:
	//   - x: cursor x in screen coordinates
	//   - y: cursor y in screen coordinates
	CursorMoved(x, y float64)

	// Scrolled feeds a vertical scroll offset to the camera zoom.
	//
	// Parameters:
	//   - yOffset: the scroll offset
	Scrolled(yOffset float64)

	// Update moves the camera once for every held key that has a binding.
	//
	// Parameters:
	//   - elapsed: elapsed time in seconds since the previous update
	Update(elapsed float32)

	// ResetMouse forgets the last cursor position so the next sample does not rotate.
	// Call it after the cursor is captured or released.
	ResetMouse()

	// ConstrainPitch reports whether look updates clamp pitch.
	//
	// Returns:
	//   - bool: true if pitch is clamped
	ConstrainPitch() bool

	// SetConstrainPitch sets whether look updates clamp pitch.
	//
	// Parameters:
	//   - constrain: true to clamp pitch
	SetConstrainPitch(constrain bool)

	// Bind maps a key to a movement, replacing any existing binding for that key.
	//
	// Parameters:
	//   - key: the key code
	//   - movement: the movement applied while the key is held
	Bind(key int, movement Movement)

	// Unbind removes the binding of a key.
	//
	// Parameters:
	//   - key: the key code
	Unbind(key int)
}
