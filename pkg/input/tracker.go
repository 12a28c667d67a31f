package input

// KeyPressTracker turns held-key state into single presses so a key held
// across frames only fires once. K is whatever identifies a key on the
// platform, e.g. sdl.Scancode.
type KeyPressTracker[K comparable] struct {
	pressed map[K]bool
}

// NewKeyPressTracker creates a new KeyPressTracker
func NewKeyPressTracker[K comparable]() KeyPressTracker[K] {
	return KeyPressTracker[K]{
		pressed: make(map[K]bool),
	}
}

// IsPressed checks if a key was just pressed (not held)
func (kpt *KeyPressTracker[K]) IsPressed(key K, down bool) bool {
	wasPressed := kpt.pressed[key]
	kpt.pressed[key] = down

	return down && !wasPressed
}
