package input

const (
	// NumRawButtons is the fixed raw button capture width per slot.
	NumRawButtons = 20
	// NumRawAxes is the fixed raw axis capture width per slot.
	NumRawAxes = 13
)

// Backend is the raw input capability the engine polls. Given a device
// slot (1..MaxDevices) and a raw index it reports the current physical
// state; it knows nothing about logical identifiers. Implementations
// must tolerate slots with no device attached and report neutral
// values for them.
type Backend interface {
	RawButton(slot, index int) bool
	RawAxis(slot, index int) float64
}

// RawSnapshot is one device slot's complete raw state at a single
// instant.
type RawSnapshot struct {
	Buttons [NumRawButtons]bool
	Axes    [NumRawAxes]float64
}

// capture fills the snapshot from the backend, exactly NumRawButtons
// button reads and NumRawAxes axis reads.
func (s *RawSnapshot) capture(b Backend, slot int) {
	for i := range s.Buttons {
		s.Buttons[i] = b.RawButton(slot, i)
	}
	for i := range s.Axes {
		s.Axes[i] = b.RawAxis(slot, i)
	}
}
