package input

const (
	// AnyDevice addresses every connected slot at once.
	AnyDevice = 0
	// MaxDevices is the number of concrete device slots (1..MaxDevices).
	MaxDevices = 4
)

// DeviceHandle names a device slot and the mapping family used to
// interpret it. Identity is by ID alone; two handles with the same ID
// refer to the same physical device, Type only selects the table.
type DeviceHandle struct {
	ID   int
	Type DeviceType
}

func (d DeviceHandle) concrete() bool {
	return d.ID >= 1 && d.ID <= MaxDevices
}

func (d DeviceHandle) addressable() bool {
	return d.ID == AnyDevice || d.concrete()
}
