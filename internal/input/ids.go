package input

// Button identifies a logical gamepad button, stable across device
// types and platforms. The last eight members are synthetic stick
// directions: they never carry a raw mapping and always resolve by
// derivation from the paired axis.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftTrigger
	ButtonRightTrigger
	ButtonLeftStickClick
	ButtonRightStickClick
	ButtonBack
	ButtonStart
	ButtonGuide
	ButtonShare
	ButtonTouchpad
	ButtonMode
	ButtonLeftStickUp
	ButtonLeftStickDown
	ButtonLeftStickLeft
	ButtonLeftStickRight
	ButtonRightStickUp
	ButtonRightStickDown
	ButtonRightStickLeft
	ButtonRightStickRight
)

const (
	numButtons = 28
	// Buttons at ordinals >= numMappedButtons are the synthetic stick
	// directions and have no slot in the definition table.
	numMappedButtons = 20

	buttonNone Button = -1
)

var buttonNames = [numButtons]string{
	"a", "b", "x", "y",
	"dpad_up", "dpad_down", "dpad_left", "dpad_right",
	"lb", "rb", "lt", "rt", "l3", "r3",
	"back", "start", "guide", "share", "touchpad", "mode",
	"lstick_up", "lstick_down", "lstick_left", "lstick_right",
	"rstick_up", "rstick_down", "rstick_left", "rstick_right",
}

func (b Button) valid() bool { return b >= 0 && int(b) < numButtons }

func (b Button) String() string {
	if !b.valid() {
		return "invalid"
	}
	return buttonNames[b]
}

// Axis identifies a logical gamepad axis. Stick axes occupy pairs of
// consecutive ordinals (X then Y) so that a Stick is exactly axes
// 2k and 2k+1.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisDPadX
	AxisDPadY
	AxisLeftTrigger
	AxisRightTrigger
)

const numAxes = 8

var axisNames = [numAxes]string{
	"left_x", "left_y", "right_x", "right_y",
	"dpad_x", "dpad_y", "left_trigger", "right_trigger",
}

func (a Axis) valid() bool { return a >= 0 && int(a) < numAxes }

func (a Axis) String() string {
	if !a.valid() {
		return "invalid"
	}
	return axisNames[a]
}

// isTrigger reports whether the axis outputs the canonical [0,1]
// trigger range rather than the [-1,1] stick range.
func (a Axis) isTrigger() bool {
	return a == AxisLeftTrigger || a == AxisRightTrigger
}

// canonicalRange returns the output range guaranteed to callers.
func (a Axis) canonicalRange() (min, max float64) {
	if a.isTrigger() {
		return 0, 1
	}
	return -1, 1
}

// Stick identifies a logical two-axis input.
type Stick int

const (
	StickLeft Stick = iota
	StickRight
	StickDPad
)

const numSticks = 3

func (s Stick) valid() bool { return s >= 0 && int(s) < numSticks }

func (s Stick) String() string {
	switch s {
	case StickLeft:
		return "left_stick"
	case StickRight:
		return "right_stick"
	case StickDPad:
		return "dpad"
	}
	return "invalid"
}

// axes returns the X and Y axes the stick is composed of.
func (s Stick) axes() (x, y Axis) {
	return Axis(2 * s), Axis(2*s + 1)
}

// DeviceType selects which column family of the mapping definition
// interprets a device's raw indices.
type DeviceType int

const (
	DeviceXbox360 DeviceType = iota
	DeviceXboxOne
	DeviceXboxSeries
	DeviceDualShock3
	DeviceDualShock4
	DeviceDualSense
	DeviceSwitchPro
	DeviceJoyConPair
	DeviceSteamController
	DeviceStadia
	DeviceEightBitDo
	DeviceGeneric
)

const numDeviceTypes = 12

var deviceTypeNames = [numDeviceTypes]string{
	"xbox360", "xbox_one", "xbox_series",
	"dualshock3", "dualshock4", "dualsense",
	"switch_pro", "joycon_pair", "steam", "stadia", "8bitdo", "generic",
}

func (d DeviceType) valid() bool { return d >= 0 && int(d) < numDeviceTypes }

func (d DeviceType) String() string {
	if !d.valid() {
		return "invalid"
	}
	return deviceTypeNames[d]
}

// DeviceTypeByName resolves a configuration name to a DeviceType.
func DeviceTypeByName(name string) (DeviceType, bool) {
	for i, n := range deviceTypeNames {
		if n == name {
			return DeviceType(i), true
		}
	}
	return DeviceGeneric, false
}

// Platform selects which column of the mapping definition applies to
// the running operating system.
type Platform int

const (
	PlatformWindows Platform = iota
	PlatformLinux
	PlatformMacOS
)

const numPlatforms = 3

var platformNames = [numPlatforms]string{"windows", "linux", "macos"}

func (p Platform) valid() bool { return p >= 0 && int(p) < numPlatforms }

func (p Platform) String() string {
	if !p.valid() {
		return "invalid"
	}
	return platformNames[p]
}

// PlatformByName resolves a configuration name to a Platform.
func PlatformByName(name string) (Platform, bool) {
	for i, n := range platformNames {
		if n == name {
			return Platform(i), true
		}
	}
	return PlatformLinux, false
}

// PlatformForGOOS maps a runtime.GOOS value to a Platform.
func PlatformForGOOS(goos string) (Platform, bool) {
	switch goos {
	case "windows":
		return PlatformWindows, true
	case "linux":
		return PlatformLinux, true
	case "darwin":
		return PlatformMacOS, true
	}
	return PlatformLinux, false
}
