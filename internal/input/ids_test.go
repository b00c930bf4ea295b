package input

import "testing"

func TestStickAxesPairs(t *testing.T) {
	cases := []struct {
		stick Stick
		x, y  Axis
	}{
		{StickLeft, AxisLeftX, AxisLeftY},
		{StickRight, AxisRightX, AxisRightY},
		{StickDPad, AxisDPadX, AxisDPadY},
	}
	for _, tc := range cases {
		x, y := tc.stick.axes()
		if x != tc.x || y != tc.y {
			t.Errorf("%v.axes() = (%v,%v), want (%v,%v)", tc.stick, x, y, tc.x, tc.y)
		}
	}
}

func TestCanonicalRanges(t *testing.T) {
	for a := AxisLeftX; a <= AxisRightTrigger; a++ {
		min, max := a.canonicalRange()
		if a.isTrigger() {
			if min != 0 || max != 1 {
				t.Errorf("%v canonical range = (%v,%v), want (0,1)", a, min, max)
			}
		} else if min != -1 || max != 1 {
			t.Errorf("%v canonical range = (%v,%v), want (-1,1)", a, min, max)
		}
	}
}

func TestNameLookups(t *testing.T) {
	if dt, ok := DeviceTypeByName("dualsense"); !ok || dt != DeviceDualSense {
		t.Errorf("DeviceTypeByName(dualsense) = %v, %v", dt, ok)
	}
	if _, ok := DeviceTypeByName("toaster"); ok {
		t.Error("DeviceTypeByName accepted an unknown name")
	}
	if p, ok := PlatformByName("macos"); !ok || p != PlatformMacOS {
		t.Errorf("PlatformByName(macos) = %v, %v", p, ok)
	}
	if p, ok := PlatformForGOOS("darwin"); !ok || p != PlatformMacOS {
		t.Errorf("PlatformForGOOS(darwin) = %v, %v", p, ok)
	}
	if _, ok := PlatformForGOOS("plan9"); ok {
		t.Error("PlatformForGOOS accepted an unsupported GOOS")
	}
}
