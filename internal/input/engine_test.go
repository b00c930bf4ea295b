package input

import "testing"

// stubBackend is a settable raw backend that counts reads, so tests
// can verify how often the frame history actually polled hardware.
type stubBackend struct {
	buttons     [MaxDevices + 1][NumRawButtons]bool
	axes        [MaxDevices + 1][NumRawAxes]float64
	buttonReads int
	axisReads   int
}

func (s *stubBackend) RawButton(slot, index int) bool {
	s.buttonReads++
	return s.buttons[slot][index]
}

func (s *stubBackend) RawAxis(slot, index int) float64 {
	s.axisReads++
	return s.axes[slot][index]
}

// testTables builds a table set with one populated entry for
// (linux, xbox360): face buttons and d-pad buttons mapped directly,
// stick and trigger axes mapped with assorted ranges, d-pad axes left
// unmapped so they derive from the d-pad buttons.
func testTables() *TableSet {
	ts := emptyTableSet()
	e := &ts.tables[PlatformLinux].entries[DeviceXbox360]

	e.buttonIndex[ButtonA] = 0
	e.buttonIndex[ButtonB] = 1
	e.buttonIndex[ButtonStart] = 7
	e.buttonIndex[ButtonDPadUp] = 10
	e.buttonIndex[ButtonDPadDown] = 11
	e.buttonIndex[ButtonDPadLeft] = 12
	e.buttonIndex[ButtonDPadRight] = 13

	e.axisIndex[AxisLeftX] = 0
	e.axisRange[AxisLeftX] = AxisRange{From: -1, To: 1, Valid: true}
	e.axisIndex[AxisLeftY] = 1
	e.axisRange[AxisLeftY] = AxisRange{From: 1, To: -1, Valid: true} // inverted
	e.axisIndex[AxisRightX] = 2
	e.axisRange[AxisRightX] = AxisRange{From: -1, To: 1, Valid: true}
	e.axisIndex[AxisRightY] = 3
	e.axisRange[AxisRightY] = AxisRange{From: -1, To: 1, Valid: true}
	e.axisIndex[AxisLeftTrigger] = 4
	e.axisRange[AxisLeftTrigger] = AxisRange{From: -1, To: 1, Valid: true}
	e.axisIndex[AxisRightTrigger] = 5
	e.axisRange[AxisRightTrigger] = AxisRange{From: 0, To: 1, Valid: true}

	return ts
}

func newTestEngine() (*Engine, *stubBackend) {
	b := &stubBackend{}
	return NewEngine(testTables(), PlatformLinux, b), b
}

var pad1 = DeviceHandle{ID: 1, Type: DeviceXbox360}

func TestGetButtonDirect(t *testing.T) {
	eng, b := newTestEngine()

	b.buttons[1][0] = true
	eng.BeginFrame()
	if !eng.GetButton(ButtonA, pad1) {
		t.Error("GetButton(A) = false, raw slot 0 is held")
	}
	if eng.GetButton(ButtonB, pad1) {
		t.Error("GetButton(B) = true, raw slot 1 is released")
	}
}

func TestGetButtonDerivedFromAxis(t *testing.T) {
	eng, b := newTestEngine()

	cases := []struct {
		name   string
		button Button
		raw    float64
		want   bool
	}{
		{"at threshold", ButtonLeftStickRight, 0.3, true},
		{"below threshold", ButtonLeftStickRight, 0.29, false},
		{"wrong direction", ButtonLeftStickRight, -1, false},
		{"negative direction", ButtonLeftStickLeft, -0.5, true},
		{"negative below threshold", ButtonLeftStickLeft, -0.2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b.axes[1][0] = tc.raw
			eng.BeginFrame()
			if got := eng.GetButton(tc.button, pad1); got != tc.want {
				t.Errorf("GetButton(%v) with raw %v = %v, want %v", tc.button, tc.raw, got, tc.want)
			}
		})
	}
}

func TestGetButtonDerivedInvertedAxis(t *testing.T) {
	eng, b := newTestEngine()

	// AxisLeftY is declared 1_-1, so a raw -1 is canonical +1 (up).
	b.axes[1][1] = -1
	eng.BeginFrame()
	if !eng.GetButton(ButtonLeftStickUp, pad1) {
		t.Error("GetButton(lstick_up) = false, inverted axis is fully up")
	}
	if eng.GetButton(ButtonLeftStickDown, pad1) {
		t.Error("GetButton(lstick_down) = true, inverted axis is fully up")
	}
}

func TestGetButtonNoMappingNoDerivation(t *testing.T) {
	eng, b := newTestEngine()

	// ButtonBack is unmapped and has no axis association.
	b.buttons[1][14] = true
	eng.BeginFrame()
	if eng.GetButton(ButtonBack, pad1) {
		t.Error("GetButton(back) = true for a button with no mapping and no derivation")
	}
}

func TestGetButtonDerivedTrigger(t *testing.T) {
	eng, b := newTestEngine()

	// ButtonLeftTrigger is unmapped; derives from AxisLeftTrigger
	// (raw -1..1 onto canonical 0..1). Raw -0.4 remaps to 0.3.
	b.axes[1][4] = -0.4
	eng.BeginFrame()
	if !eng.GetButton(ButtonLeftTrigger, pad1) {
		t.Error("GetButton(lt) = false at the press threshold")
	}

	b.axes[1][4] = -0.5
	eng.BeginFrame()
	if eng.GetButton(ButtonLeftTrigger, pad1) {
		t.Error("GetButton(lt) = true below the press threshold")
	}
}

func TestButtonEdges(t *testing.T) {
	eng, b := newTestEngine()

	type frame struct {
		held     bool
		wantDown bool
		wantUp   bool
	}
	frames := []frame{
		{held: false, wantDown: false, wantUp: false},
		{held: true, wantDown: true, wantUp: false},
		{held: true, wantDown: false, wantUp: false},
		{held: true, wantDown: false, wantUp: false},
		{held: false, wantDown: false, wantUp: true},
		{held: false, wantDown: false, wantUp: false},
	}
	for i, f := range frames {
		b.buttons[1][0] = f.held
		eng.BeginFrame()
		if got := eng.GetButtonDown(ButtonA, pad1); got != f.wantDown {
			t.Errorf("frame %d: GetButtonDown = %v, want %v", i+1, got, f.wantDown)
		}
		if got := eng.GetButtonUp(ButtonA, pad1); got != f.wantUp {
			t.Errorf("frame %d: GetButtonUp = %v, want %v", i+1, got, f.wantUp)
		}
	}
}

func TestButtonEdgesDerived(t *testing.T) {
	eng, b := newTestEngine()

	b.axes[1][0] = 0
	eng.BeginFrame()
	eng.GetButton(ButtonLeftStickRight, pad1)

	b.axes[1][0] = 0.8
	eng.BeginFrame()
	if !eng.GetButtonDown(ButtonLeftStickRight, pad1) {
		t.Error("no rising edge when the derived axis crosses the threshold")
	}

	b.axes[1][0] = 0
	eng.BeginFrame()
	if !eng.GetButtonUp(ButtonLeftStickRight, pad1) {
		t.Error("no falling edge when the derived axis returns to rest")
	}
}

func TestGetAxisRemap(t *testing.T) {
	eng, b := newTestEngine()

	cases := []struct {
		name string
		axis Axis
		slot int
		raw  float64
		want float64
	}{
		{"stick min", AxisLeftX, 0, -1, -1},
		{"stick max", AxisLeftX, 0, 1, 1},
		{"stick center", AxisLeftX, 0, 0, 0},
		{"inverted min", AxisLeftY, 1, 1, -1},
		{"inverted max", AxisLeftY, 1, -1, 1},
		{"trigger wide min", AxisLeftTrigger, 4, -1, 0},
		{"trigger wide max", AxisLeftTrigger, 4, 1, 1},
		{"trigger wide mid", AxisLeftTrigger, 4, 0, 0.5},
		{"trigger native min", AxisRightTrigger, 5, 0, 0},
		{"trigger native max", AxisRightTrigger, 5, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b.axes[1][tc.slot] = tc.raw
			eng.BeginFrame()
			if got := eng.GetAxis(tc.axis, pad1); got != tc.want {
				t.Errorf("GetAxis(%v) raw %v = %v, want %v", tc.axis, tc.raw, got, tc.want)
			}
		})
	}
}

func TestGetAxisDerivedFromButtons(t *testing.T) {
	eng, b := newTestEngine()

	set := func(left, right bool) {
		b.buttons[1][12] = left
		b.buttons[1][13] = right
		eng.BeginFrame()
	}

	set(false, true)
	if got := eng.GetAxis(AxisDPadX, pad1); got != 1 {
		t.Errorf("dpad_x with right held = %v, want 1", got)
	}
	set(true, false)
	if got := eng.GetAxis(AxisDPadX, pad1); got != -1 {
		t.Errorf("dpad_x with left held = %v, want -1", got)
	}
	set(true, true)
	if got := eng.GetAxis(AxisDPadX, pad1); got != 0 {
		t.Errorf("dpad_x with both held = %v, want 0", got)
	}
	set(false, false)
	if got := eng.GetAxis(AxisDPadX, pad1); got != 0 {
		t.Errorf("dpad_x with neither held = %v, want 0", got)
	}
}

func TestGetStickComposition(t *testing.T) {
	eng, b := newTestEngine()

	b.axes[1][0] = 0.25
	b.axes[1][1] = 0.5
	eng.BeginFrame()

	x, y := eng.GetStick(StickLeft, pad1)
	if wx, wy := eng.GetAxis(AxisLeftX, pad1), eng.GetAxis(AxisLeftY, pad1); x != wx || y != wy {
		t.Errorf("GetStick(left) = (%v,%v), want (%v,%v)", x, y, wx, wy)
	}

	// The d-pad stick composes the derived d-pad axes.
	b.buttons[1][10] = true // dpad up
	b.buttons[1][12] = true // dpad left
	eng.BeginFrame()
	x, y = eng.GetStick(StickDPad, pad1)
	if x != -1 || y != 1 {
		t.Errorf("GetStick(dpad) = (%v,%v), want (-1,1)", x, y)
	}
}

func TestInvalidInputsReturnDefaults(t *testing.T) {
	eng, b := newTestEngine()
	b.buttons[1][0] = true
	b.axes[1][0] = 1
	eng.BeginFrame()

	for _, id := range []int{-1, 5, 99} {
		d := DeviceHandle{ID: id, Type: DeviceXbox360}
		if eng.GetButton(ButtonA, d) {
			t.Errorf("GetButton with device id %d = true, want false", id)
		}
		if v := eng.GetAxis(AxisLeftX, d); v != 0 {
			t.Errorf("GetAxis with device id %d = %v, want 0", id, v)
		}
		if x, y := eng.GetStick(StickLeft, d); x != 0 || y != 0 {
			t.Errorf("GetStick with device id %d = (%v,%v), want (0,0)", id, x, y)
		}
	}

	bad := DeviceHandle{ID: 1, Type: DeviceType(99)}
	if eng.GetButton(ButtonA, bad) {
		t.Error("GetButton with invalid device type = true, want false")
	}
	if eng.GetButton(Button(99), pad1) || eng.GetButton(Button(-1), pad1) {
		t.Error("GetButton with invalid button = true, want false")
	}
	if eng.GetAxis(Axis(99), pad1) != 0 {
		t.Error("GetAxis with invalid axis != 0")
	}
	if x, y := eng.GetStick(Stick(99), pad1); x != 0 || y != 0 {
		t.Error("GetStick with invalid stick != (0,0)")
	}
}

func TestInvalidPlatformReturnsDefaults(t *testing.T) {
	b := &stubBackend{}
	eng := NewEngine(testTables(), Platform(42), b)
	b.buttons[1][0] = true
	eng.BeginFrame()
	if eng.GetButton(ButtonA, pad1) {
		t.Error("GetButton on an invalid platform = true, want false")
	}
}

func TestAnyDeviceSpansSlots(t *testing.T) {
	eng, b := newTestEngine()
	anyPad := DeviceHandle{ID: AnyDevice, Type: DeviceXbox360}

	b.buttons[3][0] = true
	b.axes[2][0] = 0.75
	eng.BeginFrame()

	if !eng.GetButton(ButtonA, anyPad) {
		t.Error("GetButton(any) = false, slot 3 holds the button")
	}
	if v := eng.GetAxis(AxisLeftX, anyPad); v != 0.75 {
		t.Errorf("GetAxis(any) = %v, want the first non-zero slot value 0.75", v)
	}

	b.buttons[3][0] = false
	eng.BeginFrame()
	if !eng.GetButtonUp(ButtonA, anyPad) {
		t.Error("GetButtonUp(any) = false after the only holding slot released")
	}
}

func TestSingleAdvancePerFrame(t *testing.T) {
	eng, b := newTestEngine()

	eng.BeginFrame()
	for i := 0; i < 100; i++ {
		eng.GetButton(ButtonA, pad1)
		eng.GetAxis(AxisLeftX, pad1)
	}

	wantButtons := MaxDevices * NumRawButtons
	wantAxes := MaxDevices * NumRawAxes
	if b.buttonReads != wantButtons || b.axisReads != wantAxes {
		t.Errorf("reads after 1 frame of 200 queries = %d buttons, %d axes; want %d, %d",
			b.buttonReads, b.axisReads, wantButtons, wantAxes)
	}

	eng.BeginFrame()
	eng.GetButton(ButtonA, pad1)
	if b.buttonReads != 2*wantButtons {
		t.Errorf("second frame did not trigger a second advance: %d button reads", b.buttonReads)
	}
}

func TestSetTablesSwapsMapping(t *testing.T) {
	eng, b := newTestEngine()

	b.buttons[1][5] = true
	eng.BeginFrame()
	if eng.GetButton(ButtonA, pad1) {
		t.Fatal("GetButton(A) = true before remap, raw slot 0 is released")
	}

	ts := emptyTableSet()
	ts.tables[PlatformLinux].entries[DeviceXbox360].buttonIndex[ButtonA] = 5
	eng.SetTables(ts)
	if !eng.GetButton(ButtonA, pad1) {
		t.Error("GetButton(A) = false after remapping A to raw slot 5")
	}

	// A failed reload installs nothing; the current tables stay.
	eng.SetTables(nil)
	if !eng.GetButton(ButtonA, pad1) {
		t.Error("SetTables(nil) discarded the installed tables")
	}
}
