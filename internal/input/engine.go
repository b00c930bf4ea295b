package input

import "sync"

// PressThreshold is the canonical axis magnitude at which a derived
// button reads as pressed.
const PressThreshold = 0.3

// Engine resolves logical buttons, axes and sticks against the active
// mapping table and the frame history. Every query degrades to a
// neutral default (false, 0, (0,0)) on invalid input: this is a
// per-frame polling interface and must always return a value.
//
// The table set is swappable (SetTables) so a reloaded definition can
// be installed without mutating the set queries resolve against.
// Queries themselves are single-threaded through the frame driver, as
// is the History they share.
type Engine struct {
	mu       sync.RWMutex
	tables   *TableSet
	platform Platform
	history  *History
}

// NewEngine builds an engine over a parsed table set, the platform
// whose mapping columns apply, and the raw input backend.
func NewEngine(tables *TableSet, platform Platform, backend Backend) *Engine {
	return &Engine{
		tables:   tables,
		platform: platform,
		history:  NewHistory(backend),
	}
}

// SetTables installs a freshly parsed table set. The previous set is
// left untouched for any resolution still holding it.
func (e *Engine) SetTables(ts *TableSet) {
	if ts == nil {
		return
	}
	e.mu.Lock()
	e.tables = ts
	e.mu.Unlock()
}

// BeginFrame marks the frame history stale. The frame driver calls
// this exactly once per logical frame.
func (e *Engine) BeginFrame() {
	e.history.BeginFrame()
}

// entry returns the mapping for a device type on the active platform,
// nil when either is invalid.
func (e *Engine) entry(dt DeviceType) *MappingEntry {
	e.mu.RLock()
	ts := e.tables
	e.mu.RUnlock()
	t := ts.Platform(e.platform)
	if t == nil {
		return nil
	}
	return t.Entry(dt)
}

// GetButton reports whether a logical button is held on the device.
// AnyDevice reports true if the button is held on any slot.
func (e *Engine) GetButton(button Button, device DeviceHandle) bool {
	entry, ok := e.prepare(button.valid(), device)
	if !ok {
		return false
	}
	if device.ID == AnyDevice {
		for slot := 1; slot <= MaxDevices; slot++ {
			if buttonState(entry, e.history.current(slot), button) {
				return true
			}
		}
		return false
	}
	return buttonState(entry, e.history.current(device.ID), button)
}

// GetButtonDown reports a rising edge: the button was up in the
// previous frame and is down in the current one.
func (e *Engine) GetButtonDown(button Button, device DeviceHandle) bool {
	was, is, ok := e.buttonEdge(button, device)
	return ok && is && !was
}

// GetButtonUp reports a falling edge: down previously, up now.
func (e *Engine) GetButtonUp(button Button, device DeviceHandle) bool {
	was, is, ok := e.buttonEdge(button, device)
	return ok && was && !is
}

// GetAxis returns the canonical value of a logical axis: [-1,1] for
// stick and d-pad axes, [0,1] for triggers. AnyDevice returns the
// first non-zero slot value.
func (e *Engine) GetAxis(axis Axis, device DeviceHandle) float64 {
	entry, ok := e.prepare(axis.valid(), device)
	if !ok {
		return 0
	}
	if device.ID == AnyDevice {
		for slot := 1; slot <= MaxDevices; slot++ {
			if v := axisState(entry, e.history.current(slot), axis); v != 0 {
				return v
			}
		}
		return 0
	}
	return axisState(entry, e.history.current(device.ID), axis)
}

// GetStick returns the stick position as its two canonical axes, X
// then Y.
func (e *Engine) GetStick(stick Stick, device DeviceHandle) (x, y float64) {
	if !stick.valid() {
		return 0, 0
	}
	ax, ay := stick.axes()
	return e.GetAxis(ax, device), e.GetAxis(ay, device)
}

// prepare validates a query, ensures the frame advance happened, and
// returns the mapping entry to resolve against.
func (e *Engine) prepare(idValid bool, device DeviceHandle) (*MappingEntry, bool) {
	if !idValid || !device.addressable() {
		return nil, false
	}
	entry := e.entry(device.Type)
	if entry == nil {
		return nil, false
	}
	e.history.ensure()
	return entry, true
}

// buttonEdge resolves the button independently against the previous
// and current snapshots, using the same direct-or-derived rule for
// both.
func (e *Engine) buttonEdge(button Button, device DeviceHandle) (was, is, ok bool) {
	entry, ok := e.prepare(button.valid(), device)
	if !ok {
		return false, false, false
	}
	if device.ID == AnyDevice {
		for slot := 1; slot <= MaxDevices; slot++ {
			was = was || buttonState(entry, e.history.previous(slot), button)
			is = is || buttonState(entry, e.history.current(slot), button)
		}
		return was, is, true
	}
	was = buttonState(entry, e.history.previous(device.ID), button)
	is = buttonState(entry, e.history.current(device.ID), button)
	return was, is, true
}

// buttonState resolves one button against one snapshot: direct raw
// lookup first, then derivation from the paired axis direction.
func buttonState(entry *MappingEntry, snap *RawSnapshot, b Button) bool {
	if idx := entry.ButtonIndex(b); idx >= 0 && idx < NumRawButtons {
		return snap.Buttons[idx]
	}
	dir, ok := buttonAxis[b]
	if !ok {
		return false
	}
	v, ok := directAxis(entry, snap, dir.axis)
	if !ok {
		return false
	}
	return v*dir.sign >= PressThreshold
}

// axisState resolves one axis against one snapshot: direct remapped
// read first, then derivation from the paired raw buttons. The
// derived value is already canonical and never remapped.
func axisState(entry *MappingEntry, snap *RawSnapshot, a Axis) float64 {
	if v, ok := directAxis(entry, snap, a); ok {
		return v
	}
	pair := axisButtons[a]
	v := 0.0
	if rawButton(entry, snap, pair.negative) {
		v--
	}
	if rawButton(entry, snap, pair.positive) {
		v++
	}
	return v
}

// directAxis reads a mapped axis and remaps it from its declared raw
// range into canonical range. ok is false when the axis is unmapped
// or its range is invalid.
func directAxis(entry *MappingEntry, snap *RawSnapshot, a Axis) (float64, bool) {
	idx := entry.AxisIndex(a)
	r := entry.AxisRange(a)
	if idx < 0 || idx >= NumRawAxes || !r.Valid {
		return 0, false
	}
	toMin, toMax := a.canonicalRange()
	return remap(snap.Axes[idx], r.From, r.To, toMin, toMax), true
}

// rawButton reads a button's direct mapping only; derivation does not
// apply here, to keep button-from-axis and axis-from-buttons from
// recursing into each other.
func rawButton(entry *MappingEntry, snap *RawSnapshot, b Button) bool {
	if b == buttonNone {
		return false
	}
	idx := entry.ButtonIndex(b)
	return idx >= 0 && idx < NumRawButtons && snap.Buttons[idx]
}

// remap linearly interpolates v from [fromMin,fromMax] to
// [toMin,toMax].
func remap(v, fromMin, fromMax, toMin, toMax float64) float64 {
	return toMin + (toMax-toMin)*(v-fromMin)/(fromMax-fromMin)
}
