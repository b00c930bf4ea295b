package input

// AxisRange describes how a raw axis's native direction maps onto the
// canonical output direction: From and To are the raw values at the
// canonical minimum and maximum. Valid is false when the definition
// carried no recognized range encoding; such an axis behaves exactly
// like an unmapped one, on both the direct and the derived path.
type AxisRange struct {
	From  float64
	To    float64
	Valid bool
}

// The six range encodings a definition cell may carry, keyed as
// "from_to". Anything else decodes to the zero AxisRange (invalid).
var rangeEncodings = map[string]AxisRange{
	"-1_0": {From: -1, To: 0, Valid: true},
	"-1_1": {From: -1, To: 1, Valid: true},
	"0_-1": {From: 0, To: -1, Valid: true},
	"0_1":  {From: 0, To: 1, Valid: true},
	"1_-1": {From: 1, To: -1, Valid: true},
	"1_0":  {From: 1, To: 0, Valid: true},
}

// MappingEntry is the raw translation for one device type on one
// platform. Index -1 means unmapped. The axis index and axis range
// arrays are indexed by the same Axis ordinal; synthetic stick
// direction buttons have no slot here at all.
type MappingEntry struct {
	axisIndex   [numAxes]int
	axisRange   [numAxes]AxisRange
	buttonIndex [numMappedButtons]int
}

// AxisIndex returns the raw axis slot for a logical axis, -1 if
// unmapped or out of range.
func (m *MappingEntry) AxisIndex(a Axis) int {
	if !a.valid() {
		return -1
	}
	return m.axisIndex[a]
}

// AxisRange returns the declared raw range for a logical axis. The
// zero value (Valid=false) stands for "no recognized range".
func (m *MappingEntry) AxisRange(a Axis) AxisRange {
	if !a.valid() {
		return AxisRange{}
	}
	return m.axisRange[a]
}

// ButtonIndex returns the raw button slot for a logical button, -1 if
// unmapped. Synthetic stick-direction buttons are always -1.
func (m *MappingEntry) ButtonIndex(b Button) int {
	if b < 0 || int(b) >= numMappedButtons {
		return -1
	}
	return m.buttonIndex[b]
}

// Table holds one MappingEntry per device type for a single platform.
type Table struct {
	entries [numDeviceTypes]MappingEntry
}

// Entry returns the mapping for a device type, nil if the type is
// invalid.
func (t *Table) Entry(dt DeviceType) *MappingEntry {
	if !dt.valid() {
		return nil
	}
	return &t.entries[dt]
}

// TableSet holds the mapping tables for every platform. A set is
// built once by the parser and never mutated afterwards; reloading
// builds a fresh set and swaps the pointer.
type TableSet struct {
	tables [numPlatforms]Table
}

// Platform returns the table for one platform, nil if invalid.
func (ts *TableSet) Platform(p Platform) *Table {
	if !p.valid() {
		return nil
	}
	return &ts.tables[p]
}

// emptyTableSet returns a set with every index unmapped and every
// range invalid, so a partially filled set can never alias raw slot 0.
func emptyTableSet() *TableSet {
	ts := &TableSet{}
	for p := range ts.tables {
		for d := range ts.tables[p].entries {
			e := &ts.tables[p].entries[d]
			for i := range e.axisIndex {
				e.axisIndex[i] = -1
			}
			for i := range e.buttonIndex {
				e.buttonIndex[i] = -1
			}
		}
	}
	return ts
}
