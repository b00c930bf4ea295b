package input

// History double-buffers raw snapshots for every device slot. The two
// buffers are fixed and swapped by index; no allocation happens after
// construction. Slot 0 is reserved (AnyDevice), slots 1..MaxDevices
// hold real devices.
//
// The fresh flag implements the at-most-once-per-frame advance: the
// frame driver calls BeginFrame once per logical frame, and the first
// query after that performs the single advance (current becomes
// previous, a new capture becomes current). Further queries in the
// same frame see the same pair of snapshots.
//
// History is not safe for concurrent use; the frame driver owns it.
type History struct {
	backend Backend
	bufs    [2][MaxDevices + 1]RawSnapshot
	cur     int
	fresh   bool
}

func NewHistory(b Backend) *History {
	return &History{backend: b}
}

// BeginFrame marks the buffered state stale so the next query
// re-captures raw state.
func (h *History) BeginFrame() {
	h.fresh = false
}

// ensure performs the advance if the state is stale.
func (h *History) ensure() {
	if h.fresh {
		return
	}
	h.cur ^= 1
	for slot := 1; slot <= MaxDevices; slot++ {
		h.bufs[h.cur][slot].capture(h.backend, slot)
	}
	h.fresh = true
}

func (h *History) current(slot int) *RawSnapshot {
	return &h.bufs[h.cur][slot]
}

func (h *History) previous(slot int) *RawSnapshot {
	return &h.bufs[h.cur^1][slot]
}
