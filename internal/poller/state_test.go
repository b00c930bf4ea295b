package poller

import "testing"

func TestComputeDelta(t *testing.T) {
	old := &LogicalState{Connected: true, Name: "pad"}
	same := *old
	if d := ComputeDelta(old, &same); !d.IsEmpty() {
		t.Errorf("delta of identical states = %+v, want empty", d)
	}

	pressed := *old
	pressed.Buttons.A = true
	d := ComputeDelta(old, &pressed)
	if d.Buttons == nil || !d.Buttons.A {
		t.Errorf("button change not reflected: %+v", d)
	}
	if d.Sticks != nil || d.Name != nil {
		t.Errorf("unrelated fields changed: %+v", d)
	}

	// Analog jitter below the threshold is not a change.
	wiggle := *old
	wiggle.Sticks.Left.Position.X = 0.005
	if d := ComputeDelta(old, &wiggle); !d.IsEmpty() {
		t.Errorf("sub-threshold stick motion produced a delta: %+v", d)
	}

	moved := *old
	moved.Sticks.Left.Position.X = 0.5
	if d := ComputeDelta(old, &moved); d.Sticks == nil {
		t.Error("stick motion above the threshold produced no delta")
	}
}
