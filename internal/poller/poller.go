// Package poller is the frame driver of the sample viewer: each tick
// it begins a new logical frame, sweeps every logical value for each
// device slot through the resolution engine and emits the states that
// changed.
package poller

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soar/padmap/internal/input"
)

const pollInterval = 16 * time.Millisecond // ~60Hz

// Driver owns the platform event pump and knows which device occupies
// each slot. It is implemented by the SDL backend.
type Driver interface {
	Init() error
	Quit()
	PumpEvents()
	Slot(slot int) (input.DeviceType, string, bool)
}

// edgeButtons are debug-logged on their rising edge.
var edgeButtons = []input.Button{
	input.ButtonA, input.ButtonB, input.ButtonX, input.ButtonY,
	input.ButtonStart, input.ButtonBack,
}

type Poller struct {
	engine  *input.Engine
	driver  Driver
	log     *zap.Logger
	changes chan LogicalState

	mu   sync.RWMutex
	cur  [input.MaxDevices + 1]LogicalState
	prev [input.MaxDevices + 1]LogicalState
}

func New(engine *input.Engine, driver Driver, log *zap.Logger) *Poller {
	return &Poller{
		engine:  engine,
		driver:  driver,
		log:     log,
		changes: make(chan LogicalState, 64),
	}
}

// Changes returns the channel on which changed slot states are sent.
func (p *Poller) Changes() <-chan LogicalState {
	return p.changes
}

// CurrentState returns a snapshot of a slot's last emitted state.
func (p *Poller) CurrentState(slot int) LogicalState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if slot < 1 || slot > input.MaxDevices {
		return LogicalState{PlayerIndex: slot}
	}
	return p.cur[slot]
}

// SetActiveByPlayerIndex reports whether the player index names a
// valid device slot; WebSocket clients use it to validate their
// subscription.
func (p *Poller) SetActiveByPlayerIndex(index int) bool {
	return index >= 1 && index <= input.MaxDevices
}

// Run initializes the driver and runs the frame loop on the current
// thread until the context is cancelled. Must be called with the OS
// thread locked to this goroutine (the SDL driver requires it).
func (p *Poller) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := p.driver.Init(); err != nil {
		return err
	}
	defer p.driver.Quit()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		p.driver.PumpEvents()
		p.tick()
		time.Sleep(pollInterval)
	}
}

// tick runs one logical frame: one history advance, one sweep per
// slot.
func (p *Poller) tick() {
	p.engine.BeginFrame()
	for slot := 1; slot <= input.MaxDevices; slot++ {
		state := p.sweep(slot)

		delta := ComputeDelta(&p.prev[slot], &state)
		if delta.IsEmpty() {
			continue
		}
		p.prev[slot] = state
		p.mu.Lock()
		p.cur[slot] = state
		p.mu.Unlock()
		p.emit(state)
	}
}

// sweep resolves every logical value for one slot.
func (p *Poller) sweep(slot int) LogicalState {
	devType, name, connected := p.driver.Slot(slot)
	state := LogicalState{
		Connected:   connected,
		PlayerIndex: slot,
		DeviceType:  devType.String(),
		Name:        name,
	}
	if !connected {
		state.DeviceType = ""
		return state
	}

	d := input.DeviceHandle{ID: slot, Type: devType}

	state.Buttons.A = p.engine.GetButton(input.ButtonA, d)
	state.Buttons.B = p.engine.GetButton(input.ButtonB, d)
	state.Buttons.X = p.engine.GetButton(input.ButtonX, d)
	state.Buttons.Y = p.engine.GetButton(input.ButtonY, d)
	state.Buttons.LB = p.engine.GetButton(input.ButtonLeftShoulder, d)
	state.Buttons.RB = p.engine.GetButton(input.ButtonRightShoulder, d)
	state.Buttons.Back = p.engine.GetButton(input.ButtonBack, d)
	state.Buttons.Start = p.engine.GetButton(input.ButtonStart, d)
	state.Buttons.Guide = p.engine.GetButton(input.ButtonGuide, d)
	state.Buttons.Share = p.engine.GetButton(input.ButtonShare, d)
	state.Buttons.Touchpad = p.engine.GetButton(input.ButtonTouchpad, d)
	state.Buttons.Mode = p.engine.GetButton(input.ButtonMode, d)

	state.Dpad.Up = p.engine.GetButton(input.ButtonDPadUp, d)
	state.Dpad.Down = p.engine.GetButton(input.ButtonDPadDown, d)
	state.Dpad.Left = p.engine.GetButton(input.ButtonDPadLeft, d)
	state.Dpad.Right = p.engine.GetButton(input.ButtonDPadRight, d)

	x, y := p.engine.GetStick(input.StickLeft, d)
	state.Sticks.Left.Position = Vector{X: x, Y: y}
	state.Sticks.Left.Pressed = p.engine.GetButton(input.ButtonLeftStickClick, d)
	x, y = p.engine.GetStick(input.StickRight, d)
	state.Sticks.Right.Position = Vector{X: x, Y: y}
	state.Sticks.Right.Pressed = p.engine.GetButton(input.ButtonRightStickClick, d)

	state.Triggers.LT.Value = p.engine.GetAxis(input.AxisLeftTrigger, d)
	state.Triggers.LT.Pressed = p.engine.GetButton(input.ButtonLeftTrigger, d)
	state.Triggers.RT.Value = p.engine.GetAxis(input.AxisRightTrigger, d)
	state.Triggers.RT.Pressed = p.engine.GetButton(input.ButtonRightTrigger, d)

	if p.log.Core().Enabled(zap.DebugLevel) {
		for _, b := range edgeButtons {
			if p.engine.GetButtonDown(b, d) {
				p.log.Debug("button down", zap.Int("slot", slot), zap.Stringer("button", b))
			}
		}
	}

	return state
}

func (p *Poller) emit(state LogicalState) {
	select {
	case p.changes <- state:
	default:
		// Drop if the channel is full to avoid blocking the frame loop
	}
}
