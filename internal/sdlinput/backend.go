// Package sdlinput implements the raw input capability over the SDL3
// joystick API. Device identification (vendor/product to device type)
// lives here, outside the mapping core.
package sdlinput

import (
	"fmt"
	"math"
	"sync"

	"github.com/jupiterrider/purego-sdl3/sdl"
	"go.uber.org/zap"

	"github.com/soar/padmap/internal/input"
)

// Raw slot layout. Physical buttons occupy raw button indices 0..15;
// indices 16..19 expose hat 0 as up/down/left/right. Physical axes
// occupy raw axis indices 0..10; indices 11 and 12 expose hat 0 as
// X/Y in -1..1. The mapping definition is written against this
// layout.
const (
	hatButtonBase = 16
	hatAxisX      = 11
	hatAxisY      = 12

	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

type slotState struct {
	joystick *sdl.Joystick
	id       sdl.JoystickID
	name     string
	devType  input.DeviceType
}

// Backend exposes SDL joysticks as numbered device slots 1..4 and
// implements input.Backend. Slots without a device report neutral
// values. Init, Quit and PumpEvents must run on the thread driving
// the frame loop.
type Backend struct {
	mu    sync.RWMutex
	slots [input.MaxDevices + 1]*slotState
	pins  map[int]input.DeviceType
	log   *zap.Logger
}

// New builds a backend. pins optionally fixes the device type of a
// slot, overriding vendor/product identification.
func New(log *zap.Logger, pins map[int]input.DeviceType) *Backend {
	return &Backend{pins: pins, log: log}
}

// Init brings up the SDL joystick subsystem and claims slots for any
// already connected joysticks.
func (b *Backend) Init() error {
	if !sdl.Init(sdl.InitJoystick) {
		return fmt.Errorf("sdl init: %s", sdl.GetError())
	}
	b.log.Info("SDL3 joystick subsystem initialized")
	for _, id := range sdl.GetJoysticks() {
		b.attach(id)
	}
	return nil
}

// Quit closes every joystick and shuts SDL down.
func (b *Backend) Quit() {
	b.mu.Lock()
	for slot, s := range b.slots {
		if s != nil {
			sdl.CloseJoystick(s.joystick)
			b.slots[slot] = nil
		}
	}
	b.mu.Unlock()
	sdl.Quit()
}

// PumpEvents drains the SDL event queue, tracking attach and detach.
func (b *Backend) PumpEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			b.attach(event.JDevice().Which)
		case sdl.EventJoystickRemoved:
			b.detach(event.JDevice().Which)
		}
	}
}

// Slot reports the device type and name bound to a slot, and whether
// a device is attached there.
func (b *Backend) Slot(slot int) (input.DeviceType, string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.at(slot)
	if s == nil {
		return input.DeviceGeneric, "", false
	}
	return s.devType, s.name, true
}

// RawButton implements input.Backend.
func (b *Backend) RawButton(slot, index int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.at(slot)
	if s == nil || index < 0 || index >= input.NumRawButtons {
		return false
	}
	if index >= hatButtonBase {
		if sdl.GetNumJoystickHats(s.joystick) == 0 {
			return false
		}
		hat := sdl.GetJoystickHat(s.joystick, 0)
		switch index {
		case hatButtonBase:
			return hat&hatUp != 0
		case hatButtonBase + 1:
			return hat&hatDown != 0
		case hatButtonBase + 2:
			return hat&hatLeft != 0
		case hatButtonBase + 3:
			return hat&hatRight != 0
		}
		return false
	}
	return sdl.GetJoystickButton(s.joystick, int32(index))
}

// RawAxis implements input.Backend. Physical axes are reported as
// SDL's int16 scaled into -1..1; the definition's range encodings are
// declared against that scale.
func (b *Backend) RawAxis(slot, index int) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s := b.at(slot)
	if s == nil || index < 0 || index >= input.NumRawAxes {
		return 0
	}
	switch index {
	case hatAxisX, hatAxisY:
		if sdl.GetNumJoystickHats(s.joystick) == 0 {
			return 0
		}
		hat := sdl.GetJoystickHat(s.joystick, 0)
		if index == hatAxisX {
			switch {
			case hat&hatLeft != 0:
				return -1
			case hat&hatRight != 0:
				return 1
			}
			return 0
		}
		switch {
		case hat&hatUp != 0:
			return 1
		case hat&hatDown != 0:
			return -1
		}
		return 0
	}
	v := float64(sdl.GetJoystickAxis(s.joystick, int32(index))) / math.MaxInt16
	if v < -1 {
		v = -1
	}
	return v
}

// at returns the slot state, nil when empty or out of range. Caller
// holds the lock.
func (b *Backend) at(slot int) *slotState {
	if slot < 1 || slot > input.MaxDevices {
		return nil
	}
	return b.slots[slot]
}

func (b *Backend) attach(id sdl.JoystickID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.slots {
		if s != nil && s.id == id {
			return
		}
	}
	slot := 0
	for i := 1; i <= input.MaxDevices; i++ {
		if b.slots[i] == nil {
			slot = i
			break
		}
	}
	if slot == 0 {
		b.log.Warn("no free device slot", zap.Int32("joystick", int32(id)))
		return
	}

	js := sdl.OpenJoystick(id)
	if js == nil {
		b.log.Error("open joystick failed", zap.String("error", sdl.GetError()))
		return
	}

	vendorID := sdl.GetJoystickVendor(js)
	productID := sdl.GetJoystickProduct(js)
	devType, pinned := b.pins[slot]
	if !pinned {
		devType = identify(vendorID, productID)
	}
	s := &slotState{
		joystick: js,
		id:       sdl.GetJoystickID(js),
		name:     sdl.GetJoystickName(js),
		devType:  devType,
	}
	b.slots[slot] = s

	b.log.Info("joystick attached",
		zap.Int("slot", slot),
		zap.String("name", s.name),
		zap.Stringer("type", devType),
		zap.Uint16("vendor", vendorID),
		zap.Uint16("product", productID),
		zap.Bool("pinned", pinned),
		zap.Int32("axes", sdl.GetNumJoystickAxes(js)),
		zap.Int32("buttons", sdl.GetNumJoystickButtons(js)),
		zap.Int32("hats", sdl.GetNumJoystickHats(js)))
}

func (b *Backend) detach(id sdl.JoystickID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for slot, s := range b.slots {
		if s != nil && s.id == id {
			sdl.CloseJoystick(s.joystick)
			b.slots[slot] = nil
			b.log.Info("joystick detached", zap.Int("slot", slot), zap.String("name", s.name))
			return
		}
	}
}
