// Package input keeps the polled keyboard and mouse state between frames.
// Keys and buttons are plain integer codes, the window layer maps its own
// codes onto them.
package input

import (
	"github.com/bits-and-blooms/bitset"
)

const (
	// covers every glfw key code
	maxKeys    = 512
	maxButtons = 8
)

type State struct {
	keys    *bitset.BitSet
	buttons *bitset.BitSet

	scroll float64
	mouse  MouseTracker
}

func NewState() *State {
	return &State{
		keys:    bitset.New(maxKeys),
		buttons: bitset.New(maxButtons),
	}
}

func (s *State) Press(key int) {
	if key < 0 {
		return
	}
	s.keys.Set(uint(key))
}

func (s *State) Release(key int) {
	if key < 0 {
		return
	}
	s.keys.Clear(uint(key))
}

func (s *State) IsDown(key int) bool {
	return key >= 0 && s.keys.Test(uint(key))
}

func (s *State) PressButton(button int) {
	if button < 0 {
		return
	}
	s.buttons.Set(uint(button))
}

func (s *State) ReleaseButton(button int) {
	if button < 0 {
		return
	}
	s.buttons.Clear(uint(button))
}

func (s *State) ButtonDown(button int) bool {
	return button >= 0 && s.buttons.Test(uint(button))
}

func (s *State) AddScroll(yoff float64) {
	s.scroll += yoff
}

// TakeScroll returns the scroll distance accumulated since the last call.
func (s *State) TakeScroll() float64 {
	y := s.scroll
	s.scroll = 0
	return y
}

// Move feeds a new cursor position into the mouse tracker and queues the offset.
func (s *State) Move(x, y float64) {
	s.mouse.Move(x, y)
}

// TakeMouse returns the cursor offset accumulated since the last call.
func (s *State) TakeMouse() (dx, dy float64) {
	return s.mouse.Take()
}

// Reset forgets pressed keys and buttons along with the pointer state,
// used when the window loses focus and release events may never arrive.
func (s *State) Reset() {
	s.keys.ClearAll()
	s.buttons.ClearAll()
	s.ResetPointer()
}

// ResetPointer drops pending scroll and the last cursor position, so the
// next cursor sample does not jump. Held keys stay down.
func (s *State) ResetPointer() {
	s.scroll = 0
	s.mouse = MouseTracker{}
}

// MouseTracker turns absolute cursor positions into offsets. The first
// position only initializes the tracker, so capturing the cursor does not
// produce a jump. The y offset is reversed since screen coordinates grow
// downwards.
type MouseTracker struct {
	initialized  bool
	lastX, lastY float64
	dx, dy       float64
}

func (m *MouseTracker) Move(x, y float64) {
	if !m.initialized {
		m.lastX, m.lastY = x, y
		m.initialized = true
	}

	m.dx += x - m.lastX
	m.dy += m.lastY - y
	m.lastX, m.lastY = x, y
}

func (m *MouseTracker) Take() (dx, dy float64) {
	dx, dy = m.dx, m.dy
	m.dx, m.dy = 0, 0
	return dx, dy
}
