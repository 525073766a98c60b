package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Keys(t *testing.T) {
	s := NewState()
	assert.False(t, s.IsDown(87))

	s.Press(87) // W
	s.Press(348)
	assert.True(t, s.IsDown(87))
	assert.True(t, s.IsDown(348))
	assert.False(t, s.IsDown(83))

	s.Release(87)
	assert.False(t, s.IsDown(87))
	assert.True(t, s.IsDown(348))
	s.Release(348)
	assert.False(t, s.IsDown(348))

	// unknown keys are ignored
	s.Press(-1)
	s.Release(-1)
	assert.False(t, s.IsDown(-1))
}

func TestState_Buttons(t *testing.T) {
	s := NewState()

	s.PressButton(1)
	assert.True(t, s.ButtonDown(1))
	assert.False(t, s.ButtonDown(0))

	s.ReleaseButton(1)
	assert.False(t, s.ButtonDown(1))
}

func TestState_Scroll(t *testing.T) {
	s := NewState()

	s.AddScroll(1)
	s.AddScroll(0.5)
	assert.Equal(t, 1.5, s.TakeScroll())
	assert.Equal(t, 0.0, s.TakeScroll())
}

func TestMouseTracker(t *testing.T) {
	tests := []struct {
		X, Y   float64
		DX, DY float64
	}{
		{400, 300, 0, 0}, // first sample only initializes
		{410, 300, 10, 0},
		{410, 280, 0, 20},
		{405, 310, -5, -30},
	}

	var m MouseTracker
	for i, c := range tests {
		m.Move(c.X, c.Y)
		dx, dy := m.Take()
		assert.Equal(t, c.DX, dx, "step %d dx", i)
		assert.Equal(t, c.DY, dy, "step %d dy", i)
	}
}

func TestMouseTracker_Accumulates(t *testing.T) {
	var m MouseTracker
	m.Move(0, 0)
	m.Move(3, 4)
	m.Move(5, 1)

	dx, dy := m.Take()
	assert.Equal(t, 5.0, dx)
	assert.Equal(t, -1.0, dy)
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.Press(65)
	s.PressButton(0)
	s.AddScroll(2)
	s.Move(10, 10)
	s.Move(20, 20)

	s.Reset()
	assert.False(t, s.IsDown(65))
	assert.False(t, s.ButtonDown(0))
	assert.Equal(t, 0.0, s.TakeScroll())

	// next position initializes again
	s.Move(100, 100)
	dx, dy := s.TakeMouse()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestState_ResetPointer(t *testing.T) {
	s := NewState()
	s.Press(87)
	s.PressButton(1)
	s.AddScroll(3)
	s.Move(10, 10)
	s.Move(50, 40)

	s.ResetPointer()

	// held keys and buttons survive
	assert.True(t, s.IsDown(87))
	assert.True(t, s.ButtonDown(1))

	assert.Equal(t, 0.0, s.TakeScroll())
	dx, dy := s.TakeMouse()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)

	s.Move(200, 200)
	dx, dy = s.TakeMouse()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}
