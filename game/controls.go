package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/aadium/TriyamiRender/camera"
	"github.com/aadium/TriyamiRender/input"
)

// controlWindow is the part of Window the controls read and drive.
type controlWindow interface {
	IsKeyDown(Key) bool
	IsMouseDown(MouseButton) bool
	Input() *input.State
	Close()
	Capture(bool)
	Captured() bool
}

// controlView is the part of Renderer the controls change.
type controlView interface {
	Camera() *camera.Camera
	Wireframe() bool
	SetWireframe(bool)
}

// Controls map the polled input state onto the camera once per frame.
//
//	escape            close the window
//	w s a d           move along the view direction
//	space, l-control  move up and down
//	mouse             look around while the cursor is captured
//	right mouse drag  orbit the target
//	scroll            zoom
//	tab               capture or release the cursor
//	f                 toggle wireframe
//	r                 reset the camera
type Controls struct {
	window   controlWindow
	renderer controlView

	Target mgl32.Vec3
	home   camera.Camera

	// previous frame, for toggles
	tabDown, fDown bool
}

var movement = []struct {
	key Key
	dir camera.Direction
}{
	{KeyW, camera.Forward},
	{KeyS, camera.Backward},
	{KeyA, camera.Left},
	{KeyD, camera.Right},
	{KeySpace, camera.Up},
	{KeyLeftControl, camera.Down},
}

// NewControls remembers the current camera as the reset position. Right
// mouse drags orbit target.
func NewControls(w controlWindow, r controlView, target mgl32.Vec3) *Controls {
	return &Controls{
		window:   w,
		renderer: r,
		Target:   target,
		home:     *r.Camera(),
	}
}

func (c *Controls) Update(dt float32) {
	w := c.window
	cam := c.renderer.Camera()

	if w.IsKeyDown(KeyEscape) {
		w.Close()
		return
	}

	// toggles fire once per key press
	tab := w.IsKeyDown(KeyTab)
	if tab && !c.tabDown {
		w.Capture(!w.Captured())
	}
	c.tabDown = tab

	f := w.IsKeyDown(KeyF)
	if f && !c.fDown {
		c.renderer.SetWireframe(!c.renderer.Wireframe())
	}
	c.fDown = f

	if w.IsKeyDown(KeyR) {
		*cam = c.home
	}

	// keyboard
	for _, m := range movement {
		if w.IsKeyDown(m.key) {
			cam.Move(m.dir, dt)
		}
	}

	// mouse
	dx, dy := w.Input().TakeMouse()
	if dx != 0 || dy != 0 {
		switch {
		case w.IsMouseDown(MouseRight):
			cam.Orbit(c.Target, float32(dx), float32(dy))
		case w.Captured():
			cam.Look(float32(dx), float32(dy), true)
		}
	}

	if yoff := w.Input().TakeScroll(); yoff != 0 {
		cam.ZoomBy(float32(yoff))
	}
}
