package game

import (
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/config"
	"github.com/aadium/TriyamiRender/input"
)

// Window owns the glfw window and its gl context. All methods must be
// called from the thread that created it, other goroutines hand work over
// with MainThread.
type Window struct {
	window        *glfw.Window
	width, height int
	captured      bool

	input *input.State
	tasks chan func()
}

func NewWindow(cfg config.Window) (*Window, error) {
	w := &Window{
		width:  cfg.Width,
		height: cfg.Height,

		input: input.NewState(),
		tasks: make(chan func(), 16),
	}

	// init glfw
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize glfw")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, cfg.Samples)

	var err error
	w.window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}

	w.window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		w.window.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "failed to initialize gl")
	}
	log.Printf("opengl %v, %v", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	// callbacks
	w.window.SetFramebufferSizeCallback(w.onResize)

	w.window.SetKeyCallback(w.onKey)
	w.window.SetCursorPosCallback(w.onMouseMove)
	w.window.SetScrollCallback(w.onMouseScroll)
	w.window.SetMouseButtonCallback(w.onMouseButton)
	w.window.SetFocusCallback(w.onFocus)

	// init gl
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}

	w.Capture(true)

	// set size
	fw, fh := w.window.GetFramebufferSize()
	w.onResize(w.window, fw, fh)

	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) Close() {
	w.window.SetShouldClose(true)
}

// Update presents the rendered frame and collects new input events.
func (w *Window) Update() {
	w.window.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) Cleanup() {
	w.window.Destroy()
	glfw.Terminate()
}

// MainThread queues f to run on the render thread before the next frame.
// It blocks while the queue is full.
func (w *Window) MainThread(f func()) {
	w.tasks <- f
}

// runTasks executes everything queued with MainThread.
func (w *Window) runTasks() {
	for {
		select {
		case f := <-w.tasks:
			f()
		default:
			return
		}
	}
}

func (w *Window) Aspect() float32 {
	return float32(w.width) / float32(w.height)
}

func (w *Window) Input() *input.State {
	return w.input
}

// Capture hides and locks the cursor for mouse look, or releases it.
func (w *Window) Capture(enabled bool) {
	if enabled {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}

	w.captured = enabled
	w.input.ResetPointer()
}

func (w *Window) Captured() bool {
	return w.captured
}

func (w *Window) onResize(_ *glfw.Window, width, height int) {
	// minimized windows report a zero sized framebuffer
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	gl.Viewport(0, 0, int32(width), int32(height))

	w.width = width
	w.height = height
}

func (w *Window) onFocus(_ *glfw.Window, focused bool) {
	if !focused {
		w.input.Reset()
	}
}

type Key int

const (
	KeyEscape      = Key(glfw.KeyEscape)
	KeySpace       = Key(glfw.KeySpace)
	KeyTab         = Key(glfw.KeyTab)
	KeyLeftControl = Key(glfw.KeyLeftControl)

	KeyW = Key(glfw.KeyW)
	KeyS = Key(glfw.KeyS)
	KeyA = Key(glfw.KeyA)
	KeyD = Key(glfw.KeyD)
	KeyF = Key(glfw.KeyF)
	KeyR = Key(glfw.KeyR)
)

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.input.Press(int(key))
	case glfw.Release:
		w.input.Release(int(key))
	}
}

func (w *Window) IsKeyDown(key Key) bool {
	return w.input.IsDown(int(key))
}

type MouseButton int

const MouseRight = MouseButton(glfw.MouseButton2)

func (w *Window) onMouseButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		w.input.PressButton(int(b))
	case glfw.Release:
		w.input.ReleaseButton(int(b))
	}
}

func (w *Window) IsMouseDown(button MouseButton) bool {
	return w.input.ButtonDown(int(button))
}

func (w *Window) onMouseMove(_ *glfw.Window, xpos, ypos float64) {
	w.input.Move(xpos, ypos)
}

func (w *Window) onMouseScroll(_ *glfw.Window, _, yoff float64) {
	w.input.AddScroll(yoff)
}
