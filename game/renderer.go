package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/aadium/TriyamiRender/camera"
	"github.com/aadium/TriyamiRender/config"
)

// Object is a mesh placed in the world.
type Object struct {
	Mesh  *MeshBuffer
	Model mgl32.Mat4
	Color mgl32.Vec3
}

// Renderer draws a flat list of objects with a single program from the
// point of view of one camera.
type Renderer struct {
	window  *Window
	program *Program
	camera  *camera.Camera
	objects []Object

	near, far float32
	scene     config.Scene
	wireframe bool
}

func NewRenderer(w *Window, cam *camera.Camera, cc config.Camera, scene config.Scene) *Renderer {
	r := &Renderer{
		window: w,
		camera: cam,

		near:  cc.Near,
		far:   cc.Far,
		scene: scene,
	}

	r.setClearColor(config.Vec3(scene.ClearColor), 1)
	r.SetWireframe(scene.Wireframe)

	return r
}

// SetProgram replaces the current program. The previous one is released.
func (r *Renderer) SetProgram(p *Program) {
	if r.program != nil && r.program != p {
		r.program.Delete()
	}
	r.program = p
}

func (r *Renderer) Camera() *camera.Camera {
	return r.camera
}

// AddMesh places m at the origin in the default object color.
func (r *Renderer) AddMesh(m *MeshBuffer) {
	r.AddObject(Object{
		Mesh:  m,
		Model: mgl32.Ident4(),
		Color: config.Vec3(r.scene.ObjectColor),
	})
}

func (r *Renderer) AddObject(o Object) {
	r.objects = append(r.objects, o)
}

func (r *Renderer) SetWireframe(enabled bool) {
	r.wireframe = enabled
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

func (r *Renderer) setClearColor(color mgl32.Vec3, alpha float32) {
	gl.ClearColor(color[0], color[1], color[2], alpha)
}

// Frame renders all objects and presents the result.
func (r *Renderer) Frame() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.program != nil {
		r.draw()
	}

	// swap buffers
	r.window.Update()
}

func (r *Renderer) draw() {
	p := r.program
	p.Use()

	// camera
	p.SetMat4("projection", r.camera.Projection(r.window.Aspect(), r.near, r.far))
	p.SetMat4("view", r.camera.ViewMatrix())
	p.SetVec3("viewPos", r.camera.Position)

	// light
	p.SetVec3("lightPos", config.Vec3(r.scene.LightPos))
	p.SetVec3("lightColor", config.Vec3(r.scene.LightColor))

	for _, o := range r.objects {
		p.SetMat4("model", o.Model)
		p.SetVec3("objectColor", o.Color)
		o.Mesh.Draw()
	}
}

// Cleanup releases the program and every mesh buffer.
func (r *Renderer) Cleanup() {
	for _, o := range r.objects {
		o.Mesh.Cleanup()
	}
	r.objects = nil

	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}
