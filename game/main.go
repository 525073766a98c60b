package game

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/camera"
	"github.com/aadium/TriyamiRender/config"
	"github.com/aadium/TriyamiRender/fps"
	"github.com/aadium/TriyamiRender/geometry"
	"github.com/aadium/TriyamiRender/shaders"
)

// frames slower than this do not move the camera any further
const maxFrameDelta = 100 * time.Millisecond

// Run opens the window, uploads the scene and renders until the window is
// closed. It must be called from the main goroutine.
func Run(cfg config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// window
	w, err := NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer w.Cleanup()

	// camera
	cc := cfg.Camera
	cam := camera.New(config.Vec3(cc.Position), mgl32.Vec3{0, 1, 0}, cc.Yaw, cc.Pitch)
	cam.MovementSpeed = cc.Speed
	cam.MouseSensitivity = cc.Sensitivity
	cam.Zoom = cc.FOV

	r := NewRenderer(w, cam, cc, cfg.Scene)
	defer r.Cleanup()

	// program
	src, err := shaders.Load(cfg.Shaders.Dir)
	if err != nil {
		return errors.Wrap(err, "load shaders")
	}

	p, err := NewProgram(src)
	if err != nil {
		return err
	}
	r.SetProgram(p)
	log.Printf("shaders: %s", p.Origin())

	target, err := addScene(r, cfg)
	if err != nil {
		return err
	}

	if cfg.Shaders.Watch {
		sw, err := WatchShaders(cfg.Shaders.Dir, w, r)
		if err != nil {
			return err
		}
		defer sw.Close()
	}

	controls := NewControls(w, r, target)

	// main loop
	var (
		now     = time.Now()
		counter = fps.NewCounter(now)
		delta   = fps.NewDelta(now)
	)

	for !w.ShouldClose() {
		now = time.Now()
		dt := delta.Next(now, maxFrameDelta)

		// print frame time
		if ms, ok := counter.Tick(now); ok {
			log.Printf("%.3f ms/frame", ms)
		}

		w.runTasks()
		controls.Update(dt)
		r.Frame()
	}

	return nil
}

// addScene uploads the sphere, and the cube when enabled, and returns the
// center of the sphere as the orbit target.
func addScene(r *Renderer, cfg config.Config) (mgl32.Vec3, error) {
	sphere, err := geometry.NewSphere(cfg.Sphere.Radius, cfg.Sphere.Sectors, cfg.Sphere.Stacks)
	if err != nil {
		return mgl32.Vec3{}, err
	}

	mb, err := NewMeshBuffer(sphere)
	if err != nil {
		return mgl32.Vec3{}, errors.Wrap(err, "upload sphere")
	}
	r.AddMesh(mb)

	log.Printf("sphere: %d vertices, %d triangles", sphere.VertexCount(), sphere.TriangleCount())

	center := mb.Bounds.Center()

	if cfg.Scene.Cube {
		cube, err := geometry.NewCube(cfg.Sphere.Radius)
		if err != nil {
			return mgl32.Vec3{}, err
		}

		cb, err := NewMeshBuffer(cube)
		if err != nil {
			return mgl32.Vec3{}, errors.Wrap(err, "upload cube")
		}

		// beside the sphere with the bounding spheres touching, tilted so
		// three faces catch the light
		_, sr := mb.Bounds.Sphere()
		_, cr := cb.Bounds.Sphere()
		pos := center.Add(mgl32.Vec3{sr + cr, 0, 0})

		model := mgl32.Translate3D(pos[0], pos[1], pos[2]).
			Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(30), mgl32.Vec3{1, 1, 0}.Normalize()))

		r.AddObject(Object{
			Mesh:  cb,
			Model: model,
			Color: mgl32.Vec3{0.2, 0.5, 1},
		})
	}

	return center, nil
}
