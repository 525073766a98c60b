// Package config holds the settings of the renderer. Values are read from
// a toml file on top of the defaults.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/camera"
)

type Config struct {
	Window  Window  `toml:"window"`
	Camera  Camera  `toml:"camera"`
	Sphere  Sphere  `toml:"sphere"`
	Shaders Shaders `toml:"shaders"`
	Scene   Scene   `toml:"scene"`
}

type Window struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	VSync   bool   `toml:"vsync"`
	Samples int    `toml:"samples"`
}

type Camera struct {
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

type Sphere struct {
	Radius  float32 `toml:"radius"`
	Sectors int     `toml:"sectors"`
	Stacks  int     `toml:"stacks"`
}

type Shaders struct {
	Dir   string `toml:"dir"`
	Watch bool   `toml:"watch"`
}

type Scene struct {
	LightPos    [3]float32 `toml:"light_pos"`
	LightColor  [3]float32 `toml:"light_color"`
	ObjectColor [3]float32 `toml:"object_color"`
	ClearColor  [3]float32 `toml:"clear_color"`
	Wireframe   bool       `toml:"wireframe"`

	// adds a unit cube next to the sphere
	Cube bool `toml:"cube"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:   1600,
			Height:  1200,
			Title:   "3D Rendering Engine",
			VSync:   true,
			Samples: 4,
		},
		Camera: Camera{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
		},
		Sphere: Sphere{
			Radius:  0.4,
			Sectors: 216,
			Stacks:  108,
		},
		Scene: Scene{
			LightPos:    [3]float32{1.2, 1, 2},
			LightColor:  [3]float32{1, 1, 1},
			ObjectColor: [3]float32{1, 0.5, 0.2},
			ClearColor:  [3]float32{0.1, 0.1, 0.1},
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := Decode(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}

	return cfg, cfg.Validate()
}

// Decode parses toml data into cfg, keeping values the data does not set.
// Unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return errors.New(strict.String())
		}
		return err
	}
	return checkVectors(data)
}

// vectorKeys mirrors the vector settings as slices. Fixed size arrays are
// filled from shorter toml arrays and silently drop extra elements.
type vectorKeys struct {
	Camera struct {
		Position *[]float32 `toml:"position"`
	} `toml:"camera"`
	Scene struct {
		LightPos    *[]float32 `toml:"light_pos"`
		LightColor  *[]float32 `toml:"light_color"`
		ObjectColor *[]float32 `toml:"object_color"`
		ClearColor  *[]float32 `toml:"clear_color"`
	} `toml:"scene"`
}

func checkVectors(data []byte) error {
	var v vectorKeys
	if err := toml.Unmarshal(data, &v); err != nil {
		return err
	}

	keys := []struct {
		name  string
		value *[]float32
	}{
		{"camera.position", v.Camera.Position},
		{"scene.light_pos", v.Scene.LightPos},
		{"scene.light_color", v.Scene.LightColor},
		{"scene.object_color", v.Scene.ObjectColor},
		{"scene.clear_color", v.Scene.ClearColor},
	}

	for _, k := range keys {
		if k.value != nil && len(*k.value) != 3 {
			return errors.Errorf("%s needs 3 components, got %d", k.name, len(*k.value))
		}
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return errors.Errorf("window samples must not be negative, got %d", c.Window.Samples)

	case c.Camera.FOV < 1 || c.Camera.FOV > 45:
		return errors.Errorf("camera fov must be within [1, 45], got %v", c.Camera.FOV)
	case c.Camera.Pitch < -camera.MaxPitch || c.Camera.Pitch > camera.MaxPitch:
		return errors.Errorf("camera pitch must be within [-%v, %v], got %v", camera.MaxPitch, camera.MaxPitch, c.Camera.Pitch)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return errors.Errorf("camera clip planes must satisfy 0 < near < far, got %v and %v", c.Camera.Near, c.Camera.Far)
	case c.Camera.Speed < 0 || c.Camera.Sensitivity < 0:
		return errors.New("camera speed and sensitivity must not be negative")

	case c.Sphere.Radius <= 0:
		return errors.Errorf("sphere radius must be positive, got %v", c.Sphere.Radius)
	case c.Sphere.Sectors < 3 || c.Sphere.Stacks < 2:
		return errors.Errorf("sphere needs at least 3 sectors and 2 stacks, got %d and %d", c.Sphere.Sectors, c.Sphere.Stacks)

	case c.Shaders.Watch && c.Shaders.Dir == "":
		return errors.New("shader watching needs a shader directory")
	}

	return nil
}

// Encode writes cfg as toml, used to dump the effective settings.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return buf.Bytes(), nil
}

// Write validates cfg and writes it to w as toml.
func Write(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write config")
	}
	return nil
}

func Vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3(v)
}
