package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, 1200, cfg.Window.Height)
	assert.Equal(t, "3D Rendering Engine", cfg.Window.Title)
	assert.Equal(t, float32(0.4), cfg.Sphere.Radius)
	assert.Equal(t, 216, cfg.Sphere.Sectors)
	assert.Equal(t, 108, cfg.Sphere.Stacks)
	assert.Equal(t, [3]float32{0, 0, 3}, cfg.Camera.Position)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[window]
width = 800
height = 600

[sphere]
sectors = 36
stacks = 18

[scene]
object_color = [0.2, 0.4, 1.0]
cube = true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 36, cfg.Sphere.Sectors)
	assert.Equal(t, 18, cfg.Sphere.Stacks)
	assert.Equal(t, [3]float32{0.2, 0.4, 1.0}, cfg.Scene.ObjectColor)
	assert.True(t, cfg.Scene.Cube)

	// untouched values keep their defaults
	assert.Equal(t, "3D Rendering Engine", cfg.Window.Title)
	assert.Equal(t, float32(0.4), cfg.Sphere.Radius)
	assert.Equal(t, [3]float32{1.2, 1, 2}, cfg.Scene.LightPos)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		Name, Data string
	}{
		{"unknown key", "[window]\nwidht = 800\n"},
		{"syntax", "[window\n"},
		{"invalid value", "[sphere]\nstacks = 1\n"},
		{"wrong type", "[window]\nwidth = \"wide\"\n"},
		{"short vector", "[camera]\nposition = [1.0, 2.0]\n"},
		{"long vector", "[scene]\nlight_color = [1.0, 1.0, 1.0, 1.0]\n"},
		{"empty vector", "[scene]\nclear_color = []\n"},
		{"pitch over the pole", "[camera]\npitch = 120.0\n"},
	}

	for _, c := range tests {
		path := filepath.Join(t.TempDir(), "render.toml")
		require.NoError(t, os.WriteFile(path, []byte(c.Data), 0o644))

		_, err := Load(path)
		assert.Error(t, err, c.Name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDecode_Vectors(t *testing.T) {
	tests := []struct {
		Data string
		Ok   bool
	}{
		{"[camera]\nposition = [1.0, 2.0, 3.0]\n", true},
		{"[camera]\nposition = [1.0, 2.0]\n", false},
		{"[camera]\nposition = [1.0, 2.0, 3.0, 4.0]\n", false},
		{"[scene]\nobject_color = [0.5, 0.5, 0.5]\nlight_pos = [0.0]\n", false},
		{"camera = { position = [4.0, 5.0] }\n", false},
	}

	for _, c := range tests {
		cfg := Default()
		err := Decode([]byte(c.Data), &cfg)
		if c.Ok {
			assert.NoError(t, err, c.Data)
		} else {
			assert.Error(t, err, c.Data)
		}
	}

	cfg := Default()
	require.NoError(t, Decode([]byte("[camera]\nposition = [1.0, 2.0, 3.0]\n"), &cfg))
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		Name   string
		Modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative samples", func(c *Config) { c.Window.Samples = -1 }},
		{"fov too wide", func(c *Config) { c.Camera.FOV = 90 }},
		{"pitch too high", func(c *Config) { c.Camera.Pitch = 120 }},
		{"pitch too low", func(c *Config) { c.Camera.Pitch = -90 }},
		{"near behind", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }},
		{"flat sphere", func(c *Config) { c.Sphere.Radius = 0 }},
		{"too few sectors", func(c *Config) { c.Sphere.Sectors = 2 }},
		{"watch without dir", func(c *Config) { c.Shaders.Watch = true }},
	}

	for _, c := range tests {
		cfg := Default()
		c.Modify(&cfg)
		assert.Error(t, cfg.Validate(), c.Name)
	}
}

func TestEncode(t *testing.T) {
	cfg := Default()
	cfg.Shaders.Dir = "shaders"

	data, err := Encode(cfg)
	require.NoError(t, err)

	decoded := Default()
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	cfg := Default()
	cfg.Sphere.Sectors = 36

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg))

	decoded := Default()
	require.NoError(t, Decode(buf.Bytes(), &decoded))
	assert.Equal(t, cfg, decoded)

	// invalid settings are not written
	buf.Reset()
	cfg.Shaders.Watch = true
	assert.Error(t, Write(&buf, cfg))
	assert.Zero(t, buf.Len())

	assert.Error(t, Write(failingWriter{}, Default()))
}
