// Package shaders provides the glsl sources of the lit mesh program,
// either bundled with the binary or read from a directory.
package shaders

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	VertexFile   = "vertex_shader.glsl"
	FragmentFile = "fragment_shader.glsl"
)

// uniforms set by the renderer every frame
var Uniforms = []string{
	"model",
	"view",
	"projection",

	"lightPos",
	"viewPos",
	"lightColor",
	"objectColor",
}

//go:embed glsl/*.glsl
var bundled embed.FS

type Source struct {
	Vertex, Fragment string
	Origin           string // directory or "embedded"
}

// Load reads both stages from dir. An empty dir returns the bundled sources.
func Load(dir string) (Source, error) {
	if dir == "" {
		return Bundled()
	}

	vertex, err := os.ReadFile(filepath.Join(dir, VertexFile))
	if err != nil {
		return Source{}, errors.Wrap(err, "vertex shader")
	}

	fragment, err := os.ReadFile(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Source{}, errors.Wrap(err, "fragment shader")
	}

	s := Source{
		Vertex:   string(vertex),
		Fragment: string(fragment),
		Origin:   dir,
	}
	return s, s.Validate()
}

func Bundled() (Source, error) {
	vertex, err := bundled.ReadFile("glsl/" + VertexFile)
	if err != nil {
		return Source{}, errors.Wrap(err, "bundled vertex shader")
	}

	fragment, err := bundled.ReadFile("glsl/" + FragmentFile)
	if err != nil {
		return Source{}, errors.Wrap(err, "bundled fragment shader")
	}

	return Source{
		Vertex:   string(vertex),
		Fragment: string(fragment),
		Origin:   "embedded",
	}, nil
}

// Validate rejects sources that can not possibly compile, before they
// reach the driver.
func (s Source) Validate() error {
	if strings.TrimSpace(s.Vertex) == "" {
		return errors.Errorf("%s: empty vertex shader", s.Origin)
	}
	if strings.TrimSpace(s.Fragment) == "" {
		return errors.Errorf("%s: empty fragment shader", s.Origin)
	}
	if !strings.HasPrefix(strings.TrimSpace(s.Vertex), "#version") {
		return errors.Errorf("%s: vertex shader lacks #version directive", s.Origin)
	}
	if !strings.HasPrefix(strings.TrimSpace(s.Fragment), "#version") {
		return errors.Errorf("%s: fragment shader lacks #version directive", s.Origin)
	}
	return nil
}

// IsSourceFile reports whether path names one of the shader stages.
func IsSourceFile(path string) bool {
	switch filepath.Base(path) {
	case VertexFile, FragmentFile:
		return true
	}
	return false
}
