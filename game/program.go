package game

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/shaders"
)

// Program is a linked vertex and fragment shader pair.
type Program struct {
	id       uint32
	origin   string
	uniforms map[string]int32
}

// NewProgram compiles and links both stages. The intermediate shader
// objects are released again, on success and on failure.
func NewProgram(src shaders.Source) (*Program, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	// vertex shader
	vshader, err := compileShader(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: vertex shader", src.Origin)
	}
	defer gl.DeleteShader(vshader)

	// fragment shader
	fshader, err := compileShader(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: fragment shader", src.Origin)
	}
	defer gl.DeleteShader(fshader)

	// program
	id := gl.CreateProgram()
	gl.AttachShader(id, vshader)
	gl.AttachShader(id, fshader)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(id, length, nil, gl.Str(info))
		gl.DeleteProgram(id)

		return nil, errors.Errorf("%s: linker error: %v", src.Origin, strings.TrimRight(info, "\x00"))
	}

	gl.DetachShader(id, vshader)
	gl.DetachShader(id, fshader)

	p := &Program{
		id:       id,
		origin:   src.Origin,
		uniforms: map[string]int32{},
	}

	// locations
	for _, n := range shaders.Uniforms {
		p.uniforms[n] = gl.GetUniformLocation(id, gl.Str(n+"\x00"))
	}

	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)

		info := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(info))
		gl.DeleteShader(shader)

		return 0, errors.Errorf("compile error: %v", strings.TrimRight(info, "\x00"))
	}

	return shader, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

func (p *Program) Origin() string {
	return p.origin
}

// location looks up a uniform, names the program did not cache are
// resolved once. Inactive uniforms resolve to -1, which gl ignores.
func (p *Program) location(name string) int32 {
	if l, found := p.uniforms[name]; found {
		return l
	}

	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = l
	return l
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v[0], v[1], v[2])
}

func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
