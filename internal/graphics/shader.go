package graphics

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// LinkerError carries the driver log of a failed compile or link together
// with the sources that produced it.
type LinkerError struct {
	Stage          string
	VertexSource   string
	FragmentSource string
	Log            string
}

func (e *LinkerError) Error() string {
	return fmt.Sprintf("graphics: %s failed: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n"))
}

// Program is a linked shader program.
type Program struct {
	ID uint32
}

// NewProgram compiles and links a vertex/fragment pair. A GL context must be
// current on the calling thread.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	fail := func(stage, log string) error {
		return &LinkerError{Stage: stage, VertexSource: vertexSrc, FragmentSource: fragmentSrc, Log: log}
	}

	vs, log, ok := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if !ok {
		return nil, fail("vertex compile", log)
	}
	defer gl.DeleteShader(vs)

	fs, log, ok := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if !ok {
		return nil, fail("fragment compile", log)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return nil, fail("link", log)
	}
	return &Program{ID: program}, nil
}

func compileShader(source string, shaderType uint32) (uint32, string, bool) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, log, false
	}
	return shader, "", true
}

// Use activates the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// SetMatrix4 sets a mat4 uniform.
func (p *Program) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(gl.GetUniformLocation(p.ID, gl.Str(name+"\x00")), 1, false, value)
}

// SetVector3 sets a vec3 uniform.
func (p *Program) SetVector3(name string, x, y, z float32) {
	gl.Uniform3f(gl.GetUniformLocation(p.ID, gl.Str(name+"\x00")), x, y, z)
}

// Delete frees the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

// VoxelVertexSource and VoxelFragmentSource shade the mesher output with one
// directional light.
const VoxelVertexSource = `#version 410 core
uniform mat4 projection;
uniform mat4 view;

layout(location = 0) in vec3 in_position;
layout(location = 1) in vec3 in_normal;
layout(location = 2) in vec3 in_color;

out vec3 normal;
out vec3 color;

void main() {
	normal = in_normal;
	color = in_color;
	gl_Position = projection * view * vec4(in_position, 1.0);
}`

const VoxelFragmentSource = `#version 410 core
uniform vec3 light_dir;

in vec3 normal;
in vec3 color;

out vec4 frag;

void main() {
	float light = max(0.3, dot(normal, normalize(light_dir)));
	frag = vec4(color * light, 1.0);
}`

// WireframeVertexSource and WireframeFragmentSource draw flat-colored lines.
const WireframeVertexSource = `#version 410 core
uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

layout(location = 0) in vec3 in_position;

void main() {
	gl_Position = proj * view * model * vec4(in_position, 1.0);
}`

const WireframeFragmentSource = `#version 410 core
uniform vec3 color;

out vec4 frag;

void main() {
	frag = vec4(color, 1.0);
}`
