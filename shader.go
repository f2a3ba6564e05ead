package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const infoLogLength = 512

type Shader struct {
	id uint32
}

// LoadShader reads <dir>/<name>.vs and <dir>/<name>.fs and links them.
func LoadShader(dir, name string) (*Shader, error) {
	vertexSource, err := os.ReadFile(filepath.Join(dir, name+".vs"))
	if err != nil {
		return nil, fmt.Errorf("read vertex shader: %w", err)
	}
	fragmentSource, err := os.ReadFile(filepath.Join(dir, name+".fs"))
	if err != nil {
		return nil, fmt.Errorf("read fragment shader: %w", err)
	}
	s, err := NewShader(string(vertexSource), string(fragmentSource))
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	return s, nil
}

func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	// Link all shaders together to form a shader program, which is used during rendering.
	id := gl.CreateProgram()
	gl.AttachShader(id, vertexShader)
	gl.AttachShader(id, fragmentShader)
	gl.LinkProgram(id)

	var success int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &success)
	if success == gl.FALSE {
		infoLog := make([]uint8, infoLogLength)
		gl.GetProgramInfoLog(id, infoLogLength, nil, &infoLog[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("failed to link program: %s", cString(infoLog))
	}

	return &Shader{id: id}, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	// The source must be a null-terminated C string.
	sources, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, sources, nil)
	gl.CompileShader(shader)

	var success int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &success)
	if success == gl.FALSE {
		infoLog := make([]uint8, infoLogLength)
		gl.GetShaderInfoLog(shader, infoLogLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile: %s", cString(infoLog))
	}
	return shader, nil
}

func cString(b []uint8) string {
	return strings.TrimRight(string(b), "\x00")
}

func (s *Shader) use() *Shader {
	gl.UseProgram(s.id)
	return s
}

func (s *Shader) delete() {
	gl.DeleteProgram(s.id)
}

func (s *Shader) location(name string) int32 {
	return gl.GetUniformLocation(s.id, gl.Str(name+"\x00"))
}

func (s *Shader) setBool(name string, value bool) {
	var v0 int32
	if value {
		v0 = 1
	}
	gl.Uniform1i(s.location(name), v0)
}

func (s *Shader) setInt(name string, value int32) {
	gl.Uniform1i(s.location(name), value)
}

func (s *Shader) setFloat(name string, value float32) {
	gl.Uniform1f(s.location(name), value)
}

func (s *Shader) setVec3(name string, value mgl32.Vec3) {
	gl.Uniform3fv(s.location(name), 1, &value[0])
}

func (s *Shader) setMat4(name string, value mgl32.Mat4) {
	gl.UniformMatrix4fv(s.location(name), 1, false, &value[0])
}
