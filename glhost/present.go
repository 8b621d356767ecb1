package glhost

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/cellux/batterm"
)

const (
	bufferVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	bufferFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).rgb, 1.0);
    }` + "\x00"
)

type quadVertex struct {
	position [2]float32
	texcoord [2]float32
}

// presenter stretches a pixel buffer over the whole framebuffer.
type presenter struct {
	program     *Program
	tex         Texture
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32

	texSize  batterm.Size
	rgba     []byte
	vertices [6]quadVertex
}

func newPresenter() (*presenter, error) {
	program, err := CreateProgram(bufferVertexShader, bufferFragmentShader)
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture()
	if err != nil {
		program.Close()
		return nil, err
	}
	return &presenter{
		program:     program,
		tex:         tex,
		a_position:  program.GetAttribLocation("a_position"),
		a_texcoord:  program.GetAttribLocation("a_texcoord"),
		u_transform: program.GetUniformLocation("u_transform"),
		u_tex:       program.GetUniformLocation("u_tex"),
	}, nil
}

// packRGBA converts 0xRRGGBB pixels into the byte order GL expects.
func packRGBA(dst []byte, buf []uint32) []byte {
	if cap(dst) < len(buf)*4 {
		dst = make([]byte, len(buf)*4)
	}
	dst = dst[:len(buf)*4]
	for i, c := range buf {
		p := dst[i*4 : i*4+4]
		p[0] = uint8(c >> 16)
		p[1] = uint8(c >> 8)
		p[2] = uint8(c)
		p[3] = 0xff
	}
	return dst
}

// quadTransform maps buffer pixel coordinates, y pointing down, onto clip
// space.
func quadTransform(bufSize batterm.Size) mgl.Mat4 {
	return mgl.Ortho2D(0, float32(bufSize.X), float32(bufSize.Y), 0)
}

func (p *presenter) present(buf []uint32, bufSize batterm.Size, fbSize batterm.Size) error {
	if len(buf) != bufSize.X*bufSize.Y {
		return fmt.Errorf("buffer holds %d pixels, want %d", len(buf), bufSize.X*bufSize.Y)
	}
	if bufSize.X <= 0 || bufSize.Y <= 0 {
		return nil
	}
	p.rgba = packRGBA(p.rgba, buf)
	realloc := p.texSize != bufSize
	p.tex.Upload(p.rgba, bufSize.X, bufSize.Y, realloc)
	p.texSize = bufSize

	w, h := float32(bufSize.X), float32(bufSize.Y)
	p.vertices = [6]quadVertex{
		{[2]float32{0, 0}, [2]float32{0, 0}},
		{[2]float32{0, h}, [2]float32{0, 1}},
		{[2]float32{w, h}, [2]float32{1, 1}},
		{[2]float32{w, h}, [2]float32{1, 1}},
		{[2]float32{w, 0}, [2]float32{1, 0}},
		{[2]float32{0, 0}, [2]float32{0, 0}},
	}

	gl.Viewport(0, 0, int32(fbSize.X), int32(fbSize.Y))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	p.tex.Bind()
	gl.Uniform1i(p.u_tex, 0)
	transform := quadTransform(bufSize)
	gl.UniformMatrix4fv(p.u_transform, 1, false, &transform[0])

	stride := int32(unsafe.Sizeof(quadVertex{}))
	gl.EnableVertexAttribArray(uint32(p.a_position))
	gl.VertexAttribPointer(uint32(p.a_position), 2, gl.FLOAT, false, stride,
		gl.Ptr(&p.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(p.a_texcoord))
	gl.VertexAttribPointer(uint32(p.a_texcoord), 2, gl.FLOAT, false, stride,
		gl.Ptr(&p.vertices[0].texcoord[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(p.vertices)))
	gl.DisableVertexAttribArray(uint32(p.a_position))
	gl.DisableVertexAttribArray(uint32(p.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", errCode)
	}
	return nil
}

func (p *presenter) Close() error {
	p.tex.Close()
	return p.program.Close()
}
