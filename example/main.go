// Example draws an instanced grid of textured quads through the render
// device.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Window settings are read from render.toml in the working directory.
package main

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/render"
	"github.com/go-theft-auto/render/backend/opengl"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// shaderBody is compiled once per stage; the device defines
// VERTEX_SHADER_BUILD or FRAGMENT_SHADER_BUILD after the #version line.
const shaderBody = `
layout (std140) uniform Camera {
    mat4 viewProjection;
};

#ifdef VERTEX_SHADER_BUILD
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texCoord;
layout (location = 2) in mat4 transform;

out vec2 uv;

void main() {
    gl_Position = viewProjection * transform * vec4(position, 1.0);
    uv = texCoord;
}
#endif

#ifdef FRAGMENT_SHADER_BUILD
in vec2 uv;
out vec4 fragColor;

uniform sampler2D diffuse;
uniform vec4 tint;

void main() {
    fragColor = texture(diffuse, uv) * tint;
}
#endif
`

// Vertex array buffers, in creation order.
const (
	bufferPositions = iota
	bufferTexCoords
	bufferTransforms
)

func quad() *render.IndexedModel {
	return &render.IndexedModel{
		Components: [][]float32{
			{-0.5, -0.5, 0, 0.5, -0.5, 0, 0.5, 0.5, 0, -0.5, 0.5, 0},
			{0, 0, 1, 0, 1, 1, 0, 1},
		},
		ElementSizes:         []uint32{3, 2},
		InstanceElementSizes: []uint32{16},
		Indices:              []uint32{0, 1, 2, 2, 3, 0},
	}
}

// checkerboard returns an RGBA checkerboard of size×size pixels.
func checkerboard(size, cell int) []byte {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(64)
			if (x/cell+y/cell)%2 == 0 {
				v = 230
			}
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 255
		}
	}
	return pix
}

func run() error {
	cfg, err := loadConfig("render.toml")
	if err != nil {
		return err
	}
	render.SetVerbose(cfg.Verbose)

	if err := opengl.GlobalInit(); err != nil {
		return err
	}
	defer glfw.Terminate()

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	device := render.MustNewDevice(opengl.NewSurface(window), render.WithUniformLocationCache())
	defer device.Destroy()
	opengl.TrackResize(window, device)

	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	source := "#version " + device.ShaderVersion() + " core\n" + shaderBody
	shader, err := device.CreateShaderProgram(source)
	if err != nil {
		return fmt.Errorf("shader: %w", err)
	}
	defer device.ReleaseShaderProgram(shader)

	mesh := render.NewVertexArray(device, quad(), render.UsageStatic)
	defer mesh.Release()

	const texSize = 64
	texture := device.CreateTexture2D(texSize, texSize, checkerboard(texSize, 8),
		render.FormatRGBA, render.FormatRGBA, true, false, 4, 4)
	defer device.ReleaseTexture2D(texture)
	sampler := device.CreateSampler(render.FilterLinearMipmapLinear, render.FilterLinear,
		render.WrapRepeat, render.WrapRepeat, 4)
	defer device.ReleaseSampler(sampler)

	camera := device.CreateUniformBuffer(nil, 16*4, render.UsageDynamic)
	defer device.ReleaseUniformBuffer(camera)
	device.SetShaderUniformBuffer(shader, "Camera", camera)

	params := render.DrawParameters{
		PrimitiveType: render.PrimitiveTriangles,
		FaceCulling:   render.CullBack,
		DepthFunc:     render.DrawAlways,
		SourceBlend:   render.BlendSrcAlpha,
		DestBlend:     render.BlendOneMinusSrcAlpha,
	}

	n := cfg.Grid
	transforms := make([]float32, 0, n*n*16)
	start := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		t := float32(glfw.GetTime() - start)

		w, h, _ := device.RenderTargetSize(0)
		aspect := float32(w) / float32(max(h, 1))
		half := float32(n) / 2
		proj := mgl32.Ortho2D(-half*aspect, half*aspect, -half, half)
		if err := device.UpdateUniformBuffer(camera, render.Bytes(proj[:])); err != nil {
			return fmt.Errorf("camera update: %w", err)
		}

		transforms = transforms[:0]
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				angle := t + float32(x+y)*0.3
				m := mgl32.Translate3D(float32(x)-half+0.5, float32(y)-half+0.5, 0).
					Mul4(mgl32.HomogRotate3DZ(angle)).
					Mul4(mgl32.Scale3D(0.8, 0.8, 1))
				transforms = append(transforms, m[:]...)
			}
		}
		mesh.UpdateBuffer(bufferTransforms, render.Bytes(transforms))

		c := cfg.ClearColor
		device.Clear(0, true, true, false, c[0], c[1], c[2], c[3], 0)
		pulse := 0.75 + 0.25*float32(math.Sin(float64(t)))
		device.SetShaderFloat4(shader, "tint", mgl32.Vec4{pulse, 1, 1, 1})
		device.SetShaderSampler(shader, "diffuse", texture, sampler, 0)
		device.Draw(0, shader, mesh.Handle(), params, uint32(n*n), mesh.ElementCount())

		window.SwapBuffers()
	}
	return nil
}
