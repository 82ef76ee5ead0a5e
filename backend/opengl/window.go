package opengl

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/render"
	api "github.com/go-theft-auto/render/internal/gl"
)

// Requested context version.
const (
	contextMajor = 3
	contextMinor = 3
)

var globalInit = sync.OnceValue(func() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, contextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, contextMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	return nil
})

// GlobalInit initializes GLFW and requests a 3.3 core profile for windows
// created afterwards. It must run on the main thread before any window or
// device is created. Later calls return the first call's result.
func GlobalInit() error {
	return globalInit()
}

// Surface adapts a GLFW window to render.Surface.
type Surface struct {
	window *glfw.Window
}

var _ render.Surface = (*Surface)(nil)

// NewSurface wraps window.
func NewSurface(window *glfw.Window) *Surface {
	return &Surface{window: window}
}

// Functions makes the window's context current and loads the GL entry
// points.
func (s *Surface) Functions() (api.Functions, error) {
	s.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return Functions{}, nil
}

// FramebufferSize returns the window's framebuffer size in pixels.
func (s *Surface) FramebufferSize() (width, height int) {
	return s.window.GetFramebufferSize()
}

// TrackResize forwards the window's framebuffer size changes to the
// device's window render target.
func TrackResize(window *glfw.Window, device *render.Device) {
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		device.UpdateRenderTarget(0, uint32(width), uint32(height))
	})
}
