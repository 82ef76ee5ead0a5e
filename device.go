package render

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/render/internal/gl"
)

// Surface is the drawable a Device renders into. It owns the API context.
type Surface interface {
	// Functions makes the surface's context current on the calling thread
	// and returns the entry points bound to it.
	Functions() (gl.Functions, error)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
}

// Device owns GPU resources behind integer handles and mirrors the
// context's mutable global state so redundant transitions are skipped.
//
// A Device is bound to one context and must only be used from the thread
// that owns it.
type Device struct {
	funcs gl.Functions
	log   *slog.Logger

	targets      map[Handle]*renderTarget
	vertexArrays map[Handle]*vertexArray
	programs     map[Handle]*shaderProgram

	// uniformLocs is nil unless WithUniformLocationCache was given.
	uniformLocs map[uniformKey]int32

	version       uint32
	shaderVersion string

	state cachedState
}

// Option configures a Device.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	cacheUniforms bool
}

// WithLogger routes the device's diagnostics to l instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithUniformLocationCache memoizes uniform locations per (program, name)
// for the SetShader* scalar, vector and matrix setters.
func WithUniformLocationCache() Option {
	return func(o *options) {
		o.cacheUniforms = true
	}
}

// NewDevice binds a Device to the surface's context and puts the context
// into the device's initial state.
func NewDevice(surface Surface, opts ...Option) (*Device, error) {
	funcs, err := surface.Functions()
	if err != nil {
		return nil, fmt.Errorf("render device init: %w", err)
	}
	w, h := surface.FramebufferSize()
	return newDevice(funcs, w, h, opts...), nil
}

// MustNewDevice is like NewDevice but panics on failure. A device without
// a usable context cannot do anything.
func MustNewDevice(surface Surface, opts ...Option) *Device {
	d, err := NewDevice(surface, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func newDevice(funcs gl.Functions, width, height int, opts ...Option) *Device {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	d := &Device{
		funcs:        funcs,
		log:          o.logger,
		targets:      make(map[Handle]*renderTarget),
		vertexArrays: make(map[Handle]*vertexArray),
		programs:     make(map[Handle]*shaderProgram),
		state:        defaultState(),
	}
	if d.log == nil {
		d.log = logger
	}
	if o.cacheUniforms {
		d.uniformLocs = make(map[uniformKey]int32)
	}

	// The window surface is always render target 0.
	d.targets[0] = &renderTarget{width: uint32(width), height: uint32(height)}

	funcs.Enable(gl.DEPTH_TEST)
	funcs.DepthFunc(d.state.depthFunc.native())
	funcs.DepthMask(d.state.writeDepth)
	funcs.FrontFace(gl.CCW)
	return d
}

// Destroy detaches the device from its context. Resources still registered
// are reported but not released; callers own their lifetimes. The window
// surface record survives, so late resize events stay harmless.
func (d *Device) Destroy() {
	leaked := len(d.targets) - 1 + len(d.vertexArrays) + len(d.programs)
	if leaked > 0 {
		d.log.Warn("render device destroyed with live resources",
			"renderTargets", len(d.targets)-1,
			"vertexArrays", len(d.vertexArrays),
			"shaderPrograms", len(d.programs))
	}
	for h := range d.targets {
		if h != 0 {
			delete(d.targets, h)
		}
	}
	clear(d.vertexArrays)
	clear(d.programs)
	d.funcs = nil
}
