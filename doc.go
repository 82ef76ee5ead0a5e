/*
Package render provides a render device over an OpenGL 3.x core context.

# Overview

A Device hands out integer handles for framebuffers, vertex arrays,
buffers, textures, samplers and shader programs, and keeps a copy of the
context's mutable global state so that repeated Set* calls with the same
values issue no API calls. Handle 0 always names the window surface (for
render targets) or "nothing" (for every other kind), and releasing 0 is a
no-op.

# Quick Start

	// Setup, on the thread that owns the context
	opengl.GlobalInit()
	window, _ := glfw.CreateWindow(1280, 720, "demo", nil, nil)
	dev := render.MustNewDevice(opengl.NewSurface(window))

	prog, err := dev.CreateShaderProgram(source)
	quad := render.NewVertexArray(dev, model, render.UsageStatic)

	// Frame loop
	for !window.ShouldClose() {
	    dev.Clear(0, true, true, false, 0, 0, 0, 1, 0)
	    dev.Draw(0, prog, quad.Handle(), params, 1, quad.ElementCount())
	    window.SwapBuffers()
	}

# Shader Sources

A program is built from one source text holding both stages. The device
inserts "#define VERTEX_SHADER_BUILD" or "#define FRAGMENT_SHADER_BUILD" on
the line after the #version directive, so the source selects its stage
with #ifdef:

	#version 330 core
	#ifdef VERTEX_SHADER_BUILD
	layout(location = 0) in vec3 position;
	void main() { gl_Position = vec4(position, 1.0); }
	#endif
	#ifdef FRAGMENT_SHADER_BUILD
	out vec4 color;
	void main() { color = vec4(1.0); }
	#endif

Uniform blocks are bound to the binding point equal to their block index.
sampler2D uniforms are reflected by name; other uniform types are set
through the SetShader* helpers.

# Vertex Layout

Each vertex component lives in its own buffer. A component whose element is
wider than four floats is split over consecutive attribute locations of at
most four floats each, so a mat4 instance attribute takes four locations.
Per-instance components follow the per-vertex ones and advance once per
instance.
*/
package render
