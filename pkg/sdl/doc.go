// Package sdl is a typed layer over the SDL2 windowing, rendering and
// input primitives.
//
// Handles (Window, Renderer, Texture) own exactly one native resource
// each and are destroyed explicitly, once, in reverse dependency order:
// textures, then renderers, then windows, then Quit. Nothing is freed
// automatically on scope exit; the With* helpers wrap that discipline
// for callers that want guaranteed release.
//
// The package is single-threaded by design: SDL's event pump and
// renderer are thread-affine, and no locking is provided.
package sdl
