// Package backend provides a registry of offscreen sprite renderers.
//
// A Renderer is a sprite.Device that also owns its render target, so tools
// and tests can draw batches without knowing which device they are using.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The built-in backends are registered on import:
//
//	import "github.com/gogpu/sprite/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b, err := backend.Open("software")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	r, err := b.NewRenderer(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//	batch := sprite.NewSpriteBatch(r)
//	_ = batch.Begin(sprite.SortTexture, r.NewRenderState())
//
// # Available Backends
//
//   - "software": CPU rasterizer drawing into an *image.RGBA
//   - "null": counts submissions and draws nothing
//
// GPU and Ebitengine devices need a host-owned render pass or game loop
// and are used directly from backend/wgpu and backend/ebitengine.
package backend
