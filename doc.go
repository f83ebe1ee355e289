// Package sprite provides a 2D sprite batching renderer for Go.
//
// # Overview
//
// Many independently submitted textured quads are aggregated into as few
// device draw calls as possible. Pending quads are sorted by a selectable
// SortMode, staged into shared vertex and index buffers, and flushed to a
// Device whenever the bound texture changes or a chunk reaches
// MaxBatchSize quads.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sprite"
//	    "github.com/gogpu/sprite/backend/software"
//	)
//
//	dev := software.NewDevice(image.NewRGBA(image.Rect(0, 0, 640, 480)))
//	tex := dev.RegisterImage(img)
//
//	b := sprite.NewBatcher(dev)
//	it := b.CreateBatchItem()
//	it.SetRect(tex, sprite.RectXYWH(10, 10, 32, 32), sprite.FullTexture, sprite.White, 0)
//
//	if err := b.DrawBatch(sprite.SortTexture, software.NewRenderState()); err != nil {
//	    log.Fatal(err)
//	}
//
// SpriteBatch wraps the same machinery in a Begin/Draw/End API.
//
// # Geometry
//
// Each quad stages four unique vertices (TL, TR, BL, BR) referenced by six
// indices forming two triangles that share the TR-BL diagonal:
//
//	{4i, 4i+1, 4i+2, 4i+1, 4i+3, 4i+2}
//
// Indices are uint16, which bounds a chunk to MaxBatchSize quads. Vertices
// arrive already transformed; the batcher does no camera or transform math.
//
// # Textures
//
// Textures are identified by TextureID handles issued by a backend's
// TextureRegistry. Equality is handle identity, and released handles never
// resolve again.
//
// # Backends
//
//   - backend/software: CPU rasterizer into an *image.RGBA
//   - backend/wgpu: GPU rendering through gogpu/wgpu HAL
//   - backend/ebiten: Ebitengine DrawTriangles
//
// # Thread Safety
//
// A Batcher and its render state belong to one goroutine at a time.
// There is no internal locking.
package sprite
