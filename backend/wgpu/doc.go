// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides a GPU sprite.Device built on the gogpu/wgpu HAL.
//
// The device owns one render pipeline: a WGSL vertex/fragment shader, a
// 36-byte vertex layout matching sprite.Vertex, premultiplied alpha
// blending and 16-bit indexed drawing. Each flush from the batcher becomes
// one DrawIndexed call recorded into the caller's render pass.
//
// # Usage
//
//	dev, err := wgpu.NewDeviceFromProvider(provider)
//	if err != nil {
//		return err
//	}
//	defer dev.Destroy()
//	dev.SetViewport(float32(width), float32(height))
//
//	// Bind groups follow dev.TextureLayout(): view at 0, sampler at 1.
//	hero := dev.RegisterTexture(heroBindGroup)
//
//	batch := sprite.NewSpriteBatch(dev)
//	state := wgpu.NewRenderState(pass)
//	_ = batch.Begin(sprite.SortTexture, state)
//	_ = batch.Draw(hero, dst, sprite.FullTexture, sprite.White, 0)
//	if err := batch.End(); err != nil {
//		return err
//	}
//	pass.End()
//	// ... submit and wait ...
//	dev.EndFrame()
//
// Vertex positions are target pixels with the origin at the top-left; the
// shader maps them to clip space using the viewport size.
//
// Build with the nogpu tag to exclude this package.
package wgpu
