// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/sprite"
	"github.com/gogpu/wgpu/hal"
)

// Device errors.
var (
	// ErrNoHALProvider is returned when a device provider does not expose
	// its HAL device and queue.
	ErrNoHALProvider = errors.New("wgpu: provider does not expose HAL types")

	// ErrDestroyed is returned when drawing on a destroyed device.
	ErrDestroyed = errors.New("wgpu: device destroyed")

	// ErrNoRenderPass is returned when the render state has no pass set.
	ErrNoRenderPass = errors.New("wgpu: render state has no render pass")

	// ErrNoTexture is returned when drawing untextured quads without a
	// default texture.
	ErrNoTexture = errors.New("wgpu: no texture bound and no default texture set")
)

func slogger() *slog.Logger { return sprite.Logger() }

// PassEncoder is the part of hal.RenderPassEncoder the device records
// draws into. Any hal.RenderPassEncoder can be used.
type PassEncoder interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetBindGroup(index uint32, group hal.BindGroup, offsets []uint32)
	SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64)
	SetIndexBuffer(buffer hal.Buffer, format gputypes.IndexFormat, offset uint64)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// RenderState binds sprite textures and the render pass draws are
// recorded into.
type RenderState struct {
	sprite.TextureBinding
	pass PassEncoder
}

// NewRenderState returns a render state recording into pass.
func NewRenderState(pass PassEncoder) *RenderState {
	return &RenderState{pass: pass}
}

// SetPass switches the render pass for subsequent draws.
func (s *RenderState) SetPass(pass PassEncoder) { s.pass = pass }

// Device records sprite batches into WebGPU render passes.
//
// Textures are registered as bind groups created by the caller against
// TextureLayout, with the texture view at binding 0 and a sampler at
// binding 1. Every Draw uploads its own vertex and index buffers; they are
// kept alive until EndFrame, which the caller invokes once the frame's
// command buffers have completed.
//
// A Device is not safe for concurrent use.
type Device struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	shader         hal.ShaderModule
	viewportLayout hal.BindGroupLayout
	textureLayout  hal.BindGroupLayout
	pipeLayout     hal.PipelineLayout
	pipeline       hal.RenderPipeline
	sampler        hal.Sampler
	viewportBuf    hal.Buffer
	viewportGroup  hal.BindGroup

	textures       sprite.TextureRegistry[hal.BindGroup]
	defaultTexture sprite.TextureID

	frame      []hal.Buffer
	vertexData []byte
	indexData  []byte
	drawCalls  int
}

// NewDevice creates the sprite pipeline on device for render targets of
// the given format. The viewport defaults to 1×1; call SetViewport with
// the target size before drawing.
func NewDevice(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Device, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: NewDevice with nil device or queue")
	}
	d := &Device{device: device, queue: queue, format: format}
	if err := d.createPipeline(); err != nil {
		d.destroyPipeline()
		return nil, err
	}
	d.SetViewport(1, 1)
	return d, nil
}

// NewDeviceFromProvider creates a device sharing the GPU device of an
// external provider such as a gogpu window. The provider must implement
// HalDevice() any and HalQueue() any returning hal.Device and hal.Queue.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	format := provider.SurfaceFormat()
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	slogger().Debug("wgpu: using shared GPU device", "format", format)
	return NewDevice(device, queue, format)
}

// Format returns the color target format the pipeline renders to.
func (d *Device) Format() gputypes.TextureFormat { return d.format }

// TextureLayout returns the bind group layout sprite textures must be
// created against.
func (d *Device) TextureLayout() hal.BindGroupLayout { return d.textureLayout }

// Sampler returns the sampler intended for binding 1 of texture bind
// groups.
func (d *Device) Sampler() hal.Sampler { return d.sampler }

// SetViewport sets the target size in pixels used to map vertex positions
// to clip space.
func (d *Device) SetViewport(width, height float32) {
	if d.viewportBuf == nil {
		return
	}
	d.queue.WriteBuffer(d.viewportBuf, 0, viewportData(width, height))
}

// RegisterTexture registers a texture bind group. The caller keeps
// ownership of the bind group.
func (d *Device) RegisterTexture(group hal.BindGroup) sprite.TextureID {
	if group == nil {
		panic("wgpu: RegisterTexture with nil bind group")
	}
	return d.textures.Register(group)
}

// ReleaseTexture unregisters tex and returns its bind group so the caller
// can destroy it.
func (d *Device) ReleaseTexture(tex sprite.TextureID) (hal.BindGroup, bool) {
	if tex == d.defaultTexture {
		d.defaultTexture = sprite.NoTexture
	}
	return d.textures.Release(tex)
}

// SetDefaultTexture selects the texture drawn for quads without one,
// typically a 1×1 opaque white texture.
func (d *Device) SetDefaultTexture(tex sprite.TextureID) {
	if tex.Valid() {
		d.textures.MustLookup(tex)
	}
	d.defaultTexture = tex
}

// DrawCalls returns the number of indexed draws recorded.
func (d *Device) DrawCalls() int { return d.drawCalls }

// FrameBuffers returns the number of buffers awaiting EndFrame.
func (d *Device) FrameBuffers() int { return len(d.frame) }

// Draw implements sprite.Device.
func (d *Device) Draw(vertices []sprite.Vertex, indices []uint16, state sprite.RenderState) error {
	rs, ok := state.(*RenderState)
	if !ok {
		panic(fmt.Sprintf("wgpu: render state %T is not *wgpu.RenderState", state))
	}
	if d.pipeline == nil {
		return ErrDestroyed
	}
	if rs.pass == nil {
		return ErrNoRenderPass
	}
	tex := rs.Texture()
	if !tex.Valid() {
		tex = d.defaultTexture
		if !tex.Valid() {
			return ErrNoTexture
		}
	}
	group := d.textures.MustLookup(tex)

	d.vertexData = appendVertexData(d.vertexData, vertices)
	vertBuf, err := d.createAndUploadBuffer("sprite_vertices", d.vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	d.indexData = appendIndexData(d.indexData, indices)
	idxBuf, err := d.createAndUploadBuffer("sprite_indices", d.indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		d.device.DestroyBuffer(vertBuf)
		return err
	}
	d.frame = append(d.frame, vertBuf, idxBuf)

	rs.pass.SetPipeline(d.pipeline)
	rs.pass.SetBindGroup(0, d.viewportGroup, nil)
	rs.pass.SetBindGroup(1, group, nil)
	rs.pass.SetVertexBuffer(0, vertBuf, 0)
	rs.pass.SetIndexBuffer(idxBuf, gputypes.IndexFormatUint16, 0)
	rs.pass.DrawIndexed(uint32(len(indices)), 1, 0, 0, 0) //nolint:gosec // bounded by sprite.MaxBatchSize
	d.drawCalls++
	return nil
}

// EndFrame releases the buffers uploaded since the previous EndFrame.
// Call it after the command buffers recorded with them have completed.
func (d *Device) EndFrame() {
	for i, buf := range d.frame {
		d.device.DestroyBuffer(buf)
		d.frame[i] = nil
	}
	d.frame = d.frame[:0]
}

// Destroy releases all GPU resources owned by the device. Registered
// texture bind groups stay owned by the caller. Safe to call twice.
func (d *Device) Destroy() {
	d.EndFrame()
	d.destroyPipeline()
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (d *Device) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

var _ sprite.Device = (*Device)(nil)
