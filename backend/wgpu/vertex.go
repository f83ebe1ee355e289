// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/sprite"
)

// appendVertexData serializes vertices into buf for GPU upload,
// vertexStride bytes each.
func appendVertexData(buf []byte, vertices []sprite.Vertex) []byte {
	buf = growBytes(buf, len(vertices)*vertexStride)
	for i := range vertices {
		writeVertex(buf[i*vertexStride:], &vertices[i])
	}
	return buf
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v *sprite.Vertex) {
	putFloat(buf[0:], v.Position[0])
	putFloat(buf[4:], v.Position[1])
	putFloat(buf[8:], v.Position[2])
	putFloat(buf[12:], v.Color[0])
	putFloat(buf[16:], v.Color[1])
	putFloat(buf[20:], v.Color[2])
	putFloat(buf[24:], v.Color[3])
	putFloat(buf[28:], v.TexCoord[0])
	putFloat(buf[32:], v.TexCoord[1])
}

func putFloat(buf []byte, f float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(f))
}

// appendIndexData serializes uint16 indices into buf.
func appendIndexData(buf []byte, indices []uint16) []byte {
	buf = growBytes(buf, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}

// viewportData returns the viewport uniform bytes.
func viewportData(width, height float32) []byte {
	buf := make([]byte, viewportUniformSize)
	putFloat(buf[0:], width)
	putFloat(buf[4:], height)
	return buf
}

// growBytes returns buf[:n], reallocating when the capacity is too small.
func growBytes(buf []byte, n int) []byte {
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}
