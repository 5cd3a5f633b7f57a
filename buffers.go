package swr

import (
	"github.com/swr-go/swr/internal/vecmath"
)

// VertexBuffer is an ordered sequence of position-only 4-vectors.
type VertexBuffer struct {
	Data []vecmath.Vec4
}

// IndexBuffer is an ordered sequence of 32-bit vertex indices.
type IndexBuffer struct {
	Data []uint32
}

// AttributeBuffer is an ordered sequence of per-vertex attribute
// 4-vectors, fed to the vertex shader at whatever slot it is bound to.
type AttributeBuffer struct {
	Data []vecmath.Vec4
}

// CreateVertexBuffer registers a vertex buffer and returns its handle.
func (c *Context) CreateVertexBuffer(data []vecmath.Vec4) uint32 {
	return c.vertexBuffers.Insert(&VertexBuffer{Data: data})
}

// DeleteVertexBuffer unregisters a vertex buffer.
func (c *Context) DeleteVertexBuffer(id uint32) {
	c.vertexBuffers.Delete(id)
}

// CreateIndexBuffer registers an index buffer and returns its handle.
func (c *Context) CreateIndexBuffer(data []uint32) uint32 {
	return c.indexBuffers.Insert(&IndexBuffer{Data: data})
}

// DeleteIndexBuffer unregisters an index buffer.
func (c *Context) DeleteIndexBuffer(id uint32) {
	c.indexBuffers.Delete(id)
}

// CreateAttributeBuffer registers an attribute buffer and returns its handle.
func (c *Context) CreateAttributeBuffer(data []vecmath.Vec4) uint32 {
	return c.attribBuffers.Insert(&AttributeBuffer{Data: data})
}

// DeleteAttributeBuffer unregisters an attribute buffer.
func (c *Context) DeleteAttributeBuffer(id uint32) {
	c.attribBuffers.Delete(id)
}

// BindVertexBuffer sets the vertex buffer subsequent draw calls read
// positions from.
func (c *Context) BindVertexBuffer(id uint32) {
	c.boundVertexBuffer = id
}

// BindAttribute binds an attribute buffer to a vertex-shader input slot
// (0..maxAttributeSlots-1) for subsequent draw calls. Binding 0 (the invalid
// handle) clears the slot.
func (c *Context) BindAttribute(slot int, bufferID uint32) {
	if slot < 0 || slot >= maxAttributeSlots {
		c.setError(InvalidValue)
		return
	}
	c.boundAttribs[slot] = bufferID
}

const maxAttributeSlots = 16

// attributeBufferAt looks up a registered attribute buffer, recording
// InvalidOperation if the handle is stale or was never registered.
func (c *Context) attributeBufferAt(id uint32) (*AttributeBuffer, bool) {
	if id == 0 {
		return nil, false
	}
	buf, ok := c.attribBuffers.Get(id)
	if !ok {
		c.setError(InvalidOperation)
		return nil, false
	}
	return buf, true
}
