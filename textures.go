package swr

import (
	"github.com/swr-go/swr/internal/texture"
)

// MaxTextureUnits bounds the number of textures a draw call can sample
// from simultaneously.
const MaxTextureUnits = 8

// CreateTexture registers a texture and returns its handle.
func (c *Context) CreateTexture(t *texture.Texture2D) uint32 {
	return c.textures.Insert(t)
}

// DeleteTexture unregisters a texture. Bound texture units still
// referencing the handle fall back to the default checkerboard texture.
func (c *Context) DeleteTexture(id uint32) {
	c.textures.Delete(id)
}

// BindTexture binds a texture to unit (0..MaxTextureUnits-1) for
// subsequent draw calls. Binding 0 clears the unit back to the default
// checkerboard texture.
func (c *Context) BindTexture(unit int, id uint32) {
	if unit < 0 || unit >= MaxTextureUnits {
		c.setError(InvalidValue)
		return
	}
	c.boundTextures[unit] = id
}

// TextureUnit resolves a texture unit to its bound texture, falling back
// to the shared default checkerboard when nothing is bound, the handle is
// stale, or texturing is disabled (see [Context.SetTextureEnabled]). Since
// a fragment shader is a plain closure rather than a call the engine
// threads texture arguments through, a shader that samples a texture
// closes over its Context and calls TextureUnit itself.
func (c *Context) TextureUnit(unit int) *texture.Texture2D {
	if !c.textureEnabled {
		return c.defaultTexture
	}
	if unit < 0 || unit >= MaxTextureUnits {
		return c.defaultTexture
	}
	id := c.boundTextures[unit]
	if id == 0 {
		return c.defaultTexture
	}
	t, ok := c.textures.Get(id)
	if !ok {
		return c.defaultTexture
	}
	return t
}
