package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 5

// TextureCache is a small LRU of textures keyed by a caller-chosen string.
// Evicted textures are destroyed.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int

	hits   int
	misses int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	texture, exists := c.textures[key]
	if !exists {
		c.misses++
		return nil
	}
	c.hits++
	c.touch(key)
	return texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if old, exists := c.textures[key]; exists {
		if old != nil && old != texture {
			old.Destroy()
		}
		c.textures[key] = texture
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

// Keys returns the cached keys from least to most recently used.
func (c *TextureCache) Keys() []string {
	return append([]string(nil), c.order...)
}

// Stats returns the number of hits and misses seen by Get.
func (c *TextureCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture := c.textures[oldest]; texture != nil {
		texture.Destroy()
	}
	delete(c.textures, oldest)
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
