package imgio

import (
	"image"
	"sync"
)

var (
	stdOnce sync.Once
	std     *Registry
)

func stdRegistry() *Registry {
	stdOnce.Do(func() {
		std = Default(DefaultOptions())
	})
	return std
}

// Read decodes the image at path using the default registry.
func Read(path string) (image.Image, error) {
	return stdRegistry().Read(path)
}

// Write encodes the image to path using the default registry.
func Write(path string, m image.Image) error {
	return stdRegistry().Write(path, m)
}
