// Package transform wraps the imaging library's resize and flip
// operations behind the small surface the CLI needs.
package transform

import (
	"fmt"
	"image"

	"github.com/kovidgoyal/imaging"
)

// Filter names a resampling filter.
type Filter string

const (
	Nearest Filter = "nearest"
	Linear  Filter = "linear"
	Lanczos Filter = "lanczos"
)

// Resize scales m to width x height. A zero width or height preserves
// the aspect ratio; both zero is an error.
func Resize(m image.Image, width, height int, filter Filter) (image.Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("resize: negative dimension %dx%d", width, height)
	}
	if width == 0 && height == 0 {
		return nil, fmt.Errorf("resize: width and height cannot both be zero")
	}
	f, err := resampleFilter(filter)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(m, width, height, f), nil
}

// FlipH mirrors m around the vertical axis.
func FlipH(m image.Image) image.Image {
	return imaging.FlipH(m)
}

// FlipV mirrors m around the horizontal axis.
func FlipV(m image.Image) image.Image {
	return imaging.FlipV(m)
}

func resampleFilter(f Filter) (imaging.ResampleFilter, error) {
	switch f {
	case Nearest:
		return imaging.NearestNeighbor, nil
	case Linear:
		return imaging.Linear, nil
	case Lanczos, "":
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("resize: unknown filter %q", f)
}
