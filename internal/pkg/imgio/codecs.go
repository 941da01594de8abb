package imgio

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ccmtaylor/qoi"
	"github.com/kovidgoyal/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Options tune the encoders assembled by Default.
type Options struct {
	// JPEGQuality ranges 1..100.
	JPEGQuality int
	// PNGCompression is passed through to the png encoder.
	PNGCompression png.CompressionLevel
}

func DefaultOptions() Options {
	return Options{JPEGQuality: 90, PNGCompression: png.DefaultCompression}
}

// Default assembles the standard registry: png, jpg/jpeg, qoi, bmp and
// tiff codecs, with the imaging library as the ease-of-use fallback for
// everything else (gif and friends).
func Default(opts Options) *Registry {
	r := NewRegistry(imagingCodec{})
	r.Register("png", pngCodec{level: opts.PNGCompression}, pngCodec{level: opts.PNGCompression})
	jc := jpegCodec{quality: opts.JPEGQuality}
	r.Register("jpg", jc, jc)
	r.Register("jpeg", jc, jc)
	// the qoi library only decodes
	r.Register("qoi", qoiCodec{}, nil)
	r.Register("bmp", bmpCodec{}, bmpCodec{})
	r.Register("tiff", tiffCodec{}, tiffCodec{})
	return r
}

type pngCodec struct {
	level png.CompressionLevel
}

func (c pngCodec) Decode(r io.Reader) (image.Image, error) {
	return png.Decode(r)
}

func (c pngCodec) Encode(w io.Writer, m image.Image) error {
	enc := png.Encoder{CompressionLevel: c.level}
	return enc.Encode(w, m)
}

type jpegCodec struct {
	quality int
}

func (c jpegCodec) Decode(r io.Reader) (image.Image, error) {
	return jpeg.Decode(r)
}

func (c jpegCodec) Encode(w io.Writer, m image.Image) error {
	return jpeg.Encode(w, m, &jpeg.Options{Quality: c.quality})
}

type qoiCodec struct{}

func (qoiCodec) Decode(r io.Reader) (image.Image, error) {
	return qoi.Decode(r)
}

type bmpCodec struct{}

func (bmpCodec) Decode(r io.Reader) (image.Image, error) {
	return bmp.Decode(r)
}

func (bmpCodec) Encode(w io.Writer, m image.Image) error {
	return bmp.Encode(w, m)
}

type tiffCodec struct{}

func (tiffCodec) Decode(r io.Reader) (image.Image, error) {
	return tiff.Decode(r)
}

func (tiffCodec) Encode(w io.Writer, m image.Image) error {
	return tiff.Encode(w, m, nil)
}

// imagingCodec is the fallback: a multi-format library that trades
// output size and control for ease of use.
type imagingCodec struct{}

func (imagingCodec) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

func (imagingCodec) EncodeTo(w io.Writer, m image.Image, ext string) error {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return err
	}
	return imaging.Encode(w, m, format)
}
