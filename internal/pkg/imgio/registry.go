// Package imgio reads and writes images by dispatching on the file
// extension. Codecs are registered once at startup; the actual pixel
// work lives in the wrapped libraries.
package imgio

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Decoder decodes one image format from a stream.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// Encoder encodes one image format to a stream.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
}

// Fallback handles every extension without a registered codec. It gets
// the extension on encode because a multi-format library needs it to
// pick the output format.
type Fallback interface {
	Decoder
	EncodeTo(w io.Writer, m image.Image, ext string) error
}

type codec struct {
	dec Decoder
	enc Encoder
}

// Registry maps a normalized file extension (lowercase, no dot) to a
// codec. An entry may carry only a decoder or only an encoder; the
// missing direction falls through to the fallback.
type Registry struct {
	codecs   map[string]codec
	fallback Fallback
}

func NewRegistry(fallback Fallback) *Registry {
	return &Registry{codecs: map[string]codec{}, fallback: fallback}
}

// Register binds an extension to a decoder and/or encoder. Either may
// be nil. Registering an extension twice is a programmer error.
func (r *Registry) Register(ext string, dec Decoder, enc Encoder) {
	ext = normalizeExt(ext)
	if _, exists := r.codecs[ext]; exists {
		panic(fmt.Sprintf("imgio: codec for extension %q already registered", ext))
	}
	slog.Debug("registering codec", "ext", ext, "decode", dec != nil, "encode", enc != nil)
	r.codecs[ext] = codec{dec: dec, enc: enc}
}

// Read decodes the image at path, picking the decoder by extension.
// The returned image belongs to the caller.
func (r *Registry) Read(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	defer f.Close()

	ext := normalizeExt(path)
	var m image.Image
	if c, ok := r.codecs[ext]; ok && c.dec != nil {
		slog.Debug("decoding", "path", path, "ext", ext)
		m, err = c.dec.Decode(f)
	} else {
		slog.Debug("decoding with fallback", "path", path, "ext", ext)
		m, err = r.fallback.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}

// Write encodes the image to path, picking the encoder by extension.
func (r *Registry) Write(path string, m image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write image: %w", err)
	}

	ext := normalizeExt(path)
	if c, ok := r.codecs[ext]; ok && c.enc != nil {
		slog.Debug("encoding", "path", path, "ext", ext)
		err = c.enc.Encode(f, m)
	} else {
		slog.Debug("encoding with fallback", "path", path, "ext", ext)
		err = r.fallback.EncodeTo(f, m, ext)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}

// normalizeExt accepts a path or a bare extension (with or without
// dot) and returns the lowercase extension without the dot.
func normalizeExt(s string) string {
	if strings.ContainsAny(s, "./\\") {
		s = filepath.Ext(s)
	}
	return strings.ToLower(strings.TrimPrefix(s, "."))
}
