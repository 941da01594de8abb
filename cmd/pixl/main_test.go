package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 0xff})
		}
	}
	path := filepath.Join(dir, "in.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, m); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	m, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func TestRun_Resize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writePNG(t, dir, 16, 8)
	out := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"resize", "-in", in, "-out", out, "-width", "4"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if got := readPNG(t, out).Bounds(); got.Dx() != 4 || got.Dy() != 2 {
		t.Fatalf("resized bounds = %v, want 4x2", got)
	}
}

func TestRun_Convert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writePNG(t, dir, 4, 4)
	out := filepath.Join(dir, "out.jpg")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"convert", "-in", in, "-out", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestRun_FlipRequiresDirection(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writePNG(t, dir, 4, 4)
	out := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"flip", "-in", in, "-out", out}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), version) {
		t.Fatalf("stdout %q missing version", stdout.String())
	}
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no args", nil, 2},
		{"unknown flag", []string{"-bogus"}, 2},
		{"missing required", []string{"resize", "-width", "4"}, 2},
		{"weird input", []string{"resize", "positional"}, 2},
		{"missing input file", []string{"convert", "-in", "nope.png", "-out", "x.png"}, 1},
		{"width not a number", nil, 2}, // filled in below
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := tt.args
			if tt.name == "width not a number" {
				dir := t.TempDir()
				in := writePNG(t, dir, 4, 4)
				args = []string{"resize", "-in", in, "-out", filepath.Join(dir, "o.png"), "-width", "four"}
			}
			var stdout, stderr bytes.Buffer
			if code := run(args, &stdout, &stderr); code != tt.want {
				t.Fatalf("exit %d, want %d, stderr: %s", code, tt.want, stderr.String())
			}
			if stderr.Len() == 0 {
				t.Fatalf("expected a message on stderr")
			}
		})
	}
}

func TestRun_ParseErrorShowsUsage(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	run([]string{"-bogus"}, &stdout, &stderr)
	if !strings.Contains(stderr.String(), `unknown argument "bogus"`) {
		t.Fatalf("stderr missing error message: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Commands:") {
		t.Fatalf("stderr missing usage: %s", stderr.String())
	}
}

func TestRun_ConfigOverridesApply(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writePNG(t, dir, 128, 128)
	cfgPath := filepath.Join(dir, "cfg.json")
	if err := os.WriteFile(cfgPath, []byte(`{"jpegQuality": 10}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	low := filepath.Join(dir, "low.jpg")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"convert", "-in", in, "-out", low, "-config", cfgPath}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	high := filepath.Join(dir, "high.jpg")
	if code := run([]string{"convert", "-in", in, "-out", high}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}

	lowInfo, err := os.Stat(low)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	highInfo, err := os.Stat(high)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if lowInfo.Size() >= highInfo.Size() {
		t.Fatalf("quality 10 output (%d bytes) not smaller than quality 90 (%d bytes)",
			lowInfo.Size(), highInfo.Size())
	}
}

func TestRun_BadConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writePNG(t, dir, 4, 4)
	var stdout, stderr bytes.Buffer
	args := []string{"convert", "-in", in, "-out", filepath.Join(dir, "o.png"), "-config", filepath.Join(dir, "nope.json")}
	if code := run(args, &stdout, &stderr); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}
