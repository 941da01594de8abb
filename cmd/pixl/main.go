package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pixlkit/pixl/internal/pkg/cli"
	"github.com/pixlkit/pixl/internal/pkg/config"
	"github.com/pixlkit/pixl/internal/pkg/imgio"
	"github.com/pixlkit/pixl/internal/pkg/transform"
)

const version = "0.3.0"

const defaultConfigPath = "pixl.json"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newParser() *cli.Parser {
	p := &cli.Parser{}
	p.AddArg(&cli.Arg{Name: "help", Description: "print usage"})
	p.AddArg(&cli.Arg{Name: "version", Description: "print version"})

	resize := cli.NewSubcommand("resize")
	addCommonArgs(resize)
	resize.AddArg(&cli.Arg{Name: "width", Description: "target width, 0 keeps aspect", HasValue: true})
	resize.AddArg(&cli.Arg{Name: "height", Description: "target height, 0 keeps aspect", HasValue: true})
	resize.AddArg(&cli.Arg{Name: "filter", Description: "resampling filter: nearest, linear, lanczos", HasValue: true})
	p.AddSubcommand(resize)

	flip := cli.NewSubcommand("flip")
	addCommonArgs(flip)
	flip.AddArg(&cli.Arg{Name: "horizontal", Description: "mirror around the vertical axis"})
	flip.AddArg(&cli.Arg{Name: "vertical", Description: "mirror around the horizontal axis"})
	p.AddSubcommand(flip)

	convert := cli.NewSubcommand("convert")
	addCommonArgs(convert)
	p.AddSubcommand(convert)

	return p
}

// addCommonArgs registers the flags every subcommand carries. Each
// subcommand owns its own Arg instances because scopes do not share
// argument sets.
func addCommonArgs(s *cli.Subcommand) {
	s.AddArg(&cli.Arg{Name: "in", Description: "input image", HasValue: true, Required: true})
	s.AddArg(&cli.Arg{Name: "out", Description: "output image", HasValue: true, Required: true})
	s.AddArg(&cli.Arg{Name: "config", Description: "config file path", HasValue: true})
	s.AddArg(&cli.Arg{Name: "verbose", Description: "debug logging"})
}

func run(argv []string, stdout, stderr io.Writer) int {
	p := newParser()
	result, err := p.Parse(argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, p.Usage())
		return 2
	}

	if result.Subcommand == nil {
		switch {
		case result.Has("version"):
			fmt.Fprintln(stdout, "pixl "+version)
			return 0
		case result.Has("help"):
			fmt.Fprint(stdout, p.Usage())
			return 0
		}
		fmt.Fprint(stderr, p.Usage())
		return 2
	}

	cfg, err := loadConfig(result.Value("config"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level := cfg.LogLevel
	if result.Has("verbose") {
		level = "debug"
	}
	slog.SetDefault(newLogger(level, cfg.LogFormat, stderr))

	registry := imgio.Default(imgio.Options{
		JPEGQuality:    cfg.JPEGQuality,
		PNGCompression: cfg.PNGLevel(),
	})

	img, err := registry.Read(result.Value("in"))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	switch result.Subcommand.Name {
	case "resize":
		width, err := intValue(result, "width")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		height, err := intValue(result, "height")
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		filter := transform.Filter(cfg.ResizeFilter)
		if f := result.Value("filter"); f != "" {
			filter = transform.Filter(f)
		}
		img, err = transform.Resize(img, width, height, filter)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	case "flip":
		horizontal, vertical := result.Has("horizontal"), result.Has("vertical")
		if !horizontal && !vertical {
			fmt.Fprintln(stderr, "flip: specify -horizontal and/or -vertical")
			return 2
		}
		if horizontal {
			img = transform.FlipH(img)
		}
		if vertical {
			img = transform.FlipV(img)
		}
	case "convert":
		// decode and re-encode; the extension dispatch does the work
	}

	if err := registry.Write(result.Value("out"), img); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// loadConfig reads the named config file, or the default one if it
// exists. Only an explicitly named file is required to be present.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(defaultConfigPath)
	if os.IsNotExist(err) {
		return config.Defaults(), nil
	}
	return cfg, err
}

func intValue(result *cli.Result, name string) (int, error) {
	raw := result.Value(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("argument %q: %q is not a number", name, raw)
	}
	return n, nil
}
