// Package config loads the optional pixl.json settings file. The file
// is validated against an embedded JSON Schema before use, so a typo
// fails loudly instead of silently falling back to a default.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"image/png"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var schemaData []byte

var compiled *jsonschema.Schema

func init() {
	var err error
	compiled, err = jsonschema.CompileString("config.schema.json", string(schemaData))
	if err != nil {
		panic(fmt.Errorf("compile config schema: %w", err))
	}
}

type Config struct {
	JPEGQuality    int    `json:"jpegQuality"`
	PNGCompression string `json:"pngCompression"`
	ResizeFilter   string `json:"resizeFilter"`
	LogLevel       string `json:"logLevel"`
	LogFormat      string `json:"logFormat"`
}

func Defaults() Config {
	return Config{
		JPEGQuality:    90,
		PNGCompression: "default",
		ResizeFilter:   "lanczos",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads and validates the config file at path. Unset fields keep
// their defaults. A missing file is an error; callers that treat the
// path as optional should check os.IsNotExist.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := compiled.Validate(raw); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	cfg := Defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// PNGLevel maps the config name onto the png encoder's level.
func (c Config) PNGLevel() png.CompressionLevel {
	switch c.PNGCompression {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	}
	return png.DefaultCompression
}
