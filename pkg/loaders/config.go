package loaders

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RenderConfig carries the render settings loadable from a YAML file
type RenderConfig struct {
	Width            int  `yaml:"width"`
	Height           int  `yaml:"height"`
	MaxDepth         int  `yaml:"max-depth"`
	SubPixelDivision int  `yaml:"subpixel-division"`
	PassPerPixel     int  `yaml:"pass-per-pixel"`
	Workers          int  `yaml:"workers"`
	SurfaceLighting  bool `yaml:"surface-lighting"`
	IndirectLighting bool `yaml:"indirect-lighting"`
	SharedSeed       bool `yaml:"shared-seed"`
}

// DefaultRenderConfig returns the settings used when no file overrides them
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:            500,
		Height:           500,
		MaxDepth:         20,
		SubPixelDivision: 4,
		PassPerPixel:     62,
		SurfaceLighting:  true,
		IndirectLighting: true,
	}
}

// LoadRenderConfig reads render settings from a YAML file, starting
// from the defaults for any omitted field.
func LoadRenderConfig(filename string) (RenderConfig, error) {
	config := DefaultRenderConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("failed to read render config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse render config %s: %w", filename, err)
	}
	return config, nil
}
