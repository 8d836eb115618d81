package main

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/polydecomp/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can come from a YAML file. Flags given on the command line
// win over the file.
type config struct {
	MaxDepth int      `yaml:"maxDepth"`
	Scale    float64  `yaml:"scale"`
	Padding  int      `yaml:"padding"`
	Labels   *bool    `yaml:"labels"`
	Colors   []string `yaml:"colors"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}
	return cfg, nil
}

func (cfg config) renderStyle() (internal.RenderStyle, error) {
	style := internal.DefaultRenderStyle()
	// An explicit scale is honored even if the image gets large
	if cfg.Scale > 0 {
		style.Scale = cfg.Scale
		style.MaxSize = 0
	}
	if cfg.Padding > 0 {
		style.Padding = cfg.Padding
	}
	if cfg.Labels != nil {
		style.Labels = *cfg.Labels
	}
	if len(cfg.Colors) > 0 {
		style.Palette = make([]color.Color, 0, len(cfg.Colors))
		for _, hex := range cfg.Colors {
			c, err := parseHexColor(hex)
			if err != nil {
				return style, err
			}
			style.Palette = append(style.Palette, c)
		}
	}
	return style, nil
}

// Parse "#rrggbb" or "rrggbb".
func parseHexColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return nil, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
