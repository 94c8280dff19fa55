package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	WindowTitle    string `envconfig:"WINDOW_TITLE" default:"PolyDraw"`
	CanvasSize     int    `envconfig:"CANVAS_SIZE" default:"500"`
	ExportFilename string `envconfig:"EXPORT_FILENAME" default:"canvas-image.png"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("polydraw", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
