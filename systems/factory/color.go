package factory

import (
	"image/color"

	cfg "github.com/automoto/fps01/config"
)

var colorsByName = map[string]color.RGBA{
	"white":  cfg.White,
	"gray":   cfg.Gray,
	"yellow": cfg.Yellow,
	"orange": cfg.Orange,
	"red":    cfg.Red,
	"green":  cfg.Green,
	"blue":   cfg.Blue,
	"purple": cfg.Purple,
}

func colorByName(name string, fallback color.RGBA) color.RGBA {
	if c, ok := colorsByName[name]; ok {
		return c
	}
	return fallback
}
