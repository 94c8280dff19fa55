package main

import (
	"log"

	"PolyDraw/internal/config"
	"PolyDraw/internal/state"
	"PolyDraw/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ui.RunApp(cfg, state.NewCanvasState())
}
