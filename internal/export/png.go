// Package export serializes the rendered canvas to a raster file.
package export

import (
	"fmt"
	"image/png"
	"io"
	"log"

	"PolyDraw/internal/render"
	"PolyDraw/internal/state"
)

// WritePNG renders the scene at the given canvas size and PNG-encodes it.
// An empty scene produces a valid blank image rather than an error.
func WritePNG(w io.Writer, scene state.Scene, width, height int) error {
	img := render.Render(scene, width, height)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode canvas png: %w", err)
	}
	log.Printf("[EXPORT] Wrote %dx%d PNG with %d shapes", width, height, len(scene.Shapes))
	return nil
}
