package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"PolyDraw/internal/config"
	"PolyDraw/internal/export"
	"PolyDraw/internal/render"
	"PolyDraw/internal/state"
)

// --- Custom Widget for Fill Swatches ---
type fillSwatch struct {
	widget.BaseWidget
	Fill     state.Fill
	OnTapped func(state.Fill)
}

func newFillSwatch(f state.Fill, tapped func(state.Fill)) *fillSwatch {
	s := &fillSwatch{Fill: f, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *fillSwatch) CreateRenderer() fyne.WidgetRenderer {
	c, ok := render.FillColor(s.Fill)
	var fill color.Color = color.Transparent
	if ok {
		fill = c
	}
	rect := canvas.NewRectangle(fill)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *fillSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Fill)
	}
}

// --- The Main Toolbar ---
func NewToolbar(win fyne.Window, st *state.CanvasState, cfg *config.Config, status *widget.Label) fyne.CanvasObject {
	startBtn := widget.NewButton("Draw", func() {
		st.StartDrawing()
		status.SetText("Drawing: click to place vertices, click the first one to close")
	})
	finishBtn := widget.NewButton("Finish", func() {
		before := len(st.Shapes())
		st.FinishDrawing()
		if len(st.Shapes()) > before {
			status.SetText("Shape finished")
		} else {
			status.SetText("Draft discarded, needs at least 2 vertices")
		}
	})
	saveBtn := widget.NewButton("Save PNG", func() {
		showSaveDialog(win, st, cfg, status)
	})
	loadBtn := widget.NewButton("Background...", func() {
		showBackgroundDialog(win, st, status)
	})
	clearDraftBtn := widget.NewButton("Clear Draft", func() {
		st.ClearDraft()
		status.SetText("Draft cleared")
	})
	clearShapesBtn := widget.NewButton("Clear Shapes", func() {
		st.ClearShapes()
		status.SetText("Shapes cleared")
	})
	clearBgBtn := widget.NewButton("Clear Background", func() {
		st.ClearBackground()
		status.SetText("Background cleared")
	})
	resetBtn := widget.NewButton("Reset", func() {
		st.Reset()
		status.SetText("Canvas reset")
	})

	onFillTapped := func(f state.Fill) {
		st.SetFill(f)
		if f == state.FillNone {
			status.SetText("Fill: none")
		} else {
			status.SetText(fmt.Sprintf("Fill: %s", f))
		}
	}
	fillBox := container.NewHBox(
		newFillSwatch(state.FillNone, onFillTapped),
		newFillSwatch(state.FillBlue, onFillTapped),
		newFillSwatch(state.FillGreen, onFillTapped),
		newFillSwatch(state.FillYellow, onFillTapped),
	)

	return container.NewHBox(
		startBtn,
		finishBtn,
		widget.NewSeparator(),
		widget.NewLabel("Fill:"),
		fillBox,
		widget.NewSeparator(),
		clearDraftBtn,
		clearShapesBtn,
		widget.NewSeparator(),
		loadBtn,
		clearBgBtn,
		widget.NewSeparator(),
		saveBtn,
		resetBtn,
	)
}

func showSaveDialog(win fyne.Window, st *state.CanvasState, cfg *config.Config, status *widget.Label) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			status.SetText(fmt.Sprintf("Save failed: %v", err))
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[UI] Error closing writer: %v", err)
			}
		}()
		if err := export.WritePNG(writer, st.Scene(), cfg.CanvasSize, cfg.CanvasSize); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			status.SetText("Error saving image")
			return
		}
		status.SetText(fmt.Sprintf("Saved %s", writer.URI().Name()))
	}, win)
	d.SetFileName(cfg.ExportFilename)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

func showBackgroundDialog(win fyne.Window, st *state.CanvasState, status *widget.Label) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			status.SetText(fmt.Sprintf("Open failed: %v", err))
			return
		}
		if reader == nil {
			return // no file selected
		}
		defer func() {
			if err := reader.Close(); err != nil {
				log.Printf("[UI] Error closing reader: %v", err)
			}
		}()
		img, _, err := image.Decode(reader)
		if err != nil {
			log.Printf("[UI] Background decode failed: %v", err)
			status.SetText("Could not read image file")
			return
		}
		st.SetBackground(img)
		status.SetText(fmt.Sprintf("Background: %s", reader.URI().Name()))
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif"}))
	d.Show()
}
