package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PolyDraw/internal/config"
	"PolyDraw/internal/state"
)

func RunApp(cfg *config.Config, st *state.CanvasState) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.WindowTitle)

	board := NewPolygonCanvas(st, cfg.CanvasSize)
	st.OnChange = board.Refresh

	status := widget.NewLabel("Ready")
	toolbar := NewToolbar(myWindow, st, cfg, status)

	content := container.NewBorder(toolbar, status, nil, nil, container.NewCenter(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.CanvasSize)+120, float32(cfg.CanvasSize)+140))
	myWindow.ShowAndRun()
}
