package app

import (
	"image"
	"image/draw"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/scheduler"
)

// PreviewDevice emulates a panel and forwards every committed frame to the
// Bubble Tea program as a FrameMsg.
type PreviewDevice struct {
	canvas *display.Canvas
	width  int
	height int
	mode   display.ColorMode
	send   func(tea.Msg)
}

// NewPreviewDevice creates an emulated panel of the given size.
func NewPreviewDevice(width, height int, mode display.ColorMode) *PreviewDevice {
	return &PreviewDevice{
		canvas: display.NewCanvas(width, height, mode),
		width:  width,
		height: height,
		mode:   mode,
	}
}

// Attach routes frames to p. Must be called before the scheduler starts.
func (d *PreviewDevice) Attach(p *tea.Program) {
	d.send = p.Send
}

func (d *PreviewDevice) Width() int                   { return d.width }
func (d *PreviewDevice) Height() int                  { return d.height }
func (d *PreviewDevice) ColorMode() display.ColorMode { return d.mode }

// Commit rasterises the frame and sends a private copy to the program.
func (d *PreviewDevice) Commit(drawables []display.Drawable) error {
	src := d.canvas.Render(drawables)
	snap := image.NewRGBA(src.Bounds())
	draw.Draw(snap, snap.Bounds(), src, src.Bounds().Min, draw.Src)

	if d.send != nil {
		d.send(FrameMsg{Image: snap, At: time.Now()})
	}
	return nil
}

func (d *PreviewDevice) Clear() error {
	return d.Commit(nil)
}

// Report forwards a scheduler status to the program. It is used as the
// scheduler's OnFrame hook.
func (d *PreviewDevice) Report(st scheduler.Status) {
	if d.send != nil {
		d.send(StatusMsg(st))
	}
}
