// Package stats lays out the system readout screen.
package stats

import (
	"context"
	"fmt"

	"oledstats.klederson.com/internal/config"
	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/metrics"
)

// View turns a metrics snapshot into drawables for one screen.
type View struct {
	source     metrics.Source
	interfaces []string
	showGPU    bool
	showCPU    bool
}

// Options selects the lines shown.
type Options struct {
	Interfaces []string
	ShowGPU    bool
	ShowCPU    bool
}

// NewView creates a view over source.
func NewView(source metrics.Source, opts Options) *View {
	return &View{
		source:     source,
		interfaces: opts.Interfaces,
		showGPU:    opts.ShowGPU,
		showCPU:    opts.ShowCPU,
	}
}

// Render collects the metrics and lays them out for a screen of the given
// width. Any collection error aborts the frame.
func (v *View) Render(ctx context.Context, width int) ([]display.Drawable, error) {
	var out []display.Drawable
	row := 0
	next := func() int {
		y := LineTop(row)
		row++
		return y
	}

	for _, iface := range v.interfaces {
		addr, ok, err := v.source.NetworkAddress(ctx, iface)
		if err != nil {
			return nil, err
		}
		if !ok {
			addr = config.DownLabel
		}
		out = append(out, display.Text{Y: next(), Value: fmt.Sprintf("%s: %s", iface, addr)})
	}

	if v.showGPU {
		gpu, err := v.source.GPUUtilization(ctx)
		if err != nil {
			return nil, err
		}
		y := next()
		out = append(out, display.Text{Y: y, Value: config.GPULabel}, GPUBar(y, width, gpu))
	}

	if v.showCPU {
		l, err := v.source.CPULoad(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, display.Text{Y: next(), Value: metrics.FormatCPULoad(l)})
	}

	memLine, err := v.source.MemoryUsage(ctx)
	if err != nil {
		return nil, err
	}
	out = append(out, display.Text{Y: next(), Value: memLine})

	diskLine, err := v.source.DiskUsage(ctx)
	if err != nil {
		return nil, err
	}
	out = append(out, display.Text{Y: next(), Value: diskLine})

	return out, nil
}

// LineTop returns the y of the n-th text line.
func LineTop(n int) int {
	return config.TextPadding + n*display.LineHeight()
}

// GPUBar is the load bar drawn to the right of the GPU label on the line
// whose top is y. The bar is 2px tall, a third of the way down the line.
func GPUBar(y, width int, loadPercent float64) display.Rect {
	if loadPercent <= 0 {
		loadPercent = config.GPUMinLoad
	}
	if loadPercent > 100 {
		loadPercent = 100
	}
	labelW := display.TextWidth(config.GPULabel)
	full := width - labelW - 1
	barW := int(float64(full) * loadPercent / 100)
	top := y + display.LineHeight()/3

	return display.Rect{
		X0: float64(labelW),
		Y0: float64(top),
		X1: float64(labelW + barW),
		Y1: float64(top + 2),
	}
}
