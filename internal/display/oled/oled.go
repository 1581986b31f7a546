// Package oled drives an SSD1306 panel over I2C.
package oled

import (
	"fmt"
	"image"

	"oledstats.klederson.com/internal/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/host/v3"
)

// Options select the bus and panel geometry.
type Options struct {
	Bus     string // empty = first registered bus
	Width   int
	Height  int
	Rotated bool
}

// panel is the subset of *ssd1306.Dev the device needs.
type panel interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}

// Device is a monochrome SSD1306 panel.
type Device struct {
	bus    i2c.BusCloser
	dev    panel
	canvas *display.Canvas
	width  int
	height int
}

// Open initialises the host drivers, opens the bus and turns the panel on.
func Open(opts Options) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialise host drivers: %w", err)
	}

	bus, err := i2creg.Open(opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", opts.Bus, err)
	}

	sopts := ssd1306.DefaultOpts
	sopts.W = opts.Width
	sopts.H = opts.Height
	sopts.Rotated = opts.Rotated

	dev, err := ssd1306.NewI2C(bus, &sopts)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("failed to open ssd1306 on %s: %w", bus, err)
	}

	return newDevice(bus, dev, opts.Width, opts.Height), nil
}

func newDevice(bus i2c.BusCloser, dev panel, width, height int) *Device {
	return &Device{
		bus:    bus,
		dev:    dev,
		canvas: display.NewCanvas(width, height, display.Monochrome),
		width:  width,
		height: height,
	}
}

func (d *Device) Width() int                   { return d.width }
func (d *Device) Height() int                  { return d.height }
func (d *Device) ColorMode() display.ColorMode { return display.Monochrome }

// Commit rasterises the drawables and pushes the whole frame to the panel.
func (d *Device) Commit(drawables []display.Drawable) error {
	img := d.canvas.Render(drawables)
	if err := d.dev.Draw(img.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("%w: %v", display.ErrDeviceCommit, err)
	}
	return nil
}

// Clear blanks the panel.
func (d *Device) Clear() error {
	return d.Commit(nil)
}

// Close blanks and halts the panel, then releases the bus.
func (d *Device) Close() error {
	_ = d.Clear()
	err := d.dev.Halt()
	if d.bus != nil {
		if cerr := d.bus.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
