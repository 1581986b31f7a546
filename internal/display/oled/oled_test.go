package oled

import (
	"errors"
	"image"
	"testing"

	"oledstats.klederson.com/internal/display"
)

type fakePanel struct {
	frames int
	last   image.Image
	err    error
	halted bool
}

func (p *fakePanel) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if p.err != nil {
		return p.err
	}
	p.frames++
	p.last = src
	return nil
}

func (p *fakePanel) Halt() error {
	p.halted = true
	return nil
}

func TestDevice_CommitDrawsFrame(t *testing.T) {
	p := &fakePanel{}
	d := newDevice(nil, p, 128, 64)

	if err := d.Commit([]display.Drawable{display.Rect{X0: 10, Y0: 10, X1: 12, Y1: 12}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.frames != 1 {
		t.Fatalf("expected 1 frame, got %d", p.frames)
	}
	r, _, _, _ := p.last.At(11, 11).RGBA()
	if r == 0 {
		t.Error("expected rect pixel lit in committed frame")
	}
	if d.ColorMode() != display.Monochrome {
		t.Errorf("expected monochrome, got %s", d.ColorMode())
	}
}

func TestDevice_CommitWrapsError(t *testing.T) {
	p := &fakePanel{err: errors.New("i2c nack")}
	d := newDevice(nil, p, 128, 64)

	err := d.Commit(nil)
	if !errors.Is(err, display.ErrDeviceCommit) {
		t.Errorf("expected ErrDeviceCommit, got %v", err)
	}
}

func TestDevice_CloseHalts(t *testing.T) {
	p := &fakePanel{}
	d := newDevice(nil, p, 128, 32)
	if err := d.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.halted {
		t.Error("expected panel halted")
	}
	if p.frames != 1 {
		t.Errorf("expected a blank frame before halt, got %d frames", p.frames)
	}
}
