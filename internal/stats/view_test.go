package stats

import (
	"context"
	"errors"
	"testing"

	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/metrics"
)

type fakeSource struct {
	addrs  map[string]string
	gpu    float64
	load   float64
	memErr error
}

func (f *fakeSource) NetworkAddress(ctx context.Context, iface string) (string, bool, error) {
	a, ok := f.addrs[iface]
	if !ok {
		return "", false, nil
	}
	return a, true, nil
}

func (f *fakeSource) GPUUtilization(ctx context.Context) (float64, error) { return f.gpu, nil }
func (f *fakeSource) CPULoad(ctx context.Context) (float64, error)        { return f.load, nil }

func (f *fakeSource) MemoryUsage(ctx context.Context) (string, error) {
	if f.memErr != nil {
		return "", f.memErr
	}
	return "Mem:  12% 480/3956 M", nil
}

func (f *fakeSource) DiskUsage(ctx context.Context) (string, error) {
	return "Disk: 12/29GB 43%", nil
}

func texts(ds []display.Drawable) []string {
	var out []string
	for _, d := range ds {
		if t, ok := d.(display.Text); ok {
			out = append(out, t.Value)
		}
	}
	return out
}

func TestView_RenderLines(t *testing.T) {
	src := &fakeSource{addrs: map[string]string{"eth0": "10.0.0.7"}, gpu: 50}
	v := NewView(src, Options{Interfaces: []string{"eth0", "wlan0"}, ShowGPU: true})

	ds, err := v.Render(context.Background(), 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"eth0: 10.0.0.7", "wlan0: down", "GPU:  ", "Mem:  12% 480/3956 M", "Disk: 12/29GB 43%"}
	got := texts(ds)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	bars := 0
	for _, d := range ds {
		if _, ok := d.(display.Rect); ok {
			bars++
		}
	}
	if bars != 1 {
		t.Errorf("expected 1 gpu bar, got %d", bars)
	}
}

func TestView_LinesStackDownward(t *testing.T) {
	src := &fakeSource{addrs: map[string]string{"eth0": "10.0.0.7"}}
	v := NewView(src, Options{Interfaces: []string{"eth0"}, ShowCPU: true})

	ds, err := v.Render(context.Background(), 128)
	if err != nil {
		t.Fatal(err)
	}
	prev := -1 << 31
	for _, d := range ds {
		txt := d.(display.Text)
		if txt.Y <= prev {
			t.Errorf("expected line %q below previous (y=%d), got y=%d", txt.Value, prev, txt.Y)
		}
		prev = txt.Y
	}
	if ds[0].(display.Text).Y != -2 {
		t.Errorf("expected first line at -2, got %d", ds[0].(display.Text).Y)
	}
	if got := texts(ds)[1]; got != "CPU Load: 0.00" {
		t.Errorf("expected cpu line, got %q", got)
	}
}

func TestView_PropagatesMetricsError(t *testing.T) {
	boom := errors.Join(metrics.ErrMetricsUnavailable, errors.New("free failed"))
	v := NewView(&fakeSource{memErr: boom}, Options{})

	if _, err := v.Render(context.Background(), 128); !errors.Is(err, metrics.ErrMetricsUnavailable) {
		t.Errorf("expected ErrMetricsUnavailable, got %v", err)
	}
}

func TestGPUBar_Geometry(t *testing.T) {
	labelW := display.TextWidth("GPU:  ")
	full := 128 - labelW - 1

	bar := GPUBar(10, 128, 100)
	if bar.X0 != float64(labelW) || bar.X1 != float64(labelW+full) {
		t.Errorf("expected full bar %d..%d, got %f..%f", labelW, labelW+full, bar.X0, bar.X1)
	}
	if bar.Y1-bar.Y0 != 2 {
		t.Errorf("expected 2px bar, got %f", bar.Y1-bar.Y0)
	}

	half := GPUBar(10, 128, 50)
	if half.X1 != float64(labelW+full/2) {
		t.Errorf("expected half bar to end at %d, got %f", labelW+full/2, half.X1)
	}

	zero := GPUBar(10, 128, 0)
	if zero.X1 != zero.X0 {
		t.Errorf("expected zero load to collapse to the label edge, got %f..%f", zero.X0, zero.X1)
	}
}
