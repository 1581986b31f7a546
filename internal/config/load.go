package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Device names accepted by Config.Device.
const (
	DeviceOLED    = "oled"
	DevicePreview = "preview"
)

// Config holds the startup parameters. Only Stars, MaxDepth and Period shape
// the animation; the rest selects hardware and metrics sources.
type Config struct {
	Stars          int           `yaml:"stars"`
	MaxDepth       float64       `yaml:"max_depth"`
	Period         time.Duration `yaml:"period"`
	StatsFPS       int           `yaml:"stats_fps"`
	ScreensaverFPS int           `yaml:"screensaver_fps"` // 0 = uncapped
	Interfaces     []string      `yaml:"interfaces"`
	GPULoadPath    string        `yaml:"gpu_load_path"` // empty disables the GPU bar
	ShowCPU        bool          `yaml:"show_cpu"`
	Device         string        `yaml:"device"`
	OLED           OLEDConfig    `yaml:"oled"`
	Preview        PreviewConfig `yaml:"preview"`
	Log            LogConfig     `yaml:"log"`
}

// OLEDConfig selects the I2C bus and panel geometry.
type OLEDConfig struct {
	Bus     string `yaml:"bus"` // empty = first bus found by periph
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Rotated bool   `yaml:"rotated"`
}

// PreviewConfig describes the emulated panel drawn in the terminal.
type PreviewConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	RGB    bool `yaml:"rgb"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Stars:          DefaultStars,
		MaxDepth:       DefaultMaxDepth,
		Period:         DefaultPeriod,
		StatsFPS:       StatsFPS,
		ScreensaverFPS: 0,
		Interfaces:     []string{DefaultInterface},
		GPULoadPath:    GPULoadPath,
		Device:         DeviceOLED,
		OLED: OLEDConfig{
			Width:  OLEDWidth,
			Height: OLEDHeight,
		},
		Preview: PreviewConfig{
			Width:  OLEDWidth,
			Height: OLEDHeight,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first parameter that cannot drive the display.
func (c Config) Validate() error {
	switch {
	case c.Stars <= 0:
		return fmt.Errorf("%w: stars must be positive, got %d", ErrInvalidConfig, c.Stars)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max_depth must be positive, got %g", ErrInvalidConfig, c.MaxDepth)
	case c.Period <= 0:
		return fmt.Errorf("%w: period must be positive, got %s", ErrInvalidConfig, c.Period)
	case c.StatsFPS < 0 || c.ScreensaverFPS < 0:
		return fmt.Errorf("%w: fps caps cannot be negative", ErrInvalidConfig)
	}

	switch c.Device {
	case DeviceOLED:
		if c.OLED.Width <= 0 || c.OLED.Height <= 0 {
			return fmt.Errorf("%w: oled size %dx%d", ErrInvalidConfig, c.OLED.Width, c.OLED.Height)
		}
	case DevicePreview:
		if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
			return fmt.Errorf("%w: preview size %dx%d", ErrInvalidConfig, c.Preview.Width, c.Preview.Height)
		}
	default:
		return fmt.Errorf("%w: unknown device %q", ErrInvalidConfig, c.Device)
	}
	return nil
}

// FrameInterval converts a frames-per-second cap into a sleep duration.
// Zero means uncapped.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
