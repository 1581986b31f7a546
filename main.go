package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"oledstats.klederson.com/internal/app"
	"oledstats.klederson.com/internal/config"
	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/display/oled"
	"oledstats.klederson.com/internal/metrics"
	"oledstats.klederson.com/internal/scheduler"
	"oledstats.klederson.com/internal/starfield"
	"oledstats.klederson.com/internal/stats"
)

var (
	flagConfig   string
	flagDevice   string
	flagDemo     bool
	flagStars    int
	flagMaxDepth float64
	flagPeriod   time.Duration
	flagIfaces   []string
	flagRGB      bool
	flagWidth    int
	flagHeight   int
	flagBus      string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oledstats",
		Short: "OLED Stats - system readout and starfield screensaver for small displays",
		Long: `OLED Stats drives a small monochrome display attached to a single-board
computer. It alternates between a system readout (network address, GPU load,
memory and disk usage) and a starfield screensaver on a fixed period.

Use --device preview to show the panel in the terminal instead of on I2C
hardware, and --demo for synthetic metrics.`,
		SilenceUsage: true,
		RunE:         run,
	}

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML config file")
	f.StringVar(&flagDevice, "device", config.DeviceOLED, "Output device: oled or preview")
	f.BoolVar(&flagDemo, "demo", false, "Use synthetic metrics (no hardware or sysfs needed)")
	f.IntVar(&flagStars, "stars", config.DefaultStars, "Number of stars in the screensaver")
	f.Float64Var(&flagMaxDepth, "max-depth", config.DefaultMaxDepth, "Depth at which stars are respawned")
	f.DurationVar(&flagPeriod, "period", config.DefaultPeriod, "Time between stats and screensaver flips")
	f.StringSliceVar(&flagIfaces, "interface", []string{config.DefaultInterface}, "Network interfaces to show")
	f.BoolVar(&flagRGB, "rgb", false, "Emulate an RGB panel in preview mode")
	f.IntVar(&flagWidth, "width", config.OLEDWidth, "Panel width in pixels")
	f.IntVar(&flagHeight, "height", config.OLEDHeight, "Panel height in pixels")
	f.StringVar(&flagBus, "bus", "", "I2C bus name (default: first available)")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var source metrics.Source
	if flagDemo {
		source = metrics.NewMockSource(rng)
	} else {
		source = metrics.NewSystemSource(cfg.GPULoadPath)
	}
	view := stats.NewView(source, stats.Options{
		Interfaces: cfg.Interfaces,
		ShowGPU:    cfg.GPULoadPath != "" || flagDemo,
		ShowCPU:    cfg.ShowCPU,
	})
	field := starfield.New(cfg.Stars, cfg.MaxDepth, rng)

	opts := scheduler.Options{
		Stats:         view,
		Field:         field,
		Period:        cfg.Period,
		StatsInterval: config.FrameInterval(cfg.StatsFPS),
		SaverInterval: config.FrameInterval(cfg.ScreensaverFPS),
		Logger:        log.WithField("component", "scheduler"),
	}

	log.WithFields(logrus.Fields{
		"device": cfg.Device,
		"stars":  cfg.Stars,
		"period": cfg.Period,
		"demo":   flagDemo,
	}).Info("starting")

	if cfg.Device == config.DevicePreview {
		return runPreview(ctx, cfg, opts)
	}
	return runOLED(ctx, cfg, opts)
}

func runOLED(ctx context.Context, cfg config.Config, opts scheduler.Options) error {
	dev, err := oled.Open(oled.Options{
		Bus:     cfg.OLED.Bus,
		Width:   cfg.OLED.Width,
		Height:  cfg.OLED.Height,
		Rotated: cfg.OLED.Rotated,
	})
	if err != nil {
		return err
	}
	defer dev.Close()

	opts.Device = dev
	return scheduler.New(opts).Run(ctx)
}

func runPreview(ctx context.Context, cfg config.Config, opts scheduler.Options) error {
	mode := display.Monochrome
	if cfg.Preview.RGB {
		mode = display.RGB
	}
	dev := app.NewPreviewDevice(cfg.Preview.Width, cfg.Preview.Height, mode)

	opts.Device = dev
	opts.OnFrame = dev.Report
	if opts.SaverInterval == 0 {
		opts.SaverInterval = config.FrameInterval(config.PreviewFPS)
	}
	model := app.New(scheduler.New(opts), dev, cfg.Stars, cfg.Period)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithFPS(config.PreviewFPS),
	)

	// Start the scheduler with reference to the tea program
	model.Start(ctx, p)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	if m, ok := final.(app.AppModel); ok {
		return m.Err()
	}
	return nil
}

// applyFlags overrides file values with flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("device") {
		cfg.Device = flagDevice
	}
	if set("stars") {
		cfg.Stars = flagStars
	}
	if set("max-depth") {
		cfg.MaxDepth = flagMaxDepth
	}
	if set("period") {
		cfg.Period = flagPeriod
	}
	if set("interface") {
		cfg.Interfaces = flagIfaces
	}
	if set("rgb") {
		cfg.Preview.RGB = flagRGB
	}
	if set("width") {
		cfg.OLED.Width = flagWidth
		cfg.Preview.Width = flagWidth
	}
	if set("height") {
		cfg.OLED.Height = flagHeight
		cfg.Preview.Height = flagHeight
	}
	if set("bus") {
		cfg.OLED.Bus = flagBus
	}
	if set("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if set("log-file") {
		cfg.Log.File = flagLogFile
	}
}

// newLogger builds the process logger. The preview owns the terminal, so its
// logs go to the configured file or nowhere.
func newLogger(cfg config.Config) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log level: %v", config.ErrInvalidConfig, err)
	}
	log.SetLevel(level)

	closeFn := func() {}
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closeFn = func() { _ = f.Close() }
	case cfg.Device == config.DevicePreview:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, closeFn, nil
}
