package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/starfield"
)

// StatsRenderer produces the stats screen. It may block on metrics.
type StatsRenderer interface {
	Render(ctx context.Context, width int) ([]display.Drawable, error)
}

// Status is reported after every committed frame.
type Status struct {
	Mode     Mode
	Deadline time.Time
	Frame    uint64
}

// Options wires a Scheduler. Zero frame intervals mean uncapped.
type Options struct {
	Device        display.Device
	Stats         StatsRenderer
	Field         *starfield.Field
	Clock         Clock
	Period        time.Duration
	StatsInterval time.Duration
	SaverInterval time.Duration
	Logger        logrus.FieldLogger
	// OnFrame, if set, is called from the scheduler goroutine after each frame.
	OnFrame func(Status)
}

// Scheduler owns the mode state, the starfield and the device for the
// lifetime of Run. Only RequestFlip may be called from other goroutines.
type Scheduler struct {
	device        display.Device
	stats         StatsRenderer
	field         *starfield.Field
	clock         Clock
	period        time.Duration
	statsInterval time.Duration
	saverInterval time.Duration
	log           logrus.FieldLogger
	onFrame       func(Status)

	state State
	frame uint64
	flip  chan struct{}
}

// New creates a scheduler in Stats mode with the first deadline one period
// from now.
func New(opts Options) *Scheduler {
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Scheduler{
		device:        opts.Device,
		stats:         opts.Stats,
		field:         opts.Field,
		clock:         clock,
		period:        opts.Period,
		statsInterval: opts.StatsInterval,
		saverInterval: opts.SaverInterval,
		log:           log,
		onFrame:       opts.OnFrame,
		state:         Initial(clock.Now(), opts.Period),
		flip:          make(chan struct{}, 1),
	}
}

// State returns the current timer state. Not safe while Run is active.
func (s *Scheduler) State() State { return s.state }

// RequestFlip asks the loop to switch mode at the start of the next frame.
func (s *Scheduler) RequestFlip() {
	select {
	case s.flip <- struct{}{}:
	default:
	}
}

// Run drives frames until ctx is cancelled (returning nil) or a frame fails
// (returning that error).
func (s *Scheduler) Run(ctx context.Context) error {
	s.log.WithFields(logrus.Fields{
		"mode":     s.state.Mode,
		"deadline": s.state.Deadline.Format(time.TimeOnly),
	}).Info("scheduler started")

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := s.Step(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			s.log.WithFields(logrus.Fields{
				"mode":  s.state.Mode,
				"frame": s.frame,
				"error": err,
			}).Error("frame failed")
			return err
		}
	}
}

// Step runs one iteration: transition, render, commit, then pace.
func (s *Scheduler) Step(ctx context.Context) error {
	now := s.clock.Now()

	flipped := false
	select {
	case <-s.flip:
		s.state = s.state.Flip(now, s.period)
		flipped = true
	default:
		s.state, flipped = s.state.Next(now, s.period)
	}
	if flipped {
		s.log.WithFields(logrus.Fields{
			"mode":     s.state.Mode,
			"deadline": s.state.Deadline.Format(time.TimeOnly),
		}).Info("mode changed")
	}

	var (
		drawables []display.Drawable
		interval  time.Duration
		err       error
	)
	switch s.state.Mode {
	case Stats:
		drawables, err = s.stats.Render(ctx, s.device.Width())
		interval = s.statsInterval
	case Screensaver:
		drawables = s.starFrame()
		interval = s.saverInterval
	}
	if err != nil {
		return fmt.Errorf("%s frame: %w", s.state.Mode, err)
	}

	if err := s.device.Commit(drawables); err != nil {
		return fmt.Errorf("%s frame: %w", s.state.Mode, err)
	}
	s.frame++

	if s.onFrame != nil {
		s.onFrame(Status{Mode: s.state.Mode, Deadline: s.state.Deadline, Frame: s.frame})
	}

	return s.clock.Sleep(ctx, interval)
}

func (s *Scheduler) starFrame() []display.Drawable {
	w, h := s.device.Width(), s.device.Height()
	rects := s.field.Advance(w/2, h/2, w, h, s.device.ColorMode())
	out := make([]display.Drawable, len(rects))
	for i, r := range rects {
		out[i] = r
	}
	return out
}
