package app

import (
	"image"
	"time"

	"oledstats.klederson.com/internal/scheduler"
)

// TickMsg refreshes the countdown between frames.
type TickMsg time.Time

// FrameMsg carries a committed frame from the preview device.
type FrameMsg struct {
	Image image.Image
	At    time.Time
}

// StatusMsg reports the scheduler state after a frame.
type StatusMsg scheduler.Status

// SchedulerDoneMsg is sent once the scheduler loop returns.
type SchedulerDoneMsg struct {
	Err error
}
