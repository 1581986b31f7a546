package config

import "time"

const (
	// Starfield projection
	DecayStep   = 0.19  // Depth lost per frame
	FocalLength = 128.0 // Perspective scale numerator (k = FocalLength / depth)
	SpreadMin   = -25   // Lowest x/y offset sampled for a star (inclusive)
	SpreadMax   = 25    // Highest x/y offset sampled for a star (exclusive)
	MaxStarSize = 4.0   // Side of a star rectangle at depth 0
	ShadeMin    = 100   // Channel intensity of the farthest visible star
	ShadeRange  = 155   // ShadeMin + ShadeRange = nearest star

	// Defaults for the startup parameters
	DefaultStars    = 512
	DefaultMaxDepth = 32.0
	DefaultPeriod   = 60 * time.Second

	// Frame pacing
	StatsFPS   = 4  // Stats readout refresh rate
	PreviewFPS = 30 // Screensaver cap in the terminal preview

	// Stats layout
	TextPadding = -2       // Top of the first text line (pixels)
	GPULabel    = "GPU:  " // Bar starts after this label
	GPUMinLoad  = 0.001    // Zero load is drawn as this so the bar never vanishes
	DownLabel   = "down"   // Placeholder for an interface with no address

	// Display
	OLEDWidth  = 128
	OLEDHeight = 64

	// Metrics
	DefaultInterface = "eth0"
	GPULoadPath      = "/sys/devices/gpu.0/load"
	MetricsTimeout   = 2 * time.Second

	// App
	AppName    = "OLED-STATS"
	AppVersion = "1.0"
)
