package app

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"oledstats.klederson.com/internal/config"
	"oledstats.klederson.com/internal/display"
	"oledstats.klederson.com/internal/scheduler"
	"oledstats.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sched  *scheduler.Scheduler
	device *PreviewDevice
	frames *FrameRing
	cancel context.CancelFunc
	err    error
}

// AppModel is the root Bubble Tea model for the terminal preview.
type AppModel struct {
	width  int
	height int

	stars  int
	period time.Duration

	frame  image.Image
	lastAt time.Time
	status scheduler.Status
	now    time.Time

	shared *shared
}

// New creates a model around a scheduler that commits to device.
func New(sched *scheduler.Scheduler, device *PreviewDevice, stars int, period time.Duration) AppModel {
	st := sched.State()
	return AppModel{
		stars:  stars,
		period: period,
		status: scheduler.Status{Mode: st.Mode, Deadline: st.Deadline},
		now:    time.Now(),
		shared: &shared{
			sched:  sched,
			device: device,
			frames: NewFrameRing(config.PreviewFPS),
		},
	}
}

// Start attaches the device to p and runs the scheduler in the background.
// Must be called before p.Run().
func (m *AppModel) Start(ctx context.Context, p *tea.Program) {
	ctx, cancel := context.WithCancel(ctx)
	m.shared.cancel = cancel
	m.shared.device.Attach(p)

	go func() {
		err := m.shared.sched.Run(ctx)
		p.Send(SchedulerDoneMsg{Err: err})
	}()
}

// Err returns the error that stopped the scheduler, if any.
func (m AppModel) Err() error {
	return m.shared.err
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case FrameMsg:
		if !m.lastAt.IsZero() {
			m.shared.frames.Push(msg.At.Sub(m.lastAt).Seconds())
		}
		m.lastAt = msg.At
		m.frame = msg.Image
		return m, nil

	case StatusMsg:
		m.status = scheduler.Status(msg)
		return m, nil

	case SchedulerDoneMsg:
		m.shared.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.stop()
		return m, tea.Quit

	case "m", "M":
		m.shared.sched.RequestFlip()
	}

	return m, nil
}

func (m AppModel) stop() {
	if m.shared.cancel != nil {
		m.shared.cancel()
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	remaining := m.status.Deadline.Sub(m.now)
	if remaining < 0 {
		remaining = 0
	}
	menuBar := ui.RenderMenuBar(m.width, m.status.Mode.String(), remaining)

	panel := ui.RenderFramePanel(m.frame, m.shared.device.Width(), m.shared.device.Height(),
		m.shared.device.ColorMode() == display.RGB)

	statusBar := ui.RenderStatusBar(m.width, m.shared.frames.Rate(), m.status.Frame,
		m.stars, m.period, m.shared.device.ColorMode().String())

	return ui.ComposeLayout(menuBar, panel, statusBar, m.width, m.height)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.PreviewFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
