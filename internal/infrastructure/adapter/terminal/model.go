package terminal

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/digichron/internal/domain/port/core"
	displayadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/display"
	timeadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/time"
)

// repeatWindow is how close two presses of the same key must be to count as a repeat
const repeatWindow = 500 * time.Millisecond

// Router receives button events and wall-clock ticks
type Router interface {
	Click(ctx context.Context, button entity.Button, count uint8)
	LongClick(ctx context.Context, button entity.Button)
	MultiClick(ctx context.Context, button entity.Button, count uint8)
	Tick(now time.Time, changed entity.TimeUnits)
}

// PanelSource exposes what the display currently shows
type PanelSource interface {
	Snapshot() displayadapter.Snapshot
}

// Flasher reports whether a vibration pulse should be shown
type Flasher interface {
	Flashing() bool
}

// StatusControl is the simulated status source as seen from the keyboard
type StatusControl interface {
	ToggleBluetooth()
	Refresh()
}

type tickMsg time.Time

type firingMsg struct {
	firing timeadapter.Firing
}

// Model is the bubbletea host. Every face callback runs inside Update, so the
// watch core only ever sees one goroutine.
type Model struct {
	ctx          context.Context
	router       Router
	panel        PanelSource
	flasher      Flasher
	status       StatusControl
	firings      <-chan timeadapter.Firing
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	keys   keyMap
	help   help.Model
	styles styles

	lastKey   string
	lastPress time.Time
	repeat    uint8
	prevTick  time.Time
	quitting  bool
}

// NewModel creates the host model
func NewModel(
	ctx context.Context,
	router Router,
	panel PanelSource,
	flasher Flasher,
	status StatusControl,
	firings <-chan timeadapter.Firing,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Model {
	return &Model{
		ctx:          ctx,
		router:       router,
		panel:        panel,
		flasher:      flasher,
		status:       status,
		firings:      firings,
		timeProvider: timeProvider,
		logger:       logger,
		keys:         defaultKeyMap(),
		help:         help.New(),
		styles:       defaultStyles(),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.waitFiring())
}

func (m *Model) tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) waitFiring() tea.Cmd {
	if m.firings == nil {
		return nil
	}
	return func() tea.Msg {
		firing, ok := <-m.firings
		if !ok {
			return nil
		}
		return firingMsg{firing: firing}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tickMsg:
		now := time.Time(msg)
		changed := entity.ChangedUnits(m.prevTick, now)
		m.prevTick = now
		if m.status != nil {
			m.status.Refresh()
		}
		m.router.Tick(now, changed)
		return m, m.tick()

	case firingMsg:
		msg.firing.Run()
		return m, m.waitFiring()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("Quit requested", nil)
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.router.Click(m.ctx, entity.ButtonUp, m.repeatCount(msg.String()))

	case key.Matches(msg, m.keys.Down):
		m.router.Click(m.ctx, entity.ButtonDown, m.repeatCount(msg.String()))

	case key.Matches(msg, m.keys.Select):
		m.router.Click(m.ctx, entity.ButtonSelect, m.repeatCount(msg.String()))

	case key.Matches(msg, m.keys.Back):
		m.router.Click(m.ctx, entity.ButtonBack, m.repeatCount(msg.String()))

	case key.Matches(msg, m.keys.LongSelect):
		m.resetRepeat()
		m.router.LongClick(m.ctx, entity.ButtonSelect)

	case key.Matches(msg, m.keys.DoubleBack):
		m.resetRepeat()
		m.router.MultiClick(m.ctx, entity.ButtonBack, 2)

	case key.Matches(msg, m.keys.Bluetooth):
		if m.status != nil {
			m.status.ToggleBluetooth()
		}
	}

	return nil
}

// repeatCount returns 1 for a fresh press and grows while the same key
// repeats within repeatWindow
func (m *Model) repeatCount(k string) uint8 {
	now := m.timeProvider.Now()
	fresh := k != m.lastKey || now.Sub(m.lastPress) > repeatWindow
	switch {
	case fresh:
		m.repeat = 1
	case m.repeat < 255:
		m.repeat++
	}
	m.lastKey = k
	m.lastPress = now
	return m.repeat
}

func (m *Model) resetRepeat() {
	m.lastKey = ""
	m.repeat = 0
}

// Quitting reports whether the user asked to leave
func (m *Model) Quitting() bool {
	return m.quitting
}
