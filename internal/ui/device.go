package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/tipcalc/internal/calculator"
	"github.com/yildizm/tipcalc/internal/emoji"
	"github.com/yildizm/tipcalc/internal/logger"
	"github.com/yildizm/tipcalc/internal/monitor"
)

// ButtonMsg delivers a device button press from outside the keyboard, such
// as a followed script.
type ButtonMsg struct {
	Button calculator.Button
}

// Options configures the emulated device
type Options struct {
	// Height and Width size the 4-row container in terminal cells
	Height int
	Width  int
	Keys   KeyMap
	Logger *logger.Logger
	// Stats receives every press; a private collector is used when nil
	Stats *monitor.Collector
}

// DeviceModel emulates the calculator's 4-row display and 3 buttons.
// Bubble Tea calls Update from a single goroutine, which serializes every
// button press onto the session.
type DeviceModel struct {
	session *calculator.Session
	keys    KeyMap
	help    help.Model
	styles  *Styles
	log     *logger.Logger
	stats   *monitor.Collector

	screenHeight int
	screenWidth  int
	width        int
	height       int

	quitting bool
}

// NewDeviceModel creates a device bound to session
func NewDeviceModel(session *calculator.Session, opts Options) *DeviceModel {
	if opts.Height < calculator.RowCount {
		opts.Height = calculator.RowCount
	}
	if opts.Width <= 0 {
		opts.Width = 24
	}
	if opts.Logger == nil {
		opts.Logger = logger.New("ui", nil)
	}
	if opts.Stats == nil {
		opts.Stats = monitor.New()
	}

	return &DeviceModel{
		session:      session,
		keys:         opts.Keys,
		help:         help.New(),
		styles:       GetStyles(),
		log:          opts.Logger,
		stats:        opts.Stats,
		screenHeight: opts.Height,
		screenWidth:  opts.Width,
	}
}

// Init initializes the device model
func (m *DeviceModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *DeviceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case ButtonMsg:
		m.press(msg.Button)
	}
	return m, nil
}

// handleKeyPress maps keyboard input onto device buttons
func (m *DeviceModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.press(calculator.ButtonUp)
	case key.Matches(msg, m.keys.Down):
		m.press(calculator.ButtonDown)
	case key.Matches(msg, m.keys.Select):
		m.press(calculator.ButtonSelect)
	}
	return m, nil
}

func (m *DeviceModel) press(b calculator.Button) {
	m.stats.Press(m.session, b)
	m.log.DebugWithFields("button pressed", []logger.Field{
		logger.Button(b.String()),
		logger.F("presses", m.stats.Report().Presses),
	})
}

// Session returns the session driven by the device
func (m *DeviceModel) Session() *calculator.Session {
	return m.session
}

// View renders the device
func (m *DeviceModel) View() string {
	if m.quitting {
		return emoji.GetEmoji("receipt") + " " + m.summaryLine() + "\n"
	}

	title := m.styles.Title.Render(emoji.GetEmoji("receipt") + " Tip Calculator")
	screen := m.styles.Screen.Render(m.renderRows())
	footer := m.help.View(m.keys)

	return lipgloss.JoinVertical(lipgloss.Left, title, screen, footer)
}

// renderRows draws the four rows, each given an equal share of the container.
func (m *DeviceModel) renderRows() string {
	rowHeight := max(1, calculator.RowHeight(m.screenHeight))
	active := m.session.ActiveRow()
	editing := m.session.Editing()

	cells := make([]string, 0, calculator.RowCount)
	for i := 0; i < calculator.RowCount; i++ {
		style := m.styles.Row
		if i == active {
			style = m.styles.RowSelected
			if editing {
				style = m.styles.RowEditing
			}
		}

		marker := emoji.RowEmoji(i)
		if editing && i == active {
			marker = emoji.GetEmoji("editing")
		}
		label := marker + " " + m.session.Render(i)

		cells = append(cells, style.
			Width(m.screenWidth).
			Height(rowHeight).
			MaxHeight(rowHeight).
			Render(label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

// summaryLine is printed once the program exits
func (m *DeviceModel) summaryLine() string {
	labels := m.session.Labels()
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, strings.TrimSuffix(l, ":"))
	}
	return strings.Join(parts, " | ")
}

// Run starts the device program. Buttons received on events are delivered
// through the program's own message loop, interleaved with keyboard input.
func Run(m *DeviceModel, events <-chan calculator.Button) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if events != nil {
		go func() {
			for b := range events {
				p.Send(ButtonMsg{Button: b})
			}
		}()
	}
	_, err := p.Run()
	return err
}
