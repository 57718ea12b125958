package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"carousel"
	"carousel/internal/config"
)

// Swipe synthesis: a quick short drag is reported as a swipe before the
// pan-end, matching how upstream recognizers emit both.
const (
	swipeWindow   = 250 * time.Millisecond
	swipeDistance = 3 // cells
)

// Model is the demo UI: it renders the carousel and feeds it gestures,
// resizes and animation ticks.
type Model struct {
	cfg    *config.Config
	styles *Styles
	keys   keyMap
	help   help.Model

	surface *TeaSurface
	car     *carousel.Carousel

	width  int
	height int
	ready  bool

	frame   int // latest settled public index
	settles int

	dragging   bool
	dragStart  time.Time
	dragOrigin struct{ x, y int }
}

// NewModel creates the demo model from a loaded config.
func NewModel(cfg *config.Config) *Model {
	surface := NewTeaSurface(cfg.Vertical)

	opts := carousel.DefaultOptions()
	opts.StartFrame = cfg.StartFrame
	opts.FrameBoundary = cfg.FrameBoundary
	opts.Loop = cfg.Loop
	opts.ClonesCount = cfg.ClonesCount
	opts.Draggable = cfg.Draggable
	opts.Swipeable = cfg.Swipeable
	opts.Vertical = cfg.Vertical
	opts.TransitionDuration = time.Duration(cfg.TransitionMs) * time.Millisecond

	car := carousel.New(len(cfg.Frames), surface, opts)
	car.SetGestureSource(surface)
	car.SetResizeSource(surface.ResizeSource())

	m := &Model{
		cfg:     cfg,
		styles:  NewStyles(),
		keys:    defaultKeyMap(cfg.Vertical),
		help:    help.New(),
		surface: surface,
		car:     car,
		frame:   cfg.StartFrame,
	}
	car.OnFrameUpdate(func(publicIndex int) {
		m.frame = publicIndex
		m.settles++
	})
	return m
}

// Carousel exposes the composed core, mostly for tests.
func (m *Model) Carousel() *carousel.Carousel { return m.car }

// Init implements tea.Model. Mounting waits for the first size report.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.surface.SetSize(msg.Width, msg.Height)
		if !m.ready {
			m.ready = true
			m.car.Mount()
		} else {
			m.surface.Resized()
		}
		return m, m.surface.TakeCmd()

	case animTickMsg:
		return m, m.surface.Tick(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.surface.TakeCmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.car.Unmount()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.car.Next()
	case key.Matches(msg, m.keys.Prev):
		m.car.Prev()
	case key.Matches(msg, m.keys.GoTo):
		m.car.GoTo(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Recalc):
		m.car.Recalculate()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, m.surface.TakeCmd()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.dragging = true
		m.dragStart = time.Now()
		m.dragOrigin.x, m.dragOrigin.y = msg.X, msg.Y
		m.surface.Gesture(carousel.GestureEvent{Kind: carousel.PanStart})

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		m.surface.Gesture(carousel.GestureEvent{Kind: carousel.PanMove, Delta: m.dragDelta(msg)})

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		delta := m.dragDelta(msg)
		if time.Since(m.dragStart) < swipeWindow && math.Abs(delta) >= swipeDistance {
			m.surface.Gesture(carousel.GestureEvent{Kind: carousel.Swipe, Delta: delta})
		}
		m.surface.Gesture(carousel.GestureEvent{Kind: carousel.PanEnd, Delta: delta})
	}
}

func (m *Model) dragDelta(msg tea.MouseMsg) float64 {
	if m.cfg.Vertical {
		return float64(msg.Y - m.dragOrigin.y)
	}
	return float64(msg.X - m.dragOrigin.x)
}

// View implements tea.Model
func (m *Model) View() string {
	if !m.ready {
		return "measuring viewport..."
	}
	if len(m.cfg.Frames) == 0 {
		return m.styles.Dim.Render("no frames configured")
	}

	metrics := m.car.LayoutMetrics()
	pos := m.surface.DisplayPosition()
	floatIndex := 0.0
	if metrics.FrameSize > 0 {
		floatIndex = -pos / metrics.FrameSize
	}
	internal := int(math.Round(floatIndex))
	if internal < 0 {
		internal = 0
	}
	if internal > metrics.Frames-1 {
		internal = metrics.Frames - 1
	}
	shown := m.car.ContentIndex(internal)
	content := m.cfg.Frames[shown]

	boxWidth := m.width - 4
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 10 {
		boxWidth = 10
	}
	box := m.styles.Frame.
		BorderForeground(lipgloss.Color(content.Color)).
		Width(boxWidth).
		Render(content.Title + "\n" + m.styles.FrameBody.Render(content.Body))

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("carousel"))
	b.WriteString("\n")
	b.WriteString(box)
	b.WriteString("\n")
	b.WriteString(m.dots(shown))
	b.WriteString("\n")
	b.WriteString(m.gauge(floatIndex, metrics.Frames))
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render(
		fmt.Sprintf("frame %d/%d  settles %d", m.frame+1, m.car.FrameCount(), m.settles)))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// dots renders one marker per real frame.
func (m *Model) dots(current int) string {
	var b strings.Builder
	for i := range m.cfg.Frames {
		if i == current {
			b.WriteString(m.styles.DotOn.Render("●"))
		} else {
			b.WriteString(m.styles.DotOff.Render("○"))
		}
		b.WriteString(" ")
	}
	return b.String()
}

// gauge renders the continuous track position, drag offsets included.
func (m *Model) gauge(floatIndex float64, frames int) string {
	const width = 24
	marker := 0
	if frames > 1 {
		marker = int(math.Round(floatIndex / float64(frames-1) * (width - 1)))
	}
	if marker < 0 {
		marker = 0
	}
	if marker > width-1 {
		marker = width - 1
	}
	runes := []rune(strings.Repeat("─", width))
	runes[marker] = '█'
	return m.styles.Gauge.Render(string(runes))
}
