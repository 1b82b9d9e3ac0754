package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/idilsaglam/swipequiz/internal/gesture"
	"github.com/idilsaglam/swipequiz/internal/model"
	"github.com/idilsaglam/swipequiz/internal/nav"
	"github.com/idilsaglam/swipequiz/internal/ui"
)

// maxFrameGap caps the time step fed to the springs after a stall.
const maxFrameGap = 100 * time.Millisecond

var footerStyle = lipgloss.NewStyle().Faint(true)

// Options configure a Model.
type Options struct {
	Questions        []model.Question
	Params           nav.Params
	ActivationOffset float64      // cells a drag travels before it starts
	FPS              int          // animation frame rate
	Animator         nav.Animator // nil uses a spring driver
	Theme            ui.Theme
	Logger           *zap.Logger
	Now              func() time.Time // clock for gesture velocity; nil uses time.Now
}

// frameMsg drives one animation frame.
type frameMsg struct{ at time.Time }

// Model is the Bubble Tea model for the card stack.
type Model struct {
	questions []model.Question
	ctrl      *nav.Controller
	rec       *gesture.Recognizer
	keys      keyMap
	help      help.Model
	theme     ui.Theme
	log       *zap.Logger
	now       func() time.Time

	frame     time.Duration
	ticking   bool
	lastFrame time.Time

	width, height int
}

func New(opt Options) (Model, error) {
	if len(opt.Questions) == 0 {
		return Model{}, errors.New("no questions to show")
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.FPS <= 0 {
		opt.FPS = 60
	}
	ctrl, err := nav.New(len(opt.Questions), opt.Params, opt.Animator, opt.Logger)
	if err != nil {
		return Model{}, err
	}
	return Model{
		questions: opt.Questions,
		ctrl:      ctrl,
		rec:       gesture.New(opt.ActivationOffset),
		keys:      defaultKeys(),
		help:      help.New(),
		theme:     opt.Theme,
		log:       opt.Logger,
		now:       opt.Now,
		frame:     time.Second / time.Duration(opt.FPS),
	}, nil
}

// Run starts the full-screen program with mouse drag reporting and returns
// the model as it was when the program quit.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}

// Controller exposes the navigation state, mostly for tests.
func (m Model) Controller() *nav.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.ctrl.SetViewportWidth(float64(msg.Width))
		m.log.Debug("viewport resized", zap.Int("width", msg.Width), zap.Int("height", msg.Height))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			for _, ev := range m.rec.Cancel() {
				m.ctrl.Handle(toNav(ev))
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.ctrl.Fling(nav.Next)
		case key.Matches(msg, m.keys.Prev):
			m.ctrl.Fling(nav.Previous)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		dt := msg.at.Sub(m.lastFrame)
		if m.lastFrame.IsZero() || dt <= 0 || dt > maxFrameGap {
			dt = m.frame
		}
		m.lastFrame = msg.at
		m.ctrl.Tick(dt)
	}
	return m.nextFrame()
}

// nextFrame keeps exactly one frame tick pending while a spring runs.
func (m Model) nextFrame() (Model, tea.Cmd) {
	if !m.ctrl.Animating() {
		m.lastFrame = time.Time{}
		return m, nil
	}
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg{at: t} })
}

func (m Model) handleMouse(msg tea.MouseMsg) {
	now, x := m.now(), float64(msg.X)
	var evs []gesture.Event
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			evs = m.rec.Press(x, now)
		}
	case tea.MouseActionMotion:
		evs = m.rec.Move(x, now)
	case tea.MouseActionRelease:
		evs = m.rec.Release(x, now)
	}
	for _, ev := range evs {
		m.ctrl.Handle(toNav(ev))
	}
}

func toNav(ev gesture.Event) nav.Event {
	switch ev.Kind {
	case gesture.Begin:
		return nav.GestureBegin{}
	case gesture.Update:
		return nav.GestureUpdate{Translation: ev.Translation, Velocity: ev.Velocity}
	default:
		return nav.GestureEnd{Translation: ev.Translation, Velocity: ev.Velocity}
	}
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	stageH := m.height - 1
	if stageH < 1 {
		stageH = m.height
	}
	f := m.ctrl.Frame()

	back := ui.RenderCard(m.questions[f.PreviewIndex],
		ui.CardStyle{Opacity: f.PreviewOpacity, Scale: f.PreviewScale}, m.width, stageH, m.theme)
	front := ui.RenderCard(m.questions[f.Index],
		ui.CardStyle{Opacity: f.CardOpacity, Scale: 1}, m.width, stageH, m.theme)
	stage := ui.ComposeLayers(back, front, m.width, f.Offset)
	if stageH == m.height {
		return stage
	}
	return stage + "\n" + m.footer(f)
}

func (m Model) footer(f nav.Frame) string {
	pos := ui.ProgressBar(f.Index+1, len(m.questions), 10)
	line := pos + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	return footerStyle.Render(ansi.Truncate(line, m.width, "…"))
}
