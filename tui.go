package main

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VICTORTBK/Portfolio/clock"
	"github.com/VICTORTBK/Portfolio/content"
	"github.com/VICTORTBK/Portfolio/render"
	"github.com/VICTORTBK/Portfolio/timing"
	"github.com/VICTORTBK/Portfolio/typewriter"
)

// TUI message types
type heroFrameMsg struct{ Text string }
type aboutFrameMsg struct {
	Line int
	Text string
}
type relayoutMsg struct{ Width int }

type section int

const (
	sectionHome section = iota
	sectionAbout
	sectionProjects
	sectionContact
	sectionCount
)

func (s section) title() string {
	switch s {
	case sectionHome:
		return "Home"
	case sectionAbout:
		return "About"
	case sectionProjects:
		return "Projects"
	case sectionContact:
		return "Contact"
	}
	return "?"
}

var (
	tuiProgram *tea.Program
	tuiMu      sync.Mutex
)

var sectionVisits atomic.Int64

func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// frameSink forwards engine frames into the Bubble Tea event loop so all
// rendering happens on the program goroutine.
type frameSink struct {
	mu   sync.Mutex
	text string
	wrap func(string) tea.Msg
}

func (s *frameSink) SetText(v string) {
	s.mu.Lock()
	s.text = v
	s.mu.Unlock()
	tuiSend(s.wrap(v))
}

func (s *frameSink) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// Styles are built once at init and reused across renders.
var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	heroStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	tabActive    = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true).Padding(0, 1).Underline(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	aboutStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	bodyStyle    = lipgloss.NewStyle().Padding(1, 2)
)

type tuiModel struct {
	width, height int
	section       section
	content       content.Content

	hero         *typewriter.Typewriter
	about        *typewriter.MultiLine
	heroText     string
	aboutText    []string
	aboutStarted bool

	gallery galleryModel
	contact contactModel

	relayout       *timing.Debouncer[int]
	filterThrottle *timing.Throttler[struct{}]
}

func newTUIModel(c content.Content, cache *render.Cache) tuiModel {
	heroSink := &frameSink{wrap: func(s string) tea.Msg { return heroFrameMsg{Text: s} }}
	heroOpts := typewriter.DefaultOptions()
	heroOpts.TypeSpeed = 80 * time.Millisecond
	heroOpts.DeleteSpeed = 40 * time.Millisecond
	heroOpts.PauseTime = 1800 * time.Millisecond
	heroOpts.ShowCursor = true
	hero := typewriter.New(heroSink, c.Roles, heroOpts)

	aboutSinks := make([]typewriter.Sink, len(c.AboutLines))
	for i := range c.AboutLines {
		line := i
		aboutSinks[i] = &frameSink{wrap: func(s string) tea.Msg { return aboutFrameMsg{Line: line, Text: s} }}
	}
	aboutOpts := typewriter.DefaultLineOptions()
	aboutOpts.TypeSpeed = 25 * time.Millisecond
	aboutOpts.LineDelay = 250 * time.Millisecond
	aboutOpts.ShowCursor = true
	about := typewriter.NewMultiLine(aboutSinks, c.AboutLines, aboutOpts)

	return tuiModel{
		content:   c,
		hero:      hero,
		about:     about,
		aboutText: make([]string, len(c.AboutLines)),
		gallery:   newGalleryModel(c, cache),
		contact:   newContactModel(c.Contact),
		relayout: timing.NewDebouncer(clock.System, 150*time.Millisecond, func(w int) {
			tuiSend(relayoutMsg{Width: w})
		}),
		// Key autorepeat on held 'f' would spin through every filter;
		// throttling keeps the cycling readable.
		filterThrottle: timing.NewThrottler(clock.System, 150*time.Millisecond, func(struct{}) {}),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return func() tea.Msg {
		m.hero.Start()
		return nil
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gallery.setSize(msg.Width, msg.Height)
		// Re-render of open markdown waits for the resize burst to settle.
		m.relayout.Call(msg.Width)
		return m, nil

	case relayoutMsg:
		if m.gallery.open {
			m.gallery.openModal()
		}
		return m, nil

	case tea.FocusMsg:
		m.hero.Resume()
		m.about.Resume()
		return m, nil

	case tea.BlurMsg:
		m.hero.Pause()
		m.about.Pause()
		return m, nil

	case heroFrameMsg:
		m.heroText = msg.Text
		return m, nil

	case aboutFrameMsg:
		if msg.Line >= 0 && msg.Line < len(m.aboutText) {
			m.aboutText[msg.Line] = msg.Text
		}
		return m, nil

	case mailResultMsg:
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The contact form owns the keyboard while active; esc backs out.
	if m.section == sectionContact {
		switch key {
		case "esc":
			m.switchTo(sectionHome)
			return m, nil
		case "tab", "shift+tab", "up", "down", "ctrl+s", "ctrl+y":
			var cmd tea.Cmd
			m.contact, cmd = m.contact.Update(msg)
			return m, cmd
		default:
			if len(msg.Runes) > 0 || key == "backspace" || key == "enter" || key == "space" || key == "left" || key == "right" {
				var cmd tea.Cmd
				m.contact, cmd = m.contact.Update(msg)
				return m, cmd
			}
		}
	}

	switch key {
	case "q":
		if m.section != sectionContact {
			return m, tea.Quit
		}
	case "1", "2", "3", "4":
		m.switchTo(section(int(key[0] - '1')))
		return m, nil
	case "tab":
		if m.section != sectionProjects || !m.gallery.open {
			m.switchTo((m.section + 1) % sectionCount)
			return m, nil
		}
	case "r":
		if m.section == sectionAbout {
			m.about.Reset()
			for i := range m.aboutText {
				m.aboutText[i] = ""
			}
			return m, nil
		}
	case "f":
		if m.section == sectionProjects && !m.gallery.open {
			if m.filterThrottle.Call(struct{}{}) {
				m.gallery.cycleFilter()
			}
			return m, nil
		}
	}

	if m.section == sectionProjects {
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tuiModel) switchTo(s section) {
	if s == m.section || s >= sectionCount {
		return
	}
	m.section = s
	sectionVisits.Add(1)
	if s == sectionAbout && !m.aboutStarted {
		m.aboutStarted = true
		m.about.Start()
	}
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var tabs []string
	for s := sectionHome; s < sectionCount; s++ {
		label := fmt.Sprintf("%d %s", int(s)+1, s.title())
		if s == m.section {
			tabs = append(tabs, tabActive.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.section {
	case sectionHome:
		body = m.homeView()
	case sectionAbout:
		body = m.aboutView()
	case sectionProjects:
		body = m.gallery.View()
	case sectionContact:
		body = m.contact.View(m.width - 4)
	}

	help := helpStyle.Render("tab/1-4 navigate · q quit")
	if m.section == sectionAbout {
		help = helpStyle.Render("r replay · tab/1-4 navigate · q quit")
	}

	return header + "\n" + bodyStyle.Render(body) + "\n" + help
}

func (m tuiModel) homeView() string {
	var b strings.Builder
	b.WriteString(nameStyle.Render(m.content.Name) + "\n\n")
	b.WriteString(heroStyle.Render(m.heroText) + "\n\n")
	b.WriteString(taglineStyle.Render(m.content.Tagline) + "\n")
	return b.String()
}

func (m tuiModel) aboutView() string {
	var b strings.Builder
	if !m.aboutStarted {
		return taglineStyle.Render("...")
	}
	for _, line := range m.aboutText {
		b.WriteString(aboutStyle.Render(line) + "\n")
	}
	return b.String()
}
