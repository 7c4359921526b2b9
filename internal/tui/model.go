// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/cats/internal/model"
	"github.com/verte-zerg/cats/internal/practice"
)

const uploadTimeout = 2 * time.Second

type phase int

const (
	phaseTyping phase = iota
	phaseResult
	phaseDone
)

type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Space     key.Binding
	Stop      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	Submit:    key.NewBinding(key.WithKeys("enter")),
	Backspace: key.NewBinding(key.WithKeys("backspace", "delete")),
	Space:     key.NewBinding(key.WithKeys(" ")),
	Stop:      key.NewBinding(key.WithKeys("q")),
}

type uploadedMsg struct {
	err error
}

// uploadReq is a progress snapshot waiting to be sent.
type uploadReq struct {
	typed  string
	source string
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *practice.Session
	now     func() time.Time

	width  int
	height int

	phase       phase
	targetRunes []rune
	inputRunes  []rune
	started     bool
	startedAt   time.Time

	// At most one upload is in flight; keystrokes during it replace
	// pending, so reports reach the uploader in typing order.
	uploading bool
	pending   *uploadReq

	last    model.Result
	message string
	failed  bool
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	headingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// NewModel constructs a typing TUI model.
func NewModel(session *practice.Session) *Model {
	m := &Model{session: session, now: time.Now}
	m.loadParagraph()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.phase == phaseDone {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case uploadedMsg:
		if msg.err != nil && !m.failed {
			logErrf("%v\n", msg.err)
			m.failed = true
		}
		m.uploading = false
		if m.pending != nil {
			req := *m.pending
			m.pending = nil
			return m, m.send(req)
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseTyping:
			return m.updateTyping(msg)
		case phaseResult:
			return m.updateResult(msg)
		default:
			return m, tea.Quit
		}
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case key.Matches(msg, keys.Backspace):
		if len(m.inputRunes) > 0 {
			m.inputRunes = m.inputRunes[:len(m.inputRunes)-1]
		}
		return m, m.uploadCmd()
	case key.Matches(msg, keys.Space):
		if m.session.Autocorrecting() {
			m.inputRunes = []rune(m.session.CorrectLastWord(string(m.inputRunes)))
		}
		m.appendRunes([]rune{' '})
		return m, m.uploadCmd()
	case msg.Type == tea.KeyRunes:
		m.appendRunes(msg.Runes)
		return m, m.uploadCmd()
	default:
		return m, nil
	}
}

func (m *Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Stop):
		m.phase = phaseDone
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		m.session.Advance()
		m.loadParagraph()
		if m.phase == phaseDone {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) appendRunes(runes []rune) {
	if !m.started {
		m.started = true
		m.startedAt = m.now()
	}
	m.inputRunes = append(m.inputRunes, runes...)
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	typed := string(m.inputRunes)
	if typed == "" {
		m.message = "Goodbye."
		m.phase = phaseDone
		return m, tea.Quit
	}
	m.last = m.session.Score(typed, m.now().Sub(m.startedAt))
	m.phase = phaseResult
	return m, nil
}

func (m *Model) uploadCmd() tea.Cmd {
	if !m.session.Reporting() {
		return nil
	}
	req := uploadReq{typed: string(m.inputRunes), source: string(m.targetRunes)}
	if m.uploading {
		m.pending = &req
		return nil
	}
	return m.send(req)
}

func (m *Model) send(req uploadReq) tea.Cmd {
	m.uploading = true
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()
		_, err := session.Upload(ctx, req.typed, req.source)
		return uploadedMsg{err: err}
	}
}

func (m *Model) loadParagraph() {
	m.inputRunes = nil
	m.started = false
	m.startedAt = time.Time{}
	source, ok := m.session.Current()
	if !ok {
		m.targetRunes = nil
		m.message = m.session.Exhausted()
		m.phase = phaseDone
		return
	}
	m.targetRunes = []rune(source)
	m.phase = phaseTyping
}

// Message returns the text to print after the program exits.
func (m *Model) Message() string {
	return m.message
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.phase {
	case phaseTyping:
		content = m.typingView()
	case phaseResult:
		content = m.resultView()
	default:
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) typingView() string {
	cells := styleCells(m.targetRunes, m.inputRunes)
	width := 0
	if m.width > 0 {
		width = max(int(float64(m.width)*0.70), 1)
	}
	text := wrapCells(cells, width)
	heading := headingStyle.Render("Type the following paragraph and then press enter/return.")
	hint := footerStyle.Render("If you only type part of it, you will be scored only on that part.")
	return lipgloss.JoinVertical(lipgloss.Left, heading, hint, "", text)
}

func (m *Model) resultView() string {
	lines := []string{
		headingStyle.Render("Nice work!"),
		fmt.Sprintf("Words per minute: %.2f", m.last.WPM),
		fmt.Sprintf("Accuracy:         %.2f%%", m.last.Accuracy),
		"",
		footerStyle.Render("Press enter/return for the next paragraph or type q to quit."),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if len(m.targetRunes) == 0 {
		return ""
	}
	progress := int(float64(min(len(m.inputRunes), len(m.targetRunes))) / float64(len(m.targetRunes)) * 100)
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if m.last.Typed != "" {
		segments = append(segments, fmt.Sprintf("Last %.1f WPM · %.1f%%", m.last.WPM, m.last.Accuracy))
	}
	if m.session.Autocorrecting() {
		segments = append(segments, "Autocorrect on")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
