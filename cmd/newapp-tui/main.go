package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	newapp "github.com/Lax999/Newapp"
	models "github.com/Lax999/Newapp/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type uiTheme struct {
	header    lipgloss.Style
	userMsg   lipgloss.Style
	assistant lipgloss.Style
	degraded  lipgloss.Style
	footer    lipgloss.Style
}

func newTheme() uiTheme {
	blue := lipgloss.Color("#01cdfe")
	mint := lipgloss.Color("#05ffa1")
	muted := lipgloss.Color("#9ca3d8")

	return uiTheme{
		header: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true).
			Padding(0, 1),
		userMsg: lipgloss.NewStyle().
			Foreground(mint).
			Bold(true),
		assistant: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f3f3ff")),
		degraded: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
	}
}

// chatMsg carries one appended log entry from the orchestrator into the
// bubbletea event loop.
type chatMsg models.ChatMessage

type model struct {
	orch     *newapp.Orchestrator
	updates  chan tea.Msg
	input    textinput.Model
	timeline viewport.Model
	spinner  spinner.Model
	theme    uiTheme

	messages []models.ChatMessage
	waiting  bool
	width    int
	height   int
}

func newModel(orch *newapp.Orchestrator, updates chan tea.Msg) model {
	input := textinput.New()
	input.Prompt = "❯ "
	input.CharLimit = 2000
	input.Placeholder = "Say something, or ask for directions..."
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#05ffa1"))

	timeline := viewport.New(0, 0)
	timeline.MouseWheelEnabled = true

	return model{
		orch:     orch,
		updates:  updates,
		input:    input,
		timeline: timeline,
		spinner:  sp,
		theme:    newTheme(),
		messages: orch.Messages(),
	}
}

func waitUpdate(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitUpdate(m.updates))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.orch.Shutdown()
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			m.orch.SendMessage(text)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timeline.Width = msg.Width
		m.timeline.Height = msg.Height - 4
		m.renderTimeline()
		return m, nil

	case chatMsg:
		m.messages = append(m.messages, models.ChatMessage(msg))
		if !msg.FromUser {
			m.waiting = false
		}
		m.renderTimeline()
		return m, waitUpdate(m.updates)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) renderTimeline() {
	var sb strings.Builder
	for _, msg := range m.messages {
		line := msg.Text
		switch {
		case msg.FromUser:
			line = m.theme.userMsg.Render("you  ") + line
		case strings.HasPrefix(msg.Text, newapp.Degraded_Prefix):
			line = m.theme.degraded.Render("app  " + line)
		default:
			line = m.theme.assistant.Render("app  " + line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	m.timeline.SetContent(sb.String())
	m.timeline.GotoBottom()
}

func (m model) View() string {
	status := "ready"
	if m.waiting {
		status = m.spinner.View() + " thinking..."
	}

	return m.theme.header.Render("Newapp chat") + "\n" +
		m.timeline.View() + "\n" +
		m.input.View() + "\n" +
		m.theme.footer.Render(status+"  ·  esc to quit")
}

func openURL(rawURL string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL).Start()
	default:
		return exec.Command("xdg-open", rawURL).Start()
	}
}

func main() {
	cfg := newapp.NewConfig().
		WithLauncher(newapp.NewLinkMapsLauncher(openURL))

	orch := newapp.NewOrchestrator(cfg)

	updates := make(chan tea.Msg, 64)
	orch.Subscribe(func(msg models.ChatMessage) {
		// Subscribers must not block message chains. If the event loop has
		// stopped draining, drop the update rather than stall the orchestrator.
		select {
		case updates <- chatMsg(msg):
		default:
		}
	})

	p := tea.NewProgram(newModel(orch, updates), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "newapp-tui: %v\n", err)
		os.Exit(1)
	}
}
