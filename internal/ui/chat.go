package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
	"github.com/sanghyeon0114/argue-with-ai/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	aiStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	userStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type message struct {
	role domain.Sender
	text string
}

type startedMsg struct {
	text string
	err  error
}

type turnMsg struct {
	outcome *services.TurnOutcome
	err     error
}

// ChatModel is the bubbletea surface for one reflective conversation.
type ChatModel struct {
	ctx      context.Context
	engine   *services.Engine
	appLabel string

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model

	msgs     []message
	thinking bool
	closing  bool
	hint     string
	width    int
	height   int
	ready    bool
}

// NewChatModel creates the conversation surface bound to one engine.
func NewChatModel(ctx context.Context, engine *services.Engine, appLabel string) *ChatModel {
	input := textinput.New()
	input.Placeholder = "Type your answer..."
	input.CharLimit = 200
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &ChatModel{
		ctx:      ctx,
		engine:   engine,
		appLabel: appLabel,
		input:    input,
		spin:     spin,
		thinking: true,
	}
}

// Init starts the conversation.
func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		text, err := m.engine.Start(m.ctx)
		return startedMsg{text: text, err: err}
	})
}

// Update handles input and engine replies.
func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// Leaving the surface counts as backgrounding, not finishing
			m.engine.Abandon(domain.ExitNavBar, "surface backgrounded")
			return m, tea.Quit
		case tea.KeyEnter:
			if m.thinking || m.closing {
				return m, nil
			}
			return m, m.submit(m.input.Value())
		}

	case startedMsg:
		m.thinking = false
		if msg.err != nil {
			m.hint = errStyle.Render(msg.err.Error())
			return m, tea.Quit
		}
		m.msgs = append(m.msgs, message{role: domain.SenderAI, text: msg.text})
		m.refresh()
		return m, nil

	case turnMsg:
		m.thinking = false
		m.hint = ""
		switch {
		case errors.Is(msg.err, domain.ErrInputTooShort):
			m.hint = hintStyle.Render("Say a little more than that.")
		case errors.Is(msg.err, domain.ErrConversationClosed):
			return m, tea.Quit
		case msg.err != nil:
			m.hint = errStyle.Render(msg.err.Error())
		case msg.outcome == nil:
			// Empty input, ignored
		case msg.outcome.Closed:
			m.closing = true
			return m, tea.Quit
		default:
			m.msgs = append(m.msgs, message{role: domain.SenderAI, text: msg.outcome.Text})
			m.refresh()
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *ChatModel) submit(text string) tea.Cmd {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	m.msgs = append(m.msgs, message{role: domain.SenderUser, text: trimmed})
	m.input.Reset()
	m.thinking = true
	m.refresh()

	return tea.Batch(m.spin.Tick, func() tea.Msg {
		outcome, err := m.engine.Submit(m.ctx, trimmed)
		return turnMsg{outcome: outcome, err: err}
	})
}

func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}

	var b strings.Builder
	for _, msg := range m.msgs {
		bubble := aiStyle.Render(msg.text)
		if msg.role == domain.SenderUser {
			bubble = lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, userStyle.Render(msg.text))
		}
		b.WriteString(bubble)
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// View renders the conversation.
func (m *ChatModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("A word about " + m.appLabel))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.thinking {
		b.WriteString(m.spin.View() + " thinking...")
	} else if m.hint != "" {
		b.WriteString(m.hint)
	} else {
		b.WriteString(m.input.View())
	}
	return b.String()
}
