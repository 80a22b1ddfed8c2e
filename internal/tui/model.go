package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// typeDelay is the fixed per-character delay of the reply reveal.
const typeDelay = 20 * time.Millisecond

type replyMsg struct {
	thread string
	text   string
	err    error
}

type typeTickMsg struct{}

// Model is the Bubble Tea model for the chat client.
type Model struct {
	client   *Client
	threads  *Threads
	input    textinput.Model
	viewport viewport.Model
	status   string
	ready    bool
	waiting  bool

	// reply reveal state
	typing  bool
	pending []rune
	shown   int
}

// New creates a new TUI model instance.
func New(client *Client) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type your message..."
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		client:   client,
		threads:  NewThreads(),
		input:    ti,
		viewport: vp,
		status:   "ctrl+n new thread, tab switch thread, enter send",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, reply and animation events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, fh := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 2 + 1 + ih + 1 // header + thread bar, status, input frame, spacer
		vh := msg.Height - reserved - fh
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-2)
		m.viewport.Height = vh
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting || m.typing {
				return m, nil
			}
			thread := m.threads.Active()
			m.threads.Append(thread, ChatMessage{Role: "user", Content: text})
			m.input.SetValue("")
			m.waiting = true
			m.status = "Thinking..."
			m.refreshViewport()
			return m, m.sendCmd(thread, text)
		case "ctrl+n":
			if m.typing {
				m.finishTyping()
			}
			name := m.threads.New()
			m.status = fmt.Sprintf("New thread %s", name)
			m.refreshViewport()
			return m, nil
		case "tab":
			if m.typing {
				m.finishTyping()
			}
			name := m.threads.Next()
			m.status = fmt.Sprintf("Thread %s", name)
			m.refreshViewport()
			return m, nil
		}

	case replyMsg:
		m.waiting = false
		text := msg.text
		if msg.err != nil {
			text = "Error: " + msg.err.Error()
		}
		if msg.thread != m.threads.Active() {
			// Reply for a background thread, no animation.
			m.threads.Append(msg.thread, ChatMessage{Role: "assistant", Content: text})
			return m, nil
		}
		m.typing = true
		m.pending = []rune(text)
		m.shown = 0
		m.status = "Thread " + m.threads.Active()
		m.refreshViewport()
		return m, typeTick()

	case typeTickMsg:
		if !m.typing {
			return m, nil
		}
		m.shown++
		if m.shown >= len(m.pending) {
			m.finishTyping()
			m.refreshViewport()
			return m, nil
		}
		m.refreshViewport()
		return m, typeTick()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the thread bar, transcript, input and status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Gemini RAG Chatbot")
	bar := m.renderThreadBar()
	chat := chatBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + bar + "\n" + chat + "\n" + input + "\n" + status
}

func (m *Model) sendCmd(thread, message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.client.Send(thread, message)
		return replyMsg{thread: thread, text: reply, err: err}
	}
}

func (m *Model) finishTyping() {
	if !m.typing {
		return
	}
	m.threads.Append(m.threads.Active(), ChatMessage{Role: "assistant", Content: string(m.pending)})
	m.typing = false
	m.pending = nil
	m.shown = 0
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.threads.Messages(m.threads.Active()) {
		if msg.Role == "user" {
			b.WriteString(userStyle.Render("You: "))
		} else {
			b.WriteString(botStyle.Render("AI: "))
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	if m.typing {
		b.WriteString(botStyle.Render("AI: "))
		b.WriteString(string(m.pending[:m.shown]))
	}
	if b.Len() == 0 {
		return "No messages yet."
	}
	return b.String()
}

func (m Model) renderThreadBar() string {
	names := m.threads.Names()
	parts := make([]string, len(names))
	for i, name := range names {
		if name == m.threads.Active() {
			parts[i] = activeThreadStyle.Render(name)
		} else {
			parts[i] = threadStyle.Render(name)
		}
	}
	return strings.Join(parts, " ")
}

func typeTick() tea.Cmd {
	return tea.Tick(typeDelay, func(time.Time) tea.Msg { return typeTickMsg{} })
}

var (
	headerStyle       = lipgloss.NewStyle().Bold(true)
	chatBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	userStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	threadStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeThreadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
