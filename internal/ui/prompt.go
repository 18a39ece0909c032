package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/openlplink/internal/openlp"
)

// ErrCancelled is returned when the operator cancels the URL prompt.
var ErrCancelled = errors.New("url prompt cancelled")

// CheckFunc verifies that a normalized URL reaches an OpenLP remote.
type CheckFunc func(ctx context.Context, url string) error

type checkResultMsg struct {
	url string
	err error
}

type promptModel struct {
	ctx      context.Context
	check    CheckFunc
	keys     promptKeys
	styles   Styles
	input    textinput.Model
	previous string

	checking  bool
	message   string
	result    string
	cancelled bool
}

func newPromptModel(ctx context.Context, previous string, check CheckFunc, styles Styles) promptModel {
	input := textinput.New()
	input.Prompt = "URL: "
	input.Placeholder = previous
	input.CharLimit = 256
	input.Focus()

	return promptModel{
		ctx:      ctx,
		check:    check,
		keys:     defaultPromptKeys(),
		styles:   styles,
		input:    input,
		previous: previous,
	}
}

// Init implements tea.Model.
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			return m.submit()
		}
		if m.checking {
			return m, nil
		}

	case checkResultMsg:
		m.checking = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Cannot connect to OpenLP at %s: %v", msg.url, msg.err)
			return m, nil
		}
		m.result = msg.url
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) submit() (tea.Model, tea.Cmd) {
	if m.checking {
		return m, nil
	}
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		raw = m.previous
	}
	if raw == "" {
		m.message = "Enter a URL (Ctrl+C to cancel)"
		return m, nil
	}

	url, err := openlp.NormalizeBaseURL(raw)
	if err != nil {
		m.message = fmt.Sprintf("Invalid URL entered (%v)", err)
		return m, nil
	}

	m.checking = true
	m.message = ""
	ctx, check := m.ctx, m.check
	return m, func() tea.Msg {
		return checkResultMsg{url: url, err: check(ctx, url)}
	}
}

// View implements tea.Model.
func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the URL for the OpenLP Remote to connect to.\n")
	if m.previous != "" {
		b.WriteString(m.styles.Hint.Render(fmt.Sprintf("(Press ENTER to use %s, Ctrl+C to cancel)", m.previous)))
	} else {
		b.WriteString(m.styles.Hint.Render("(Press Ctrl+C to cancel)"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	switch {
	case m.checking:
		b.WriteString(m.styles.Accent.Render("Checking connection..."))
		b.WriteString("\n")
	case m.message != "":
		b.WriteString(m.styles.Danger.Render(m.message))
		b.WriteString("\n")
	}
	return b.String()
}

// PromptURL asks for the OpenLP remote URL until one passes check or the
// operator cancels. previous is offered as the default.
func PromptURL(ctx context.Context, previous string, check CheckFunc, in io.Reader, out io.Writer) (string, error) {
	styles := Dracula.Styles(lipgloss.NewRenderer(out))
	model := newPromptModel(ctx, previous, check, styles)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("run url prompt: %w", err)
	}

	result, ok := final.(promptModel)
	if !ok || result.cancelled || result.result == "" {
		return "", ErrCancelled
	}
	return result.result, nil
}
