package skelgen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dirStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	createdStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	artifactStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// TUI drives one scaffold run with a spinner, falling back to plain output
// when animation is disabled.
type TUI struct {
	app         *App
	noAnimation bool
}

func NewTUI(app *App, noAnimation bool) *TUI {
	return &TUI{app: app, noAnimation: noAnimation}
}

func (t *TUI) Run() error {
	fmt.Printf("Scaffolding %s\n", t.app.Base())

	// When the layout is piped in, stdin belongs to the app, not bubbletea.
	if t.noAnimation || t.app.cfg.LayoutPath == "-" {
		summary, err := t.app.Execute()
		if err != nil {
			return err
		}
		fmt.Print(FormatSummary(summary))
		return nil
	}

	final, err := tea.NewProgram(newRunModel(t.app)).Run()
	if err != nil {
		return err
	}
	m := final.(runModel)
	if m.err != nil {
		return m.err
	}
	fmt.Print(FormatSummary(m.summary))
	return nil
}

type runDoneMsg struct {
	summary Summary
	err     error
}

type runModel struct {
	app     *App
	spinner spinner.Model
	done    bool
	summary Summary
	err     error
}

func newRunModel(app *App) runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return runModel{app: app, spinner: s}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		summary, err := m.app.Execute()
		return runDoneMsg{summary: summary, err: err}
	})
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runDoneMsg:
		m.done = true
		m.summary = msg.summary
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m runModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s Materializing layout...", m.spinner.View())
}

// FormatSummary renders the run result for the terminal.
func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Directories:", dirStyle, s.Dirs)
	renderList("Created:", createdStyle, s.Created)
	renderList("Skipped:", skippedStyle, s.Skipped)
	renderList("Artifacts:", artifactStyle, s.Artifacts)

	return b.String()
}
