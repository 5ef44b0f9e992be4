package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	stageActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	stageDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stageFailedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// stageMsg moves the checklist on to a new step.
type stageMsg string

type stagesDoneMsg struct {
	err error
}

// stageModel renders finished steps above the one in progress.
type stageModel struct {
	spinner  spinner.Model
	finished []string
	current  string
	task     tea.Cmd
	err      error
	done     bool
}

func newStageModel(task tea.Cmd) stageModel {
	return stageModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(stageActiveStyle)),
		task:    task,
	}
}

func (m stageModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.task)
}

func (m stageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stageMsg:
		if m.current != "" {
			m.finished = append(m.finished, m.current)
		}
		m.current = string(msg)
		return m, nil
	case stagesDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m stageModel) View() string {
	var b strings.Builder
	for _, stage := range m.finished {
		b.WriteString(stageDoneStyle.Render("✓") + " " + stage + "\n")
	}
	if m.current == "" {
		return b.String()
	}

	switch {
	case !m.done:
		b.WriteString(m.spinner.View() + " " + m.current + "\n")
	case m.err != nil:
		b.WriteString(stageFailedStyle.Render("✗") + " " + m.current + "\n")
	default:
		b.WriteString(stageDoneStyle.Render("✓") + " " + m.current + "\n")
	}
	return b.String()
}

// runStages runs task while rendering each stage it reports. Without a
// terminal the stages are printed as plain lines.
func runStages(ctx context.Context, output io.Writer, interactive bool, task func(ctx context.Context, report func(stage string)) error) error {
	if !interactive {
		return task(ctx, func(stage string) {
			_, _ = fmt.Fprintln(output, stage)
		})
	}

	var p *tea.Program
	report := func(stage string) {
		p.Send(stageMsg(stage))
	}
	taskCmd := func() tea.Msg {
		return stagesDoneMsg{err: task(ctx, report)}
	}

	p = tea.NewProgram(
		newStageModel(taskCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(stageModel)
	if !ok {
		return fmt.Errorf("unexpected final stage model type %T", finalModel)
	}

	return result.err
}
