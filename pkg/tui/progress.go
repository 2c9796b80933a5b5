package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f-s-p/volinstall/pkg/installer"
)

// maxVisibleEvents limits the scrollback shown in the progress view.
const maxVisibleEvents = 12

// progressMsg wraps a runner progress event for the bubbletea loop.
type progressMsg installer.ProgressEvent

// doneMsg signals the run finished.
type doneMsg struct {
	report *installer.Report
	err    error
}

// progressModel renders an install run as it happens.
type progressModel struct {
	spinner  spinner.Model
	bar      progress.Model
	events   []installer.ProgressEvent
	stage    installer.Stage
	ch       chan installer.ProgressEvent
	cancel   context.CancelFunc
	report   *installer.Report
	err      error
	percent  int
	done     bool
	quitting bool
}

func newProgressModel(ch chan installer.ProgressEvent, cancel context.CancelFunc) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return progressModel{
		spinner: s,
		bar:     p,
		ch:      ch,
		cancel:  cancel,
	}
}

// Init starts the spinner and event pump.
func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

// waitForEvent delivers the next runner event to the loop.
func (m progressModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.ch
		if !ok {
			return nil
		}
		return progressMsg(ev)
	}
}

// Update handles messages.
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.cancel()
			return m, nil
		}
		return m, nil

	case progressMsg:
		m.events = append(m.events, installer.ProgressEvent(msg))
		if msg.Stage != "" {
			m.stage = msg.Stage
		}
		if msg.Percent >= 0 {
			m.percent = msg.Percent
		}
		return m, m.waitForEvent()

	case doneMsg:
		m.done = true
		m.report = msg.report
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the progress display.
func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("volinstall"))
	b.WriteString("\n")

	events := m.events
	if len(events) > maxVisibleEvents {
		events = events[len(events)-maxVisibleEvents:]
	}
	for _, ev := range events {
		if ev.IsError {
			b.WriteString(ErrorStyle.Render("  ✗ " + ev.Message))
		} else {
			b.WriteString("  " + ev.Message)
		}
		b.WriteString("\n")
	}

	if !m.done && !m.quitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		if m.stage != "" {
			b.WriteString(InfoStyle.Render(m.stage.DisplayName()))
			b.WriteString(" ")
		}
		b.WriteString(m.bar.ViewAs(float64(m.percent) / 100))
		b.WriteString("\n")
	}

	if m.quitting {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Cancelling..."))
		b.WriteString("\n")
	}

	return b.String()
}

// RunInstall executes the runner inside the progress view and returns its
// report. Key q or ctrl+c cancels the run between bundle installs.
func RunInstall(ctx context.Context, runner *installer.Runner) (*installer.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan installer.ProgressEvent, 64)
	model := newProgressModel(ch, cancel)
	program := tea.NewProgram(model)

	go func() {
		report, err := runner.Run(ctx, func(ev installer.ProgressEvent) {
			ch <- ev
		})
		close(ch)
		program.Send(doneMsg{report: report, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("progress view failed: %w", err)
	}

	m, ok := final.(progressModel)
	if !ok || m.report == nil {
		return nil, fmt.Errorf("install run did not complete")
	}

	return m.report, m.err
}
