package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f-s-p/volinstall/pkg/installer"
)

func newTestModel() progressModel {
	_, cancel := context.WithCancel(context.Background())
	return newProgressModel(make(chan installer.ProgressEvent, 1), cancel)
}

func TestProgressModel_AccumulatesEvents(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(progressMsg{
		Stage:   installer.StageInstalling,
		Message: "Installing a.pkg (1/2)...",
		Percent: 40,
	})
	model := updated.(progressModel)

	require.Len(t, model.events, 1)
	assert.Equal(t, 40, model.percent)
	assert.Contains(t, model.View(), "Installing a.pkg")
}

func TestProgressModel_ShowsStageName(t *testing.T) {
	m := newTestModel()

	updated, _ := m.Update(progressMsg{
		Stage:   installer.StagePrivileges,
		Message: "Checking install privileges...",
		Percent: 5,
	})
	model := updated.(progressModel)

	assert.Equal(t, installer.StagePrivileges, model.stage)
	assert.Contains(t, model.View(), installer.StagePrivileges.DisplayName())
}

func TestProgressModel_IndeterminateKeepsPercent(t *testing.T) {
	m := newTestModel()
	m.percent = 40

	updated, _ := m.Update(progressMsg{Message: "failed", Percent: -1, IsError: true})
	model := updated.(progressModel)

	assert.Equal(t, 40, model.percent)
}

func TestProgressModel_Done(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(doneMsg{report: &installer.Report{}})
	model := updated.(progressModel)

	assert.True(t, model.done)
	require.NotNil(t, cmd)
}

func TestProgressModel_QuitCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := newProgressModel(make(chan installer.ProgressEvent, 1), cancel)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := updated.(progressModel)

	assert.True(t, model.quitting)
	assert.Error(t, ctx.Err(), "cancel function should have fired")
	assert.Contains(t, model.View(), "Cancelling")
}

func TestProgressModel_ViewTruncatesScrollback(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxVisibleEvents+5; i++ {
		updated, _ := m.Update(progressMsg{Message: "event", Percent: -1})
		m = updated.(progressModel)
	}

	view := m.View()
	assert.Equal(t, maxVisibleEvents, strings.Count(view, "event"))
}
