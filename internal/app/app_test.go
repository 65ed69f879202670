package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/screens/classify"
	"github.com/dharanetra/dhara/internal/soil"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitKey_IgnoredWhileTyping(t *testing.T) {
	m := newAppModel(screen.Env{})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.True(t, isQuit(cmd), "q quits from home")

	m, _ = update(t, m, router.PushScreenMsg{Screen: classify.New(screen.Env{}, soil.KindFine)})
	_, cmd = update(t, m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	assert.False(t, isQuit(cmd), "q is input on a form")

	_, cmd = update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, isQuit(cmd))
}

func TestEsc_PopsAboveRoot(t *testing.T) {
	m := newAppModel(screen.Env{})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m, _ = update(t, m, router.PushScreenMsg{Screen: classify.New(screen.Env{}, soil.KindFine)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestView_HeaderAndHints(t *testing.T) {
	m := newAppModel(screen.Env{Project: "bridge"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	content := m.frame()
	assert.Contains(t, content, "Home")
	assert.Contains(t, content, "project bridge")
	assert.Contains(t, content, "Navigate")
}
