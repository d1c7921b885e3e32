package dashboard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyMsg("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{}
			handled, cmd := m.HandleKeyMsg(tt.msg)

			assert.True(t, handled)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestHandleKeyMsg_HelpToggle(t *testing.T) {
	m := Model{}

	handled, cmd := m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.True(t, m.showHelp)

	// Second press closes it again
	handled, _ = m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, handled)
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_EscClosesHelp(t *testing.T) {
	m := Model{showHelp: true}

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_EscWithoutHelp(t *testing.T) {
	m := Model{}

	// Esc means nothing outside the help overlay
	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
}

func TestHandleKeyMsg_QuitWhileHelpShown(t *testing.T) {
	m := Model{showHelp: true}

	handled, cmd := m.HandleKeyMsg(keyMsg("q"))
	assert.True(t, handled)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestHandleKeyMsg_Unhandled(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"plain letter", keyMsg("x")},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Model{}
			handled, cmd := m.HandleKeyMsg(tt.msg)

			// Unhandled keys fall through to the viewport for scrolling
			assert.False(t, handled)
			assert.Nil(t, cmd)
			assert.False(t, m.quitting)
			assert.False(t, m.showHelp)
		})
	}
}

func TestHandleKeyMsg_ViaUpdate(t *testing.T) {
	m := Model{}
	updated, cmd := m.Update(keyMsg("q"))
	mm := updated.(Model)

	assert.True(t, mm.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, "", mm.View())
}
