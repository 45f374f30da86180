package ui

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
)

// historyState renders the raw transaction history in a scrollable viewport.
// The record shape is backend-defined, so no normalization is attempted.
type historyState struct {
	loading bool
	loaded  bool
	vp      viewport.Model
	vpReady bool
	content string
}

type historyMsg struct {
	raw json.RawMessage
	err error
}

func historyCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.History(ctx)
		return historyMsg{raw: raw, err: err}
	}
}

func (m *Model) enterHistory() tea.Cmd {
	if m.history.loaded || m.history.loading {
		return nil
	}
	m.history.loading = true
	return historyCmd(m.ctx, m.client)
}

func (m *Model) resizeHistoryViewport() {
	h := m.contentHeight() - 2
	if !m.history.vpReady {
		m.history.vp = viewport.New(m.width, h)
		m.history.vpReady = true
	} else {
		m.history.vp.Width = m.width
		m.history.vp.Height = h
	}
	if m.history.content != "" {
		m.history.vp.SetContent(m.history.content)
	}
}

func (m Model) handleHistory(msg historyMsg) (tea.Model, tea.Cmd) {
	m.history.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.history.loaded = true
	m.history.content = indentJSON(msg.raw)
	if !m.history.vpReady {
		m.resizeHistoryViewport()
	}
	m.history.vp.SetContent(m.history.content)
	m.history.vp.GotoTop()
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "R" {
		m.history.loaded = false
		m.history.loading = true
		return m, historyCmd(m.ctx, m.client)
	}
	if !m.history.vpReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.history.vp, cmd = m.history.vp.Update(msg)
	return m, cmd
}

func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Riwayat transaksi"))
	b.WriteString("\n")
	if m.history.loading {
		b.WriteString(m.styles.MutedText.Render("memuat..."))
		return b.String()
	}
	if !m.history.loaded {
		b.WriteString(m.styles.MutedText.Render("Belum dimuat."))
		return b.String()
	}
	if m.history.vpReady {
		b.WriteString(m.history.vp.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("j/k gulir · R muat ulang"))
	return b.String()
}
