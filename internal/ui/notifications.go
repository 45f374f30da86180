package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/normalize"
	"github.com/adimsa/sinyal/internal/readstate"
)

type notifState struct {
	loading bool
	loaded  bool
	list    []normalize.Notification
	overlay readstate.Overlay
	cursor  int
	detail  string
}

type notificationsMsg struct {
	raw json.RawMessage
	err error
}

type notifDetailMsg struct {
	raw json.RawMessage
	err error
}

type markReadMsg struct {
	serverErr error
}

func notificationsCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.Notifications(ctx)
		return notificationsMsg{raw: raw, err: err}
	}
}

func notifDetailCmd(ctx context.Context, client *gateway.Client, id string) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.NotificationDetail(ctx, id)
		return notifDetailMsg{raw: raw, err: err}
	}
}

// markAllReadCmd attempts the server-side flag. A failure is reported but
// never blocks the local overlay update.
func markAllReadCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		_, err := client.MarkAllNotificationsRead(ctx)
		return markReadMsg{serverErr: err}
	}
}

func (m *Model) enterNotifications() tea.Cmd {
	if m.notif.loaded || m.notif.loading {
		return nil
	}
	m.notif.loading = true
	return notificationsCmd(m.ctx, m.client)
}

func (m Model) handleNotifications(msg notificationsMsg) (tea.Model, tea.Cmd) {
	m.notif.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.notif.loaded = true
	m.notif.overlay = readstate.Load(m.readStatePath)
	m.notif.list = m.notif.overlay.Apply(normalize.Notifications(msg.raw))
	m.notif.cursor = 0
	m.notif.detail = ""
	return m, nil
}

func (m Model) handleMarkRead(msg markReadMsg) (tea.Model, tea.Cmd) {
	if m.notif.overlay == nil {
		m.notif.overlay = readstate.Load(m.readStatePath)
	}
	ids := make([]string, 0, len(m.notif.list))
	for _, n := range m.notif.list {
		if n.ID != "" {
			ids = append(ids, n.ID)
		}
	}
	m.notif.overlay.Add(ids...)
	readstate.Save(m.readStatePath, m.notif.overlay)
	m.notif.list = m.notif.overlay.Apply(m.notif.list)

	if msg.serverErr != nil {
		m.setStatus("Ditandai dibaca secara lokal (server menolak: " + msg.serverErr.Error() + ")")
	} else {
		m.setStatus("Semua notifikasi ditandai dibaca.")
	}
	return m, nil
}

func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := &m.notif
	switch msg.String() {
	case "up", "k":
		if n.cursor > 0 {
			n.cursor--
		}
		n.detail = ""
	case "down", "j":
		if n.cursor < len(n.list)-1 {
			n.cursor++
		}
		n.detail = ""
	case "enter":
		if len(n.list) == 0 {
			return m, nil
		}
		item := n.list[n.cursor]
		if item.ID == "" {
			n.detail = item.Body
			return m, nil
		}
		return m, notifDetailCmd(m.ctx, m.client, item.ID)
	case "m":
		if len(n.list) == 0 {
			return m, nil
		}
		return m, markAllReadCmd(m.ctx, m.client)
	case "R":
		n.loaded = false
		n.loading = true
		return m, notificationsCmd(m.ctx, m.client)
	case "esc":
		n.detail = ""
	}
	return m, nil
}

func (m Model) handleNotifDetail(msg notifDetailMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.notif.detail = indentJSON(msg.raw)
	return m, nil
}

func (m Model) renderNotifications() string {
	n := m.notif
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Notifikasi"))
	b.WriteString("\n\n")

	if n.loading {
		b.WriteString(m.styles.MutedText.Render("memuat..."))
		return b.String()
	}
	if len(n.list) == 0 {
		b.WriteString(m.styles.MutedText.Render("Inbox kosong."))
		return b.String()
	}

	limit := m.contentHeight() - 4
	if n.detail != "" {
		limit = limit / 2
	}
	start := hotWindowStartLen(len(n.list), n.cursor, limit)
	for i := start; i < len(n.list) && i < start+limit; i++ {
		item := n.list[i]
		marker := m.styles.WarningText.Render("●")
		if item.Read {
			marker = m.styles.MutedText.Render("○")
		}
		line := fmt.Sprintf("%s %-44s %s", marker, truncate(item.Title, 44), m.styles.MutedText.Render(item.Timestamp))
		if i == n.cursor {
			b.WriteString(m.styles.Selected.Render(">") + " " + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if n.detail != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.AccentText.Render("Detail"))
		b.WriteString("\n")
		b.WriteString(n.detail)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("enter detail · m tandai semua dibaca · R muat ulang"))
	return b.String()
}
