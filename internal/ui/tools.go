package ui

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
)

type toolKind int

const (
	toolValidate toolKind = iota
	toolRegister
	toolFamPlan
	toolCircle
)

var toolLabels = []string{
	"Cek status nomor (family plan)",
	"Registrasi kartu (dukcapil)",
	"Info family plan",
	"Status circle",
}

// toolsState hosts the one-off gateway utilities that do not warrant a view
// of their own.
type toolsState struct {
	cursor    int
	capturing bool
	active    toolKind
	loading   bool

	msisdn textinput.Model
	nik    textinput.Model
	kk     textinput.Model
	focus  int

	result  string
	vp      viewport.Model
	vpReady bool
}

func newToolsState() toolsState {
	msisdn := textinput.New()
	msisdn.Placeholder = "628..."
	msisdn.CharLimit = 16
	msisdn.Width = 20

	nik := textinput.New()
	nik.Placeholder = "NIK"
	nik.CharLimit = 20
	nik.Width = 24

	kk := textinput.New()
	kk.Placeholder = "nomor KK"
	kk.CharLimit = 20
	kk.Width = 24

	return toolsState{msisdn: msisdn, nik: nik, kk: kk}
}

type toolsResultMsg struct {
	title string
	raw   json.RawMessage
	err   error
}

func validateMSISDNCmd(ctx context.Context, client *gateway.Client, msisdn string) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.ValidateMSISDN(ctx, msisdn)
		return toolsResultMsg{title: "Status " + msisdn, raw: raw, err: err}
	}
}

func registerCardCmd(ctx context.Context, client *gateway.Client, body gateway.RegistrationBody) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.RegisterCard(ctx, body)
		return toolsResultMsg{title: "Registrasi " + body.MSISDN, raw: raw, err: err}
	}
}

func famPlanCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.FamilyPlan(ctx)
		return toolsResultMsg{title: "Family plan", raw: raw, err: err}
	}
}

func circleStatusCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.CircleStatus(ctx)
		return toolsResultMsg{title: "Circle", raw: raw, err: err}
	}
}

func (m *Model) resizeToolsViewport() {
	h := m.contentHeight() - 8
	if h < 3 {
		h = 3
	}
	if !m.tools.vpReady {
		m.tools.vp = viewport.New(m.width, h)
		m.tools.vpReady = true
	} else {
		m.tools.vp.Width = m.width
		m.tools.vp.Height = h
	}
	if m.tools.result != "" {
		m.tools.vp.SetContent(m.tools.result)
	}
}

func (m Model) handleToolsResult(msg toolsResultMsg) (tea.Model, tea.Cmd) {
	m.tools.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.tools.result = msg.title + "\n\n" + indentJSON(msg.raw)
	if !m.tools.vpReady {
		m.resizeToolsViewport()
	}
	m.tools.vp.SetContent(m.tools.result)
	m.tools.vp.GotoTop()
	return m, nil
}

func (m Model) handleToolsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tools
	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
		return m, nil
	case "down", "j":
		if t.cursor < len(toolLabels)-1 {
			t.cursor++
		}
		return m, nil
	case "enter":
		if t.loading {
			return m, nil
		}
		t.active = toolKind(t.cursor)
		switch t.active {
		case toolFamPlan:
			t.loading = true
			return m, famPlanCmd(m.ctx, m.client)
		case toolCircle:
			t.loading = true
			return m, circleStatusCmd(m.ctx, m.client)
		default:
			t.capturing = true
			t.focus = 0
			t.msisdn.SetValue("")
			t.nik.SetValue("")
			t.kk.SetValue("")
			return m, t.msisdn.Focus()
		}
	}

	if t.vpReady && t.result != "" {
		var cmd tea.Cmd
		t.vp, cmd = t.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleToolsInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := &m.tools
	switch msg.String() {
	case "esc":
		t.capturing = false
		t.msisdn.Blur()
		t.nik.Blur()
		t.kk.Blur()
		return m, nil
	case "tab":
		if t.active != toolRegister {
			return m, nil
		}
		t.focus = (t.focus + 1) % 3
		t.msisdn.Blur()
		t.nik.Blur()
		t.kk.Blur()
		switch t.focus {
		case 0:
			return m, t.msisdn.Focus()
		case 1:
			return m, t.nik.Focus()
		default:
			return m, t.kk.Focus()
		}
	case "enter":
		number := strings.TrimSpace(t.msisdn.Value())
		if number == "" {
			return m, nil
		}
		t.capturing = false
		t.loading = true
		t.msisdn.Blur()
		t.nik.Blur()
		t.kk.Blur()
		if t.active == toolRegister {
			body := gateway.RegistrationBody{
				MSISDN: number,
				NIK:    strings.TrimSpace(t.nik.Value()),
				KK:     strings.TrimSpace(t.kk.Value()),
			}
			return m, registerCardCmd(m.ctx, m.client, body)
		}
		return m, validateMSISDNCmd(m.ctx, m.client, number)
	}

	var cmd tea.Cmd
	switch t.focus {
	case 0:
		t.msisdn, cmd = t.msisdn.Update(msg)
	case 1:
		t.nik, cmd = t.nik.Update(msg)
	default:
		t.kk, cmd = t.kk.Update(msg)
	}
	return m, cmd
}

func (m Model) renderTools() string {
	t := m.tools
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Tools"))
	b.WriteString("\n\n")

	for i, label := range toolLabels {
		if i == t.cursor {
			b.WriteString(m.styles.Selected.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if t.capturing {
		b.WriteString("Nomor: " + t.msisdn.View())
		b.WriteString("\n")
		if t.active == toolRegister {
			b.WriteString("NIK:   " + t.nik.View())
			b.WriteString("\n")
			b.WriteString("KK:    " + t.kk.View())
			b.WriteString("\n")
			b.WriteString(m.styles.MutedText.Render("tab pindah · enter kirim · esc batal"))
		} else {
			b.WriteString(m.styles.MutedText.Render("enter cek · esc batal"))
		}
		return b.String()
	}

	if t.loading {
		b.WriteString(m.styles.MutedText.Render("memuat..."))
		return b.String()
	}
	if t.result != "" && t.vpReady {
		b.WriteString(t.vp.View())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.MutedText.Render("enter jalankan"))
	return b.String()
}
