package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
)

type loginStage int

const (
	stageNumber loginStage = iota
	stageOTP
	stagePickUser
)

type loginState struct {
	stage  loginStage
	msisdn textinput.Model
	otp    textinput.Model
	users  []gateway.LinkedUser
	cursor int
	busy   bool
	err    string
}

func newLoginState() loginState {
	msisdn := textinput.New()
	msisdn.Placeholder = "6287800001066"
	msisdn.CharLimit = 16
	msisdn.Width = 24

	otp := textinput.New()
	otp.Placeholder = "123456"
	otp.CharLimit = 8
	otp.Width = 12

	return loginState{msisdn: msisdn, otp: otp}
}

type otpRequestedMsg struct {
	msisdn string
	resp   *gateway.OTPResponse
	err    error
}

type loggedInMsg struct {
	resp *gateway.LoginResponse
	err  error
}

type usersMsg struct {
	users []gateway.LinkedUser
	err   error
}

func requestOTPCmd(ctx context.Context, client *gateway.Client, msisdn string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.RequestOTP(ctx, msisdn)
		return otpRequestedMsg{msisdn: msisdn, resp: resp, err: err}
	}
}

func submitOTPCmd(ctx context.Context, client *gateway.Client, msisdn, otp string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SubmitOTP(ctx, msisdn, otp)
		return loggedInMsg{resp: resp, err: err}
	}
}

func listUsersCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := client.ListUsers(ctx)
		return usersMsg{users: users, err: err}
	}
}

func selectUserCmd(ctx context.Context, client *gateway.Client, number int64) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.SelectUser(ctx, number)
		return loggedInMsg{resp: resp, err: err}
	}
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.login.stage {
	case stageNumber:
		switch msg.String() {
		case "enter":
			number := strings.TrimSpace(m.login.msisdn.Value())
			if number == "" {
				m.login.err = "Nomor tidak boleh kosong."
				return m, nil
			}
			if m.login.busy {
				return m, nil
			}
			m.login.busy = true
			m.login.err = ""
			return m, requestOTPCmd(m.ctx, m.client, number)
		case "tab":
			// Skip OTP request and pick from already-linked accounts.
			m.login.busy = true
			m.login.err = ""
			return m, listUsersCmd(m.ctx, m.client)
		}
		var cmd tea.Cmd
		m.login.msisdn, cmd = m.login.msisdn.Update(msg)
		return m, cmd

	case stageOTP:
		switch msg.String() {
		case "enter":
			code := strings.TrimSpace(m.login.otp.Value())
			if code == "" {
				m.login.err = "Kode OTP tidak boleh kosong."
				return m, nil
			}
			if m.login.busy {
				return m, nil
			}
			m.login.busy = true
			m.login.err = ""
			return m, submitOTPCmd(m.ctx, m.client, strings.TrimSpace(m.login.msisdn.Value()), code)
		case "esc":
			m.login.stage = stageNumber
			m.login.err = ""
			return m, m.login.msisdn.Focus()
		}
		var cmd tea.Cmd
		m.login.otp, cmd = m.login.otp.Update(msg)
		return m, cmd

	case stagePickUser:
		switch msg.String() {
		case "up", "k":
			if m.login.cursor > 0 {
				m.login.cursor--
			}
		case "down", "j":
			if m.login.cursor < len(m.login.users)-1 {
				m.login.cursor++
			}
		case "enter":
			if m.login.busy || len(m.login.users) == 0 {
				return m, nil
			}
			m.login.busy = true
			m.login.err = ""
			return m, selectUserCmd(m.ctx, m.client, m.login.users[m.login.cursor].Number)
		case "esc":
			m.login.stage = stageNumber
			m.login.err = ""
			return m, m.login.msisdn.Focus()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleOTPRequested(msg otpRequestedMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.err = msg.err.Error()
		return m, nil
	}
	m.login.stage = stageOTP
	m.login.msisdn.Blur()
	m.login.otp.SetValue("")
	return m, m.login.otp.Focus()
}

func (m Model) handleLoggedIn(msg loggedInMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.err = msg.err.Error()
		return m, nil
	}
	user := msg.resp.ActiveUser
	m.user = &user
	m.view = ViewHome
	m.store.Reset()
	m.login.otp.Blur()
	m.login.msisdn.Blur()
	model, cmd := m.startRefresh()
	return model, cmd
}

func (m Model) handleUsers(msg usersMsg) (tea.Model, tea.Cmd) {
	m.login.busy = false
	if msg.err != nil {
		m.login.err = msg.err.Error()
		return m, nil
	}
	if len(msg.users) == 0 {
		m.login.err = "Belum ada akun tersimpan."
		return m, nil
	}
	m.login.stage = stagePickUser
	m.login.users = msg.users
	m.login.cursor = 0
	m.login.msisdn.Blur()
	return m, nil
}

func (m Model) renderLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("sinyal"))
	b.WriteString("\n\n")

	switch m.login.stage {
	case stageNumber:
		b.WriteString("Nomor (628...):\n")
		b.WriteString(m.login.msisdn.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("enter kirim OTP · tab pilih akun tersimpan · ctrl+c keluar"))
	case stageOTP:
		b.WriteString(fmt.Sprintf("OTP terkirim ke %s.\n", m.login.msisdn.Value()))
		b.WriteString("Kode OTP:\n")
		b.WriteString(m.login.otp.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("enter verifikasi · esc kembali"))
	case stagePickUser:
		b.WriteString("Pilih akun:\n\n")
		for i, u := range m.login.users {
			line := fmt.Sprintf("%d (%s)", u.Number, orDash(u.SubscriptionType))
			if u.IsActive {
				line += " *"
			}
			if i == m.login.cursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("enter pilih · esc kembali"))
	}

	if m.login.busy {
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("menghubungi gateway..."))
	}
	if m.login.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.DangerText.Render(m.login.err))
	}
	return b.String()
}
