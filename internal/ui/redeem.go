package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/normalize"
)

// redeemState shows the voucher/point catalog from the dashboard snapshot.
type redeemState struct {
	vp      viewport.Model
	vpReady bool
}

func (m *Model) resizeRedeemViewport() {
	h := m.contentHeight() - 2
	if !m.redeem.vpReady {
		m.redeem.vp = viewport.New(m.width, h)
		m.redeem.vpReady = true
	} else {
		m.redeem.vp.Width = m.width
		m.redeem.vp.Height = h
	}
}

func (m *Model) updateRedeemViewport() {
	if !m.redeem.vpReady {
		m.resizeRedeemViewport()
	}
	m.redeem.vp.SetContent(m.redeemContent())
	m.redeem.vp.GotoTop()
}

func (m Model) redeemContent() string {
	if !m.snapshot.HasOverview {
		return "Belum ada data. Tekan r untuk memuat."
	}
	categories := normalize.RedeemCategories(m.snapshot.Overview.Redeemables)
	if len(categories) == 0 {
		return "Katalog redeem kosong."
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(m.styles.AccentText.Render(cat.Name))
		if cat.HeaderDesc != "" {
			b.WriteString("  " + m.styles.MutedText.Render(cat.HeaderDesc))
		}
		b.WriteString("\n")
		for _, item := range cat.Items {
			points := "-"
			if item.HasPoints {
				points = fmt.Sprintf("%d poin", item.Points)
			}
			b.WriteString(fmt.Sprintf("  %-44s %s\n", truncate(item.Name, 44), points))
			if item.Subtitle != "" {
				b.WriteString("    " + m.styles.MutedText.Render(truncate(item.Subtitle, 60)) + "\n")
			}
			if !item.ValidUntil.IsZero() {
				b.WriteString("    " + m.styles.MutedText.Render("berlaku s.d. "+item.ValidUntil.Format("02 Jan 2006")) + "\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) handleRedeemKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.redeem.vpReady {
		return m, nil
	}
	var cmd tea.Cmd
	m.redeem.vp, cmd = m.redeem.vp.Update(msg)
	return m, cmd
}

func (m Model) renderRedeem() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Tukar poin"))
	b.WriteString("\n")
	if m.redeem.vpReady {
		b.WriteString(m.redeem.vp.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("j/k gulir"))
	return b.String()
}
