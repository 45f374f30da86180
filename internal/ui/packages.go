package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/normalize"
)

type packagesState struct {
	loading  bool
	loaded   bool
	packages []normalize.Package
	cursor   int
}

type myPackagesMsg struct {
	resp *gateway.MyPackagesResponse
	err  error
}

func myPackagesCmd(ctx context.Context, client *gateway.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.MyPackages(ctx)
		return myPackagesMsg{resp: resp, err: err}
	}
}

func (m *Model) enterPackages() tea.Cmd {
	if m.packs.loaded || m.packs.loading {
		return nil
	}
	m.packs.loading = true
	return myPackagesCmd(m.ctx, m.client)
}

func (m Model) handleMyPackages(msg myPackagesMsg) (tea.Model, tea.Cmd) {
	m.packs.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.packs.loaded = true
	m.packs.packages = normalize.Packages(msg.resp.Packages)
	m.packs.cursor = 0
	return m, nil
}

func (m Model) handlePackagesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.packs.cursor > 0 {
			m.packs.cursor--
		}
	case "down", "j":
		if m.packs.cursor < len(m.packs.packages)-1 {
			m.packs.cursor++
		}
	case "R":
		m.packs.loaded = false
		m.packs.loading = true
		return m, myPackagesCmd(m.ctx, m.client)
	}
	return m, nil
}

func (m Model) renderPackages() string {
	p := m.packs
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Paket aktif"))
	b.WriteString("\n\n")

	if p.loading {
		b.WriteString(m.styles.MutedText.Render("memuat..."))
		return b.String()
	}
	if len(p.packages) == 0 {
		b.WriteString(m.styles.MutedText.Render("Tidak ada paket aktif."))
		return b.String()
	}

	for i, pkg := range p.packages {
		header := fmt.Sprintf("%s (%s/%s)", pkg.Name, orDash(pkg.SubscriptionType), orDash(pkg.Domain))
		if i == p.cursor {
			b.WriteString(m.styles.Selected.Render("> " + header))
		} else {
			b.WriteString("  " + header)
		}
		b.WriteString("\n")
	}

	pkg := p.packages[p.cursor]
	b.WriteString("\n")
	b.WriteString(m.styles.AccentText.Render("Kuota"))
	b.WriteString("\n")
	if len(pkg.Benefits) == 0 {
		b.WriteString(m.styles.MutedText.Render("  (tidak ada rincian)"))
		b.WriteString("\n")
	}
	for _, benefit := range pkg.Benefits {
		b.WriteString("  " + benefit + "\n")
	}
	if pkg.FamilyCode != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("family " + pkg.FamilyCode))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("R muat ulang"))
	return b.String()
}
