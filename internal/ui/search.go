package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/normalize"
)

// searchState is the quota-search view: a keyword filter over the catalog
// price list, extendable with per-family quota lookups.
type searchState struct {
	base    []normalize.StoreItem
	extras  []normalize.StoreItem
	added   map[string]bool
	indexed bool
	loading bool

	query    textinput.Model
	addInput textinput.Model
	cursor   int
}

func newSearchState() searchState {
	query := textinput.New()
	query.Placeholder = "kata kunci"
	query.CharLimit = 64
	query.Width = 32

	addInput := textinput.New()
	addInput.Placeholder = "kode family"
	addInput.CharLimit = 64
	addInput.Width = 40

	return searchState{
		query:    query,
		addInput: addInput,
		added:    map[string]bool{},
	}
}

func (s searchState) capturing() bool {
	return s.query.Focused() || s.addInput.Focused()
}

// results applies the keyword filter over the combined index.
func (s searchState) results() []normalize.StoreItem {
	keyword := strings.ToLower(strings.TrimSpace(s.query.Value()))
	combined := make([]normalize.StoreItem, 0, len(s.base)+len(s.extras))
	combined = append(combined, s.base...)
	combined = append(combined, s.extras...)
	if keyword == "" {
		return combined
	}
	var out []normalize.StoreItem
	for _, item := range combined {
		haystack := strings.ToLower(item.Title + " " + item.FamilyName)
		if strings.Contains(haystack, keyword) {
			out = append(out, item)
		}
	}
	return out
}

type searchIndexMsg struct {
	items []normalize.StoreItem
}

type familyQuotasMsg struct {
	requested string
	raw       json.RawMessage
	err       error
}

func buildSearchIndexCmd(raw json.RawMessage) tea.Cmd {
	return func() tea.Msg {
		return searchIndexMsg{items: normalize.StoreItems(raw)}
	}
}

func familyQuotasCmd(ctx context.Context, client *gateway.Client, familyCode string) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.SearchFamilyQuotas(ctx, familyCode)
		return familyQuotasMsg{requested: familyCode, raw: raw, err: err}
	}
}

func (m *Model) enterSearch() tea.Cmd {
	if m.search.indexed || !m.snapshot.HasOverview {
		return nil
	}
	return buildSearchIndexCmd(m.snapshot.Overview.Packages)
}

func (m Model) handleSearchIndex(msg searchIndexMsg) (tea.Model, tea.Cmd) {
	m.search.base = msg.items
	m.search.indexed = true
	return m, nil
}

func (m Model) handleFamilyQuotas(msg familyQuotasMsg) (tea.Model, tea.Cmd) {
	m.search.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	code, items := normalize.FamilyQuotaItems(msg.raw, msg.requested)
	if m.search.added[code] {
		return m, nil
	}
	m.search.added[code] = true
	m.search.extras = append(m.search.extras, items...)
	m.setStatus(fmt.Sprintf("Family %s ditambahkan (%d item).", code, len(items)))
	return m, nil
}

func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.search
	switch msg.String() {
	case "esc":
		s.query.Blur()
		s.addInput.Blur()
		return m, nil
	case "enter":
		if s.addInput.Focused() {
			code := strings.TrimSpace(s.addInput.Value())
			s.addInput.SetValue("")
			s.addInput.Blur()
			if code == "" || s.added[code] {
				return m, nil
			}
			s.loading = true
			return m, familyQuotasCmd(m.ctx, m.client, code)
		}
		s.query.Blur()
		s.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	if s.addInput.Focused() {
		s.addInput, cmd = s.addInput.Update(msg)
	} else {
		s.query, cmd = s.query.Update(msg)
		s.cursor = 0
	}
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.search
	results := s.results()
	switch msg.String() {
	case "/":
		return m, s.query.Focus()
	case "a":
		return m, s.addInput.Focus()
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(results)-1 {
			s.cursor++
		}
	case "enter":
		if len(results) == 0 {
			return m, nil
		}
		item := results[s.cursor]
		m.shop.prompt = newPurchasePrompt(item, "")
	}
	return m, nil
}

func (m Model) renderSearch() string {
	if m.shop.prompt != nil {
		return m.renderPrompt(m.shop.prompt)
	}

	s := m.search
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Cari kuota"))
	b.WriteString("\n\n")
	b.WriteString("Filter: " + s.query.View())
	b.WriteString("\n")
	b.WriteString("Tambah family: " + s.addInput.View())
	b.WriteString("\n\n")

	results := s.results()
	if len(results) == 0 {
		if s.indexed {
			b.WriteString(m.styles.MutedText.Render("Tidak ada hasil."))
		} else {
			b.WriteString(m.styles.MutedText.Render("Indeks belum dimuat. Tekan r di beranda."))
		}
	} else {
		limit := m.contentHeight() - 7
		start := hotWindowStartLen(len(results), s.cursor, limit)
		for i := start; i < len(results) && i < start+limit; i++ {
			item := results[i]
			tag := string(item.Source)
			line := fmt.Sprintf("%-42s %-8s %12s", truncate(item.Title, 42), tag, formatRupiah(int64(item.Price)))
			if i == s.cursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if s.loading {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("memuat family..."))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.MutedText.Render("/ filter · a tambah family · enter beli"))
	return b.String()
}
