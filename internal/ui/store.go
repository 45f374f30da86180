package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/normalize"
)

type storeMode int

const (
	storeFamilies storeMode = iota
	storeOptions
	storeHot
	storeResult
)

type storeState struct {
	mode    storeMode
	loading bool

	families  []normalize.Family
	famCursor int

	family    normalize.Family
	options   []normalize.StoreItem
	optCursor int

	hotWhich  int
	hotItems  []normalize.HotItem
	hotCursor int

	result string
	prompt *purchasePrompt
}

func newStoreState() storeState {
	return storeState{}
}

// payKind enumerates the purchase rails offered in the payment prompt.
type payKind int

const (
	payBalance payKind = iota
	payBalanceDecoyV1
	payBalanceDecoyV2
	payQris
	payQrisDecoy
	payQrisDecoy0
	payDana
	payShopeePay
	payGopay
	payOvo
	payRepeat
	payFamilyLoop
)

type payMethod struct {
	kind  payKind
	label string
}

var basePayMethods = []payMethod{
	{payBalance, "Pulsa"},
	{payBalanceDecoyV1, "Pulsa + decoy v1"},
	{payBalanceDecoyV2, "Pulsa + decoy v2"},
	{payQris, "QRIS"},
	{payQrisDecoy, "QRIS + decoy (qris)"},
	{payQrisDecoy0, "QRIS + decoy (qris0)"},
	{payDana, "E-wallet DANA"},
	{payShopeePay, "E-wallet SHOPEEPAY"},
	{payGopay, "E-wallet GOPAY"},
	{payOvo, "E-wallet OVO"},
	{payRepeat, "Beli berulang (pulsa)"},
}

type promptStage int

const (
	promptPickMethod promptStage = iota
	promptAmount
	promptWallet
	promptRepeat
	promptLoop
	promptBusy
)

// purchasePrompt is the modal payment flow over one store item.
type purchasePrompt struct {
	item       normalize.StoreItem
	familyCode string

	methods []payMethod
	cursor  int
	stage   promptStage
	kind    payKind

	amount   textinput.Model
	wallet   textinput.Model
	times    textinput.Model
	delay    textinput.Model
	tokenIdx textinput.Model
	loopFrom textinput.Model
	useDecoy bool
	focus    int
	err      string
}

func newPurchasePrompt(item normalize.StoreItem, familyCode string) *purchasePrompt {
	p := &purchasePrompt{item: item, familyCode: familyCode}
	p.methods = append(p.methods, basePayMethods...)
	if familyCode != "" {
		p.methods = append(p.methods, payMethod{payFamilyLoop, "Loop semua opsi family"})
	}

	p.amount = textinput.New()
	p.amount.Placeholder = "kosongkan = harga paket"
	p.amount.CharLimit = 10
	p.amount.Width = 24

	p.wallet = textinput.New()
	p.wallet.Placeholder = "nomor e-wallet (opsional)"
	p.wallet.CharLimit = 16
	p.wallet.Width = 24

	p.times = textinput.New()
	p.times.SetValue("2")
	p.times.CharLimit = 3
	p.times.Width = 6

	p.delay = textinput.New()
	p.delay.SetValue("5")
	p.delay.CharLimit = 4
	p.delay.Width = 6

	p.tokenIdx = textinput.New()
	p.tokenIdx.SetValue("0")
	p.tokenIdx.CharLimit = 4
	p.tokenIdx.Width = 6

	p.loopFrom = textinput.New()
	p.loopFrom.SetValue("1")
	p.loopFrom.CharLimit = 3
	p.loopFrom.Width = 6

	return p
}

type purchaseMsg struct {
	summary string
	err     error
}

type familyOptionsMsg struct {
	family normalize.Family
	raw    json.RawMessage
	err    error
}

type hotListMsg struct {
	which int
	raw   json.RawMessage
	err   error
}

func (m *Model) enterStore() tea.Cmd {
	if m.snapshot.HasOverview {
		m.shop.families = normalize.Families(m.snapshot.Overview.Families)
	}
	return nil
}

func familyDetailCmd(ctx context.Context, client *gateway.Client, family normalize.Family) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.FamilyDetail(ctx, family.Code, false)
		return familyOptionsMsg{family: family, raw: raw, err: err}
	}
}

func hotListCmd(ctx context.Context, client *gateway.Client, which int) tea.Cmd {
	return func() tea.Msg {
		var raw json.RawMessage
		var err error
		if which == 2 {
			raw, err = client.Hot2(ctx)
		} else {
			raw, err = client.Hot1(ctx)
		}
		return hotListMsg{which: which, raw: raw, err: err}
	}
}

func (m Model) handleStoreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.shop
	switch s.mode {
	case storeFamilies:
		if len(s.families) == 0 && m.snapshot.HasOverview {
			s.families = normalize.Families(m.snapshot.Overview.Families)
		}
		switch msg.String() {
		case "up", "k":
			if s.famCursor > 0 {
				s.famCursor--
			}
		case "down", "j":
			if s.famCursor < len(s.families)-1 {
				s.famCursor++
			}
		case "enter":
			if s.loading || len(s.families) == 0 {
				return m, nil
			}
			s.loading = true
			return m, familyDetailCmd(m.ctx, m.client, s.families[s.famCursor])
		case "H":
			s.loading = true
			return m, hotListCmd(m.ctx, m.client, 1)
		case "J":
			s.loading = true
			return m, hotListCmd(m.ctx, m.client, 2)
		}

	case storeOptions:
		switch msg.String() {
		case "up", "k":
			if s.optCursor > 0 {
				s.optCursor--
			}
		case "down", "j":
			if s.optCursor < len(s.options)-1 {
				s.optCursor++
			}
		case "enter":
			if len(s.options) == 0 {
				return m, nil
			}
			s.prompt = newPurchasePrompt(s.options[s.optCursor], s.family.Code)
		case "esc":
			s.mode = storeFamilies
		}

	case storeHot:
		switch msg.String() {
		case "up", "k":
			if s.hotCursor > 0 {
				s.hotCursor--
			}
		case "down", "j":
			if s.hotCursor < len(s.hotItems)-1 {
				s.hotCursor++
			}
		case "enter":
			if len(s.hotItems) == 0 {
				return m, nil
			}
			hot := s.hotItems[s.hotCursor]
			item := normalize.StoreItem{
				Title:      strings.TrimSpace(hot.VariantName + " " + hot.OptionName),
				FamilyName: hot.FamilyName,
				Price:      hot.Price,
				OptionCode: hot.OptionCode,
				Source:     normalize.SourceStore,
			}
			s.prompt = newPurchasePrompt(item, hot.FamilyCode)
		case "b":
			// Hot list 2 purchases by list index server-side.
			if s.hotWhich != 2 || len(s.hotItems) == 0 {
				return m, nil
			}
			return m, hot2PurchaseCmd(m.ctx, m.client, s.hotCursor, "BALANCE")
		case "w":
			if s.hotWhich != 2 || len(s.hotItems) == 0 {
				return m, nil
			}
			return m, hot2EwalletCmd(m.ctx, m.client, s.hotCursor, gateway.WalletDana)
		case "esc":
			s.mode = storeFamilies
		}

	case storeResult:
		if msg.String() == "esc" || msg.String() == "enter" {
			s.mode = storeFamilies
			s.result = ""
		}
	}
	return m, nil
}

func (m Model) handleFamilyOptions(msg familyOptionsMsg) (tea.Model, tea.Cmd) {
	m.shop.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.shop.family = msg.family
	m.shop.options = normalize.FamilyOptions(msg.raw, msg.family.Name)
	m.shop.optCursor = 0
	m.shop.mode = storeOptions
	return m, nil
}

func (m Model) handleHotList(msg hotListMsg) (tea.Model, tea.Cmd) {
	m.shop.loading = false
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.shop.hotWhich = msg.which
	m.shop.hotItems = normalize.HotItems(msg.raw)
	m.shop.hotCursor = 0
	m.shop.mode = storeHot
	return m, nil
}

func (m Model) handlePurchase(msg purchaseMsg) (tea.Model, tea.Cmd) {
	m.shop.prompt = nil
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.shop.result = msg.summary
	m.shop.mode = storeResult
	m.view = ViewStore
	m.setStatus("Transaksi selesai.")
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.shop.prompt
	if msg.String() == "esc" && p.stage != promptBusy {
		m.shop.prompt = nil
		return m, nil
	}

	switch p.stage {
	case promptPickMethod:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.methods)-1 {
				p.cursor++
			}
		case "enter":
			p.kind = p.methods[p.cursor].kind
			p.err = ""
			switch p.kind {
			case payRepeat:
				p.stage = promptRepeat
				p.focus = 0
				return m, p.times.Focus()
			case payFamilyLoop:
				p.stage = promptLoop
				p.focus = 0
				return m, p.loopFrom.Focus()
			default:
				p.stage = promptAmount
				return m, p.amount.Focus()
			}
		}
		return m, nil

	case promptAmount:
		if msg.String() == "enter" {
			override, ok := parsePromptInt(p.amount.Value(), 0)
			if !ok {
				p.err = "Nominal harus angka."
				return m, nil
			}
			p.amount.Blur()
			if isEwallet(p.kind) {
				p.stage = promptWallet
				return m, p.wallet.Focus()
			}
			p.stage = promptBusy
			return m, m.purchaseCmd(p, override, "")
		}
		var cmd tea.Cmd
		p.amount, cmd = p.amount.Update(msg)
		return m, cmd

	case promptWallet:
		if msg.String() == "enter" {
			override, _ := parsePromptInt(p.amount.Value(), 0)
			p.wallet.Blur()
			p.stage = promptBusy
			return m, m.purchaseCmd(p, override, strings.TrimSpace(p.wallet.Value()))
		}
		var cmd tea.Cmd
		p.wallet, cmd = p.wallet.Update(msg)
		return m, cmd

	case promptRepeat:
		switch msg.String() {
		case "tab":
			p.focus = (p.focus + 1) % 3
			m.focusRepeatInput(p)
			return m, nil
		case "d":
			p.useDecoy = !p.useDecoy
			return m, nil
		case "enter":
			times, okT := parsePromptInt(p.times.Value(), 1)
			delay, okD := parsePromptInt(p.delay.Value(), 0)
			tokenIdx, okI := parsePromptInt(p.tokenIdx.Value(), 0)
			if !okT || !okD || !okI || times < 1 {
				p.err = "Parameter pengulangan tidak valid."
				return m, nil
			}
			p.stage = promptBusy
			return m, repeatPurchaseCmd(m.ctx, m.client, p.item, times, delay, p.useDecoy, tokenIdx)
		}
		var cmd tea.Cmd
		switch p.focus {
		case 0:
			p.times, cmd = p.times.Update(msg)
		case 1:
			p.delay, cmd = p.delay.Update(msg)
		default:
			p.tokenIdx, cmd = p.tokenIdx.Update(msg)
		}
		return m, cmd

	case promptLoop:
		switch msg.String() {
		case "tab":
			p.focus = (p.focus + 1) % 2
			if p.focus == 0 {
				p.delay.Blur()
				return m, p.loopFrom.Focus()
			}
			p.loopFrom.Blur()
			return m, p.delay.Focus()
		case "enter":
			start, okS := parsePromptInt(p.loopFrom.Value(), 1)
			delay, okD := parsePromptInt(p.delay.Value(), 0)
			if !okS || !okD || start < 1 {
				p.err = "Parameter loop tidak valid."
				return m, nil
			}
			p.stage = promptBusy
			return m, familyLoopCmd(m.ctx, m.client, p.familyCode, start, delay)
		}
		var cmd tea.Cmd
		if p.focus == 0 {
			p.loopFrom, cmd = p.loopFrom.Update(msg)
		} else {
			p.delay, cmd = p.delay.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) focusRepeatInput(p *purchasePrompt) {
	p.times.Blur()
	p.delay.Blur()
	p.tokenIdx.Blur()
	switch p.focus {
	case 0:
		p.times.Focus()
	case 1:
		p.delay.Focus()
	default:
		p.tokenIdx.Focus()
	}
}

func isEwallet(kind payKind) bool {
	switch kind {
	case payDana, payShopeePay, payGopay, payOvo:
		return true
	}
	return false
}

func walletMethodFor(kind payKind) gateway.WalletMethod {
	switch kind {
	case payShopeePay:
		return gateway.WalletShopeePay
	case payGopay:
		return gateway.WalletGopay
	case payOvo:
		return gateway.WalletOvo
	default:
		return gateway.WalletDana
	}
}

// parsePromptInt parses a prompt field; empty input falls back to def.
func parsePromptInt(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (m Model) purchaseCmd(p *purchasePrompt, override int, walletNumber string) tea.Cmd {
	ctx, client, item := m.ctx, m.client, p.item
	kind := p.kind
	return func() tea.Msg {
		switch kind {
		case payBalance, payBalanceDecoyV1, payBalanceDecoyV2:
			mode := gateway.BalanceNormal
			if kind == payBalanceDecoyV1 {
				mode = gateway.BalanceDecoyV1
			} else if kind == payBalanceDecoyV2 {
				mode = gateway.BalanceDecoyV2
			}
			resp, err := client.PurchaseBalance(ctx, item.OptionCode, item.Price, mode, override)
			if err != nil {
				return purchaseMsg{err: err}
			}
			return purchaseMsg{summary: balanceSummary(item, resp)}

		case payQris, payQrisDecoy, payQrisDecoy0:
			mode := gateway.QrisNormal
			if kind == payQrisDecoy {
				mode = gateway.QrisDecoy
			} else if kind == payQrisDecoy0 {
				mode = gateway.QrisDecoy0
			}
			resp, err := client.PurchaseQris(ctx, item.OptionCode, item.Price, mode, override)
			if err != nil {
				return purchaseMsg{err: err}
			}
			return purchaseMsg{summary: qrisSummary(item, resp)}

		default:
			resp, err := client.PurchaseEwallet(ctx, item.OptionCode, walletMethodFor(kind), walletNumber, item.Price, override)
			if err != nil {
				return purchaseMsg{err: err}
			}
			return purchaseMsg{summary: balanceSummary(item, resp)}
		}
	}
}

func repeatPurchaseCmd(ctx context.Context, client *gateway.Client, item normalize.StoreItem, times, delay int, useDecoy bool, tokenIdx int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.PurchaseRepeatBalance(ctx, item.OptionCode, times, delay, useDecoy, tokenIdx)
		if err != nil {
			return purchaseMsg{err: err}
		}
		summary := fmt.Sprintf("%s\n\nPembelian berulang: %d dari %d berhasil.", item.Title, resp.SuccessCount, times)
		return purchaseMsg{summary: summary}
	}
}

func hot2PurchaseCmd(ctx context.Context, client *gateway.Client, index int, method string) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.PurchaseHot2(ctx, index, method)
		if err != nil {
			return purchaseMsg{err: err}
		}
		return purchaseMsg{summary: "Beli cepat hot 2\n\n" + indentJSON(raw)}
	}
}

func hot2EwalletCmd(ctx context.Context, client *gateway.Client, index int, method gateway.WalletMethod) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.PurchaseHot2Ewallet(ctx, index, method, "")
		if err != nil {
			return purchaseMsg{err: err}
		}
		return purchaseMsg{summary: "Beli cepat hot 2 (" + string(method) + ")\n\n" + indentJSON(raw)}
	}
}

func familyLoopCmd(ctx context.Context, client *gateway.Client, familyCode string, start, delay int) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.PurchaseFamilyLoop(ctx, familyCode, start, delay)
		if err != nil {
			return purchaseMsg{err: err}
		}
		summary := fmt.Sprintf("Loop family %s: %d dari %d berhasil.", familyCode, resp.SuccessCount, resp.TotalAttempted)
		return purchaseMsg{summary: summary}
	}
}

func balanceSummary(item normalize.StoreItem, resp *gateway.PurchaseResponse) string {
	status := "GAGAL"
	if resp.Success {
		status = "BERHASIL"
	}
	return fmt.Sprintf("%s\n\nStatus: %s\n\n%s", item.Title, status, indentJSON(resp.Result))
}

func qrisSummary(item normalize.StoreItem, resp *gateway.QrisResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nTransaksi QRIS: %s\n", item.Title, orDash(resp.TransactionID))
	if resp.QrisURL != "" {
		fmt.Fprintf(&b, "URL: %s\n", resp.QrisURL)
	}
	if resp.QrisCode != "" {
		fmt.Fprintf(&b, "\nKode QRIS:\n%s\n", resp.QrisCode)
	}
	return b.String()
}

func (m Model) renderStore() string {
	s := m.shop
	if s.prompt != nil {
		return m.renderPrompt(s.prompt)
	}

	var b strings.Builder
	switch s.mode {
	case storeFamilies:
		families := s.families
		if len(families) == 0 && m.snapshot.HasOverview {
			families = normalize.Families(m.snapshot.Overview.Families)
		}
		b.WriteString(m.styles.AccentText.Render("Family paket"))
		b.WriteString("\n\n")
		if len(families) == 0 {
			b.WriteString(m.styles.MutedText.Render("Katalog kosong. Tekan r untuk memuat ulang."))
		}
		b.WriteString(m.renderFamilyList(families, s.famCursor))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("enter buka · H hot list 1 · J hot list 2"))

	case storeOptions:
		b.WriteString(m.styles.AccentText.Render("Opsi " + orDash(s.family.Name)))
		b.WriteString("\n\n")
		b.WriteString(m.renderItemList(s.options, s.optCursor))
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("enter beli · esc kembali"))

	case storeHot:
		b.WriteString(m.styles.AccentText.Render(fmt.Sprintf("Hot list %d", s.hotWhich)))
		b.WriteString("\n\n")
		for i, hot := range visibleHotWindow(s.hotItems, s.hotCursor, m.contentHeight()-4) {
			idx := i + hotWindowStart(s.hotItems, s.hotCursor, m.contentHeight()-4)
			line := fmt.Sprintf("%-40s %12s", truncate(hot.FamilyName+" "+hot.OptionName, 40), formatRupiah(int64(hot.Price)))
			if idx == s.hotCursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		hint := "enter beli · esc kembali"
		if s.hotWhich == 2 {
			hint = "enter beli · b beli cepat pulsa · w beli cepat DANA · esc kembali"
		}
		b.WriteString(m.styles.MutedText.Render(hint))

	case storeResult:
		b.WriteString(m.styles.AccentText.Render("Hasil transaksi"))
		b.WriteString("\n\n")
		b.WriteString(s.result)
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("esc kembali"))
	}

	if s.loading {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("memuat..."))
	}
	return b.String()
}

func (m Model) renderFamilyList(families []normalize.Family, cursor int) string {
	var b strings.Builder
	limit := m.contentHeight() - 4
	start := hotWindowStartLen(len(families), cursor, limit)
	for i := start; i < len(families) && i < start+limit; i++ {
		line := fmt.Sprintf("%-40s %s", truncate(families[i].Name, 40), m.styles.MutedText.Render(families[i].Code))
		if i == cursor {
			b.WriteString(m.styles.Selected.Render("> " + truncate(families[i].Name, 40)))
			b.WriteString(" " + m.styles.MutedText.Render(families[i].Code))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderItemList(items []normalize.StoreItem, cursor int) string {
	var b strings.Builder
	limit := m.contentHeight() - 4
	start := hotWindowStartLen(len(items), cursor, limit)
	for i := start; i < len(items) && i < start+limit; i++ {
		item := items[i]
		line := fmt.Sprintf("%-44s %-12s %12s", truncate(item.Title, 44), truncate(item.Validity, 12), formatRupiah(int64(item.Price)))
		if i == cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// hotWindowStartLen keeps the cursor inside a window of limit rows.
func hotWindowStartLen(n, cursor, limit int) int {
	if limit < 1 {
		limit = 1
	}
	if n <= limit {
		return 0
	}
	start := cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start > n-limit {
		start = n - limit
	}
	return start
}

func hotWindowStart(items []normalize.HotItem, cursor, limit int) int {
	return hotWindowStartLen(len(items), cursor, limit)
}

func visibleHotWindow(items []normalize.HotItem, cursor, limit int) []normalize.HotItem {
	if limit < 1 {
		limit = 1
	}
	start := hotWindowStart(items, cursor, limit)
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (m Model) renderPrompt(p *purchasePrompt) string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Beli: " + p.item.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s · %s\n\n", orDash(p.item.FamilyName), formatRupiah(int64(p.item.Price))))

	switch p.stage {
	case promptPickMethod:
		for i, method := range p.methods {
			if i == p.cursor {
				b.WriteString(m.styles.Selected.Render("> " + method.label))
			} else {
				b.WriteString("  " + method.label)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("enter pilih · esc batal"))

	case promptAmount:
		b.WriteString("Nominal pengganti (opsional):\n")
		b.WriteString(p.amount.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("enter lanjut · esc batal"))

	case promptWallet:
		b.WriteString("Nomor e-wallet:\n")
		b.WriteString(p.wallet.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.MutedText.Render("enter beli · esc batal"))

	case promptRepeat:
		b.WriteString(fmt.Sprintf("Berapa kali: %s\n", p.times.View()))
		b.WriteString(fmt.Sprintf("Jeda (detik): %s\n", p.delay.View()))
		b.WriteString(fmt.Sprintf("Token idx: %s\n", p.tokenIdx.View()))
		decoy := "tidak"
		if p.useDecoy {
			decoy = "ya"
		}
		b.WriteString(fmt.Sprintf("Decoy: %s\n\n", decoy))
		b.WriteString(m.styles.MutedText.Render("tab pindah · d decoy · enter jalankan · esc batal"))

	case promptLoop:
		b.WriteString(fmt.Sprintf("Mulai dari opsi ke: %s\n", p.loopFrom.View()))
		b.WriteString(fmt.Sprintf("Jeda (detik): %s\n\n", p.delay.View()))
		b.WriteString(m.styles.MutedText.Render("tab pindah · enter jalankan · esc batal"))

	case promptBusy:
		b.WriteString(m.styles.MutedText.Render("memproses transaksi..."))
	}

	if p.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.DangerText.Render(p.err))
	}
	return b.String()
}
