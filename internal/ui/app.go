package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adimsa/sinyal/internal/config"
	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/prefs"
	"github.com/adimsa/sinyal/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewLogin View = iota
	ViewHome
	ViewStore
	ViewPackages
	ViewSearch
	ViewNotifications
	ViewHistory
	ViewRedeem
	ViewTools
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Client        *gateway.Client
	Store         *state.Store
	Config        *config.Config
	ThemeName     string
	PrefsPath     string
	ReadStatePath string

	// Refresh performs one all-or-nothing overview load into Store.
	Refresh func(context.Context) error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx           context.Context
	client        *gateway.Client
	store         *state.Store
	config        *config.Config
	prefsPath     string
	readStatePath string
	refresh       func(context.Context) error

	theme  Theme
	styles Styles
	view   View
	width  int
	height int
	ready  bool

	user       *gateway.ActiveUser
	snapshot   state.Snapshot
	refreshing bool

	status    string
	statusErr bool

	login    loginState
	shop     storeState
	packs    packagesState
	search   searchState
	notif    notifState
	history  historyState
	redeem   redeemState
	tools    toolsState
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:           ctx,
		client:        opts.Client,
		store:         opts.Store,
		config:        opts.Config,
		prefsPath:     prefsPath,
		readStatePath: opts.ReadStatePath,
		refresh:       opts.Refresh,
		theme:         theme,
		styles:        theme.Styles(),
		view:          ViewLogin,
	}
	m.login = newLoginState()
	m.shop = newStoreState()
	m.search = newSearchState()
	m.tools = newToolsState()
	m.login.msisdn.Focus()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewports()
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case overviewMsg:
		m.refreshing = false
		if msg.err != nil {
			m.setError(msg.err)
		} else {
			m.setStatus("Data dashboard diperbarui.")
		}
		return m, fetchSnapshotCmd(m.store)

	case otpRequestedMsg:
		return m.handleOTPRequested(msg)
	case loggedInMsg:
		return m.handleLoggedIn(msg)
	case usersMsg:
		return m.handleUsers(msg)

	case familyOptionsMsg:
		return m.handleFamilyOptions(msg)
	case hotListMsg:
		return m.handleHotList(msg)
	case purchaseMsg:
		return m.handlePurchase(msg)

	case myPackagesMsg:
		return m.handleMyPackages(msg)

	case searchIndexMsg:
		return m.handleSearchIndex(msg)
	case familyQuotasMsg:
		return m.handleFamilyQuotas(msg)

	case notificationsMsg:
		return m.handleNotifications(msg)
	case notifDetailMsg:
		return m.handleNotifDetail(msg)
	case markReadMsg:
		return m.handleMarkRead(msg)

	case historyMsg:
		return m.handleHistory(msg)

	case toolsResultMsg:
		return m.handleToolsResult(msg)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.view == ViewLogin {
		return m.renderLogin()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.view {
	case ViewHome:
		return m.renderHome()
	case ViewStore:
		return m.renderStore()
	case ViewPackages:
		return m.renderPackages()
	case ViewSearch:
		return m.renderSearch()
	case ViewNotifications:
		return m.renderNotifications()
	case ViewHistory:
		return m.renderHistory()
	case ViewRedeem:
		return m.renderRedeem()
	case ViewTools:
		return m.renderTools()
	default:
		return ""
	}
}

// handleKey processes keyboard input. Views with active text inputs capture
// everything except ctrl+c.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.view == ViewLogin {
		return m.handleLoginKey(msg)
	}
	if m.shop.prompt != nil {
		return m.handlePromptKey(msg)
	}
	if m.view == ViewSearch && m.search.capturing() {
		return m.handleSearchInputKey(msg)
	}
	if m.view == ViewTools && m.tools.capturing {
		return m.handleToolsInputKey(msg)
	}

	switch msg.String() {
	case "e":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case "r":
		return m.startRefresh()

	case "1":
		m.view = ViewHome
		return m, nil
	case "2":
		m.view = ViewStore
		return m, m.enterStore()
	case "3":
		m.view = ViewPackages
		return m, m.enterPackages()
	case "4":
		m.view = ViewSearch
		return m, m.enterSearch()
	case "5":
		m.view = ViewNotifications
		return m, m.enterNotifications()
	case "6":
		m.view = ViewHistory
		return m, m.enterHistory()
	case "7":
		m.view = ViewRedeem
		m.updateRedeemViewport()
		return m, nil
	case "8":
		m.view = ViewTools
		return m, nil
	}

	switch m.view {
	case ViewStore:
		return m.handleStoreKey(msg)
	case ViewPackages:
		return m.handlePackagesKey(msg)
	case ViewSearch:
		return m.handleSearchKey(msg)
	case ViewNotifications:
		return m.handleNotificationsKey(msg)
	case ViewHistory:
		return m.handleHistoryKey(msg)
	case ViewRedeem:
		return m.handleRedeemKey(msg)
	case ViewTools:
		return m.handleToolsKey(msg)
	}

	return m, nil
}

func (m Model) startRefresh() (Model, tea.Cmd) {
	if m.refresh == nil || m.refreshing {
		return m, nil
	}
	m.refreshing = true
	m.setStatus("Memuat data dashboard...")
	return m, refreshOverviewCmd(m.ctx, m.refresh)
}

func (m *Model) setStatus(status string) {
	m.status = status
	m.statusErr = false
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) resizeViewports() {
	m.resizeHistoryViewport()
	m.resizeRedeemViewport()
	m.resizeToolsViewport()
}

// contentHeight is the vertical space left for a view body.
func (m Model) contentHeight() int {
	h := m.height - 4
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) renderHeader() string {
	left := m.styles.Header.Render("sinyal")
	account := "belum login"
	if m.user != nil {
		account = fmt.Sprintf("%d (%s)", m.user.Number, orDash(m.user.SubscriptionType))
	}
	parts := []string{left, m.styles.Text.Render(account)}
	if m.snapshot.IsOffline() {
		parts = append(parts, m.styles.DangerText.Render("OFFLINE"))
	}
	if m.refreshing {
		parts = append(parts, m.styles.MutedText.Render("memuat..."))
	}
	return strings.Join(parts, "  ")
}

var navItems = []struct {
	key   string
	label string
	view  View
}{
	{"1", "Beranda", ViewHome},
	{"2", "Store", ViewStore},
	{"3", "Paket", ViewPackages},
	{"4", "Cari", ViewSearch},
	{"5", "Notif", ViewNotifications},
	{"6", "Riwayat", ViewHistory},
	{"7", "Redeem", ViewRedeem},
	{"8", "Tools", ViewTools},
}

func (m Model) renderNav() string {
	var parts []string
	for _, item := range navItems {
		label := fmt.Sprintf("[%s] %s", item.key, item.label)
		if m.view == item.view {
			parts = append(parts, m.styles.AccentText.Render(label))
		} else {
			parts = append(parts, m.styles.MutedText.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderStatusBar() string {
	if m.status == "" {
		return m.styles.StatusBar.Render("r refresh · T tema · ? bantuan · e keluar")
	}
	if m.statusErr {
		return m.styles.DangerText.Render(m.status)
	}
	return m.styles.StatusBar.Render(m.status)
}

func (m Model) renderHelp() string {
	lines := []string{
		m.styles.Header.Render("sinyal: bantuan"),
		"",
		"1-8      pindah tampilan",
		"j/k      navigasi daftar",
		"enter    pilih",
		"esc      kembali",
		"r        muat ulang dashboard",
		"m        tandai semua notifikasi dibaca (tampilan notif)",
		"T        ganti tema",
		"e        keluar",
		"",
		m.styles.MutedText.Render("tekan tombol apa pun untuk menutup"),
	}
	return strings.Join(lines, "\n")
}

// Messages and commands shared across views.

type snapshotMsg state.Snapshot

type overviewMsg struct {
	err error
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func refreshOverviewCmd(ctx context.Context, refresh func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return overviewMsg{err: refresh(ctx)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
