// Package ui provides the terminal user interface for the sinyal dashboard.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. One root Model owns every view's
// state; views are plain render functions plus key handlers over that state,
// switched by a View enum. All gateway traffic runs inside tea.Cmd closures
// so the update loop never blocks on the network.
//
// # Package Structure
//
//   - app.go: root Model, view routing, header/nav/status chrome, Run
//   - theme.go: color themes and the lipgloss style set
//   - format.go: rupiah formatting, JSON pretty-printing, truncation
//   - login.go: OTP request/verify flow and linked-account picker
//   - home.go: balance, tier and profile summary
//   - store.go: family catalog, option lists, hot lists and the payment prompt
//   - packages.go: active packages with coerced benefit lines
//   - search.go: keyword filter over the catalog index, extendable per family
//   - notifications.go: inbox with the local read-state overlay
//   - history.go: raw transaction history in a viewport
//   - redeem.go: voucher/point catalog from the dashboard snapshot
//   - tools.go: MSISDN validation, SIM registration, family plan, circle
//
// # Data Flow
//
// The dashboard snapshot lives in state.Store, filled by the app package's
// refresh function. Views that belong to the snapshot (home, store families,
// search index, redeem) read from it; everything else (family detail, hot
// lists, my packages, notifications, history, tools) fetches on demand and
// keeps the result in its own view state.
//
// After a purchase or refresh the status bar shows the outcome; gateway
// errors surface their message verbatim, which is the backend's own detail
// text when it sent one.
package ui
