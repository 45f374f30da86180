// Package app provides the orchestration layer for the sinyal application.
//
// Run is the composition root: it loads the gateway config and user prefs,
// builds the HTTP client and the shared state.Store, and starts the TUI,
// handing the UI a refresh closure instead of letting it touch config
// directly.
//
// RefreshOverview implements the dashboard's load policy. The overview needs
// five independent reads (summary, families, segments, packages,
// redeemables); they run concurrently under an errgroup and the join is
// all-or-nothing: one failure aborts the rest, nothing partial is stored,
// and the store keeps its previous data with the error recorded. The UI
// decides when refreshes happen (after login, on demand); there is no
// background poller because every view owns its own data lifecycle.
package app
