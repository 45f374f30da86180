// Package state provides the thread-safe snapshot store shared by overview
// refreshes and the UI.
//
// The Store holds the latest successful dashboard Overview plus refresh
// error bookkeeping. Update with an error keeps the previous data and counts
// the failure; Snapshot returns defensive copies so the UI and refresh
// commands never share mutable payloads. The zero Store is ready to use.
package state
