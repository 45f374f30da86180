// Package normalize coerces the gateway's shape-shifting JSON payloads into
// the canonical records the UI renders.
//
// The backend emits several structures for the same logical entity across
// releases: notification lists arrive under half a dozen wrappers, benefit
// entries may be precomputed strings or structured quota records, and the
// store catalog exists as both a price list and a per-family variant tree.
// Each normalizer here applies an explicit ordered fallback chain, tried
// most specific shape first, falling through to a documented empty default.
// The order is part of the contract: ambiguous payloads that satisfy more
// than one candidate must resolve to the first.
//
// All functions are pure. Inputs are never mutated, failures degrade to
// empty values rather than errors, and the probing helpers in value.go keep
// the defensive field access type-checked instead of casting blindly.
package normalize
