// Package gateway provides the HTTP client for the account gateway API.
//
// # Overview
//
// The gateway is a local daemon that fronts the operator's account systems
// and exposes them as JSON-over-HTTP endpoints: auth (OTP login, account
// switching), account reads (summary, packages, history, family plan,
// circle), store browsing, purchases, notifications, and SIM registration.
// This package is the single chokepoint for all of sinyal's network calls.
//
// # Request handling
//
// Every call goes through one wrapper that resolves the path against the
// configured base URL, sends Content-Type/Accept application/json plus the
// sinyal User-Agent, and decodes the JSON body into the declared result
// type. There is no schema validation: callers receive exactly what the
// gateway sends, and malformed data surfaces in the UI rather than being
// hidden here. There are no retries and no timeout beyond the transport
// client's 5 seconds.
//
// # Error contract
//
// A non-2xx response becomes an *APIError whose Error() string is the only
// error channel the rest of the program uses:
//
//   - body contains a string "detail" field: that string, verbatim
//   - body contains a structured "detail": its compact JSON serialization
//   - body absent or unparseable: "Request failed with status <code>"
//
// Transport failures are wrapped with fmt.Errorf context and propagate
// unchanged. Nothing is swallowed, logged, or classified; views catch at
// the boundary and display the message.
//
// # Purchases
//
// All purchase variants share one amount rule (resolveAmount): a positive
// override wins over the package price, a positive price is used otherwise,
// and when neither is positive the overwrite_amount field is omitted so the
// backend applies its own default. Decoy variants never change the endpoint;
// they only add the flags the backend branches on (use_decoy_v1,
// use_decoy_v2, use_decoy + decoy_profile). Repeat and family-loop purchases
// are single fire-and-forget requests; the gateway loops server-side and
// returns an aggregate result.
//
// # Opaque payloads
//
// Fields whose shape shifts between backend releases (profile, balance,
// tiering, store catalogs, notification wrappers) are carried as
// json.RawMessage and interpreted by the normalize package, keeping this
// package a faithful transcription of the wire contract.
package gateway
