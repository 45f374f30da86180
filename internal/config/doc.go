// Package config handles loading the sinyal configuration file.
//
// The file lives at ~/.config/sinyal/config.toml and is optional; a missing
// file yields defaults so sinyal works against a gateway on localhost:8000
// out of the box. Recognized fields:
//
//	api_base_url = "http://localhost:8000"
//	subs_type = "PREPAID"
//
// Tilde paths are expanded, relative paths are made absolute, and an
// explicitly provided path always wins over the default location. Errors are
// returned only for unreadable or unparseable files; absence is not an
// error.
package config
