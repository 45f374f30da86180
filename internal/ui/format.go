package ui

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// formatRupiah renders an amount as "Rp 1.234.567" using Indonesian digit
// grouping.
func formatRupiah(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	if negative {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

// indentJSON pretty-prints a raw payload for the debug panes; invalid or
// empty payloads render a placeholder.
func indentJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "(kosong)"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// orDash substitutes "-" for empty display values.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
