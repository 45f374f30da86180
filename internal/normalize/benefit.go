package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Package is one active package with its benefit lines already coerced into
// display strings.
type Package struct {
	Name             string
	SubscriptionType string
	Domain           string
	FamilyCode       string
	GroupName        string
	Benefits         []string
}

// Packages coerces the raw active-package list into canonical records. The
// backend has emitted the family code and group name under two spellings
// each; both are accepted.
func Packages(list []json.RawMessage) []Package {
	packages := make([]Package, 0, len(list))
	for i, raw := range list {
		m := asMap(decode(raw))
		if m == nil {
			continue
		}
		p := Package{
			Name:             str(m, "name"),
			SubscriptionType: str(m, "product_subscription_type"),
			Domain:           str(m, "product_domain"),
			FamilyCode:       str(m, "family_code", "familycode"),
			GroupName:        str(m, "group_name", "groupname"),
			Benefits:         Benefits(m),
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("Paket %d", i+1)
		}
		if p.SubscriptionType == "" {
			p.SubscriptionType = "REC"
		}
		if p.Domain == "" {
			p.Domain = "DATA"
		}
		packages = append(packages, p)
	}
	return packages
}

// Benefits turns a package's quota details into display strings. Three
// shapes are accepted, in order: precomputed benefit_infos strings, a plain
// string list under benefits, or structured benefit records that get
// formatted here with unit-aware rules.
func Benefits(pkg map[string]any) []string {
	if infos := asSlice(pkg["benefit_infos"]); len(infos) > 0 {
		lines := make([]string, 0, len(infos))
		for _, entry := range infos {
			lines = append(lines, stringify(entry))
		}
		return lines
	}

	raw := asSlice(pkg["benefits"])
	if len(raw) == 0 {
		return nil
	}
	if _, ok := raw[0].(string); ok {
		lines := make([]string, 0, len(raw))
		for _, entry := range raw {
			lines = append(lines, stringify(entry))
		}
		return lines
	}

	lines := make([]string, 0, len(raw))
	for i, entry := range raw {
		b := asMap(entry)
		if b == nil {
			continue
		}
		label := str(b, "name")
		if label == "" {
			label = fmt.Sprintf("Benefit %d", i+1)
		}
		kind := strings.ToUpper(str(b, "datatype"))
		remaining := quotaString(b, "remaining", "remaining_str", kind)
		total := quotaString(b, "total", "total_str", kind)

		unit := ""
		switch kind {
		case "VOICE":
			unit = "menit"
		case "TEXT":
			unit = "SMS"
		}

		line := fmt.Sprintf("%s: %s/%s", label, remaining, total)
		if unit != "" {
			line += " " + unit
		}
		lines = append(lines, line)
	}
	return lines
}

// quotaString renders one remaining/total value: a backend-precomputed *_str
// wins, DATA quantities get byte formatting, other numbers render bare, and
// a missing value renders "-".
func quotaString(b map[string]any, key, strKey, kind string) string {
	if s := str(b, strKey); s != "" {
		return s
	}
	value, ok := num(b, key)
	if !ok {
		return "-"
	}
	if kind == "DATA" {
		return FormatDataBytes(value)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatDataBytes renders a byte count in binary-multiple units with two
// decimal places, picking the smallest unit that keeps the integer part at
// least 1. Non-positive or non-finite counts render "0"; counts below 1 KB
// render as whole bytes.
func FormatDataBytes(bytes float64) string {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes <= 0 {
		return "0"
	}
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.2f GB", bytes/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.2f MB", bytes/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.2f KB", bytes/kb)
	default:
		return fmt.Sprintf("%d B", int64(bytes))
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
