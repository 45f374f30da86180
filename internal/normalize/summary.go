package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"time"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// AccountSummary is the display form of the opaque summary blocks. Every
// field degrades to a zero value when the backend omits it; the dashboard
// renders "-" placeholders itself.
type AccountSummary struct {
	BalanceRemaining int64
	Expiry           string
	TierName         string
	TierPoint        int64
	HasTierPoint     bool

	ProfileName    string
	ProfileMSISDN  string
	ProfileSubs    string
	ProfileEmail   string
	ProfileAddress string
}

// Summary probes the profile/balance/tiering payloads for the handful of
// fields the dashboard shows. Missing or unexpectedly shaped blocks yield an
// empty summary, never an error.
func Summary(profile, balance, tiering json.RawMessage) AccountSummary {
	var s AccountSummary

	b := asMap(decode(balance))
	if remaining, ok := num(b, "remaining"); ok {
		s.BalanceRemaining = int64(remaining)
	}
	s.Expiry = expiryText(b["expired_at"])

	t := asMap(decode(tiering))
	s.TierName = str(t, "tier")
	if name, ok := dig(t, "data", "tier_name").(string); ok && name != "" {
		s.TierName = name
	}
	if point, ok := num(t, "current_point"); ok {
		s.TierPoint = int64(point)
		s.HasTierPoint = true
	}

	p := asMap(decode(profile))
	s.ProfileName = str(p, "name")
	s.ProfileMSISDN = str(p, "msisdn")
	s.ProfileSubs = str(p, "subscription_type")
	s.ProfileEmail = str(p, "login_email", "email")
	s.ProfileAddress = str(p, "registered_address")

	return s
}

// expiryText renders the balance expiry: numbers and all-digit strings are
// epoch seconds, any other string passes through verbatim.
func expiryText(value any) string {
	switch v := value.(type) {
	case float64:
		return time.Unix(int64(v), 0).Format("02 Jan 2006")
	case string:
		if digitsOnly.MatchString(v) {
			ts, err := strconv.ParseInt(v, 10, 64)
			if err == nil {
				return time.Unix(ts, 0).Format("02 Jan 2006")
			}
		}
		if v != "" {
			return v
		}
	}
	return "-"
}
