package normalize

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSummary_ProbesAllBlocks(t *testing.T) {
	t.Parallel()

	profile := json.RawMessage(`{"name":"Budi","msisdn":"6287800001066","subscription_type":"PREPAID","login_email":"budi@example.com","registered_address":"Jakarta"}`)
	balance := json.RawMessage(`{"remaining":152000,"expired_at":1735689600}`)
	tiering := json.RawMessage(`{"tier":"Gold","current_point":420,"data":{"tier_name":"Gold Plus"}}`)

	got := Summary(profile, balance, tiering)
	if got.BalanceRemaining != 152000 {
		t.Fatalf("balance = %d", got.BalanceRemaining)
	}
	want := time.Unix(1735689600, 0).Format("02 Jan 2006")
	if got.Expiry != want {
		t.Fatalf("expiry = %q, want %q", got.Expiry, want)
	}
	if got.TierName != "Gold Plus" {
		t.Fatalf("nested tier name must win: %q", got.TierName)
	}
	if !got.HasTierPoint || got.TierPoint != 420 {
		t.Fatalf("tier point = %d (has=%v)", got.TierPoint, got.HasTierPoint)
	}
	if got.ProfileName != "Budi" || got.ProfileEmail != "budi@example.com" {
		t.Fatalf("profile = %+v", got)
	}
}

func TestSummary_MissingBlocksYieldZeroValues(t *testing.T) {
	t.Parallel()

	got := Summary(nil, nil, nil)
	if got.BalanceRemaining != 0 || got.HasTierPoint || got.ProfileName != "" {
		t.Fatalf("summary = %+v, want zero values", got)
	}
	if got.Expiry != "-" {
		t.Fatalf("expiry = %q, want placeholder", got.Expiry)
	}
}

func TestExpiryText_Variants(t *testing.T) {
	t.Parallel()

	epoch := time.Unix(1735689600, 0).Format("02 Jan 2006")
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"number epoch", float64(1735689600), epoch},
		{"digit string epoch", "1735689600", epoch},
		{"free text passes through", "31 Desember 2024", "31 Desember 2024"},
		{"empty string", "", "-"},
		{"nil", nil, "-"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := expiryText(tc.in); got != tc.want {
				t.Fatalf("expiryText(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSummary_EmailFallback(t *testing.T) {
	t.Parallel()

	got := Summary(json.RawMessage(`{"email":"alt@example.com"}`), nil, nil)
	if got.ProfileEmail != "alt@example.com" {
		t.Fatalf("email fallback not honored: %q", got.ProfileEmail)
	}
}
