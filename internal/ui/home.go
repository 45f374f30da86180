package ui

import (
	"fmt"
	"strings"

	"github.com/adimsa/sinyal/internal/normalize"
)

func (m Model) renderHome() string {
	snap := m.snapshot
	if !snap.HasOverview {
		if snap.LastError != nil {
			return m.styles.DangerText.Render("Gagal memuat dashboard: " + snap.LastError.Error())
		}
		return m.styles.MutedText.Render("Belum ada data. Tekan r untuk memuat.")
	}

	sum := snap.Overview.Summary
	acct := normalize.Summary(sum.Profile, sum.Balance, sum.Tiering)

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Pulsa"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", formatRupiah(acct.BalanceRemaining)))
	b.WriteString(fmt.Sprintf("  Berlaku sampai %s\n", acct.Expiry))
	b.WriteString("\n")

	b.WriteString(m.styles.AccentText.Render("Tier"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s", orDash(acct.TierName)))
	if acct.HasTierPoint {
		b.WriteString(fmt.Sprintf(" · %d poin", acct.TierPoint))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.AccentText.Render("Profil"))
	b.WriteString("\n")
	rows := []struct{ label, value string }{
		{"Nama", acct.ProfileName},
		{"MSISDN", acct.ProfileMSISDN},
		{"Tipe", acct.ProfileSubs},
		{"Email", acct.ProfileEmail},
		{"Alamat", acct.ProfileAddress},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", row.label, orDash(row.value)))
	}

	if !snap.LastUpdated.IsZero() {
		b.WriteString("\n")
		b.WriteString(m.styles.MutedText.Render("Diperbarui " + snap.LastUpdated.Format("15:04:05")))
	}
	return b.String()
}
