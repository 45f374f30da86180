package ui

import (
	"testing"

	"github.com/adimsa/sinyal/internal/normalize"
)

func TestNewPurchasePromptDefaults(t *testing.T) {
	t.Parallel()

	p := newPurchasePrompt(normalize.StoreItem{Title: "Paket", OptionCode: "OPT1"}, "")

	if got := p.times.Value(); got != "2" {
		t.Errorf("times default = %q, want %q", got, "2")
	}
	if got := p.delay.Value(); got != "5" {
		t.Errorf("delay default = %q, want %q", got, "5")
	}
	// Repeat purchases confirm the first payment token unless overridden.
	if got := p.tokenIdx.Value(); got != "0" {
		t.Errorf("token index default = %q, want %q", got, "0")
	}
	if got := p.loopFrom.Value(); got != "1" {
		t.Errorf("loop start default = %q, want %q", got, "1")
	}
	if p.stage != promptPickMethod {
		t.Errorf("initial stage = %d, want promptPickMethod", p.stage)
	}
}

func TestNewPurchasePromptFamilyLoopMethod(t *testing.T) {
	t.Parallel()

	hasLoop := func(p *purchasePrompt) bool {
		for _, m := range p.methods {
			if m.kind == payFamilyLoop {
				return true
			}
		}
		return false
	}

	bare := newPurchasePrompt(normalize.StoreItem{OptionCode: "OPT1"}, "")
	if hasLoop(bare) {
		t.Error("family loop offered without a family code")
	}
	if len(bare.methods) != len(basePayMethods) {
		t.Errorf("method count = %d, want %d", len(bare.methods), len(basePayMethods))
	}

	withFamily := newPurchasePrompt(normalize.StoreItem{OptionCode: "OPT1"}, "FAM1")
	if !hasLoop(withFamily) {
		t.Error("family loop missing despite a family code")
	}
}

func TestParsePromptInt(t *testing.T) {
	t.Parallel()

	if n, ok := parsePromptInt("", 7); !ok || n != 7 {
		t.Errorf("blank input = (%d, %v), want default 7", n, ok)
	}
	if n, ok := parsePromptInt(" 12 ", 0); !ok || n != 12 {
		t.Errorf("trimmed input = (%d, %v), want 12", n, ok)
	}
	if _, ok := parsePromptInt("abc", 0); ok {
		t.Error("non-numeric input must be rejected")
	}
}
