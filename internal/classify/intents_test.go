package classify

import "testing"

func TestIntentsRankedByMatchCount(t *testing.T) {
	// Two sentences, one with "risk", one with "growth" plus extra
	// expansion keywords: market_expansion must outrank risk_compliance
	// by count, not by declaration order.
	text := "Regulatory risk is rising. Growth in every market region supports global expansion."
	got := Intents(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 intents, got %v", got)
	}
	if got[0] != IntentMarketExpansion {
		t.Fatalf("expected market_expansion first, got %v", got)
	}
	if got[1] != IntentRiskCompliance {
		t.Fatalf("expected risk_compliance second, got %v", got)
	}
}

func TestIntentsTieBrokenByDeclarationOrder(t *testing.T) {
	text := "One cost item and one risk item."
	got := Intents(text)
	if len(got) != 2 {
		t.Fatalf("expected 2 intents, got %v", got)
	}
	if got[0] != IntentCostReduction || got[1] != IntentRiskCompliance {
		t.Fatalf("expected declaration-order tie break, got %v", got)
	}
}

func TestIntentsAtMostTwo(t *testing.T) {
	text := "Cost savings, market growth, compliance risk and digital automation all at once."
	got := Intents(text)
	if len(got) != 2 {
		t.Fatalf("expected top 2 intents only, got %v", got)
	}
}

func TestIntentsEmptyForUnrelatedText(t *testing.T) {
	got := Intents("The cafeteria menu changes on Tuesdays.")
	if len(got) != 0 {
		t.Fatalf("expected no intents, got %v", got)
	}
}

func TestIntentsCaseInsensitive(t *testing.T) {
	got := Intents("GROWTH and EXPANSION remain the focus.")
	if len(got) == 0 || got[0] != IntentMarketExpansion {
		t.Fatalf("expected market_expansion from uppercase text, got %v", got)
	}
}
