package classify

import "testing"

func TestPESTLEAllKeysPresent(t *testing.T) {
	got := PESTLE("")
	keys := []string{PESTLEPolitical, PESTLEEconomic, PESTLESocial, PESTLETechnological, PESTLELegal, PESTLEEnvironmental}
	if len(got) != len(keys) {
		t.Fatalf("expected %d keys, got %d", len(keys), len(got))
	}
	for _, key := range keys {
		if got[key] != "No significant factors detected." {
			t.Fatalf("key %s: expected no-factors statement, got %q", key, got[key])
		}
	}
}

func TestPESTLEFirstKeywordWins(t *testing.T) {
	// "government" precedes "policy" in the political keyword list.
	got := PESTLE("New policy follows the government announcement.")
	if got[PESTLEPolitical] != "Factors related to government detected." {
		t.Fatalf("expected first-listed keyword, got %q", got[PESTLEPolitical])
	}
}

func TestPESTLEDetectsPerCategory(t *testing.T) {
	text := "Inflation hurts consumer spending while new regulation demands sustainability and automation."
	got := PESTLE(text)
	want := map[string]string{
		PESTLEEconomic:      "Factors related to inflation detected.",
		PESTLESocial:        "Factors related to consumer detected.",
		PESTLELegal:         "Factors related to regulation detected.",
		PESTLEEnvironmental: "Factors related to sustainability detected.",
		PESTLETechnological: "Factors related to automation detected.",
		PESTLEPolitical:     "No significant factors detected.",
	}
	for key, expected := range want {
		if got[key] != expected {
			t.Fatalf("key %s: expected %q, got %q", key, expected, got[key])
		}
	}
}

func TestPortersKeywordConditionedForces(t *testing.T) {
	got := Porters("Fierce competitors chase every customer segment.")
	if got[PorterRivalry] != "High competitive rivalry driven by market pressure." {
		t.Fatalf("expected high rivalry, got %q", got[PorterRivalry])
	}
	if got[PorterBuyerPower] != "High buyer power due to customer leverage." {
		t.Fatalf("expected high buyer power, got %q", got[PorterBuyerPower])
	}

	calm := Porters("A quiet niche with loyal wholesale partners.")
	if calm[PorterRivalry] != "Medium competitive rivalry." {
		t.Fatalf("expected medium rivalry, got %q", calm[PorterRivalry])
	}
	if calm[PorterBuyerPower] != "Medium buyer power." {
		t.Fatalf("expected medium buyer power, got %q", calm[PorterBuyerPower])
	}
}

func TestPortersFixedForcesAlwaysPresent(t *testing.T) {
	got := Porters("")
	for _, key := range []string{PorterSupplierPower, PorterSubstitution, PorterNewEntrants} {
		if got[key] == "" {
			t.Fatalf("expected fixed assessment for %s", key)
		}
	}
}
