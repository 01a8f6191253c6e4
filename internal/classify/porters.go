package classify

import "strings"

// Porter's Five Forces keys.
const (
	PorterRivalry       = "competitive_rivalry"
	PorterBuyerPower    = "buyer_power"
	PorterSupplierPower = "supplier_power"
	PorterSubstitution  = "threat_of_substitution"
	PorterNewEntrants   = "threat_of_new_entrants"
)

// Porters derives the five-forces view. Rivalry and buyer power are
// keyword-conditioned; the remaining three forces are fixed assessments.
func Porters(text string) map[string]string {
	lower := strings.ToLower(text)

	rivalry := "Medium competitive rivalry."
	if strings.Contains(lower, "competit") {
		rivalry = "High competitive rivalry driven by market pressure."
	}

	buyerPower := "Medium buyer power."
	if strings.Contains(lower, "customer") {
		buyerPower = "High buyer power due to customer leverage."
	}

	return map[string]string{
		PorterRivalry:       rivalry,
		PorterBuyerPower:    buyerPower,
		PorterSupplierPower: "Medium supplier power.",
		PorterSubstitution:  "Moderate threat of substitution.",
		PorterNewEntrants:   "Low to moderate threat of new entrants.",
	}
}
