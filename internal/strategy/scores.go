package strategy

import "strings"

// ScoreCard is the numeric health summary derived from SWOT counts.
type ScoreCard struct {
	ReadinessScore int    `json:"readinessScore"`
	ReadinessLabel string `json:"readinessLabel"`
	RiskScore      int    `json:"riskScore"`
	RiskLabel      string `json:"riskLabel"`
	StrategicFocus string `json:"strategicFocus"`
}

const (
	readinessFloor = 10
	readinessCeil  = 98
	riskFloor      = 5
	riskCeil       = 95
)

// Score computes readiness and risk from SWOT category sizes and names the
// strategic focus after the top-ranked intent.
func Score(swot map[string][]string, intents []string) ScoreCard {
	s := len(swot["strengths"])
	w := len(swot["weaknesses"])
	o := len(swot["opportunities"])
	t := len(swot["threats"])

	readiness := clamp(50+10*s+5*o-5*w-2*t, readinessFloor, readinessCeil)
	risk := clamp(15*t+5*w, riskFloor, riskCeil)

	return ScoreCard{
		ReadinessScore: readiness,
		ReadinessLabel: readinessLabel(readiness),
		RiskScore:      risk,
		RiskLabel:      riskLabel(risk),
		StrategicFocus: focus(intents),
	}
}

func readinessLabel(score int) string {
	switch {
	case score > 75:
		return "Strong"
	case score > 50:
		return "Moderate"
	default:
		return "Needs Improvement"
	}
}

func riskLabel(score int) string {
	switch {
	case score < 30:
		return "Low"
	case score < 60:
		return "Medium"
	default:
		return "Critical"
	}
}

// focus turns the top intent tag into a display name, for example
// "market_expansion" becomes "Market Expansion".
func focus(intents []string) string {
	if len(intents) == 0 {
		return "General Strategy"
	}
	parts := strings.Split(intents[0], "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
