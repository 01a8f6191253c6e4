// Package scenario projects hypothetical metric shifts for a chosen
// strategic focus from a baseline score card.
package scenario

import (
	"fmt"

	"strategix-backend/internal/strategy"
)

// ErrInvalidScenario is returned for a scenario tag outside {growth, cost, risk}.
var ErrInvalidScenario = fmt.Errorf("scenario: unknown scenario tag")

// Result holds the projected metrics for one simulated scenario. Every metric
// is clamped to [5,98].
type Result struct {
	Focus          string `json:"focus"`
	Readiness      int    `json:"readiness"`
	Risk           int    `json:"risk"`
	Revenue        int    `json:"revenue"`
	CostEfficiency int    `json:"costEfficiency"`
	Stability      int    `json:"stability"`
	Confidence     int    `json:"confidence"`
	Explanation    string `json:"explanation"`
}

const (
	metricFloor = 5
	metricCeil  = 98
	confidence  = 85
)

type profile struct {
	focus          string
	readinessDelta int
	riskDelta      int
	revenue        int
	costEfficiency int
	stability      int
	explanation    string
}

var profiles = map[string]profile{
	"growth": {
		focus:          "Aggressive Growth",
		readinessDelta: 10,
		riskDelta:      20,
		revenue:        85,
		costEfficiency: 40,
		stability:      45,
		explanation:    "Pursuing aggressive expansion raises revenue potential while increasing exposure and operating strain.",
	},
	"cost": {
		focus:          "Cost Optimization",
		readinessDelta: -5,
		riskDelta:      -15,
		revenue:        45,
		costEfficiency: 90,
		stability:      75,
		explanation:    "Tightening operational costs improves efficiency and stability at the expense of near-term revenue upside.",
	},
	"risk": {
		focus:          "Risk Mitigation",
		readinessDelta: -10,
		riskDelta:      -30,
		revenue:        40,
		costEfficiency: 60,
		stability:      95,
		explanation:    "Prioritizing risk controls maximizes stability while constraining growth-oriented investment.",
	},
}

// Simulate applies the fixed deltas and overrides for the given scenario tag
// to the baseline scores. Unknown tags fail with ErrInvalidScenario.
func Simulate(scores strategy.ScoreCard, scenario string) (Result, error) {
	p, ok := profiles[scenario]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidScenario, scenario)
	}
	return Result{
		Focus:          p.focus,
		Readiness:      clamp(scores.ReadinessScore + p.readinessDelta),
		Risk:           clamp(scores.RiskScore + p.riskDelta),
		Revenue:        clamp(p.revenue),
		CostEfficiency: clamp(p.costEfficiency),
		Stability:      clamp(p.stability),
		Confidence:     confidence,
		Explanation:    p.explanation,
	}, nil
}

// Tags lists the supported scenario tags.
func Tags() []string {
	return []string{"growth", "cost", "risk"}
}

func clamp(v int) int {
	if v < metricFloor {
		return metricFloor
	}
	if v > metricCeil {
		return metricCeil
	}
	return v
}
