package strategy

import (
	"fmt"
	"strings"

	"strategix-backend/internal/classify"
)

// ActionItem pairs a strategy with a concrete action and a timeline bucket.
type ActionItem struct {
	Strategy string `json:"strategy"`
	Action   string `json:"action"`
	Timeline string `json:"timeline"`
}

// PrioritizedStrategy attaches a High/Medium priority to a strategy.
type PrioritizedStrategy struct {
	Strategy string `json:"strategy"`
	Priority string `json:"priority"`
}

// Set is everything the synthesizer derives from a classified document.
type Set struct {
	Strategies  []string              `json:"strategies"`
	KPIs        []string              `json:"kpis"`
	ActionPlan  []ActionItem          `json:"actionPlan"`
	Prioritized []PrioritizedStrategy `json:"prioritizedStrategies"`
}

const fallbackStrategy = "Maintain stability and improve efficiency"

var intentStrategies = map[string]string{
	classify.IntentMarketExpansion:       "Expand into new markets to capture growth",
	classify.IntentCostReduction:         "Optimize operational costs",
	classify.IntentRiskCompliance:        "Strengthen compliance and risk controls",
	classify.IntentDigitalTransformation: "Adopt digital tools and automation",
}

var intentKPIs = map[string][]string{
	classify.IntentMarketExpansion:       {"Market Penetration", "Regional Sales Growth"},
	classify.IntentCostReduction:         {"Operational Cost Ratio", "Cost per Unit"},
	classify.IntentRiskCompliance:        {"Compliance Score", "Risk Incident Rate"},
	classify.IntentDigitalTransformation: {"Automation Coverage", "System Downtime"},
}

var timelines = []string{"Immediate", "Short Term", "Long Term"}

// Synthesize derives the full strategy set from intents and SWOT.
func Synthesize(intents []string, swot map[string][]string) Set {
	strategies := Strategies(intents)
	return Set{
		Strategies:  strategies,
		KPIs:        KPIs(intents),
		ActionPlan:  ActionPlan(strategies),
		Prioritized: Prioritize(strategies, swot),
	}
}

// Strategies maps each recognized intent to its fixed strategy, in intent
// order. With no intents a single fallback strategy is returned.
func Strategies(intents []string) []string {
	out := make([]string, 0, len(intents))
	for _, intent := range intents {
		if s, ok := intentStrategies[intent]; ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, fallbackStrategy)
	}
	return out
}

// KPIs collects the fixed KPI pair per intent, deduplicated in insertion
// order.
func KPIs(intents []string) []string {
	out := make([]string, 0, 2*len(intents))
	seen := make(map[string]struct{})
	for _, intent := range intents {
		for _, kpi := range intentKPIs[intent] {
			if _, ok := seen[kpi]; ok {
				continue
			}
			seen[kpi] = struct{}{}
			out = append(out, kpi)
		}
	}
	if len(out) == 0 {
		out = append(out, "Overall Business Performance Index")
	}
	return out
}

// ActionPlan synthesizes one action per strategy and rotates timelines
// Immediate, Short Term, Long Term by position.
func ActionPlan(strategies []string) []ActionItem {
	out := make([]ActionItem, 0, len(strategies))
	for i, s := range strategies {
		out = append(out, ActionItem{
			Strategy: s,
			Action:   fmt.Sprintf("Launch an initiative to %s", lowerFirst(s)),
			Timeline: timelines[i%len(timelines)],
		})
	}
	return out
}

// Prioritize marks a strategy High when its text mentions growth, otherwise
// Medium. The SWOT argument is accepted for interface stability but does not
// influence priority.
func Prioritize(strategies []string, swot map[string][]string) []PrioritizedStrategy {
	_ = swot
	out := make([]PrioritizedStrategy, 0, len(strategies))
	for _, s := range strategies {
		priority := "Medium"
		if strings.Contains(strings.ToLower(s), "growth") {
			priority = "High"
		}
		out = append(out, PrioritizedStrategy{Strategy: s, Priority: priority})
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]+('a'-'A')) + s[1:]
	}
	return s
}
