package analyses

import (
	"context"
	"encoding/json"
	"fmt"

	"strategix-backend/internal/classify"
	"strategix-backend/internal/llm"
	"strategix-backend/internal/scenario"
	"strategix-backend/internal/shared/telemetry"
	"strategix-backend/internal/strategy"
)

// Artifact kinds for the genai cache.
const (
	ArtifactEnhancedStrategy = "enhanced_strategy"
	ArtifactPerformance      = "performance_metrics"
	artifactScenarioPrefix   = "scenario:"
)

const genaiContextChars = 12000

// EnhancedStrategy is a provider-refined view of the heuristic framework.
type EnhancedStrategy struct {
	SWOT    map[string][]string `json:"swot"`
	Insight string              `json:"insight"`
}

// PerformanceMetrics are provider-estimated business metrics, each in [0,100].
type PerformanceMetrics struct {
	RevenueGrowth  int `json:"revenueGrowth"`
	CostEfficiency int `json:"costEfficiency"`
	RiskIndex      int `json:"riskIndex"`
	Innovation     int `json:"innovation"`
}

// GenAI computes generative artifacts with static fallbacks and memoizes them
// per document. Every method degrades to a deterministic payload on provider
// or parse failure; none returns an error for those cases.
type GenAI struct {
	LLM   llm.Client
	Cache ArtifactCache

	// OnFallback is an optional metrics hook, fired when a provider call is
	// replaced by a static fallback.
	OnFallback func()
}

// EnhancedStrategy refines the heuristic SWOT and adds an executive insight.
func (g *GenAI) EnhancedStrategy(ctx context.Context, documentID, text string, base classify.Framework) EnhancedStrategy {
	var out EnhancedStrategy
	fallback := EnhancedStrategy{
		SWOT:    base.SWOT,
		Insight: "The document indicates a stable strategic position with room for focused improvement.",
	}

	g.artifact(ctx, documentID, ArtifactEnhancedStrategy, &out, fallback, func() (string, error) {
		baseJSON, err := json.Marshal(base.SWOT)
		if err != nil {
			return "", err
		}
		prompt := fmt.Sprintf(`You are a business strategy analyst.
Refine the SWOT analysis below using the document excerpt, and add one executive insight sentence.
Respond with JSON only, shaped as {"swot": {"strengths": [], "weaknesses": [], "opportunities": [], "threats": []}, "insight": ""}.

Current SWOT:
%s

Document excerpt:
%s`, baseJSON, truncate(text, genaiContextChars))
		return g.LLM.Generate(ctx, prompt)
	})

	if len(out.SWOT) == 0 || out.Insight == "" {
		return fallback
	}
	return out
}

// Performance estimates coarse business metrics from the document.
func (g *GenAI) Performance(ctx context.Context, documentID, text string) PerformanceMetrics {
	var out PerformanceMetrics
	fallback := PerformanceMetrics{RevenueGrowth: 60, CostEfficiency: 55, RiskIndex: 40, Innovation: 50}

	g.artifact(ctx, documentID, ArtifactPerformance, &out, fallback, func() (string, error) {
		prompt := fmt.Sprintf(`You are a business strategy analyst.
Estimate the following metrics for the organization described in the document, each as an integer from 0 to 100.
Respond with JSON only, shaped as {"revenueGrowth": 0, "costEfficiency": 0, "riskIndex": 0, "innovation": 0}.

Document excerpt:
%s`, truncate(text, genaiContextChars))
		return g.LLM.Generate(ctx, prompt)
	})

	out.RevenueGrowth = clampMetric(out.RevenueGrowth)
	out.CostEfficiency = clampMetric(out.CostEfficiency)
	out.RiskIndex = clampMetric(out.RiskIndex)
	out.Innovation = clampMetric(out.Innovation)
	return out
}

// Scenario projects a scenario through the provider, falling back to the
// deterministic simulator. Unknown tags fail before any provider call.
func (g *GenAI) Scenario(ctx context.Context, documentID string, card strategy.ScoreCard, tag string) (scenario.Result, error) {
	fallback, err := scenario.Simulate(card, tag)
	if err != nil {
		return scenario.Result{}, err
	}

	var out scenario.Result
	g.artifact(ctx, documentID, artifactScenarioPrefix+tag, &out, fallback, func() (string, error) {
		prompt := fmt.Sprintf(`You are a business strategy analyst.
Project the impact of a %q scenario for an organization with readiness score %d and risk score %d.
Respond with JSON only, shaped as {"focus": "", "readiness": 0, "risk": 0, "revenue": 0, "costEfficiency": 0, "stability": 0, "confidence": 0, "explanation": ""}. All numbers are integers from 0 to 100.`,
			tag, card.ReadinessScore, card.RiskScore)
		return g.LLM.Generate(ctx, prompt)
	})

	if out.Focus == "" || out.Explanation == "" {
		return fallback, nil
	}
	return out, nil
}

// artifact implements the memoize-on-first-compute flow: cache hit wins,
// otherwise the provider output is parsed into dst and cached; any failure
// stores and returns the fallback instead.
func (g *GenAI) artifact(ctx context.Context, documentID, kind string, dst any, fallback any, generate func() (string, error)) {
	if g.Cache != nil {
		if payload, err := g.Cache.Get(ctx, documentID, kind); err == nil {
			if json.Unmarshal(payload, dst) == nil {
				return
			}
		}
	}

	payload, ok := g.generatePayload(kind, dst, generate)
	if !ok {
		// Fallbacks are not cached so a later request can retry the provider.
		raw, _ := json.Marshal(fallback)
		_ = json.Unmarshal(raw, dst)
		return
	}

	if g.Cache != nil {
		if err := g.Cache.Put(ctx, documentID, kind, payload); err != nil {
			telemetry.Warn("genai cache write failed", map[string]any{"kind": kind, "error": err.Error()})
		}
	}
}

func (g *GenAI) generatePayload(kind string, dst any, generate func() (string, error)) (json.RawMessage, bool) {
	if g.LLM == nil {
		return nil, false
	}
	raw, err := generate()
	if err != nil {
		g.fallbackHit(kind, err.Error())
		return nil, false
	}
	payload := json.RawMessage(llm.StripCodeFences(raw))
	if err := json.Unmarshal(payload, dst); err != nil {
		g.fallbackHit(kind, "malformed provider JSON")
		return nil, false
	}
	return payload, true
}

func (g *GenAI) fallbackHit(kind, reason string) {
	if g.OnFallback != nil {
		g.OnFallback()
	}
	telemetry.Warn("genai artifact fell back", map[string]any{"kind": kind, "reason": reason})
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func clampMetric(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
