package scenario

import (
	"errors"
	"testing"

	"strategix-backend/internal/strategy"
)

func TestSimulateGrowthBaselineFixture(t *testing.T) {
	base := strategy.ScoreCard{ReadinessScore: 50, RiskScore: 20}
	got, err := Simulate(base, "growth")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got.Readiness != 60 {
		t.Errorf("readiness = %d, want 60", got.Readiness)
	}
	if got.Risk != 40 {
		t.Errorf("risk = %d, want 40", got.Risk)
	}
	if got.Revenue != 85 {
		t.Errorf("revenue = %d, want 85", got.Revenue)
	}
	if got.CostEfficiency != 40 {
		t.Errorf("cost efficiency = %d, want 40", got.CostEfficiency)
	}
	if got.Stability != 45 {
		t.Errorf("stability = %d, want 45", got.Stability)
	}
	if got.Confidence != 85 {
		t.Errorf("confidence = %d, want 85", got.Confidence)
	}
	if got.Explanation == "" {
		t.Error("explanation should not be empty")
	}
}

func TestSimulateCostAndRiskDeltas(t *testing.T) {
	base := strategy.ScoreCard{ReadinessScore: 70, RiskScore: 50}

	cost, err := Simulate(base, "cost")
	if err != nil {
		t.Fatalf("Simulate cost: %v", err)
	}
	if cost.Readiness != 65 || cost.Risk != 35 {
		t.Errorf("cost scenario readiness/risk = %d/%d, want 65/35", cost.Readiness, cost.Risk)
	}
	if cost.Revenue != 45 || cost.CostEfficiency != 90 || cost.Stability != 75 {
		t.Errorf("cost scenario overrides = %d/%d/%d", cost.Revenue, cost.CostEfficiency, cost.Stability)
	}

	risk, err := Simulate(base, "risk")
	if err != nil {
		t.Fatalf("Simulate risk: %v", err)
	}
	if risk.Readiness != 60 || risk.Risk != 20 {
		t.Errorf("risk scenario readiness/risk = %d/%d, want 60/20", risk.Readiness, risk.Risk)
	}
	if risk.Stability != 95 {
		t.Errorf("risk scenario stability = %d, want 95", risk.Stability)
	}
}

func TestSimulateClampsMetrics(t *testing.T) {
	high := strategy.ScoreCard{ReadinessScore: 95, RiskScore: 90}
	got, err := Simulate(high, "growth")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got.Readiness > 98 || got.Risk > 98 {
		t.Errorf("metrics exceed ceiling: readiness=%d risk=%d", got.Readiness, got.Risk)
	}

	low := strategy.ScoreCard{ReadinessScore: 10, RiskScore: 5}
	got, err = Simulate(low, "risk")
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if got.Readiness < 5 || got.Risk < 5 {
		t.Errorf("metrics below floor: readiness=%d risk=%d", got.Readiness, got.Risk)
	}
}

func TestSimulateUnknownScenario(t *testing.T) {
	_, err := Simulate(strategy.ScoreCard{}, "moonshot")
	if !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("expected ErrInvalidScenario, got %v", err)
	}
}
