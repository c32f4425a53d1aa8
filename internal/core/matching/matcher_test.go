package matching

import (
	"math"
	"testing"

	"github.com/fudosan-labs/estate-advisor/internal/catalog"
	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func newMatcher(t *testing.T) *Matcher {
	t.Helper()
	return New(catalog.Default())
}

func TestRecommendBeginnerScenario(t *testing.T) {
	m := newMatcher(t)
	profile := domain.InvestorProfile{
		AnnualIncome:    fptr(600),
		ExperienceYears: iptr(0),
		BudgetRange:     &domain.BudgetRange{Min: 1500, Max: 2200},
	}

	// The beginner filter caps price at 10000 and screens on market risk and
	// occupancy, so experienced_001 (4500, low risk, 98%) qualifies too.
	matches := m.Recommend(profile, 3)
	if len(matches) != 3 {
		t.Fatalf("expected 3 qualifying listings, got %d matches", len(matches))
	}

	wantIDs := []string{"beginner_001", "experienced_001", "beginner_002"}
	wantScores := []int{80, 50, 47}
	for i, match := range matches {
		if match.Property.ID != wantIDs[i] {
			t.Fatalf("rank %d: got %s, want %s", i, match.Property.ID, wantIDs[i])
		}
		if match.MatchScore != wantScores[i] {
			t.Fatalf("%s score = %d, want %d", match.Property.ID, match.MatchScore, wantScores[i])
		}
	}
	for _, match := range matches[1:] {
		if len(match.Warnings) == 0 {
			t.Fatalf("over-budget listing %s should carry a warning", match.Property.ID)
		}
	}
}

func TestRecommendNeverExceedsPriceCeiling(t *testing.T) {
	m := newMatcher(t)
	profiles := []domain.InvestorProfile{
		{},
		{ExperienceYears: iptr(3), AnnualIncome: fptr(900)},
		{ExperienceYears: iptr(6), AnnualIncome: fptr(2000)},
		{ExperienceYears: iptr(15)},
	}
	ceilings := []float64{10000, 15000, 30000, 500000}

	for i, profile := range profiles {
		for _, match := range m.Recommend(profile, 10) {
			if match.Property.Price > ceilings[i] {
				t.Fatalf("profile %d: %s priced %v exceeds ceiling %v",
					i, match.Property.ID, match.Property.Price, ceilings[i])
			}
		}
	}
}

func TestRecommendProSeesWholeCatalog(t *testing.T) {
	m := newMatcher(t)
	matches := m.Recommend(domain.InvestorProfile{ExperienceYears: iptr(12)}, 10)
	if len(matches) != 5 {
		t.Fatalf("pro should be offered all 5 listings, got %d", len(matches))
	}
}

func TestRecommendScoreStaysInRange(t *testing.T) {
	m := newMatcher(t)
	profiles := []domain.InvestorProfile{
		{},
		{BudgetRange: &domain.BudgetRange{Min: 0, Max: 1000000}, TargetYield: fptr(0.1)},
		{ExperienceYears: iptr(20), BudgetRange: &domain.BudgetRange{Min: 20000, Max: 30000}, TargetYield: fptr(1)},
	}
	for _, profile := range profiles {
		for _, match := range m.Recommend(profile, 10) {
			if match.MatchScore < 0 || match.MatchScore > 100 {
				t.Fatalf("score %d out of range for %s", match.MatchScore, match.Property.ID)
			}
		}
	}
}

func TestRecommendLimitAndDefault(t *testing.T) {
	m := newMatcher(t)
	pro := domain.InvestorProfile{ExperienceYears: iptr(12)}

	if got := len(m.Recommend(pro, 2)); got != 2 {
		t.Fatalf("limit 2: got %d", got)
	}
	if got := len(m.Recommend(pro, 0)); got != 3 {
		t.Fatalf("limit 0 should default to 3, got %d", got)
	}
}

func TestRecommendLowToleranceFlagsRiskyListings(t *testing.T) {
	m := newMatcher(t)
	tolerance := domain.RiskToleranceLow
	profile := domain.InvestorProfile{
		ExperienceYears: iptr(12),
		RiskTolerance:   &tolerance,
	}

	for _, match := range m.Recommend(profile, 10) {
		risky := riskScore(match.Property) > 3
		warned := false
		for _, w := range match.Warnings {
			if w == "リスクレベルが許容範囲を超える可能性" {
				warned = true
			}
		}
		if risky && !warned {
			t.Fatalf("%s exceeds low tolerance but carries no risk warning", match.Property.ID)
		}
	}
}

func TestAnalyzeCashFlow(t *testing.T) {
	c := catalog.Default()
	property, ok := c.ByID("beginner_001")
	if !ok {
		t.Fatalf("missing fixture listing")
	}

	analysis := Analyze(property)
	if math.Abs(analysis.CashFlow-64.8) > 1e-9 {
		t.Fatalf("cash flow = %v, want 64.8", analysis.CashFlow)
	}
	if math.Abs(analysis.ROI-3.6) > 1e-9 {
		t.Fatalf("roi = %v, want 3.6", analysis.ROI)
	}
	if !analysis.PaybackRecoverable {
		t.Fatalf("expected recoverable payback")
	}
	if math.Abs(analysis.PaybackYears-1800/64.8) > 1e-9 {
		t.Fatalf("payback = %v", analysis.PaybackYears)
	}
	if analysis.RiskAssessment != "低リスク" {
		t.Fatalf("risk assessment = %s", analysis.RiskAssessment)
	}
}

func TestAnalyzeNonRecoverablePayback(t *testing.T) {
	property := domain.Property{
		ID:            "loss_001",
		Price:         5000,
		YearlyRent:    20,
		ManagementFee: 1.5,
		RepairReserve: 0.5,
		FutureRisk: domain.FutureRisk{
			MarketRisk:      domain.RiskHigh,
			LiquidityRisk:   domain.RiskHigh,
			MaintenanceRisk: domain.RiskHigh,
		},
	}

	analysis := Analyze(property)
	if analysis.PaybackRecoverable {
		t.Fatalf("negative cash flow must not be recoverable")
	}
	if analysis.PaybackYears != 0 {
		t.Fatalf("payback years = %v, want 0", analysis.PaybackYears)
	}
	if analysis.CashFlow >= 0 {
		t.Fatalf("expected negative cash flow, got %v", analysis.CashFlow)
	}
	if analysis.RiskAssessment != "高リスク" {
		t.Fatalf("risk assessment = %s", analysis.RiskAssessment)
	}
}
