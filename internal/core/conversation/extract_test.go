package conversation

import (
	"testing"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

func TestExtractBeginnerKeyword(t *testing.T) {
	extracted := extractProfile("初心者です")
	if extracted.ExperienceYears == nil || *extracted.ExperienceYears != 0 {
		t.Fatalf("expected experience 0, got %+v", extracted.ExperienceYears)
	}
}

func TestExtractIncomeWithKeyword(t *testing.T) {
	extracted := extractProfile("年収800万円です")
	if extracted.AnnualIncome == nil || *extracted.AnnualIncome != 800 {
		t.Fatalf("expected income 800, got %+v", extracted.AnnualIncome)
	}
	if extracted.BudgetRange != nil {
		t.Fatalf("年収-keyworded amount must not set the budget, got %+v", extracted.BudgetRange)
	}
}

func TestExtractBudgetWithKeyword(t *testing.T) {
	extracted := extractProfile("予算2000万円くらい")
	if extracted.BudgetRange == nil {
		t.Fatalf("expected budget range")
	}
	if extracted.BudgetRange.Min != 1600 || extracted.BudgetRange.Max != 2400 {
		t.Fatalf("budget range = %+v, want {1600 2400}", extracted.BudgetRange)
	}
	if extracted.AnnualIncome != nil {
		t.Fatalf("予算-keyworded amount must not set the income, got %v", *extracted.AnnualIncome)
	}
}

// A bare amount with no scoping keyword is genuinely ambiguous; the flow
// keeps the historical behavior of feeding both fields. This test pins that
// down so any change to the heuristic is a conscious one.
func TestExtractBareAmountFeedsIncomeAndBudget(t *testing.T) {
	extracted := extractProfile("2000万円くらいを考えています")
	if extracted.AnnualIncome == nil || *extracted.AnnualIncome != 2000 {
		t.Fatalf("expected income 2000, got %+v", extracted.AnnualIncome)
	}
	if extracted.BudgetRange == nil || extracted.BudgetRange.Min != 1600 || extracted.BudgetRange.Max != 2400 {
		t.Fatalf("expected budget {1600 2400}, got %+v", extracted.BudgetRange)
	}
}

func TestExtractExperienceYears(t *testing.T) {
	extracted := extractProfile("投資は5年ほどやっています")
	if extracted.ExperienceYears == nil || *extracted.ExperienceYears != 5 {
		t.Fatalf("expected experience 5, got %+v", extracted.ExperienceYears)
	}
}

func TestExtractRiskTolerance(t *testing.T) {
	tests := []struct {
		text string
		want domain.RiskTolerance
	}{
		{"安定重視でお願いします", domain.RiskToleranceLow},
		{"低リスクがいいです", domain.RiskToleranceLow},
		{"積極的に攻めたい", domain.RiskToleranceHigh},
		{"バランス型で", domain.RiskToleranceMedium},
	}
	for _, tc := range tests {
		extracted := extractProfile(tc.text)
		if extracted.RiskTolerance == nil || *extracted.RiskTolerance != tc.want {
			t.Fatalf("%q: expected tolerance %s, got %+v", tc.text, tc.want, extracted.RiskTolerance)
		}
	}
}

func TestExtractInvestmentGoal(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"老後のために備えたい", "老後資金形成"},
		{"副収入がほしい", "副収入獲得"},
		{"資産を増やしたい", "資産形成・拡大"},
	}
	for _, tc := range tests {
		extracted := extractProfile(tc.text)
		if extracted.InvestmentGoal == nil || *extracted.InvestmentGoal != tc.want {
			t.Fatalf("%q: expected goal %s, got %+v", tc.text, tc.want, extracted.InvestmentGoal)
		}
	}
}

func TestExtractMultipleFieldsInOneMessage(t *testing.T) {
	extracted := extractProfile("年収600万円で初心者です。老後に備えて安定重視で考えています。")
	if extracted.AnnualIncome == nil || *extracted.AnnualIncome != 600 {
		t.Fatalf("income = %+v", extracted.AnnualIncome)
	}
	if extracted.ExperienceYears == nil || *extracted.ExperienceYears != 0 {
		t.Fatalf("experience = %+v", extracted.ExperienceYears)
	}
	if extracted.InvestmentGoal == nil || *extracted.InvestmentGoal != "老後資金形成" {
		t.Fatalf("goal = %+v", extracted.InvestmentGoal)
	}
	if extracted.RiskTolerance == nil || *extracted.RiskTolerance != domain.RiskToleranceLow {
		t.Fatalf("tolerance = %+v", extracted.RiskTolerance)
	}
}

func TestExtractNothing(t *testing.T) {
	extracted := extractProfile("こんにちは")
	if !extracted.IsEmpty() {
		t.Fatalf("expected no extraction, got %+v", extracted)
	}
}
