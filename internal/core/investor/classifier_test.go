package investor

import (
	"reflect"
	"testing"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

func TestClassifyEmptyProfileIsBeginner(t *testing.T) {
	cls := Classify(domain.InvestorProfile{})
	if cls.Level != domain.LevelBeginner {
		t.Fatalf("expected beginner, got %s", cls.Level)
	}
	if cls.MaxPropertyPrice != 10000 {
		t.Fatalf("expected max price 10000, got %v", cls.MaxPropertyPrice)
	}
	if cls.RecommendedYieldRange.Min != 7 || cls.RecommendedYieldRange.Max != 12 {
		t.Fatalf("expected yield band 7-12, got %v", cls.RecommendedYieldRange)
	}
}

func TestClassifyTenYearsExperienceIsAlwaysPro(t *testing.T) {
	profiles := []domain.InvestorProfile{
		{ExperienceYears: iptr(10)},
		{ExperienceYears: iptr(25), AnnualIncome: fptr(300)},
		{ExperienceYears: iptr(10), RealEstateAssets: fptr(1)},
	}
	for _, p := range profiles {
		if cls := Classify(p); cls.Level != domain.LevelPro {
			t.Fatalf("profile %+v: expected pro, got %s", p, cls.Level)
		}
	}
}

func TestClassifyTierRules(t *testing.T) {
	tests := []struct {
		name    string
		profile domain.InvestorProfile
		want    domain.InvestorLevel
	}{
		{"pro by real estate assets", domain.InvestorProfile{RealEstateAssets: fptr(100000)}, domain.LevelPro},
		{"pro by income", domain.InvestorProfile{AnnualIncome: fptr(3000)}, domain.LevelPro},
		{"semi-pro", domain.InvestorProfile{ExperienceYears: iptr(5), AnnualIncome: fptr(1500)}, domain.LevelSemiPro},
		{"semi-pro needs experience", domain.InvestorProfile{ExperienceYears: iptr(4), AnnualIncome: fptr(1500)}, domain.LevelExperienced},
		{"experienced", domain.InvestorProfile{ExperienceYears: iptr(2), AnnualIncome: fptr(800)}, domain.LevelExperienced},
		{"high income alone stays beginner", domain.InvestorProfile{AnnualIncome: fptr(1000)}, domain.LevelBeginner},
		{"experience alone stays beginner", domain.InvestorProfile{ExperienceYears: iptr(3)}, domain.LevelBeginner},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if cls := Classify(tc.profile); cls.Level != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, cls.Level)
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	profile := domain.InvestorProfile{
		AnnualIncome:    fptr(600),
		ExperienceYears: iptr(0),
		BudgetRange:     &domain.BudgetRange{Min: 1500, Max: 2200},
	}
	first := Classify(profile)
	second := Classify(profile)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestProfileCompleteness(t *testing.T) {
	if got := ProfileCompleteness(domain.InvestorProfile{}); got != 0 {
		t.Fatalf("empty profile completeness = %d, want 0", got)
	}

	half := domain.InvestorProfile{
		AnnualIncome:    fptr(600),
		ExperienceYears: iptr(3),
		InvestmentGoal:  sptr("副収入獲得"),
	}
	if got := ProfileCompleteness(half); got != 50 {
		t.Fatalf("half profile completeness = %d, want 50", got)
	}
}

func TestValidateFlagsMissingAndWarnings(t *testing.T) {
	result := Validate(domain.InvestorProfile{})
	if result.IsValid {
		t.Fatalf("empty profile must be invalid")
	}
	if len(result.MissingFields) != 3 {
		t.Fatalf("expected 3 missing fields, got %v", result.MissingFields)
	}

	overreach := domain.InvestorProfile{
		AnnualIncome:    fptr(500),
		ExperienceYears: iptr(0),
		InvestmentGoal:  sptr("資産形成・拡大"),
		BudgetRange:     &domain.BudgetRange{Min: 6000, Max: 8000},
	}
	result = Validate(overreach)
	if !result.IsValid {
		t.Fatalf("expected valid profile, missing %v", result.MissingFields)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected budget and beginner warnings, got %v", result.Warnings)
	}
}

func TestValidateZeroExperienceCountsAsAnswered(t *testing.T) {
	profile := domain.InvestorProfile{ExperienceYears: iptr(0)}
	result := Validate(profile)
	for _, field := range result.MissingFields {
		if field == "投資経験年数" {
			t.Fatalf("explicit zero experience must not be reported missing")
		}
	}
}
