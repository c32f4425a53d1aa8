// Package investor derives a coarse investor tier and planning guidance from
// a partially known profile. Classification is a pure function of the
// profile: missing fields count as zero, nothing is persisted, and the same
// profile always yields the same result.
package investor

import (
	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

// Classify maps a profile to its tier. Rules are evaluated top-down with
// strictly nested thresholds, so exactly one tier matches any input.
func Classify(profile domain.InvestorProfile) domain.InvestorClassification {
	income := floatOrZero(profile.AnnualIncome)
	realEstate := floatOrZero(profile.RealEstateAssets)
	experience := intOrZero(profile.ExperienceYears)

	// プロ: 経験10年以上 OR 不動産資産10億以上 OR 年収3000万以上
	if experience >= 10 || realEstate >= 100000 || income >= 3000 {
		return domain.InvestorClassification{
			Level:                 domain.LevelPro,
			MaxPropertyPrice:      500000,
			RecommendedYieldRange: domain.YieldRange{Min: 4, Max: 12},
			RiskProfile:           "高リスク高リターン戦略可能",
			Characteristics: []string{
				"大型物件投資可能",
				"複雑な投資戦略対応",
				"税務最適化重視",
				"ポートフォリオ分散",
			},
		}
	}

	// セミプロ: 経験5年以上 AND (不動産資産3億以上 OR 年収1500万以上)
	if experience >= 5 && (realEstate >= 30000 || income >= 1500) {
		return domain.InvestorClassification{
			Level:                 domain.LevelSemiPro,
			MaxPropertyPrice:      30000,
			RecommendedYieldRange: domain.YieldRange{Min: 5, Max: 10},
			RiskProfile:           "中〜高リスク戦略",
			Characteristics: []string{
				"中大型物件対応",
				"複数物件運用",
				"節税対策活用",
				"キャッシュフロー重視",
			},
		}
	}

	// 経験者: 経験2年以上 AND (不動産資産1億以上 OR 年収800万以上)
	if experience >= 2 && (realEstate >= 10000 || income >= 800) {
		return domain.InvestorClassification{
			Level:                 domain.LevelExperienced,
			MaxPropertyPrice:      15000,
			RecommendedYieldRange: domain.YieldRange{Min: 6, Max: 9},
			RiskProfile:           "中リスク安定戦略",
			Characteristics: []string{
				"中型物件中心",
				"安定収益重視",
				"立地選定重要",
				"管理効率化",
			},
		}
	}

	return domain.InvestorClassification{
		Level:                 domain.LevelBeginner,
		MaxPropertyPrice:      10000,
		RecommendedYieldRange: domain.YieldRange{Min: 7, Max: 12},
		RiskProfile:           "低〜中リスク学習重視",
		Characteristics: []string{
			"小型物件から開始",
			"基礎知識習得重要",
			"管理会社活用推奨",
			"リスク管理重視",
		},
	}
}

// LevelDisplayName returns the Japanese label shown to users for a tier.
func LevelDisplayName(level domain.InvestorLevel) string {
	switch level {
	case domain.LevelBeginner:
		return "ビギナー投資家"
	case domain.LevelExperienced:
		return "経験豊富な投資家"
	case domain.LevelSemiPro:
		return "セミプロ投資家"
	case domain.LevelPro:
		return "プロ投資家"
	default:
		return string(level)
	}
}

// ProfileCompleteness reports, in percent, how many of the six planning
// fields are known.
func ProfileCompleteness(profile domain.InvestorProfile) int {
	total := 6
	completed := 0
	if profile.AnnualIncome != nil {
		completed++
	}
	if profile.TotalAssets != nil {
		completed++
	}
	if profile.ExperienceYears != nil {
		completed++
	}
	if profile.InvestmentGoal != nil {
		completed++
	}
	if profile.RiskTolerance != nil {
		completed++
	}
	if profile.BudgetRange != nil {
		completed++
	}
	return int(float64(completed)/float64(total)*100 + 0.5)
}

// Validate checks the profile for the required planning fields and flags
// combinations a human advisor would question.
func Validate(profile domain.InvestorProfile) domain.ProfileValidation {
	missing := make([]string, 0, 3)
	warnings := make([]string, 0, 2)

	if profile.AnnualIncome == nil {
		missing = append(missing, "年収")
	}
	if profile.ExperienceYears == nil {
		missing = append(missing, "投資経験年数")
	}
	if profile.InvestmentGoal == nil {
		missing = append(missing, "投資目標")
	}

	if profile.AnnualIncome != nil && profile.BudgetRange != nil &&
		profile.BudgetRange.Max > *profile.AnnualIncome*10 {
		warnings = append(warnings, "予算が年収の10倍を超えています。融資審査が困難な可能性があります。")
	}
	if profile.ExperienceYears != nil && *profile.ExperienceYears == 0 &&
		profile.BudgetRange != nil && profile.BudgetRange.Max > 5000 {
		warnings = append(warnings, "初心者の方には5000万円以下の物件から始めることをお勧めします。")
	}

	return domain.ProfileValidation{
		IsValid:       len(missing) == 0,
		MissingFields: missing,
		Warnings:      warnings,
	}
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
