// Package matching filters and scores the property catalog against an
// investor profile. Scoring is deterministic: a fixed set of weighted
// sub-scores, each awarded only when its condition holds.
package matching

import (
	"fmt"
	"sort"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/investor"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
)

const defaultLimit = 3

type Matcher struct {
	catalog ports.PropertyCatalog
}

func New(catalog ports.PropertyCatalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// Recommend returns up to limit catalog properties ranked by match score.
// Properties priced above the profile's tier ceiling never appear.
func (m *Matcher) Recommend(profile domain.InvestorProfile, limit int) []domain.PropertyMatch {
	if limit <= 0 {
		limit = defaultLimit
	}
	classification := investor.Classify(profile)

	matches := make([]domain.PropertyMatch, 0, limit)
	for _, property := range m.catalog.All() {
		if !passesTierFilter(property, classification) {
			continue
		}
		matches = append(matches, scoreMatch(property, profile, classification))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func passesTierFilter(property domain.Property, cls domain.InvestorClassification) bool {
	if property.Price > cls.MaxPropertyPrice {
		return false
	}

	switch cls.Level {
	case domain.LevelBeginner:
		return property.Price <= 10000 &&
			property.FutureRisk.MarketRisk != domain.RiskHigh &&
			property.OccupancyRate >= 90
	case domain.LevelExperienced:
		return property.Price <= 15000 && property.NetYield >= 3.0
	case domain.LevelSemiPro:
		return property.Price <= 30000 && property.GrossYield >= 4.0
	default:
		return true
	}
}

func scoreMatch(property domain.Property, profile domain.InvestorProfile, cls domain.InvestorClassification) domain.PropertyMatch {
	score := 0
	reasons := make([]string, 0, 6)
	warnings := make([]string, 0, 2)

	// 価格適合性（30点）
	if profile.BudgetRange != nil {
		switch {
		case property.Price >= profile.BudgetRange.Min && property.Price <= profile.BudgetRange.Max:
			score += 30
			reasons = append(reasons, "予算範囲に適合")
		case property.Price <= profile.BudgetRange.Max*1.1:
			score += 20
			reasons = append(reasons, "予算にほぼ適合")
		default:
			warnings = append(warnings, "予算を超過している可能性")
		}
	}

	// 利回り適合性（25点）
	targetYield := cls.RecommendedYieldRange.Min
	if profile.TargetYield != nil {
		targetYield = *profile.TargetYield
	}
	switch {
	case property.GrossYield >= targetYield:
		score += 25
		reasons = append(reasons, fmt.Sprintf("目標利回り%.0f%%を達成", targetYield))
	case property.GrossYield >= targetYield*0.8:
		score += 15
		reasons = append(reasons, "利回りがほぼ目標に到達")
	}

	// リスク適合性（20点）
	tolerance := domain.RiskToleranceHigh
	if profile.RiskTolerance != nil {
		tolerance = *profile.RiskTolerance
	}
	if riskCompatible(property, tolerance) {
		score += 20
		reasons = append(reasons, "リスクレベルが適合")
	} else {
		warnings = append(warnings, "リスクレベルが許容範囲を超える可能性")
	}

	// 立地評価（15点）
	switch {
	case property.Location.WalkingMinutes <= 10:
		score += 15
		reasons = append(reasons, "駅近の好立地")
	case property.Location.WalkingMinutes <= 15:
		score += 10
		reasons = append(reasons, "アクセス良好")
	}

	// 稼働率（10点）
	switch {
	case property.OccupancyRate >= 95:
		score += 10
		reasons = append(reasons, "高い稼働率")
	case property.OccupancyRate >= 90:
		score += 7
		reasons = append(reasons, "安定した稼働率")
	}

	score += tierBonus(property, cls.Level)
	if score > 100 {
		score = 100
	}

	return domain.PropertyMatch{
		Property:       property,
		MatchScore:     score,
		Reasons:        reasons,
		Warnings:       warnings,
		Recommendation: recommendation(cls.Level, score),
	}
}

func riskCompatible(property domain.Property, tolerance domain.RiskTolerance) bool {
	score := riskScore(property)
	switch tolerance {
	case domain.RiskToleranceLow:
		return score <= 3
	case domain.RiskToleranceMedium:
		return score <= 6
	case domain.RiskToleranceHigh:
		return score <= 9
	default:
		return true
	}
}

// riskScore sums the three risk dimensions, low=1 to high=3, range 3-9.
func riskScore(property domain.Property) int {
	return riskPoints(property.FutureRisk.MarketRisk) +
		riskPoints(property.FutureRisk.LiquidityRisk) +
		riskPoints(property.FutureRisk.MaintenanceRisk)
}

func riskPoints(level domain.RiskLevel) int {
	switch level {
	case domain.RiskLow:
		return 1
	case domain.RiskMedium:
		return 2
	case domain.RiskHigh:
		return 3
	default:
		return 2
	}
}

func tierBonus(property domain.Property, level domain.InvestorLevel) int {
	switch level {
	case domain.LevelBeginner:
		if property.FutureRisk.MarketRisk == domain.RiskLow {
			return 5
		}
	case domain.LevelExperienced:
		if property.NetYield >= 3.5 {
			return 5
		}
	case domain.LevelSemiPro:
		if property.GrossYield >= 5.0 {
			return 5
		}
	case domain.LevelPro:
		if property.GrossYield >= 6.0 {
			return 5
		}
	}
	return 0
}

func recommendation(level domain.InvestorLevel, score int) string {
	name := investor.LevelDisplayName(level)
	switch {
	case score >= 80:
		return fmt.Sprintf("%sの方に強くお勧めします。条件がよく合致しています。", name)
	case score >= 60:
		return fmt.Sprintf("%sの方に適した物件です。検討価値があります。", name)
	case score >= 40:
		return "条件次第では検討できる物件です。詳細な分析をお勧めします。"
	default:
		return "現在の条件にはあまり適さない可能性があります。"
	}
}

// Analyze computes the annual cash-flow picture for one listing. A listing
// whose expenses swallow the rent gets PaybackRecoverable=false instead of a
// meaningless infinite payback period.
func Analyze(property domain.Property) domain.PropertyAnalysis {
	annualExpenses := (property.ManagementFee + property.RepairReserve) * 12
	netCashFlow := property.YearlyRent - annualExpenses

	roi := 0.0
	if property.Price > 0 {
		roi = netCashFlow / property.Price * 100
	}

	paybackYears := 0.0
	recoverable := netCashFlow > 0
	if recoverable {
		paybackYears = property.Price / netCashFlow
	}

	level := riskScore(property)
	assessment := "高リスク"
	switch {
	case level <= 3:
		assessment = "低リスク"
	case level <= 6:
		assessment = "中リスク"
	}

	recommendations := []string{
		fmt.Sprintf("年間キャッシュフロー: %.1f万円", netCashFlow),
		fmt.Sprintf("実質ROI: %.2f%%", roi),
	}
	if recoverable {
		recommendations = append(recommendations, fmt.Sprintf("投資回収期間: %.1f年", paybackYears))
	} else {
		recommendations = append(recommendations, "投資回収期間: 賃料収入では回収できません")
	}
	recommendations = append(recommendations, property.InvestmentHighlights...)

	return domain.PropertyAnalysis{
		CashFlow:           netCashFlow,
		ROI:                roi,
		PaybackYears:       paybackYears,
		PaybackRecoverable: recoverable,
		RiskAssessment:     assessment,
		Recommendations:    recommendations,
	}
}
