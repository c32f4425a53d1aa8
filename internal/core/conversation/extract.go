package conversation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

var (
	amountPattern     = regexp.MustCompile(`(\d+)万円`)
	incomePattern     = regexp.MustCompile(`年収[^\d]*(\d+)`)
	budgetPattern     = regexp.MustCompile(`予算[^\d]*(\d+)`)
	experiencePattern = regexp.MustCompile(`(\d+)年|経験[^\d]*(\d+)`)
)

// extractProfile pulls profile fields out of free text with keyword
// heuristics. Each field is extracted independently; a bare amount like
// 「2000万円」 with neither 年収 nor 予算 nearby is ambiguous and feeds both
// the income and the budget field, matching the behavior users of the
// original flow rely on.
func extractProfile(text string) domain.InvestorProfile {
	var extracted domain.InvestorProfile

	hasIncomeKeyword := strings.Contains(text, "年収")
	hasBudgetKeyword := strings.Contains(text, "予算")

	if amount, ok := firstAmount(text, hasIncomeKeyword, incomePattern); ok {
		if hasIncomeKeyword || !hasBudgetKeyword {
			income := float64(amount)
			extracted.AnnualIncome = &income
		}
	}

	if amount, ok := firstAmount(text, hasBudgetKeyword, budgetPattern); ok {
		if hasBudgetKeyword || !hasIncomeKeyword {
			budget := float64(amount)
			extracted.BudgetRange = &domain.BudgetRange{Min: budget * 0.8, Max: budget * 1.2}
		}
	}

	if years, ok := extractExperience(text); ok {
		extracted.ExperienceYears = &years
	}

	if tolerance, ok := extractRiskTolerance(text); ok {
		extracted.RiskTolerance = &tolerance
	}

	if goal, ok := extractGoal(text); ok {
		extracted.InvestmentGoal = &goal
	}

	return extracted
}

// firstAmount returns the first monetary amount in the text, preferring the
// keyworded pattern when its keyword is present.
func firstAmount(text string, keyworded bool, pattern *regexp.Regexp) (int, bool) {
	if m := amountPattern.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	if keyworded {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return atoi(m[1])
		}
	}
	return 0, false
}

func extractExperience(text string) (int, bool) {
	if strings.Contains(text, "初心者") || strings.Contains(text, "未経験") {
		return 0, true
	}
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	return atoi(digits)
}

func extractRiskTolerance(text string) (domain.RiskTolerance, bool) {
	switch {
	case strings.Contains(text, "安定") || strings.Contains(text, "低リスク"):
		return domain.RiskToleranceLow, true
	case strings.Contains(text, "積極") || strings.Contains(text, "高リスク"):
		return domain.RiskToleranceHigh, true
	case strings.Contains(text, "バランス") || strings.Contains(text, "中リスク"):
		return domain.RiskToleranceMedium, true
	default:
		return "", false
	}
}

func extractGoal(text string) (string, bool) {
	switch {
	case strings.Contains(text, "老後") || strings.Contains(text, "年金"):
		return "老後資金形成", true
	case strings.Contains(text, "副収入") || strings.Contains(text, "収入"):
		return "副収入獲得", true
	case strings.Contains(text, "資産") || strings.Contains(text, "築"):
		return "資産形成・拡大", true
	default:
		return "", false
	}
}

func atoi(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
