package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/investor"
)

// scriptedReply assembles the non-generative reply: the phase prompt,
// property cards for any recommendations, and the profile analysis block.
func scriptedReply(prompt string, matches []domain.PropertyMatch, classification *domain.InvestorClassification) string {
	var b strings.Builder
	b.WriteString(prompt)

	if len(matches) > 0 {
		b.WriteString("\n\n**🎯 あなたにお勧めの物件**\n\n")
		cards := make([]string, 0, len(matches))
		for _, match := range matches {
			cards = append(cards, propertyCard(match))
		}
		b.WriteString(strings.Join(cards, "\n---\n"))
	}

	if classification != nil {
		b.WriteString("\n\n")
		b.WriteString(profileAnalysis(*classification))
	}

	return b.String()
}

func propertyCard(match domain.PropertyMatch) string {
	property := match.Property

	var b strings.Builder
	fmt.Fprintf(&b, "\n**🏢 %s**\n", property.Name)
	fmt.Fprintf(&b, "📍 %s%s (%s徒歩%d分)\n",
		property.Location.City, property.Location.Ward,
		property.Location.NearestStation, property.Location.WalkingMinutes)
	fmt.Fprintf(&b, "💰 価格: %s万円\n", groupDigits(property.Price))
	fmt.Fprintf(&b, "📊 利回り: 表面%s%% / 実質%s%%\n",
		formatNumber(property.GrossYield), formatNumber(property.NetYield))
	fmt.Fprintf(&b, "🏠 %s / %s㎡\n", property.Layout, formatNumber(property.FloorArea))
	fmt.Fprintf(&b, "⭐ マッチ度: %d点/100点\n", match.MatchScore)

	b.WriteString("\n**推薦理由:**\n")
	b.WriteString(bulletLines(match.Reasons))

	highlights := property.InvestmentHighlights
	if len(highlights) > 2 {
		highlights = highlights[:2]
	}
	b.WriteString("\n\n**投資ポイント:**\n")
	b.WriteString(bulletLines(highlights))

	if len(match.Warnings) > 0 {
		fmt.Fprintf(&b, "\n\n⚠️ %s", match.Warnings[0])
	}
	b.WriteString("\n")
	return b.String()
}

func profileAnalysis(cls domain.InvestorClassification) string {
	return fmt.Sprintf(`**📊 あなたの投資家プロファイル**
🎯 レベル: %s
💰 推奨物件価格: %s万円以下
📈 目標利回り: %s-%s%%

**特徴:**
%s`,
		investor.LevelDisplayName(cls.Level),
		groupDigits(cls.MaxPropertyPrice),
		formatNumber(cls.RecommendedYieldRange.Min),
		formatNumber(cls.RecommendedYieldRange.Max),
		bulletLines(cls.Characteristics),
	)
}

// advisorSystemPrompt builds the instruction block an external model receives,
// carrying the profile accumulated so far and the current flow position.
func advisorSystemPrompt(state domain.ConversationState, classification *domain.InvestorClassification) string {
	level := "unknown"
	if classification != nil {
		level = string(classification.Level)
	}

	profile := state.Profile
	income := "unknown"
	if profile.AnnualIncome != nil {
		income = formatNumber(*profile.AnnualIncome)
	}
	experience := "unknown"
	if profile.ExperienceYears != nil {
		experience = strconv.Itoa(*profile.ExperienceYears)
	}
	goal := "unknown"
	if profile.InvestmentGoal != nil {
		goal = *profile.InvestmentGoal
	}
	budget := "unknown"
	if profile.BudgetRange != nil {
		budget = fmt.Sprintf("%s-%s万円", formatNumber(profile.BudgetRange.Min), formatNumber(profile.BudgetRange.Max))
	}

	return fmt.Sprintf(`あなたは日本の不動産投資に特化した専門のAIアドバイザーです。

【ユーザープロファイル】
- 投資家レベル: %s
- 年収: %s万円
- 投資経験: %s年
- 投資目標: %s
- 予算範囲: %s

【現在の会話フェーズ】
%s (ステップ %d)

【専門分野】
- 投資家レベル別の戦略提案
- 札幌・北海道不動産市場分析
- 個人最適化された物件推薦
- リスク評価と管理戦略
- 具体的な収支シミュレーション

【回答スタイル】
1. ユーザーのレベルに合わせた説明
2. 会話の流れを考慮した自然な対話
3. 具体的な数値と根拠を提示
4. リスクの透明性を重視
5. 次のステップを明確に提案

【重要事項】
- 投資判断は最終的にユーザー自身の責任
- 法的・税務的詳細は専門家相談を推奨
- 市場予測の不確実性を明示`,
		level, income, experience, goal, budget, state.Phase, state.Step)
}

func bulletLines(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}

// formatNumber renders a float without a forced decimal point: 6.2 stays
// 6.2, 28000 stays 28000.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupDigits renders an amount with thousands separators, 12000 -> 12,000.
func groupDigits(v float64) string {
	s := formatNumber(v)
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if negative {
		out = "-" + out
	}
	if hasFrac {
		out += "." + fracPart
	}
	return out
}
