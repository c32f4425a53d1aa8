package conversation

import (
	"fmt"
	"strings"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/investor"
)

const greetingPrompt = `こんにちは！AI不動産投資アドバイザーです 🏢✨

あなたの投資目標に最適な戦略と物件をご提案するため、まずは簡単な質問にお答えください。

**まず最初に、現在の状況を教えてください：**
1. 年収はどのくらいでしょうか？
2. 不動産投資の経験はありますか？
3. どのような投資目標をお持ちですか？

ざっくりとした内容で構いませんので、お気軽にお聞かせください！`

// FallbackPrompt is used in phases without a scripted question.
const FallbackPrompt = "投資に関してご質問をお聞かせください。"

// profileField identifies one required profiling answer, asked in order.
type profileField int

const (
	fieldAnnualIncome profileField = iota
	fieldExperienceYears
	fieldInvestmentGoal
)

var profilingQuestions = map[profileField]string{
	fieldAnnualIncome:    "年収について詳しく教えてください。（例：600万円、1200万円など）",
	fieldExperienceYears: "不動産投資の経験年数を教えてください。初心者の場合は0年で構いません。",
	fieldInvestmentGoal:  "投資の目標は何でしょうか？（例：老後資金、副収入、資産形成など）",
}

// missingProfileFields returns the required fields still unknown, in the
// fixed asking order. Presence is a nil check: an explicit zero answer
// counts as answered.
func missingProfileFields(profile domain.InvestorProfile) []profileField {
	missing := make([]profileField, 0, 3)
	if profile.AnnualIncome == nil {
		missing = append(missing, fieldAnnualIncome)
	}
	if profile.ExperienceYears == nil {
		missing = append(missing, fieldExperienceYears)
	}
	if profile.InvestmentGoal == nil {
		missing = append(missing, fieldInvestmentGoal)
	}
	return missing
}

func strategyPrompt(cls domain.InvestorClassification) string {
	return fmt.Sprintf(`**あなたの投資家プロファイル分析が完了しました！**

🎯 **投資家レベル**: %s
💰 **推奨物件価格帯**: %.0f万円以下
📊 **目標利回り**: %.0f-%.0f%%
🛡️ **リスクプロファイル**: %s

**あなたの特徴:**
%s

どのような物件を探したいですか？エリアや具体的な条件があれば教えてください！`,
		investor.LevelDisplayName(cls.Level),
		cls.MaxPropertyPrice,
		cls.RecommendedYieldRange.Min,
		cls.RecommendedYieldRange.Max,
		cls.RiskProfile,
		bulletList(cls.Characteristics),
	)
}

func propertySearchPrompt(cls domain.InvestorClassification) string {
	return fmt.Sprintf(`%s向けの物件をお探しですね！

**推奨戦略:**
%s

具体的にどのような物件情報をお探しでしょうか？
- エリア（札幌、その他の希望地域）
- 物件タイプ（ワンルーム、ファミリー向けなど）
- 特別な条件（駅近、築年数など）`,
		investor.LevelDisplayName(cls.Level),
		bulletList(cls.Characteristics),
	)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "• "+item)
	}
	return strings.Join(lines, "\n")
}
