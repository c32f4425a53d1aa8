package domain

// RiskTolerance is the investor's stated appetite for risk.
type RiskTolerance string

const (
	RiskToleranceLow    RiskTolerance = "low"
	RiskToleranceMedium RiskTolerance = "medium"
	RiskToleranceHigh   RiskTolerance = "high"
)

// TimeHorizon is the intended holding period for investments.
type TimeHorizon string

const (
	TimeHorizonShort  TimeHorizon = "short"
	TimeHorizonMedium TimeHorizon = "medium"
	TimeHorizonLong   TimeHorizon = "long"
)

// BudgetRange is a purchase budget window in units of 10,000 JPY.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// InvestorProfile accumulates what is known about one investor across a
// conversation. Every field is optional: a nil pointer means "unknown", and
// consumers must treat unknown as the most conservative value rather than an
// error. Monetary amounts are in units of 10,000 JPY.
type InvestorProfile struct {
	AnnualIncome     *float64 `json:"annual_income,omitempty"`
	TotalAssets      *float64 `json:"total_assets,omitempty"`
	TotalDebt        *float64 `json:"total_debt,omitempty"`
	RealEstateAssets *float64 `json:"real_estate_assets,omitempty"`
	RealEstateDebt   *float64 `json:"real_estate_debt,omitempty"`
	ExperienceYears  *int     `json:"experience_years,omitempty"`

	InvestmentGoal     *string        `json:"investment_goal,omitempty"`
	RiskTolerance      *RiskTolerance `json:"risk_tolerance,omitempty"`
	TimeHorizon        *TimeHorizon   `json:"time_horizon,omitempty"`
	PreferredLocations []string       `json:"preferred_locations,omitempty"`
	BudgetRange        *BudgetRange   `json:"budget_range,omitempty"`
	TargetYield        *float64       `json:"target_yield,omitempty"`
}

// Merge overlays the non-nil fields of update onto the profile. Later updates
// win for the same field.
func (p *InvestorProfile) Merge(update InvestorProfile) {
	if update.AnnualIncome != nil {
		p.AnnualIncome = update.AnnualIncome
	}
	if update.TotalAssets != nil {
		p.TotalAssets = update.TotalAssets
	}
	if update.TotalDebt != nil {
		p.TotalDebt = update.TotalDebt
	}
	if update.RealEstateAssets != nil {
		p.RealEstateAssets = update.RealEstateAssets
	}
	if update.RealEstateDebt != nil {
		p.RealEstateDebt = update.RealEstateDebt
	}
	if update.ExperienceYears != nil {
		p.ExperienceYears = update.ExperienceYears
	}
	if update.InvestmentGoal != nil {
		p.InvestmentGoal = update.InvestmentGoal
	}
	if update.RiskTolerance != nil {
		p.RiskTolerance = update.RiskTolerance
	}
	if update.TimeHorizon != nil {
		p.TimeHorizon = update.TimeHorizon
	}
	if len(update.PreferredLocations) > 0 {
		p.PreferredLocations = update.PreferredLocations
	}
	if update.BudgetRange != nil {
		p.BudgetRange = update.BudgetRange
	}
	if update.TargetYield != nil {
		p.TargetYield = update.TargetYield
	}
}

// IsEmpty reports whether update carries no extracted fields.
func (p InvestorProfile) IsEmpty() bool {
	return p.AnnualIncome == nil &&
		p.TotalAssets == nil &&
		p.TotalDebt == nil &&
		p.RealEstateAssets == nil &&
		p.RealEstateDebt == nil &&
		p.ExperienceYears == nil &&
		p.InvestmentGoal == nil &&
		p.RiskTolerance == nil &&
		p.TimeHorizon == nil &&
		len(p.PreferredLocations) == 0 &&
		p.BudgetRange == nil &&
		p.TargetYield == nil
}

// InvestorLevel is the coarse tier assigned by the classifier.
type InvestorLevel string

const (
	LevelBeginner    InvestorLevel = "beginner"
	LevelExperienced InvestorLevel = "experienced"
	LevelSemiPro     InvestorLevel = "semi-pro"
	LevelPro         InvestorLevel = "pro"
)

// YieldRange is a recommended gross-yield band in percent.
type YieldRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// InvestorClassification is derived from a profile on demand and never
// persisted. MaxPropertyPrice is in units of 10,000 JPY.
type InvestorClassification struct {
	Level                 InvestorLevel `json:"level"`
	MaxPropertyPrice      float64       `json:"max_property_price"`
	RecommendedYieldRange YieldRange    `json:"recommended_yield_range"`
	RiskProfile           string        `json:"risk_profile"`
	Characteristics       []string      `json:"characteristics"`
}

// ProfileValidation reports required fields still missing from a profile plus
// advisory warnings about implausible combinations.
type ProfileValidation struct {
	IsValid       bool     `json:"is_valid"`
	MissingFields []string `json:"missing_fields"`
	Warnings      []string `json:"warnings"`
}
