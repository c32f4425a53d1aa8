package domain

// RiskLevel grades one risk dimension of a property.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PropertyType is the building category of a listing.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyMansion   PropertyType = "mansion"
	PropertyHouse     PropertyType = "house"
	PropertyBuilding  PropertyType = "building"
)

type PropertyLocation struct {
	Prefecture     string `json:"prefecture" yaml:"prefecture"`
	City           string `json:"city" yaml:"city"`
	Ward           string `json:"ward,omitempty" yaml:"ward,omitempty"`
	NearestStation string `json:"nearest_station" yaml:"nearest_station"`
	WalkingMinutes int    `json:"walking_minutes" yaml:"walking_minutes"`
}

type FutureRisk struct {
	MarketRisk      RiskLevel `json:"market_risk" yaml:"market_risk"`
	LiquidityRisk   RiskLevel `json:"liquidity_risk" yaml:"liquidity_risk"`
	MaintenanceRisk RiskLevel `json:"maintenance_risk" yaml:"maintenance_risk"`
}

// Property is one catalog listing. The catalog is fixed at process start and
// never mutated; prices and rents are in units of 10,000 JPY.
type Property struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Location PropertyLocation `json:"location" yaml:"location"`

	Price       float64 `json:"price" yaml:"price"`
	MonthlyRent float64 `json:"monthly_rent" yaml:"monthly_rent"`
	YearlyRent  float64 `json:"yearly_rent" yaml:"yearly_rent"`
	GrossYield  float64 `json:"gross_yield" yaml:"gross_yield"`
	NetYield    float64 `json:"net_yield" yaml:"net_yield"`

	PropertyType PropertyType `json:"property_type" yaml:"property_type"`
	BuildingAge  int          `json:"building_age" yaml:"building_age"`
	FloorArea    float64      `json:"floor_area" yaml:"floor_area"`
	Layout       string       `json:"layout" yaml:"layout"`
	Features     []string     `json:"features,omitempty" yaml:"features,omitempty"`

	ManagementFee float64 `json:"management_fee" yaml:"management_fee"`
	RepairReserve float64 `json:"repair_reserve" yaml:"repair_reserve"`
	OccupancyRate float64 `json:"occupancy_rate" yaml:"occupancy_rate"`

	FutureRisk FutureRisk `json:"future_risk" yaml:"future_risk"`

	InvestmentHighlights []string `json:"investment_highlights,omitempty" yaml:"investment_highlights,omitempty"`
	ConcernPoints        []string `json:"concern_points,omitempty" yaml:"concern_points,omitempty"`
}

// PropertyMatch is one ranked recommendation for a profile.
type PropertyMatch struct {
	Property       Property `json:"property"`
	MatchScore     int      `json:"match_score"`
	Reasons        []string `json:"reasons"`
	Warnings       []string `json:"warnings"`
	Recommendation string   `json:"recommendation"`
}

// PropertyAnalysis is a cash-flow breakdown for one listing. When the annual
// net cash flow is zero or negative the purchase price is never recovered
// from rent, so PaybackRecoverable is false and PaybackYears is zero instead
// of an infinite or negative period.
type PropertyAnalysis struct {
	CashFlow           float64  `json:"cash_flow"`
	ROI                float64  `json:"roi"`
	PaybackYears       float64  `json:"payback_years"`
	PaybackRecoverable bool     `json:"payback_recoverable"`
	RiskAssessment     string   `json:"risk_assessment"`
	Recommendations    []string `json:"recommendations"`
}
