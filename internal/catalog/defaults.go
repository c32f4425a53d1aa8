package catalog

import "github.com/fudosan-labs/estate-advisor/internal/core/domain"

// sampleProperties returns the built-in Sapporo sample listings, one or two
// per investor tier.
func sampleProperties() []domain.Property {
	return []domain.Property{
		{
			ID:   "beginner_001",
			Name: "札幌駅前ワンルームマンション",
			Location: domain.PropertyLocation{
				Prefecture:     "北海道",
				City:           "札幌市",
				Ward:           "北区",
				NearestStation: "JR札幌駅",
				WalkingMinutes: 5,
			},
			Price:         1800,
			MonthlyRent:   6.5,
			YearlyRent:    78,
			GrossYield:    4.3,
			NetYield:      3.1,
			PropertyType:  domain.PropertyMansion,
			BuildingAge:   8,
			FloorArea:     25.2,
			Layout:        "1K",
			Features:      []string{"オートロック", "宅配ボックス", "エアコン", "IHコンロ"},
			ManagementFee: 0.8,
			RepairReserve: 0.3,
			OccupancyRate: 95,
			FutureRisk: domain.FutureRisk{
				MarketRisk:      domain.RiskLow,
				LiquidityRisk:   domain.RiskLow,
				MaintenanceRisk: domain.RiskLow,
			},
			InvestmentHighlights: []string{
				"札幌駅徒歩5分の好立地",
				"単身者需要が安定",
				"管理会社の実績良好",
				"将来の資産価値維持期待",
			},
			ConcernPoints: []string{
				"利回りは控えめ",
				"競合物件が多い立地",
			},
		},
		{
			ID:   "beginner_002",
			Name: "豊平区ファミリーマンション",
			Location: domain.PropertyLocation{
				Prefecture:     "北海道",
				City:           "札幌市",
				Ward:           "豊平区",
				NearestStation: "地下鉄東豊線豊平公園駅",
				WalkingMinutes: 8,
			},
			Price:         2800,
			MonthlyRent:   9.8,
			YearlyRent:    117.6,
			GrossYield:    4.2,
			NetYield:      2.9,
			PropertyType:  domain.PropertyMansion,
			BuildingAge:   12,
			FloorArea:     65.4,
			Layout:        "3LDK",
			Features:      []string{"ファミリー向け", "駐車場付き", "南向き", "床暖房"},
			ManagementFee: 1.2,
			RepairReserve: 0.6,
			OccupancyRate: 92,
			FutureRisk: domain.FutureRisk{
				MarketRisk:      domain.RiskLow,
				LiquidityRisk:   domain.RiskMedium,
				MaintenanceRisk: domain.RiskMedium,
			},
			InvestmentHighlights: []string{
				"ファミリー需要が安定",
				"住環境良好",
				"駐車場確保済み",
				"学校・公園近く",
			},
			ConcernPoints: []string{
				"空室期間が長期化リスク",
				"修繕費用が高額になる可能性",
			},
		},
		{
			ID:   "experienced_001",
			Name: "中央区投資用マンション",
			Location: domain.PropertyLocation{
				Prefecture:     "北海道",
				City:           "札幌市",
				Ward:           "中央区",
				NearestStation: "地下鉄南北線大通駅",
				WalkingMinutes: 7,
			},
			Price:         4500,
			MonthlyRent:   18.5,
			YearlyRent:    222,
			GrossYield:    4.9,
			NetYield:      3.6,
			PropertyType:  domain.PropertyMansion,
			BuildingAge:   15,
			FloorArea:     45.8,
			Layout:        "1LDK",
			Features:      []string{"都心立地", "リノベーション済み", "ペット可", "24時間管理"},
			ManagementFee: 1.5,
			RepairReserve: 0.8,
			OccupancyRate: 98,
			FutureRisk: domain.FutureRisk{
				MarketRisk:      domain.RiskLow,
				LiquidityRisk:   domain.RiskLow,
				MaintenanceRisk: domain.RiskMedium,
			},
			InvestmentHighlights: []string{
				"都心部の希少立地",
				"高い稼働率維持",
				"リノベーション効果",
				"資産価値の安定性",
			},
			ConcernPoints: []string{
				"初期投資額が高め",
				"管理費負担大",
			},
		},
		{
			ID:   "semipro_001",
			Name: "札幌駅前商業ビル",
			Location: domain.PropertyLocation{
				Prefecture:     "北海道",
				City:           "札幌市",
				Ward:           "中央区",
				NearestStation: "JR札幌駅",
				WalkingMinutes: 3,
			},
			Price:         12000,
			MonthlyRent:   55,
			YearlyRent:    660,
			GrossYield:    5.5,
			NetYield:      4.1,
			PropertyType:  domain.PropertyBuilding,
			BuildingAge:   20,
			FloorArea:     180,
			Layout:        "事務所",
			Features:      []string{"商業地域", "複数テナント", "エレベーター", "駐車場"},
			ManagementFee: 3.2,
			RepairReserve: 1.8,
			OccupancyRate: 89,
			FutureRisk: domain.FutureRisk{
				MarketRisk:      domain.RiskMedium,
				LiquidityRisk:   domain.RiskMedium,
				MaintenanceRisk: domain.RiskHigh,
			},
			InvestmentHighlights: []string{
				"札幌中心部の商業ビル",
				"複数テナントでリスク分散",
				"高利回り実現",
				"将来開発余地あり",
			},
			ConcernPoints: []string{
				"テナント空室リスク",
				"大規模修繕費用",
				"管理の複雑さ",
			},
		},
		{
			ID:   "pro_001",
			Name: "すすきの一棟マンション",
			Location: domain.PropertyLocation{
				Prefecture:     "北海道",
				City:           "札幌市",
				Ward:           "中央区",
				NearestStation: "地下鉄南北線すすきの駅",
				WalkingMinutes: 2,
			},
			Price:         28000,
			MonthlyRent:   180,
			YearlyRent:    2160,
			GrossYield:    7.7,
			NetYield:      5.8,
			PropertyType:  domain.PropertyBuilding,
			BuildingAge:   18,
			FloorArea:     450,
			Layout:        "1R×12戸",
			Features:      []string{"一棟マンション", "繁華街立地", "高利回り", "民泊転用可能性"},
			ManagementFee: 8.5,
			RepairReserve: 3.2,
			OccupancyRate: 94,
			FutureRisk: domain.FutureRisk{
				MarketRisk:      domain.RiskHigh,
				LiquidityRisk:   domain.RiskMedium,
				MaintenanceRisk: domain.RiskHigh,
			},
			InvestmentHighlights: []string{
				"すすきの中心部立地",
				"高利回り物件",
				"観光需要も期待",
				"土地価値の安定性",
			},
			ConcernPoints: []string{
				"繁華街特有のリスク",
				"高額な修繕費用",
				"管理の専門性要求",
			},
		},
	}
}
