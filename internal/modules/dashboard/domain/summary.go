package domain

// Summary is the cross-section snapshot shown on the dashboard.
type Summary struct {
	PersonalBalance float64
	CompanyBalance  float64

	OilSold       float64
	OilCap        float64
	OilCapEnabled bool

	TotalInvested  float64
	NetProfit      float64
	OverallROI     float64
	BestInvestment string

	HauledVolume float64
	FuelCost     float64
	NetRevenue   float64

	PlannedCost float64

	Difficulty      string
	CurrentGameDate string
}

// OilQuotaUsed reports cap usage in percent, clamped to 100.
func (s Summary) OilQuotaUsed() float64 {
	if !s.OilCapEnabled || s.OilCap <= 0 {
		return 0
	}
	used := s.OilSold / s.OilCap * 100
	if used > 100 {
		used = 100
	}
	return used
}
