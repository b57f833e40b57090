package dto

type SummaryOutput struct {
	PersonalBalance float64
	CompanyBalance  float64

	OilSold       float64
	OilCap        float64
	OilCapEnabled bool
	OilQuotaUsed  float64

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
