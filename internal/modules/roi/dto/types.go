package dto

type InvestmentInput struct {
	Name         string
	Category     string
	Cost         float64
	PurchaseDate string
	IsUtility    bool
	Notes        string
}

type RevenueInput struct {
	InvestmentID string
	Date         string
	Amount       float64
	Kind         string
	Notes        string
}

type RevenueRow struct {
	Date   string
	Amount float64
	Kind   string
	Notes  string
}

type InvestmentRow struct {
	ID           string
	Name         string
	Category     string
	Cost         float64
	PurchaseDate string
	IsUtility    bool
	Notes        string
	TotalRevenue float64
	ROI          float64
	Revenues     []RevenueRow
}

type SummaryOutput struct {
	TotalInvested float64
	TotalRevenue  float64
	NetProfit     float64
	OverallROI    float64
	BestName      string
	BestROI       float64
}
