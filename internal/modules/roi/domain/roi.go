package domain

import "fmtrack/internal/platform/dates"

// Revenue is one payout attributed to an investment. The date is a
// calendar day; notes stay free text even when they look like dates.
type Revenue struct {
	Date   dates.Date `json:"date"`
	Amount float64    `json:"amount"`
	Kind   string     `json:"type"`
	Notes  string     `json:"notes,omitempty"`
}

type Investment struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Cost         float64    `json:"cost"`
	PurchaseDate dates.Date `json:"purchase_date"`
	IsUtility    bool       `json:"is_utility"`
	Notes        string     `json:"notes,omitempty"`
	Revenues     []Revenue  `json:"revenues"`
}

func (inv Investment) TotalRevenue() float64 {
	var total float64
	for _, r := range inv.Revenues {
		total += r.Amount
	}
	return total
}

// ROI reports return on investment as a percentage. Utilities and
// zero-cost entries report 0 rather than dividing by zero.
func (inv Investment) ROI() float64 {
	if inv.Cost <= 0 {
		return 0
	}
	return (inv.TotalRevenue() - inv.Cost) / inv.Cost * 100
}

type Summary struct {
	TotalInvested float64
	TotalRevenue  float64
	NetProfit     float64
	OverallROI    float64
	BestName      string
	BestROI       float64
}

func Summarize(investments []Investment) Summary {
	var s Summary
	best := false
	for _, inv := range investments {
		s.TotalInvested += inv.Cost
		s.TotalRevenue += inv.TotalRevenue()
		if inv.IsUtility || inv.Cost <= 0 {
			continue
		}
		if roi := inv.ROI(); !best || roi > s.BestROI {
			s.BestName = inv.Name
			s.BestROI = roi
			best = true
		}
	}
	s.NetProfit = s.TotalRevenue - s.TotalInvested
	if s.TotalInvested > 0 {
		s.OverallROI = s.NetProfit / s.TotalInvested * 100
	}
	return s
}
