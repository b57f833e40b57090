package dto

// Line aggregates the save's transactions for one item code, resolved
// against the catalog when possible.
type Line struct {
	ItemCode  string
	ItemName  string
	Category  string
	Count     int
	NetAmount float64
}

type ReportOutput struct {
	File          string
	Size          int64
	EngineVersion string
	GameVersion   string
	MapName       string

	CurrentMoney   float64
	TotalSales     float64
	TotalPurchases float64
	Transactions   int

	Lines []Line
}
