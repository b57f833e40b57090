package domain

// MoneyScale converts raw save-file amounts to dollars. Every
// monetary value the game writes is scaled by 256.
const MoneyScale = 256

type Transaction struct {
	ItemCode  string
	Category  string
	AmountRaw int32
}

func (t Transaction) Amount() float64 { return float64(t.AmountRaw) / MoneyScale }
func (t Transaction) IsPurchase() bool { return t.AmountRaw < 0 }
func (t Transaction) IsSale() bool     { return t.AmountRaw > 0 }

// Report holds everything extracted from one save file.
type Report struct {
	FilePath string
	FileSize int64

	EngineVersion string
	GameVersion   string
	MapName       string

	CurrentMoneyRaw int32
	Transactions    []Transaction
}

func (r Report) CurrentMoney() float64 {
	return float64(r.CurrentMoneyRaw) / MoneyScale
}

func (r Report) TotalSales() float64 {
	var total float64
	for _, t := range r.Transactions {
		if t.IsSale() {
			total += t.Amount()
		}
	}
	return total
}

func (r Report) TotalPurchases() float64 {
	var total float64
	for _, t := range r.Transactions {
		if t.IsPurchase() {
			total += t.Amount()
		}
	}
	return total
}
