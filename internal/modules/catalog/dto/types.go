package dto

type ItemRow struct {
	ArtNr           int     `json:"art_nr"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	BuyPrice        float64 `json:"buy_price"`
	CurrentBuyPrice float64 `json:"current_buy_price"`
	SellPrice       float64 `json:"sell_price"`
	CanPurchase     bool    `json:"can_purchase"`
	CanSell         bool    `json:"can_sell"`
	Notes           string  `json:"notes,omitempty"`
}

type ImportOutput struct {
	Imported int
}
