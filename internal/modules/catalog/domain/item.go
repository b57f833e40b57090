package domain

// Item is one row of the game's reference price data. ArtNr is the
// six-digit article code the save file records transactions under.
type Item struct {
	ArtNr           int
	Name            string
	Category        string
	BuyPrice        float64
	CurrentBuyPrice float64
	SellPrice       float64
	CanPurchase     bool
	CanSell         bool
	Notes           string
}
