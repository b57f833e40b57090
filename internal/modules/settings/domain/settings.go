package domain

// Defaults is the documented default value for every setting key.
// Restores merge saved values over a fresh copy of this map, so keys
// added after a session was saved still come back populated.
func Defaults() map[string]any {
	return map[string]any{
		"game_start_date":    "2021-04-22",
		"current_game_date":  "2021-04-23",
		"starting_capital":   float64(100000),
		"fuel_price_per_liter": 0.32,

		"difficulty_level":    "Easy",
		"personal_split":      0.10,
		"company_split":       0.90,
		"oil_cap_enabled":     true,
		"oil_cap_amount":      float64(10000),
		"oil_lifetime_sold":   float64(0),
		"daily_limit_enabled": false,
		"daily_limit_amount":  float64(0),
		"bar_threshold":       float64(5000),

		"vendor_negotiation_level":     float64(7),
		"investment_forecasting_level": float64(6),

		"theme":           "Light",
		"currency_format": "$1,234.56",
		"date_format":     "MM/DD/YYYY",
	}
}

// Preset is a difficulty profile applied over the challenge-rule keys.
type Preset struct {
	SeedCapital   float64
	PersonalSplit float64
	CompanySplit  float64
	OilCap        float64
	DailyLimit    float64
	HasDailyLimit bool
	BarThreshold  float64
	Description   string
}

var Presets = map[string]Preset{
	"Easy": {
		SeedCapital: 100000, PersonalSplit: 0.10, CompanySplit: 0.90,
		OilCap: 10000, BarThreshold: 5000,
		Description: "Generous seed funding with comfortable margins.",
	},
	"Normal": {
		SeedCapital: 100000, PersonalSplit: 0.10, CompanySplit: 0.90,
		OilCap: 7500, DailyLimit: 10000, HasDailyLimit: true, BarThreshold: 5000,
		Description: "Standard challenge with daily spending limits.",
	},
	"Hard": {
		SeedCapital: 75000, PersonalSplit: 0.05, CompanySplit: 0.95,
		OilCap: 5000, DailyLimit: 5000, HasDailyLimit: true, BarThreshold: 5000,
		Description: "Reduced funding and tighter margins.",
	},
	"Brutal": {
		SeedCapital: 50000, PersonalSplit: 0.05, CompanySplit: 0.95,
		OilCap: 2500, DailyLimit: 2500, HasDailyLimit: true, BarThreshold: 5000,
		Description: "Minimal resources, maximum challenge.",
	},
}
