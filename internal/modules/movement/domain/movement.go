package domain

import "fmtrack/internal/platform/dates"

type Hauling struct {
	Date      dates.Date `json:"date"`
	Location  string     `json:"location"`
	Vehicle   string     `json:"vehicle"`
	Loads     int        `json:"loads"`
	Volume    float64    `json:"volume"`
	Stockpile string     `json:"stockpile"`
	Duration  float64    `json:"duration"`
	FuelUsed  float64    `json:"fuel_used"`
	FuelCost  float64    `json:"fuel_cost"`
	Notes     string     `json:"notes,omitempty"`
}

type OreYield struct {
	Ore      string  `json:"ore"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

type Processing struct {
	Date           dates.Date `json:"date"`
	Processor      string     `json:"processor"`
	Material       string     `json:"material"`
	InputVolume    float64    `json:"input_volume"`
	Ores           []OreYield `json:"ores"`
	TotalOres      float64    `json:"total_ores"`
	GrossRevenue   float64    `json:"gross_revenue"`
	ProcessingCost float64    `json:"processing_cost"`
	NetRevenue     float64    `json:"net_revenue"`
	PerYd3         float64    `json:"per_yd3"`
}

type Log struct {
	HaulingSessions    []Hauling
	ProcessingSessions []Processing
}

func NewLog() Log {
	return Log{HaulingSessions: []Hauling{}, ProcessingSessions: []Processing{}}
}

type Totals struct {
	HauledVolume float64
	FuelCost     float64
	GrossRevenue float64
	NetRevenue   float64
}

func (l Log) Totals() Totals {
	var t Totals
	for _, h := range l.HaulingSessions {
		t.HauledVolume += h.Volume
		t.FuelCost += h.FuelCost
	}
	for _, p := range l.ProcessingSessions {
		t.GrossRevenue += p.GrossRevenue
		t.NetRevenue += p.NetRevenue
	}
	return t
}
