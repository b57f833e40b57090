package dto

type HaulingInput struct {
	Date      string
	Location  string
	Vehicle   string
	Loads     int
	Volume    float64
	Stockpile string
	Duration  float64
	FuelUsed  float64
	FuelCost  float64
	Notes     string
}

type OreYieldInput struct {
	Ore      string
	Qty      float64
	Price    float64
	Subtotal float64
}

type ProcessingInput struct {
	Date           string
	Processor      string
	Material       string
	InputVolume    float64
	Ores           []OreYieldInput
	ProcessingCost float64
}

type HaulingRow struct {
	Date      string
	Location  string
	Vehicle   string
	Loads     int
	Volume    float64
	Stockpile string
	Duration  float64
	FuelUsed  float64
	FuelCost  float64
	Notes     string
}

type ProcessingRow struct {
	Date           string
	Processor      string
	Material       string
	InputVolume    float64
	TotalOres      float64
	ProcessingCost float64
	GrossRevenue   float64
	NetRevenue     float64
	PerYd3         float64
}

type LogOutput struct {
	Hauling    []HaulingRow
	Processing []ProcessingRow
}

type TotalsOutput struct {
	HauledVolume float64
	FuelCost     float64
	GrossRevenue float64
	NetRevenue   float64
}
