package dto

type ItemInput struct {
	Name     string
	Category string
	Location string
	Quantity float64
}

type ItemRow struct {
	Name     string
	Category string
	Location string
	Quantity float64
}

type OilCapOutput struct {
	Enabled      bool
	CapAmount    float64
	LifetimeSold float64
}
