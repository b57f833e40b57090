package dto

type EquipmentInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
	Priority string
	Include  bool
	Notes    string
}

type PowerSetupInput struct {
	Name          string
	Priority      string
	Include       bool
	Buildings     string
	PowerSource   string
	PowerCost     float64
	PowerCapacity float64
}

type PlanOutput struct {
	EquipmentItems []EquipmentInput
	PowerSetups    []PowerSetupInput
	PlannedCost    float64
	CostByPriority map[string]float64
}
