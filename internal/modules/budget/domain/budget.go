package domain

type EquipmentItem struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Priority string  `json:"priority"`
	Include  bool    `json:"include"`
	Notes    string  `json:"notes,omitempty"`
}

type PowerSetup struct {
	Name          string  `json:"name"`
	Priority      string  `json:"priority"`
	Include       bool    `json:"include"`
	Buildings     string  `json:"buildings"`
	PowerSource   string  `json:"power_source"`
	PowerCost     float64 `json:"power_cost"`
	PowerCapacity float64 `json:"power_capacity"`
}

type Plan struct {
	EquipmentItems []EquipmentItem
	PowerSetups    []PowerSetup
}

func NewPlan() Plan {
	return Plan{EquipmentItems: []EquipmentItem{}, PowerSetups: []PowerSetup{}}
}

// PlannedCost totals included equipment and power setups. Excluded
// rows stay in the plan but do not count.
func (p Plan) PlannedCost() float64 {
	var total float64
	for _, item := range p.EquipmentItems {
		if item.Include {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			total += item.Price * float64(qty)
		}
	}
	for _, setup := range p.PowerSetups {
		if setup.Include {
			total += setup.PowerCost
		}
	}
	return total
}

// CostByPriority buckets the planned cost by priority label.
func (p Plan) CostByPriority() map[string]float64 {
	out := map[string]float64{}
	for _, item := range p.EquipmentItems {
		if item.Include {
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			out[item.Priority] += item.Price * float64(qty)
		}
	}
	for _, setup := range p.PowerSetups {
		if setup.Include {
			out[setup.Priority] += setup.PowerCost
		}
	}
	return out
}
