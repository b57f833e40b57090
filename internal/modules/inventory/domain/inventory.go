package domain

const (
	DefaultOilCapEnabled = true
	DefaultOilCapAmount  = 10000
)

type Item struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Location string  `json:"location"`
	Quantity float64 `json:"quantity"`
}

// State is the inventory's live state. OilLifetimeSold tracks total
// oil sold across the playthrough for the cap gauge.
type State struct {
	Items           []Item
	OilCapEnabled   bool
	OilCapAmount    float64
	OilLifetimeSold float64
}

func NewState() State {
	return State{
		Items:         []Item{},
		OilCapEnabled: DefaultOilCapEnabled,
		OilCapAmount:  DefaultOilCapAmount,
	}
}

// OilCapRemaining reports how much oil may still be sold under the
// cap. With the cap disabled it returns 0 and false.
func (s State) OilCapRemaining() (float64, bool) {
	if !s.OilCapEnabled {
		return 0, false
	}
	remaining := s.OilCapAmount - s.OilLifetimeSold
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}
