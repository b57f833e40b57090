package service

import (
	"strings"

	"fmtrack/internal/modules/inventory/domain"
)

type InventoryService struct {
	state domain.State
}

func NewInventoryService() *InventoryService {
	return &InventoryService{state: domain.NewState()}
}

// Upsert adds the quantity to an existing item matched by name,
// category and location, or appends a new one. A zero or negative
// resulting quantity removes the item.
func (s *InventoryService) Upsert(item domain.Item) {
	for i := range s.state.Items {
		existing := &s.state.Items[i]
		if sameItem(*existing, item) {
			existing.Quantity += item.Quantity
			if existing.Quantity <= 0 {
				s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
			}
			return
		}
	}
	if item.Quantity > 0 {
		s.state.Items = append(s.state.Items, item)
	}
}

func (s *InventoryService) Items() []domain.Item {
	out := make([]domain.Item, len(s.state.Items))
	copy(out, s.state.Items)
	return out
}

func (s *InventoryService) RecordOilSale(volume float64) {
	if volume > 0 {
		s.state.OilLifetimeSold += volume
	}
}

func (s *InventoryService) OilCap() (sold, cap float64, enabled bool) {
	return s.state.OilLifetimeSold, s.state.OilCapAmount, s.state.OilCapEnabled
}

func (s *InventoryService) SetOilCap(enabled bool, amount float64) {
	s.state.OilCapEnabled = enabled
	if amount > 0 {
		s.state.OilCapAmount = amount
	}
}

func (s *InventoryService) Snapshot() domain.State {
	snap := s.state
	snap.Items = make([]domain.Item, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	return snap
}

func (s *InventoryService) Apply(state domain.State) {
	if state.Items == nil {
		state.Items = []domain.Item{}
	}
	s.state = state
}

func (s *InventoryService) Clear() {
	s.state = domain.NewState()
}

func sameItem(a, b domain.Item) bool {
	return strings.EqualFold(a.Name, b.Name) &&
		strings.EqualFold(a.Category, b.Category) &&
		strings.EqualFold(a.Location, b.Location)
}
