package service

import "fmtrack/internal/modules/budget/domain"

type BudgetService struct {
	plan domain.Plan
}

func NewBudgetService() *BudgetService {
	return &BudgetService{plan: domain.NewPlan()}
}

func (s *BudgetService) AddEquipment(item domain.EquipmentItem) {
	s.plan.EquipmentItems = append(s.plan.EquipmentItems, item)
}

func (s *BudgetService) AddPowerSetup(setup domain.PowerSetup) {
	s.plan.PowerSetups = append(s.plan.PowerSetups, setup)
}

func (s *BudgetService) Plan() domain.Plan {
	return s.Snapshot()
}

func (s *BudgetService) Snapshot() domain.Plan {
	snap := domain.Plan{
		EquipmentItems: make([]domain.EquipmentItem, len(s.plan.EquipmentItems)),
		PowerSetups:    make([]domain.PowerSetup, len(s.plan.PowerSetups)),
	}
	copy(snap.EquipmentItems, s.plan.EquipmentItems)
	copy(snap.PowerSetups, s.plan.PowerSetups)
	return snap
}

func (s *BudgetService) Apply(plan domain.Plan) {
	if plan.EquipmentItems == nil {
		plan.EquipmentItems = []domain.EquipmentItem{}
	}
	if plan.PowerSetups == nil {
		plan.PowerSetups = []domain.PowerSetup{}
	}
	s.plan = plan
}

func (s *BudgetService) Clear() {
	s.plan = domain.NewPlan()
}
