package usecase

import (
	"context"
	"fmt"

	"fmtrack/internal/modules/budget/domain"
	"fmtrack/internal/modules/budget/dto"
	budgetin "fmtrack/internal/modules/budget/port/in"
	"fmtrack/internal/modules/budget/service"
	apperrors "fmtrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.BudgetService
}

func NewInteractor(svc *service.BudgetService) budgetin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddEquipment(_ context.Context, input dto.EquipmentInput) error {
	if input.Name == "" {
		return fmt.Errorf("equipment name: %w", apperrors.ErrInvalidInput)
	}
	i.svc.AddEquipment(domain.EquipmentItem{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
		Priority: input.Priority,
		Include:  input.Include,
		Notes:    input.Notes,
	})
	return nil
}

func (i *Interactor) AddPowerSetup(_ context.Context, input dto.PowerSetupInput) error {
	if input.Name == "" {
		return fmt.Errorf("power setup name: %w", apperrors.ErrInvalidInput)
	}
	i.svc.AddPowerSetup(domain.PowerSetup{
		Name:          input.Name,
		Priority:      input.Priority,
		Include:       input.Include,
		Buildings:     input.Buildings,
		PowerSource:   input.PowerSource,
		PowerCost:     input.PowerCost,
		PowerCapacity: input.PowerCapacity,
	})
	return nil
}

func (i *Interactor) Plan(_ context.Context) (dto.PlanOutput, error) {
	plan := i.svc.Plan()
	out := dto.PlanOutput{
		PlannedCost:    plan.PlannedCost(),
		CostByPriority: plan.CostByPriority(),
	}
	for _, item := range plan.EquipmentItems {
		out.EquipmentItems = append(out.EquipmentItems, dto.EquipmentInput{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
			Priority: item.Priority,
			Include:  item.Include,
			Notes:    item.Notes,
		})
	}
	for _, setup := range plan.PowerSetups {
		out.PowerSetups = append(out.PowerSetups, dto.PowerSetupInput{
			Name:          setup.Name,
			Priority:      setup.Priority,
			Include:       setup.Include,
			Buildings:     setup.Buildings,
			PowerSource:   setup.PowerSource,
			PowerCost:     setup.PowerCost,
			PowerCapacity: setup.PowerCapacity,
		})
	}
	return out, nil
}
