package in

import (
	"context"

	"fmtrack/internal/modules/budget/dto"
)

type Usecase interface {
	AddEquipment(ctx context.Context, input dto.EquipmentInput) error
	AddPowerSetup(ctx context.Context, input dto.PowerSetupInput) error
	Plan(ctx context.Context) (dto.PlanOutput, error)
}
