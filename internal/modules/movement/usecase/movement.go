package usecase

import (
	"context"

	"fmtrack/internal/modules/movement/domain"
	"fmtrack/internal/modules/movement/dto"
	movementin "fmtrack/internal/modules/movement/port/in"
	"fmtrack/internal/modules/movement/service"
	"fmtrack/internal/platform/dates"
)

type Interactor struct {
	svc *service.MovementService
}

func NewInteractor(svc *service.MovementService) movementin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordHauling(_ context.Context, input dto.HaulingInput) error {
	day, err := dates.ParseDate(input.Date)
	if err != nil {
		return err
	}
	i.svc.RecordHauling(domain.Hauling{
		Date:      day,
		Location:  input.Location,
		Vehicle:   input.Vehicle,
		Loads:     input.Loads,
		Volume:    input.Volume,
		Stockpile: input.Stockpile,
		Duration:  input.Duration,
		FuelUsed:  input.FuelUsed,
		FuelCost:  input.FuelCost,
		Notes:     input.Notes,
	})
	return nil
}

func (i *Interactor) RecordProcessing(_ context.Context, input dto.ProcessingInput) error {
	day, err := dates.ParseDate(input.Date)
	if err != nil {
		return err
	}
	ores := make([]domain.OreYield, 0, len(input.Ores))
	for _, ore := range input.Ores {
		ores = append(ores, domain.OreYield{Ore: ore.Ore, Qty: ore.Qty, Price: ore.Price, Subtotal: ore.Subtotal})
	}
	i.svc.RecordProcessing(domain.Processing{
		Date:           day,
		Processor:      input.Processor,
		Material:       input.Material,
		InputVolume:    input.InputVolume,
		Ores:           ores,
		ProcessingCost: input.ProcessingCost,
	})
	return nil
}

func (i *Interactor) List(_ context.Context) (dto.LogOutput, error) {
	log := i.svc.Snapshot()
	out := dto.LogOutput{
		Hauling:    make([]dto.HaulingRow, 0, len(log.HaulingSessions)),
		Processing: make([]dto.ProcessingRow, 0, len(log.ProcessingSessions)),
	}
	for _, h := range log.HaulingSessions {
		out.Hauling = append(out.Hauling, dto.HaulingRow{
			Date:      h.Date.String(),
			Location:  h.Location,
			Vehicle:   h.Vehicle,
			Loads:     h.Loads,
			Volume:    h.Volume,
			Stockpile: h.Stockpile,
			Duration:  h.Duration,
			FuelUsed:  h.FuelUsed,
			FuelCost:  h.FuelCost,
			Notes:     h.Notes,
		})
	}
	for _, p := range log.ProcessingSessions {
		out.Processing = append(out.Processing, dto.ProcessingRow{
			Date:           p.Date.String(),
			Processor:      p.Processor,
			Material:       p.Material,
			InputVolume:    p.InputVolume,
			TotalOres:      p.TotalOres,
			ProcessingCost: p.ProcessingCost,
			GrossRevenue:   p.GrossRevenue,
			NetRevenue:     p.NetRevenue,
			PerYd3:         p.PerYd3,
		})
	}
	return out, nil
}

func (i *Interactor) Totals(_ context.Context) (dto.TotalsOutput, error) {
	t := i.svc.Totals()
	return dto.TotalsOutput{
		HauledVolume: t.HauledVolume,
		FuelCost:     t.FuelCost,
		GrossRevenue: t.GrossRevenue,
		NetRevenue:   t.NetRevenue,
	}, nil
}
