package usecase

import (
	"context"

	"fmtrack/internal/modules/dashboard/domain"
	"fmtrack/internal/modules/dashboard/dto"
	dashboardin "fmtrack/internal/modules/dashboard/port/in"
	"fmtrack/internal/modules/dashboard/service"
)

type Interactor struct {
	svc *service.DashboardService
}

func NewInteractor(svc *service.DashboardService) dashboardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	summary, err := i.svc.Summary(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return toOutput(summary), nil
}

func (i *Interactor) Refresh(ctx context.Context) (dto.SummaryOutput, error) {
	i.svc.Invalidate()
	return i.Summary(ctx)
}

func toOutput(s domain.Summary) dto.SummaryOutput {
	return dto.SummaryOutput{
		PersonalBalance: s.PersonalBalance,
		CompanyBalance:  s.CompanyBalance,
		OilSold:         s.OilSold,
		OilCap:          s.OilCap,
		OilCapEnabled:   s.OilCapEnabled,
		OilQuotaUsed:    s.OilQuotaUsed(),
		TotalInvested:   s.TotalInvested,
		NetProfit:       s.NetProfit,
		OverallROI:      s.OverallROI,
		BestInvestment:  s.BestInvestment,
		HauledVolume:    s.HauledVolume,
		FuelCost:        s.FuelCost,
		NetRevenue:      s.NetRevenue,
		PlannedCost:     s.PlannedCost,
		Difficulty:      s.Difficulty,
		CurrentGameDate: s.CurrentGameDate,
	}
}
