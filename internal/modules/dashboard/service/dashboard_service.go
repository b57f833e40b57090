package service

import (
	"context"
	"fmt"

	budgetin "fmtrack/internal/modules/budget/port/in"
	"fmtrack/internal/modules/dashboard/domain"
	inventoryin "fmtrack/internal/modules/inventory/port/in"
	ledgerin "fmtrack/internal/modules/ledger/port/in"
	movementin "fmtrack/internal/modules/movement/port/in"
	roiin "fmtrack/internal/modules/roi/port/in"
	settingsin "fmtrack/internal/modules/settings/port/in"
)

// DashboardService derives the cross-section summary. It caches the
// last computed value; a session restore or reset marks it stale.
type DashboardService struct {
	ledger    ledgerin.Usecase
	inventory inventoryin.Usecase
	roi       roiin.Usecase
	budget    budgetin.Usecase
	movement  movementin.Usecase
	settings  settingsin.Usecase

	cached *domain.Summary
}

func NewDashboardService(
	ledger ledgerin.Usecase,
	inventory inventoryin.Usecase,
	roi roiin.Usecase,
	budget budgetin.Usecase,
	movement movementin.Usecase,
	settings settingsin.Usecase,
) *DashboardService {
	return &DashboardService{
		ledger:    ledger,
		inventory: inventory,
		roi:       roi,
		budget:    budget,
		movement:  movement,
		settings:  settings,
	}
}

func (s *DashboardService) Invalidate() {
	s.cached = nil
}

func (s *DashboardService) Summary(ctx context.Context) (domain.Summary, error) {
	if s.cached != nil {
		return *s.cached, nil
	}
	summary, err := s.recompute(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	s.cached = &summary
	return summary, nil
}

func (s *DashboardService) recompute(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary

	balances, err := s.ledger.Balances(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard ledger balances: %w", err)
	}
	summary.PersonalBalance = balances.Personal
	summary.CompanyBalance = balances.Company

	oil, err := s.inventory.OilCap(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard oil cap: %w", err)
	}
	summary.OilSold = oil.LifetimeSold
	summary.OilCap = oil.CapAmount
	summary.OilCapEnabled = oil.Enabled

	roiSummary, err := s.roi.Summary(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard roi summary: %w", err)
	}
	summary.TotalInvested = roiSummary.TotalInvested
	summary.NetProfit = roiSummary.NetProfit
	summary.OverallROI = roiSummary.OverallROI
	summary.BestInvestment = roiSummary.BestName

	plan, err := s.budget.Plan(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard budget plan: %w", err)
	}
	summary.PlannedCost = plan.PlannedCost

	totals, err := s.movement.Totals(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("dashboard movement totals: %w", err)
	}
	summary.HauledVolume = totals.HauledVolume
	summary.FuelCost = totals.FuelCost
	summary.NetRevenue = totals.NetRevenue

	if difficulty, err := s.settings.Get(ctx, "difficulty_level"); err == nil {
		summary.Difficulty, _ = difficulty.(string)
	}
	if day, err := s.settings.Get(ctx, "current_game_date"); err == nil {
		summary.CurrentGameDate, _ = day.(string)
	}
	return summary, nil
}
