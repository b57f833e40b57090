package usecase

import (
	"context"
	"fmt"

	"fmtrack/internal/modules/roi/domain"
	"fmtrack/internal/modules/roi/dto"
	roiin "fmtrack/internal/modules/roi/port/in"
	"fmtrack/internal/modules/roi/service"
	"fmtrack/internal/platform/dates"
	apperrors "fmtrack/internal/platform/errors"
)

type Interactor struct {
	svc *service.ROIService
}

func NewInteractor(svc *service.ROIService) roiin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddInvestment(_ context.Context, input dto.InvestmentInput) (dto.InvestmentRow, error) {
	if input.Name == "" {
		return dto.InvestmentRow{}, fmt.Errorf("investment name: %w", apperrors.ErrInvalidInput)
	}
	purchased, err := dates.ParseDate(input.PurchaseDate)
	if err != nil {
		return dto.InvestmentRow{}, err
	}
	inv := i.svc.AddInvestment(domain.Investment{
		Name:         input.Name,
		Category:     input.Category,
		Cost:         input.Cost,
		PurchaseDate: purchased,
		IsUtility:    input.IsUtility,
		Notes:        input.Notes,
	})
	return toRow(inv), nil
}

func (i *Interactor) AddRevenue(_ context.Context, input dto.RevenueInput) error {
	if input.InvestmentID == "" {
		return fmt.Errorf("investment id: %w", apperrors.ErrInvalidInput)
	}
	day, err := dates.ParseDate(input.Date)
	if err != nil {
		return err
	}
	return i.svc.AddRevenue(input.InvestmentID, domain.Revenue{
		Date:   day,
		Amount: input.Amount,
		Kind:   input.Kind,
		Notes:  input.Notes,
	})
}

func (i *Interactor) List(_ context.Context) ([]dto.InvestmentRow, error) {
	investments := i.svc.Investments()
	rows := make([]dto.InvestmentRow, 0, len(investments))
	for _, inv := range investments {
		rows = append(rows, toRow(inv))
	}
	return rows, nil
}

func (i *Interactor) Summary(_ context.Context) (dto.SummaryOutput, error) {
	s := i.svc.Summary()
	return dto.SummaryOutput{
		TotalInvested: s.TotalInvested,
		TotalRevenue:  s.TotalRevenue,
		NetProfit:     s.NetProfit,
		OverallROI:    s.OverallROI,
		BestName:      s.BestName,
		BestROI:       s.BestROI,
	}, nil
}

func toRow(inv domain.Investment) dto.InvestmentRow {
	revenues := make([]dto.RevenueRow, 0, len(inv.Revenues))
	for _, r := range inv.Revenues {
		revenues = append(revenues, dto.RevenueRow{
			Date:   r.Date.String(),
			Amount: r.Amount,
			Kind:   r.Kind,
			Notes:  r.Notes,
		})
	}
	return dto.InvestmentRow{
		ID:           inv.ID,
		Name:         inv.Name,
		Category:     inv.Category,
		Cost:         inv.Cost,
		PurchaseDate: inv.PurchaseDate.String(),
		IsUtility:    inv.IsUtility,
		Notes:        inv.Notes,
		TotalRevenue: inv.TotalRevenue(),
		ROI:          inv.ROI(),
		Revenues:     revenues,
	}
}
