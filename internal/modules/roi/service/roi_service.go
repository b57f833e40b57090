package service

import (
	"fmt"

	"fmtrack/internal/modules/roi/domain"
	"fmtrack/internal/platform/id"
)

type ROIService struct {
	idGen       id.Generator
	investments []domain.Investment
}

func NewROIService(idGen id.Generator) *ROIService {
	return &ROIService{idGen: idGen, investments: []domain.Investment{}}
}

func (s *ROIService) AddInvestment(inv domain.Investment) domain.Investment {
	if inv.ID == "" {
		inv.ID = s.idGen.New()
	}
	if inv.Revenues == nil {
		inv.Revenues = []domain.Revenue{}
	}
	s.investments = append(s.investments, inv)
	return inv
}

func (s *ROIService) AddRevenue(investmentID string, rev domain.Revenue) error {
	for i := range s.investments {
		if s.investments[i].ID == investmentID {
			s.investments[i].Revenues = append(s.investments[i].Revenues, rev)
			return nil
		}
	}
	return fmt.Errorf("investment %s not found", investmentID)
}

func (s *ROIService) Investments() []domain.Investment {
	out := make([]domain.Investment, len(s.investments))
	copy(out, s.investments)
	return out
}

func (s *ROIService) Summary() domain.Summary {
	return domain.Summarize(s.investments)
}

func (s *ROIService) Snapshot() []domain.Investment {
	return s.Investments()
}

func (s *ROIService) Apply(investments []domain.Investment) {
	if investments == nil {
		investments = []domain.Investment{}
	}
	s.investments = investments
}

func (s *ROIService) Clear() {
	s.investments = []domain.Investment{}
}
