package service

import "fmtrack/internal/modules/movement/domain"

type MovementService struct {
	log domain.Log
}

func NewMovementService() *MovementService {
	return &MovementService{log: domain.NewLog()}
}

func (s *MovementService) RecordHauling(h domain.Hauling) {
	s.log.HaulingSessions = append(s.log.HaulingSessions, h)
}

// RecordProcessing fills derived fields the caller left at zero. Net
// revenue defaults to gross minus processing cost.
func (s *MovementService) RecordProcessing(p domain.Processing) {
	if p.Ores == nil {
		p.Ores = []domain.OreYield{}
	}
	if p.TotalOres == 0 {
		for _, ore := range p.Ores {
			p.TotalOres += ore.Qty
		}
	}
	if p.GrossRevenue == 0 {
		for _, ore := range p.Ores {
			p.GrossRevenue += ore.Subtotal
		}
	}
	if p.NetRevenue == 0 {
		p.NetRevenue = p.GrossRevenue - p.ProcessingCost
	}
	if p.PerYd3 == 0 && p.InputVolume > 0 {
		p.PerYd3 = p.NetRevenue / p.InputVolume
	}
	s.log.ProcessingSessions = append(s.log.ProcessingSessions, p)
}

func (s *MovementService) Log() domain.Log {
	return s.Snapshot()
}

func (s *MovementService) Totals() domain.Totals {
	return s.log.Totals()
}

func (s *MovementService) Snapshot() domain.Log {
	snap := domain.Log{
		HaulingSessions:    make([]domain.Hauling, len(s.log.HaulingSessions)),
		ProcessingSessions: make([]domain.Processing, len(s.log.ProcessingSessions)),
	}
	copy(snap.HaulingSessions, s.log.HaulingSessions)
	copy(snap.ProcessingSessions, s.log.ProcessingSessions)
	return snap
}

func (s *MovementService) Apply(log domain.Log) {
	if log.HaulingSessions == nil {
		log.HaulingSessions = []domain.Hauling{}
	}
	if log.ProcessingSessions == nil {
		log.ProcessingSessions = []domain.Processing{}
	}
	s.log = log
}

func (s *MovementService) Clear() {
	s.log = domain.NewLog()
}
