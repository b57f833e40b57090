package out

import (
	"context"

	"fmtrack/internal/modules/dashboard/service"
	sessionout "fmtrack/internal/modules/session/port/out"
)

// Observer drops the cached summary whenever a session is restored or
// reset, so the next dashboard read recomputes from fresh state.
type Observer struct {
	svc *service.DashboardService
}

func NewObserver(svc *service.DashboardService) sessionout.RestoreObserver {
	return &Observer{svc: svc}
}

func (o *Observer) SessionRestored(context.Context) {
	o.svc.Invalidate()
}
