package in

import (
	"context"

	auditordto "fmtrack/internal/modules/auditor/dto"
	auditorin "fmtrack/internal/modules/auditor/port/in"
)

type CLIHandler struct {
	usecase auditorin.Usecase
}

func NewCLIHandler(usecase auditorin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Audit(ctx context.Context, path string) (auditordto.ReportOutput, error) {
	return h.usecase.Audit(ctx, path)
}
