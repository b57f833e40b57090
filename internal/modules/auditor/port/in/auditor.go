package in

import (
	"context"

	"fmtrack/internal/modules/auditor/dto"
)

type Usecase interface {
	Audit(ctx context.Context, path string) (dto.ReportOutput, error)
}
