package in

import (
	"context"

	"fmtrack/internal/modules/importer/dto"
	importerin "fmtrack/internal/modules/importer/port/in"
)

type CLIHandler struct {
	usecase importerin.Usecase
}

func NewCLIHandler(usecase importerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return h.usecase.ListCommands(ctx, pluginName)
}

func (h CLIHandler) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return h.usecase.Execute(ctx, input)
}

func (h CLIHandler) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, input)
}
