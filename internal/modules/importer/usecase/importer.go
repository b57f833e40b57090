package usecase

import (
	"context"
	"encoding/json"

	catalogin "fmtrack/internal/modules/catalog/port/in"
	"fmtrack/internal/modules/importer/dto"
	importerin "fmtrack/internal/modules/importer/port/in"
	"fmtrack/internal/modules/importer/service"
)

type Interactor struct {
	svc     *service.ImporterService
	catalog catalogin.Usecase
}

func NewInteractor(svc *service.ImporterService, catalog catalogin.Usecase) importerin.Usecase {
	return &Interactor{svc: svc, catalog: catalog}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) ListCommands(ctx context.Context, pluginName string) ([]dto.CommandInfo, error) {
	return i.svc.ListCommands(ctx, pluginName)
}

func (i *Interactor) Execute(ctx context.Context, input dto.ExecuteInput) (dto.ExecuteOutput, error) {
	return i.svc.Execute(ctx, input)
}

// Import runs the plugin's import entrypoint and stores the produced rows
// in the item catalog.
func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	result, err := i.svc.Import(ctx, input)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	stored, err := i.catalog.ImportRows(ctx, json.RawMessage(result.RowsJSON))
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{
		PluginName: input.PluginName,
		SourcePath: input.SourcePath,
		Imported:   stored.Imported,
		Warnings:   result.Warnings,
	}, nil
}
