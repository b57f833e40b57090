package usecase

import (
	"context"
	"sort"
	"strconv"

	"fmtrack/internal/modules/auditor/dto"
	auditorin "fmtrack/internal/modules/auditor/port/in"
	auditorout "fmtrack/internal/modules/auditor/port/out"
	"fmtrack/internal/modules/auditor/service"
	catalogin "fmtrack/internal/modules/catalog/port/in"
)

type Interactor struct {
	parser  service.Parser
	reader  auditorout.SaveReader
	catalog catalogin.Usecase
}

// NewInteractor builds the auditor. The catalog may be nil; item codes
// then list unresolved.
func NewInteractor(parser service.Parser, reader auditorout.SaveReader, catalog catalogin.Usecase) auditorin.Usecase {
	return &Interactor{parser: parser, reader: reader, catalog: catalog}
}

func (i *Interactor) Audit(ctx context.Context, path string) (dto.ReportOutput, error) {
	data, err := i.reader.ReadSave(ctx, path)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	report, err := i.parser.Parse(data)
	if err != nil {
		return dto.ReportOutput{}, err
	}

	out := dto.ReportOutput{
		File:           path,
		Size:           report.FileSize,
		EngineVersion:  report.EngineVersion,
		GameVersion:    report.GameVersion,
		MapName:        report.MapName,
		CurrentMoney:   report.CurrentMoney(),
		TotalSales:     report.TotalSales(),
		TotalPurchases: report.TotalPurchases(),
		Transactions:   len(report.Transactions),
	}

	byCode := map[string]*dto.Line{}
	for _, tx := range report.Transactions {
		line, ok := byCode[tx.ItemCode]
		if !ok {
			line = &dto.Line{ItemCode: tx.ItemCode, Category: tx.Category}
			byCode[tx.ItemCode] = line
		}
		line.Count++
		line.NetAmount += tx.Amount()
	}
	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		line := byCode[code]
		if i.catalog != nil {
			if artNr, err := strconv.Atoi(code); err == nil {
				if item, err := i.catalog.Show(ctx, artNr); err == nil {
					line.ItemName = item.Name
				}
			}
		}
		out.Lines = append(out.Lines, *line)
	}
	return out, nil
}
