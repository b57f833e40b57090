package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	auditorinadapter "fmtrack/internal/modules/auditor/adapter/in"
	auditoroutadapter "fmtrack/internal/modules/auditor/adapter/out"
	auditorservice "fmtrack/internal/modules/auditor/service"
	auditorusecase "fmtrack/internal/modules/auditor/usecase"
	budgetoutadapter "fmtrack/internal/modules/budget/adapter/out"
	budgetin "fmtrack/internal/modules/budget/port/in"
	budgetservice "fmtrack/internal/modules/budget/service"
	budgetusecase "fmtrack/internal/modules/budget/usecase"
	cataloginadapter "fmtrack/internal/modules/catalog/adapter/in"
	catalogoutadapter "fmtrack/internal/modules/catalog/adapter/out"
	catalogin "fmtrack/internal/modules/catalog/port/in"
	catalogservice "fmtrack/internal/modules/catalog/service"
	catalogusecase "fmtrack/internal/modules/catalog/usecase"
	dashboardoutadapter "fmtrack/internal/modules/dashboard/adapter/out"
	dashboardin "fmtrack/internal/modules/dashboard/port/in"
	dashboardservice "fmtrack/internal/modules/dashboard/service"
	dashboardusecase "fmtrack/internal/modules/dashboard/usecase"
	importerinadapter "fmtrack/internal/modules/importer/adapter/in"
	importeroutadapter "fmtrack/internal/modules/importer/adapter/out"
	importerservice "fmtrack/internal/modules/importer/service"
	importerusecase "fmtrack/internal/modules/importer/usecase"
	inventoryoutadapter "fmtrack/internal/modules/inventory/adapter/out"
	inventoryin "fmtrack/internal/modules/inventory/port/in"
	inventoryservice "fmtrack/internal/modules/inventory/service"
	inventoryusecase "fmtrack/internal/modules/inventory/usecase"
	ledgeroutadapter "fmtrack/internal/modules/ledger/adapter/out"
	ledgerin "fmtrack/internal/modules/ledger/port/in"
	ledgerservice "fmtrack/internal/modules/ledger/service"
	ledgerusecase "fmtrack/internal/modules/ledger/usecase"
	movementoutadapter "fmtrack/internal/modules/movement/adapter/out"
	movementin "fmtrack/internal/modules/movement/port/in"
	movementservice "fmtrack/internal/modules/movement/service"
	movementusecase "fmtrack/internal/modules/movement/usecase"
	roioutadapter "fmtrack/internal/modules/roi/adapter/out"
	roiin "fmtrack/internal/modules/roi/port/in"
	roiservice "fmtrack/internal/modules/roi/service"
	roiusecase "fmtrack/internal/modules/roi/usecase"
	sessioninadapter "fmtrack/internal/modules/session/adapter/in"
	sessionoutadapter "fmtrack/internal/modules/session/adapter/out"
	sessionin "fmtrack/internal/modules/session/port/in"
	sessionout "fmtrack/internal/modules/session/port/out"
	sessionservice "fmtrack/internal/modules/session/service"
	sessionusecase "fmtrack/internal/modules/session/usecase"
	settingsoutadapter "fmtrack/internal/modules/settings/adapter/out"
	settingsin "fmtrack/internal/modules/settings/port/in"
	settingsservice "fmtrack/internal/modules/settings/service"
	settingsusecase "fmtrack/internal/modules/settings/usecase"
	"fmtrack/internal/platform/clock"
	"fmtrack/internal/platform/config"
	"fmtrack/internal/platform/id"
	"fmtrack/internal/platform/logging"
	uiapp "fmtrack/internal/ui/app"
)

// App wires every module once and hands out the entry-point handlers.
type App struct {
	SessionCLI  sessioninadapter.CLIHandler
	CatalogCLI  cataloginadapter.CLIHandler
	AuditorCLI  auditorinadapter.CLIHandler
	ImporterCLI importerinadapter.CLIHandler

	Ledger    ledgerin.Usecase
	Inventory inventoryin.Usecase
	ROI       roiin.Usecase
	Budget    budgetin.Usecase
	Movement  movementin.Usecase
	Settings  settingsin.Usecase
	Dashboard dashboardin.Usecase
	Session   sessionin.Usecase
	Catalog   catalogin.Usecase

	closer io.Closer
}

// New builds the application graph. logOutput receives structured
// warnings (section collect/restore failures); pass io.Discard for the
// TUI so log lines cannot corrupt the alternate screen.
func New(cfg config.Config, logOutput io.Writer, verbose bool) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	log := logging.New("fmtrack", logOutput, verbose)

	ledgerSvc := ledgerservice.NewLedgerService()
	inventorySvc := inventoryservice.NewInventoryService()
	roiSvc := roiservice.NewROIService(ids)
	budgetSvc := budgetservice.NewBudgetService()
	movementSvc := movementservice.NewMovementService()
	settingsSvc := settingsservice.NewSettingsService()

	ledgerUC := ledgerusecase.NewInteractor(ledgerSvc)
	inventoryUC := inventoryusecase.NewInteractor(inventorySvc)
	roiUC := roiusecase.NewInteractor(roiSvc)
	budgetUC := budgetusecase.NewInteractor(budgetSvc)
	movementUC := movementusecase.NewInteractor(movementSvc)
	settingsUC := settingsusecase.NewInteractor(settingsSvc)

	// Section order matches the document schema.
	sections := []sessionout.Section{
		ledgeroutadapter.NewSection(ledgerSvc),
		inventoryoutadapter.NewSection(inventorySvc),
		roioutadapter.NewSection(roiSvc),
		budgetoutadapter.NewSection(budgetSvc),
		movementoutadapter.NewSection(movementSvc),
		settingsoutadapter.NewSection(settingsSvc),
	}
	sessionSvc := sessionservice.NewSessionService(clk, log, sections)
	sessionUC := sessionusecase.NewInteractor(sessionSvc, sessionoutadapter.NewFileDocumentStore(cfg.SessionsDir), clk)

	dashboardSvc := dashboardservice.NewDashboardService(ledgerUC, inventoryUC, roiUC, budgetUC, movementUC, settingsUC)
	dashboardUC := dashboardusecase.NewInteractor(dashboardSvc)
	sessionSvc.SetObserver(dashboardoutadapter.NewObserver(dashboardSvc))

	itemStore, err := catalogoutadapter.NewSQLiteItemStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new item store: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(itemStore))

	auditorUC := auditorusecase.NewInteractor(
		auditorservice.NewParser(),
		auditoroutadapter.NewFileSaveReader(),
		catalogUC,
	)

	importerUC := importerusecase.NewInteractor(
		importerservice.NewImporterService(
			importeroutadapter.NewFileManifestStore(cfg.DataPath),
			importeroutadapter.NewGRPCHost(),
		),
		catalogUC,
	)

	return &App{
		SessionCLI:  sessioninadapter.NewCLIHandler(sessionUC),
		CatalogCLI:  cataloginadapter.NewCLIHandler(catalogUC),
		AuditorCLI:  auditorinadapter.NewCLIHandler(auditorUC),
		ImporterCLI: importerinadapter.NewCLIHandler(importerUC),
		Ledger:      ledgerUC,
		Inventory:   inventoryUC,
		ROI:         roiUC,
		Budget:      budgetUC,
		Movement:    movementUC,
		Settings:    settingsUC,
		Dashboard:   dashboardUC,
		Session:     sessionUC,
		Catalog:     catalogUC,
		closer:      itemStore,
	}, nil
}

// Close releases the catalog database handle.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func RunTUI(dataPath string, app *App) error {
	model := uiapp.NewModel(
		dataPath,
		app.Dashboard,
		app.Ledger,
		app.Inventory,
		app.ROI,
		app.Budget,
		app.Movement,
		app.Session,
		app.Settings,
		app.Settings,
		app.ImporterCLI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
