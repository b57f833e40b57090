package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fmtrack/internal/bootstrap"
	importerdto "fmtrack/internal/modules/importer/dto"
	sessiondto "fmtrack/internal/modules/session/dto"
	"fmtrack/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "fmtrack",
		Short:         "Frontier Mining Tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", ".", "data directory")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose logging")

	root.AddCommand(newTUICmd(&dataPath, &verbose))
	root.AddCommand(newSessionCmd(&dataPath, &verbose))
	root.AddCommand(newStatusCmd(&dataPath, &verbose))
	root.AddCommand(newCatalogCmd(&dataPath, &verbose))
	root.AddCommand(newAuditCmd(&dataPath, &verbose))
	root.AddCommand(newPluginCmd(&dataPath, &verbose))
	return root
}

func loadApp(dataPath string, logOutput io.Writer, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logOutput, verbose)
}

func newTUICmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run fmtrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, io.Discard, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			return bootstrap.RunTUI(*dataPath, app)
		},
	}
}

func newSessionCmd(dataPath *string, verbose *bool) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Session bookkeeping"}

	save := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current session to the sessions directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			out, err := app.SessionCLI.Save(context.Background(), name)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s at %s\n", out.Path, out.SavedAt)
			printIssues(cmd, out.Issues)
			return nil
		},
	}

	load := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "loaded %s (saved %s, version %s)\n", out.Path, out.SavedAt, out.Version)
			printIssues(cmd, out.Issues)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			sessions, err := app.SessionCLI.ListSaved(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no saved sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s.Filename, s.SavedAt, s.Version)
			}
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <file>",
		Short: "Delete a saved session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			if err := app.SessionCLI.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	var noAutosave bool
	newSession := &cobra.Command{
		Use:   "new",
		Short: "Reset all sections to a fresh session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.NewSession(context.Background(), !noAutosave)
			if err != nil {
				return err
			}
			if out.AutosavePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "autosaved previous session to %s\n", out.AutosavePath)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "started fresh session")
			printIssues(cmd, out.Issues)
			return nil
		},
	}
	newSession.Flags().BoolVar(&noAutosave, "no-autosave", false, "skip autosaving the current session")

	saveTo := &cobra.Command{
		Use:   "save-to <path>",
		Short: "Save the current session to an explicit path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.SessionCLI.SaveTo(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s at %s\n", out.Path, out.SavedAt)
			printIssues(cmd, out.Issues)
			return nil
		},
	}

	session.AddCommand(save, saveTo, load, list, del, newSession)
	return session
}

func newStatusCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the operation summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			s, err := app.Dashboard.Summary(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "game date: %s (%s)\n", s.CurrentGameDate, s.Difficulty)
			_, _ = fmt.Fprintf(out, "personal: $%.2f  company: $%.2f\n", s.PersonalBalance, s.CompanyBalance)
			if s.OilCapEnabled {
				_, _ = fmt.Fprintf(out, "oil: %.0f/%.0f (%.0f%%)\n", s.OilSold, s.OilCap, s.OilQuotaUsed)
			}
			_, _ = fmt.Fprintf(out, "invested: $%.2f  net profit: $%.2f  roi: %.1f%%\n", s.TotalInvested, s.NetProfit, s.OverallROI)
			if s.BestInvestment != "" {
				_, _ = fmt.Fprintf(out, "best investment: %s\n", s.BestInvestment)
			}
			_, _ = fmt.Fprintf(out, "hauled: %.1f yd3  fuel: $%.2f  net revenue: $%.2f\n", s.HauledVolume, s.FuelCost, s.NetRevenue)
			_, _ = fmt.Fprintf(out, "planned spend: $%.2f\n", s.PlannedCost)
			return nil
		},
	}
}

func newCatalogCmd(dataPath *string, verbose *bool) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Item catalog commands"}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			items, err := app.CatalogCLI.List(context.Background(), category)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no items")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\tbuy $%.2f\tsell $%.2f\n",
					item.ArtNr, item.Name, item.Category, item.CurrentBuyPrice, item.SellPrice)
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "filter by category")

	var artNr int
	show := &cobra.Command{
		Use:   "show --art-nr <n>",
		Short: "Show one catalog item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if artNr == 0 {
				return fmt.Errorf("--art-nr is required")
			}
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			item, err := app.CatalogCLI.Show(context.Background(), artNr)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "art nr:   %d\nname:     %s\ncategory: %s\n", item.ArtNr, item.Name, item.Category)
			_, _ = fmt.Fprintf(out, "buy:      $%.2f (current $%.2f)\nsell:     $%.2f\n", item.BuyPrice, item.CurrentBuyPrice, item.SellPrice)
			if item.Notes != "" {
				_, _ = fmt.Fprintf(out, "notes:    %s\n", item.Notes)
			}
			return nil
		},
	}
	show.Flags().IntVar(&artNr, "art-nr", 0, "article number")

	importCmd := &cobra.Command{
		Use:   "import <rows.json>",
		Short: "Import catalog rows from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read rows file: %w", err)
			}
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			out, err := app.CatalogCLI.Import(context.Background(), raw)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d items\n", out.Imported)
			return nil
		},
	}

	catalog.AddCommand(list, show, importCmd)
	return catalog
}

func newAuditCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "audit <save-file>",
		Short: "Inspect a game save file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			report, err := app.AuditorCLI.Audit(context.Background(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "file: %s (%d bytes)\n", report.File, report.Size)
			_, _ = fmt.Fprintf(out, "engine: %s  game: %s  map: %s\n", report.EngineVersion, report.GameVersion, report.MapName)
			_, _ = fmt.Fprintf(out, "money: $%.2f  sales: $%.2f  purchases: $%.2f  transactions: %d\n",
				report.CurrentMoney, report.TotalSales, report.TotalPurchases, report.Transactions)
			for _, line := range report.Lines {
				name := line.ItemName
				if name == "" {
					name = "?"
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\t%d tx\tnet $%.2f\n", line.ItemCode, name, line.Category, line.Count, line.NetAmount)
			}
			return nil
		},
	}
}

func newPluginCmd(dataPath *string, verbose *bool) *cobra.Command {
	plugin := &cobra.Command{Use: "plugin", Short: "Importer plugin commands"}

	plugin.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered plugins",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			plugins, err := app.ImporterCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(plugins) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plugins")
				return nil
			}
			for _, p := range plugins {
				state := "disabled"
				if p.Enabled {
					state = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", p.Name, p.Version, state, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check plugin health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			results, err := app.ImporterCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tchecksum=%t\tbinary=%t\tlifecycle=%t\t%s\n",
					r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK, r.Error)
			}
			return nil
		},
	})

	plugin.AddCommand(&cobra.Command{
		Use:   "commands <plugin>",
		Short: "List a plugin's commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			commands, err := app.ImporterCLI.ListCommands(context.Background(), args[0])
			if err != nil {
				return err
			}
			for _, c := range commands {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", c.ID, c.Kind, c.Title, c.Description)
			}
			return nil
		},
	})

	var inputJSON string
	exec := &cobra.Command{
		Use:   "exec <plugin> <command>",
		Short: "Run a plugin command",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			out, err := app.ImporterCLI.Execute(context.Background(), importerdto.ExecuteInput{
				PluginName: args[0],
				CommandID:  args[1],
				InputJSON:  inputJSON,
				DataPath:   *dataPath,
				Cwd:        cwd,
			})
			if err != nil {
				return err
			}
			if out.Stdout != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Stdout)
			}
			if out.Stderr != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), out.Stderr)
			}
			if out.OutputJSON != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.OutputJSON)
			}
			if out.ExitCode != 0 {
				return fmt.Errorf("plugin command exited %d", out.ExitCode)
			}
			return nil
		},
	}
	exec.Flags().StringVar(&inputJSON, "input-json", "", "JSON payload passed to the command")

	var format string
	importCmd := &cobra.Command{
		Use:   "import <plugin> <source-file>",
		Short: "Import catalog rows through a plugin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, os.Stderr, *verbose)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			out, err := app.ImporterCLI.Import(context.Background(), importerdto.ImportInput{
				PluginName: args[0],
				SourcePath: args[1],
				Format:     format,
				DataPath:   *dataPath,
				Cwd:        cwd,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d catalog rows from %s\n", out.Imported, out.SourcePath)
			for _, warning := range out.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			return nil
		},
	}
	importCmd.Flags().StringVar(&format, "format", "", "source format hint")

	plugin.AddCommand(exec, importCmd)
	return plugin
}

func printIssues(cmd *cobra.Command, issues []sessiondto.Issue) {
	for _, issue := range issues {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", issue.Section, issue.Problem)
	}
}
