package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	importerrpc "fmtrack/internal/modules/importer/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// itemRow mirrors the catalog row shape the host expects back from Import.
type itemRow struct {
	ArtNr           int     `json:"art_nr"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	BuyPrice        float64 `json:"buy_price"`
	CurrentBuyPrice float64 `json:"current_buy_price"`
	SellPrice       float64 `json:"sell_price"`
	CanPurchase     bool    `json:"can_purchase"`
	CanSell         bool    `json:"can_sell"`
	Notes           string  `json:"notes,omitempty"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *importerrpc.Empty) (*importerrpc.Metadata, error) {
	return &importerrpc.Metadata{
		Name:         "pricetable",
		Version:      "1.0.0",
		Capabilities: []string{"command", "import"},
	}, nil
}

func (s *server) ListCommands(_ context.Context, _ *importerrpc.Empty) (*importerrpc.ListCommandsResponse, error) {
	return &importerrpc.ListCommandsResponse{Commands: []importerrpc.CommandDescriptor{
		{ID: "columns", Title: "Columns", Description: "Lists the header columns of a price table", Kind: "command", TimeoutMS: 2000},
		{ID: "prices", Title: "Prices", Description: "Imports a CSV price table into the item catalog", Kind: "import", TimeoutMS: 30000},
	}}, nil
}

func (s *server) Execute(_ context.Context, in *importerrpc.ExecuteRequest) (*importerrpc.ExecuteResponse, error) {
	if in.CommandID != "columns" {
		return nil, fmt.Errorf("unknown command: %s", in.CommandID)
	}
	var args struct {
		SourcePath string `json:"source_path"`
	}
	if strings.TrimSpace(in.InputJSON) != "" {
		if err := json.Unmarshal([]byte(in.InputJSON), &args); err != nil {
			return nil, fmt.Errorf("decode input: %w", err)
		}
	}
	if args.SourcePath == "" {
		return &importerrpc.ExecuteResponse{Stderr: "source_path is required", ExitCode: 1}, nil
	}
	header, _, err := readTable(args.SourcePath)
	if err != nil {
		return &importerrpc.ExecuteResponse{Stderr: err.Error(), ExitCode: 1}, nil
	}
	raw, _ := json.Marshal(map[string]any{"columns": header})
	return &importerrpc.ExecuteResponse{Stdout: strings.Join(header, ", "), OutputJSON: string(raw), ExitCode: 0}, nil
}

func (s *server) Import(_ context.Context, in *importerrpc.ImportRequest) (*importerrpc.ImportResponse, error) {
	header, records, err := readTable(in.SourcePath)
	if err != nil {
		return nil, err
	}
	index := map[string]int{}
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("price table has no name column")
	}

	rows := make([]itemRow, 0, len(records))
	warnings := []string{}
	for lineNo, record := range records {
		row, warn := parseRow(index, record)
		if warn != "" {
			// header is line 1
			warnings = append(warnings, fmt.Sprintf("line %d: %s", lineNo+2, warn))
			continue
		}
		rows = append(rows, row)
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode rows: %w", err)
	}
	return &importerrpc.ImportResponse{RowsJSON: string(raw), Warnings: warnings}, nil
}

func parseRow(index map[string]int, record []string) (itemRow, string) {
	cell := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	row := itemRow{
		Name:     cell("name"),
		Category: cell("category"),
		Notes:    cell("notes"),
	}
	if row.Name == "" {
		return itemRow{}, "missing item name"
	}
	if row.Category == "" {
		return itemRow{}, "missing category"
	}
	if v := cell("art_nr"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return itemRow{}, fmt.Sprintf("bad art_nr %q", v)
		}
		row.ArtNr = n
	}
	var warn string
	price := func(col string) float64 {
		v := cell(col)
		if v == "" {
			return 0
		}
		f, err := strconv.ParseFloat(strings.TrimPrefix(v, "$"), 64)
		if err != nil {
			warn = fmt.Sprintf("bad %s %q", col, v)
			return 0
		}
		return f
	}
	row.BuyPrice = price("buy_price")
	row.CurrentBuyPrice = price("current_buy_price")
	row.SellPrice = price("sell_price")
	if warn != "" {
		return itemRow{}, warn
	}
	if row.CurrentBuyPrice == 0 {
		row.CurrentBuyPrice = row.BuyPrice
	}
	row.CanPurchase = row.BuyPrice > 0
	row.CanSell = row.SellPrice > 0
	return row, ""
}

func readTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open price table: %w", err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse price table: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("price table is empty")
	}
	return all[0], all[1:], nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: importerrpc.HandshakeConfig,
		Plugins:         importerrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
