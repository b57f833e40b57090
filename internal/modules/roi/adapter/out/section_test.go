package out

import (
	"context"
	"strings"
	"testing"
	"time"

	"fmtrack/internal/modules/roi/domain"
	"fmtrack/internal/modules/roi/service"
	"fmtrack/internal/platform/dates"
	"fmtrack/internal/platform/id"
)

func TestRoundTripKeepsDateKind(t *testing.T) {
	t.Parallel()

	svc := service.NewROIService(id.RandomHex{})
	svc.AddInvestment(domain.Investment{
		Name:         "Excavator",
		Cost:         1000,
		PurchaseDate: dates.NewDate(2026, time.July, 1),
		Notes:        "ordered 2026-07-01T09:00:00Z per invoice",
		Revenues: []domain.Revenue{
			{Date: dates.NewDate(2026, time.August, 1), Amount: 500, Kind: "contract"},
		},
	})
	raw, err := NewSection(svc).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if !strings.Contains(string(raw), `"purchase_date":"2026-07-01"`) {
		t.Fatalf("purchase date not serialized as a calendar day: %s", raw)
	}

	other := service.NewROIService(id.RandomHex{})
	if err := NewSection(other).Restore(context.Background(), raw); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got := other.Investments()
	if len(got) != 1 {
		t.Fatalf("expected one investment, got %d", len(got))
	}
	if got[0].PurchaseDate.String() != "2026-07-01" {
		t.Fatalf("purchase date changed: %s", got[0].PurchaseDate)
	}
	if got[0].Notes != "ordered 2026-07-01T09:00:00Z per invoice" {
		t.Fatalf("free-text note was coerced: %q", got[0].Notes)
	}
	if got[0].Revenues[0].Date.String() != "2026-08-01" {
		t.Fatalf("revenue date changed: %s", got[0].Revenues[0].Date)
	}
}

func TestRestoreRejectsTimestampInDateField(t *testing.T) {
	t.Parallel()

	svc := service.NewROIService(id.RandomHex{})
	raw := []byte(`{"investments":[{"id":"x","name":"Drill","cost":10,"purchase_date":"2026-07-01T00:00:00Z","revenues":[]}]}`)
	if err := NewSection(svc).Restore(context.Background(), raw); err == nil {
		t.Fatal("expected a timestamp in a date field to be rejected")
	}
}
