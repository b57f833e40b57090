package out

import (
	"context"
	"testing"

	"fmtrack/internal/modules/ledger/domain"
	"fmtrack/internal/modules/ledger/service"
)

func TestCollectRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	svc := service.NewLedgerService()
	svc.Add(domain.Transaction{"Date": "2026-08-20", "Type": "sale", "Total": "1200"})
	section := NewSection(svc)

	raw, err := section.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	other := service.NewLedgerService()
	if err := NewSection(other).Restore(context.Background(), raw); err != nil {
		t.Fatalf("restore: %v", err)
	}
	txs := other.Transactions()
	if len(txs) != 1 || txs[0]["Total"] != "1200" {
		t.Fatalf("round trip lost transaction: %+v", txs)
	}
}

func TestRestoreAppliesDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()

	svc := service.NewLedgerService()
	section := NewSection(svc)
	if err := section.Restore(context.Background(), []byte(`{"transactions":[]}`)); err != nil {
		t.Fatalf("restore: %v", err)
	}
	personal, company := svc.Balances()
	if personal != 10000 || company != 90000 {
		t.Fatalf("defaults not applied: %v %v", personal, company)
	}
}

func TestRestoreNilResets(t *testing.T) {
	t.Parallel()

	svc := service.NewLedgerService()
	svc.Add(domain.Transaction{"Type": "sale", "Personal Income": "50"})
	if err := NewSection(svc).Restore(context.Background(), nil); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(svc.Transactions()) != 0 {
		t.Fatal("nil payload should reset the ledger")
	}
}

func TestRestoreRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	svc := service.NewLedgerService()
	if err := NewSection(svc).Restore(context.Background(), []byte(`{"transactions":`)); err == nil {
		t.Fatal("expected malformed payload to fail")
	}
}
