package out

import (
	"context"
	"testing"

	"fmtrack/internal/modules/inventory/domain"
	"fmtrack/internal/modules/inventory/service"
)

func TestCollectRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	svc := service.NewInventoryService()
	svc.Upsert(domain.Item{Name: "Diesel", Category: "Fuel", Location: "Depot", Quantity: 500})
	svc.RecordOilSale(1200)
	raw, err := NewSection(svc).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	other := service.NewInventoryService()
	if err := NewSection(other).Restore(context.Background(), raw); err != nil {
		t.Fatalf("restore: %v", err)
	}
	items := other.Items()
	if len(items) != 1 || items[0].Quantity != 500 {
		t.Fatalf("round trip lost items: %+v", items)
	}
	sold, _, _ := other.OilCap()
	if sold != 1200 {
		t.Fatalf("lifetime oil sold lost: %v", sold)
	}
}

func TestRestoreDefaultsMissingOilKeys(t *testing.T) {
	t.Parallel()

	svc := service.NewInventoryService()
	if err := NewSection(svc).Restore(context.Background(), []byte(`{"inventory_items":[]}`)); err != nil {
		t.Fatalf("restore: %v", err)
	}
	_, cap, enabled := svc.OilCap()
	if !enabled || cap != 10000 {
		t.Fatalf("oil cap defaults not applied: %v %v", enabled, cap)
	}
}

func TestUpsertMergesAndRemoves(t *testing.T) {
	t.Parallel()

	svc := service.NewInventoryService()
	svc.Upsert(domain.Item{Name: "Gravel", Category: "Material", Location: "Pit", Quantity: 10})
	svc.Upsert(domain.Item{Name: "gravel", Category: "material", Location: "pit", Quantity: 5})
	items := svc.Items()
	if len(items) != 1 || items[0].Quantity != 15 {
		t.Fatalf("merge failed: %+v", items)
	}
	svc.Upsert(domain.Item{Name: "Gravel", Category: "Material", Location: "Pit", Quantity: -15})
	if len(svc.Items()) != 0 {
		t.Fatal("zero quantity should remove the item")
	}
}
