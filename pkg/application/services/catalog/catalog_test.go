package catalog

import (
	"testing"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/shopspring/decimal"
)

func TestCatalog_MissingItemDefaultsToZero(t *testing.T) {
	c := Build(nil, nil)
	got := c.Get("UNKNOWN")
	if !got.PanSize.IsZero() || !got.ShrinkFactor.IsZero() || !got.EOQ.IsZero() || got.LeadTimeDays != 0 {
		t.Fatalf("expected pass-through zero attributes, got %+v", got)
	}
}

func TestCatalog_PreferredSupplierOverridesLeadTime(t *testing.T) {
	item, err := entities.NewItem("A", 10, decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := Build([]entities.Item{item}, []entities.PreferredSupplierLeadTime{{Part: "A", LeadTimeDays: 3}})

	if got := c.LeadTimeDays("A"); got != 3 {
		t.Errorf("expected preferred-supplier lead time 3 to override item master 10, got %d", got)
	}
}

func TestCatalog_NonPositivePreferredSupplierLeadTimeIgnored(t *testing.T) {
	item, err := entities.NewItem("A", 10, decimal.Zero, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := Build([]entities.Item{item}, []entities.PreferredSupplierLeadTime{{Part: "A", LeadTimeDays: 0}})

	if got := c.LeadTimeDays("A"); got != 10 {
		t.Errorf("expected item master lead time 10 to survive a non-positive override, got %d", got)
	}
}
