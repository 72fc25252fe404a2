package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func TestLoader_LoadItems(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "items.csv",
		"part,lead_time_days,pan_size,shrink_factor,eoq\n"+
			"A,5,0,10,0\n")

	items, err := NewLoader().LoadItems(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].LeadTimeDays != 5 || !items[0].ShrinkFactor.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestLoader_LoadItems_HeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "items.csv", "wrong,header\nA,B\n")

	if _, err := NewLoader().LoadItems(path); err == nil {
		t.Fatal("expected header mismatch error, got nil")
	}
}

func TestLoader_LoadBOMEdges(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "bom.csv",
		"parent_part,child_part,qty_per,effective_from,effective_to\n"+
			"A,B,2,2024-01-01,\n")

	edges, err := NewLoader().LoadBOMEdges(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 1 || edges[0].QuantityPer != 2 || !edges[0].EffectiveTo.IsZero() {
		t.Fatalf("unexpected edges: %+v", edges)
	}
}

func TestLoader_LoadBOMEdges_RowColumnMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "bom.csv",
		"parent_part,child_part,qty_per,effective_from,effective_to\n"+
			"A,B,2,2024-01-01\n")

	if _, err := NewLoader().LoadBOMEdges(path); err == nil {
		t.Fatal("expected column-count error, got nil")
	}
}

func TestLoader_LoadSalesOrders(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "so.csv",
		"part,order_no,ordered_qty,invoiced_qty,due_date\n"+
			"A,100,50,0,2024-02-01\n")

	rows, err := NewLoader().LoadSalesOrders(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || !rows[0].OrderedQty.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
