package loaders

import (
	"context"
	"testing"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/shopspring/decimal"
)

// fakeReader is a hand-rolled stub implementing repositories.SourceReader,
// in the teacher's no-mocking-library test style.
type fakeReader struct {
	salesOrders    []entities.SalesOrderLine
	workOrders     []entities.OpenWorkOrder
	issuedByWO     map[string][]entities.IssuedStockMove
	mrpDemands     []entities.MRPDemand
	locationStock  []entities.LocationStock
	purchaseOrders []entities.PurchaseOrderLine
	positiveMoves  []entities.StockMove
}

func (f *fakeReader) GetBOMEdges(ctx context.Context) ([]entities.BOMEdge, error) { return nil, nil }
func (f *fakeReader) GetItemMaster(ctx context.Context) ([]entities.Item, error)  { return nil, nil }
func (f *fakeReader) GetPreferredSupplierLeadTimes(ctx context.Context) ([]entities.PreferredSupplierLeadTime, error) {
	return nil, nil
}
func (f *fakeReader) GetOpenSalesOrders(ctx context.Context) ([]entities.SalesOrderLine, error) {
	return f.salesOrders, nil
}
func (f *fakeReader) GetOpenWorkOrders(ctx context.Context) ([]entities.OpenWorkOrder, error) {
	return f.workOrders, nil
}
func (f *fakeReader) GetIssuedStockMovesForWO(ctx context.Context, woNo string) ([]entities.IssuedStockMove, error) {
	return f.issuedByWO[woNo], nil
}
func (f *fakeReader) GetMRPDemands(ctx context.Context) ([]entities.MRPDemand, error) {
	return f.mrpDemands, nil
}
func (f *fakeReader) GetLocationStock(ctx context.Context, filter repositories.LocationFilter) ([]entities.LocationStock, error) {
	return f.locationStock, nil
}
func (f *fakeReader) GetOpenPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrderLine, error) {
	return f.purchaseOrders, nil
}
func (f *fakeReader) GetPositiveStockMoves(ctx context.Context, filter repositories.LocationFilter) ([]entities.StockMove, error) {
	return f.positiveMoves, nil
}

var _ repositories.SourceReader = (*fakeReader)(nil)

func TestRequirementsLoader_SalesOrderNetsOrderedLessInvoiced(t *testing.T) {
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		salesOrders: []entities.SalesOrderLine{
			{Part: "A", OrderNo: "100", OrderedQty: decimal.NewFromInt(50), InvoicedQty: decimal.NewFromInt(20), DueDate: due},
			{Part: "B", OrderNo: "101", OrderedQty: decimal.NewFromInt(10), InvoicedQty: decimal.NewFromInt(10), DueDate: due},
		},
	}

	loader := NewRequirementsLoader(due, entities.Config{})
	reqs, err := loader.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected only the A line to net positive, got %d requirements", len(reqs))
	}
	if !reqs[0].Quantity.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected quantity 30, got %s", reqs[0].Quantity)
	}
	if !reqs[0].DirectDemand {
		t.Errorf("expected direct demand for a sales order line")
	}
}

func TestRequirementsLoader_WorkOrderComponentNetsIssued(t *testing.T) {
	due := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		workOrders: []entities.OpenWorkOrder{
			{
				WONo: "WO1", OutputPart: "A", OutputQtyReqd: decimal.NewFromInt(10),
				ComponentPart: "B", QtyPerUnit: decimal.NewFromInt(2), RequiredBy: due,
			},
		},
		issuedByWO: map[string][]entities.IssuedStockMove{
			"WO1": {{WONo: "WO1", ComponentPart: "B", QtyIssued: decimal.NewFromInt(5)}},
		},
	}

	loader := NewRequirementsLoader(due, entities.Config{})
	reqs, err := loader.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one component requirement, got %d", len(reqs))
	}
	if !reqs[0].Quantity.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected 2*10 - 5 = 15, got %s", reqs[0].Quantity)
	}
}

func TestRequirementsLoader_OptionalSourcesGatedByConfig(t *testing.T) {
	today := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		mrpDemands:    []entities.MRPDemand{{Part: "A", Quantity: decimal.NewFromInt(5), DateRequired: today, OrderNo: "900"}},
		locationStock: []entities.LocationStock{{Part: "B", Location: "WH1", OnHand: decimal.NewFromInt(2), ReorderLevel: decimal.NewFromInt(10)}},
	}

	disabled := NewRequirementsLoader(today, entities.Config{})
	reqs, err := disabled.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 0 {
		t.Fatalf("expected no requirements with both options disabled, got %d", len(reqs))
	}

	enabled := NewRequirementsLoader(today, entities.Config{UseMrpDemands: true, UseReorderLevelDemands: true})
	reqs, err = enabled.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reqs) != 2 {
		t.Fatalf("expected one MRPD and one REORD requirement, got %d", len(reqs))
	}
}

func TestSuppliesLoader_OnHandAggregatesAcrossLocationsWhenUnfiltered(t *testing.T) {
	reader := &fakeReader{
		positiveMoves: []entities.StockMove{
			{Part: "A", Location: "WH1", Quantity: decimal.NewFromInt(10)},
			{Part: "A", Location: "WH2", Quantity: decimal.NewFromInt(5)},
		},
	}

	loader := NewSuppliesLoader(entities.Config{})
	supplies, err := loader.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(supplies) != 1 {
		t.Fatalf("expected one aggregated QOH supply, got %d", len(supplies))
	}
	if !supplies[0].SupplyQty.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected aggregated quantity 15, got %s", supplies[0].SupplyQty)
	}
	if !supplies[0].DueDate.Equal(entities.PastDueSentinel) {
		t.Errorf("expected QOH supply to carry the past-due sentinel date")
	}
}

func TestSuppliesLoader_PurchaseOrderNetsReceived(t *testing.T) {
	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	reader := &fakeReader{
		purchaseOrders: []entities.PurchaseOrderLine{
			{Part: "A", OrderNo: "500", OrderedQty: decimal.NewFromInt(100), ReceivedQty: decimal.NewFromInt(40), DueDate: due},
		},
	}

	loader := NewSuppliesLoader(entities.Config{})
	supplies, err := loader.Load(context.Background(), reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(supplies) != 1 || !supplies[0].SupplyQty.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected a single supply of 60, got %v", supplies)
	}
	if supplies[0].OrderType != entities.PO {
		t.Errorf("expected order type PO, got %v", supplies[0].OrderType)
	}
}
