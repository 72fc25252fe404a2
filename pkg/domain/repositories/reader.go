package repositories

import (
	"context"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
)

// LocationFilter is the set of locations a read is restricted to. An empty
// filter disables filtering; the loaders turn a configured empty or {"All"}
// location set into an empty filter (§9).
type LocationFilter map[string]bool

// SourceReader is the read side of the storage adapter (§6): a finite,
// restartable sequence of records per source, read once per run and never
// mutated by the engine.
type SourceReader interface {
	GetBOMEdges(ctx context.Context) ([]entities.BOMEdge, error)
	GetItemMaster(ctx context.Context) ([]entities.Item, error)
	GetPreferredSupplierLeadTimes(ctx context.Context) ([]entities.PreferredSupplierLeadTime, error)
	GetOpenSalesOrders(ctx context.Context) ([]entities.SalesOrderLine, error)
	GetOpenWorkOrders(ctx context.Context) ([]entities.OpenWorkOrder, error)
	GetIssuedStockMovesForWO(ctx context.Context, woNo string) ([]entities.IssuedStockMove, error)
	GetMRPDemands(ctx context.Context) ([]entities.MRPDemand, error)
	GetLocationStock(ctx context.Context, filter LocationFilter) ([]entities.LocationStock, error)
	GetOpenPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrderLine, error)
	GetPositiveStockMoves(ctx context.Context, filter LocationFilter) ([]entities.StockMove, error)
}
