// Package memory implements the storage adapter's read side (§6) entirely
// in process memory, grounded on the teacher's indexed in-memory
// repositories (bom_repository.go's slice-plus-index shape), generalized
// through shared.PartIndex.
package memory

import (
	"context"
	"sync"

	"github.com/devkrishnan/mrpnet/pkg/application/services/shared"
	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
)

// Store holds every source record an engine run reads, indexed by part for
// O(1) lookup. It is populated once (by a CSV loader, a test fixture, or an
// operator script) and then treated as read-only for the remainder of the
// run, matching §6's "finite restartable sequence of records" contract.
type Store struct {
	mu sync.RWMutex

	bomEdges   []entities.BOMEdge
	items      *shared.PartIndex[entities.Item]
	leadTimes  *shared.PartIndex[entities.PreferredSupplierLeadTime]
	salesOrds  *shared.PartIndex[entities.SalesOrderLine]
	workOrders []entities.OpenWorkOrder
	issuedMoves map[string][]entities.IssuedStockMove
	mrpDemands *shared.PartIndex[entities.MRPDemand]
	locStock   []entities.LocationStock
	purchOrds  *shared.PartIndex[entities.PurchaseOrderLine]
	posMoves   []entities.StockMove
}

// NewStore constructs an empty Store. Use the Add* methods to populate it,
// then pass it to the engine as a repositories.SourceReader.
func NewStore() *Store {
	return &Store{
		items:       shared.NewPartIndex[entities.Item](nil, func(i entities.Item) entities.Part { return i.Part }),
		leadTimes:   shared.NewPartIndex[entities.PreferredSupplierLeadTime](nil, func(l entities.PreferredSupplierLeadTime) entities.Part { return l.Part }),
		salesOrds:   shared.NewPartIndex[entities.SalesOrderLine](nil, func(s entities.SalesOrderLine) entities.Part { return s.Part }),
		issuedMoves: make(map[string][]entities.IssuedStockMove),
		mrpDemands:  shared.NewPartIndex[entities.MRPDemand](nil, func(d entities.MRPDemand) entities.Part { return d.Part }),
		purchOrds:   shared.NewPartIndex[entities.PurchaseOrderLine](nil, func(p entities.PurchaseOrderLine) entities.Part { return p.Part }),
	}
}

var _ repositories.SourceReader = (*Store)(nil)

// AddBOMEdge registers a BOM edge, active or historical (§3: all edges
// participate in level assignment).
func (s *Store) AddBOMEdge(e entities.BOMEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bomEdges = append(s.bomEdges, e)
}

// AddItem registers an item-master record.
func (s *Store) AddItem(i entities.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items.Add(i)
}

// AddPreferredSupplierLeadTime registers a preferred-supplier lead-time
// override.
func (s *Store) AddPreferredSupplierLeadTime(l entities.PreferredSupplierLeadTime) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leadTimes.Add(l)
}

// AddSalesOrderLine registers an open sales order line.
func (s *Store) AddSalesOrderLine(so entities.SalesOrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salesOrds.Add(so)
}

// AddOpenWorkOrder registers an open work order (one row per component
// line; rows sharing a WONo share the same output fields).
func (s *Store) AddOpenWorkOrder(wo entities.OpenWorkOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workOrders = append(s.workOrders, wo)
}

// AddIssuedStockMove registers a component issue against an open work order.
func (s *Store) AddIssuedStockMove(m entities.IssuedStockMove) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedMoves[m.WONo] = append(s.issuedMoves[m.WONo], m)
}

// AddMRPDemand registers a recorded MRP demand row.
func (s *Store) AddMRPDemand(d entities.MRPDemand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mrpDemands.Add(d)
}

// AddLocationStock registers a per-location stock record.
func (s *Store) AddLocationStock(ls entities.LocationStock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locStock = append(s.locStock, ls)
}

// AddPurchaseOrderLine registers an open purchase-order line.
func (s *Store) AddPurchaseOrderLine(po entities.PurchaseOrderLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchOrds.Add(po)
}

// AddPositiveStockMove registers an inventory receipt.
func (s *Store) AddPositiveStockMove(m entities.StockMove) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posMoves = append(s.posMoves, m)
}

func (s *Store) GetBOMEdges(ctx context.Context) ([]entities.BOMEdge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.BOMEdge, len(s.bomEdges))
	copy(out, s.bomEdges)
	return out, nil
}

func (s *Store) GetItemMaster(ctx context.Context) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.All(), nil
}

func (s *Store) GetPreferredSupplierLeadTimes(ctx context.Context) ([]entities.PreferredSupplierLeadTime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.leadTimes.All(), nil
}

func (s *Store) GetOpenSalesOrders(ctx context.Context) ([]entities.SalesOrderLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.salesOrds.All(), nil
}

func (s *Store) GetOpenWorkOrders(ctx context.Context) ([]entities.OpenWorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.OpenWorkOrder, len(s.workOrders))
	copy(out, s.workOrders)
	return out, nil
}

func (s *Store) GetIssuedStockMovesForWO(ctx context.Context, woNo string) ([]entities.IssuedStockMove, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	moves := s.issuedMoves[woNo]
	out := make([]entities.IssuedStockMove, len(moves))
	copy(out, moves)
	return out, nil
}

func (s *Store) GetMRPDemands(ctx context.Context) ([]entities.MRPDemand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mrpDemands.All(), nil
}

func (s *Store) GetLocationStock(ctx context.Context, filter repositories.LocationFilter) ([]entities.LocationStock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(filter) == 0 {
		out := make([]entities.LocationStock, len(s.locStock))
		copy(out, s.locStock)
		return out, nil
	}
	var out []entities.LocationStock
	for _, ls := range s.locStock {
		if filter[ls.Location] {
			out = append(out, ls)
		}
	}
	return out, nil
}

func (s *Store) GetOpenPurchaseOrders(ctx context.Context) ([]entities.PurchaseOrderLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.purchOrds.All(), nil
}

func (s *Store) GetPositiveStockMoves(ctx context.Context, filter repositories.LocationFilter) ([]entities.StockMove, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(filter) == 0 {
		out := make([]entities.StockMove, len(s.posMoves))
		copy(out, s.posMoves)
		return out, nil
	}
	var out []entities.StockMove
	for _, m := range s.posMoves {
		if filter[m.Location] {
			out = append(out, m)
		}
	}
	return out, nil
}
