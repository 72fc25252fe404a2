// Package commands wires cobra subcommands onto the engine, replacing the
// teacher's flag.String-based cmd/mrp/main.go with a
// github.com/spf13/cobra command tree the way acdtunes-spacetraders's
// internal/adapters/cli package composes subcommands.
package commands

import (
	"fmt"

	"github.com/devkrishnan/mrpnet/pkg/config"
	"github.com/devkrishnan/mrpnet/pkg/domain/repositories"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/repositories/csv"
	"github.com/devkrishnan/mrpnet/pkg/infrastructure/repositories/memory"
)

// loadSourceReader populates an in-memory Store from the CSV files named in
// cfg.CSV. Any source whose path is empty is simply left out of the working
// set rather than erroring, so a scenario can omit sources it doesn't use.
func loadSourceReader(cfg *config.AppConfig) (repositories.SourceReader, error) {
	loader := csv.NewLoader()
	store := memory.NewStore()

	if p := cfg.CSV.BOMEdges; p != "" {
		edges, err := loader.LoadBOMEdges(p)
		if err != nil {
			return nil, fmt.Errorf("loading bom edges: %w", err)
		}
		for _, e := range edges {
			store.AddBOMEdge(e)
		}
	}
	if p := cfg.CSV.Items; p != "" {
		items, err := loader.LoadItems(p)
		if err != nil {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		for _, i := range items {
			store.AddItem(i)
		}
	}
	if p := cfg.CSV.PreferredSupplierLeadTimes; p != "" {
		leadTimes, err := loader.LoadPreferredSupplierLeadTimes(p)
		if err != nil {
			return nil, fmt.Errorf("loading preferred supplier lead times: %w", err)
		}
		for _, lt := range leadTimes {
			store.AddPreferredSupplierLeadTime(lt)
		}
	}
	if p := cfg.CSV.SalesOrders; p != "" {
		salesOrders, err := loader.LoadSalesOrders(p)
		if err != nil {
			return nil, fmt.Errorf("loading sales orders: %w", err)
		}
		for _, so := range salesOrders {
			store.AddSalesOrderLine(so)
		}
	}
	if p := cfg.CSV.WorkOrders; p != "" {
		workOrders, err := loader.LoadWorkOrders(p)
		if err != nil {
			return nil, fmt.Errorf("loading work orders: %w", err)
		}
		for _, wo := range workOrders {
			store.AddOpenWorkOrder(wo)
		}
	}
	if p := cfg.CSV.IssuedStockMoves; p != "" {
		moves, err := loader.LoadIssuedStockMoves(p)
		if err != nil {
			return nil, fmt.Errorf("loading issued stock moves: %w", err)
		}
		for _, m := range moves {
			store.AddIssuedStockMove(m)
		}
	}
	if p := cfg.CSV.MRPDemands; p != "" {
		demands, err := loader.LoadMRPDemands(p)
		if err != nil {
			return nil, fmt.Errorf("loading mrp demands: %w", err)
		}
		for _, d := range demands {
			store.AddMRPDemand(d)
		}
	}
	if p := cfg.CSV.LocationStock; p != "" {
		stock, err := loader.LoadLocationStock(p)
		if err != nil {
			return nil, fmt.Errorf("loading location stock: %w", err)
		}
		for _, ls := range stock {
			store.AddLocationStock(ls)
		}
	}
	if p := cfg.CSV.PurchaseOrders; p != "" {
		purchaseOrders, err := loader.LoadPurchaseOrders(p)
		if err != nil {
			return nil, fmt.Errorf("loading purchase orders: %w", err)
		}
		for _, po := range purchaseOrders {
			store.AddPurchaseOrderLine(po)
		}
	}
	if p := cfg.CSV.PositiveStockMoves; p != "" {
		moves, err := loader.LoadPositiveStockMoves(p)
		if err != nil {
			return nil, fmt.Errorf("loading positive stock moves: %w", err)
		}
		for _, m := range moves {
			store.AddPositiveStockMove(m)
		}
	}

	return store, nil
}
