package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderLine is an open, non-quote, non-discontinued sales order line as
// returned by getOpenSalesOrders() (§4.3, §6). Loaders derive requirement
// quantity as OrderedQty − InvoicedQty.
type SalesOrderLine struct {
	Part        Part
	OrderNo     string
	OrderedQty  decimal.Decimal
	InvoicedQty decimal.Decimal
	DueDate     time.Time
}

// OpenWorkOrder is an open, non-discontinued work order as returned by
// getOpenWorkOrders(). It carries both the component demand it places on its
// parts and the receipt supply it represents for its own output part.
type OpenWorkOrder struct {
	WONo           string
	OutputPart     Part
	OutputQtyReqd  decimal.Decimal
	OutputReceived decimal.Decimal
	ComponentPart  Part
	QtyPerUnit     decimal.Decimal
	QtyRequired    decimal.Decimal
	RequiredBy     time.Time
}

// IssuedStockMove is a component issue against an open work order, as
// returned by getIssuedStockMovesForWO(wo), netted against the WO's
// component need.
type IssuedStockMove struct {
	WONo          string
	ComponentPart Part
	QtyIssued     decimal.Decimal
}

// MRPDemand is a recorded MRP demand row, included as a requirement only
// when Config.UseMrpDemands is set (§4.3).
type MRPDemand struct {
	Part         Part
	Quantity     decimal.Decimal
	DateRequired time.Time
	OrderNo      string
}

// LocationStock is a per-location stock record as returned by
// getLocationStock(filter). OnHand and ReorderLevel are used only to derive
// a REORD requirement gap of ReorderLevel − OnHand when
// Config.UseReorderLevelDemands is set (§4.3); the QOH supply quantity
// comes from positive stock moves (StockMove), not from OnHand.
type LocationStock struct {
	Part         Part
	Location     string
	OnHand       decimal.Decimal
	ReorderLevel decimal.Decimal
}

// PurchaseOrderLine is an open purchase-order line (status not in
// {Cancelled, Rejected, Completed}) as returned by getOpenPurchaseOrders().
type PurchaseOrderLine struct {
	Part        Part
	OrderNo     string
	OrderedQty  decimal.Decimal
	ReceivedQty decimal.Decimal
	DueDate     time.Time
}

// StockMove is a positive inventory receipt, as returned by
// getPositiveStockMoves(filter); summed per part across every location the
// filter lets through to derive the QOH supply quantity (§4.4).
type StockMove struct {
	Part     Part
	Location string
	Quantity decimal.Decimal
}
