// Package csv loads the engine's ten source record types from flat CSV
// files, grounded on the teacher's csv_loader.go: header validation, per-row
// column-count checks, and strconv/time.Parse field conversion.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/devkrishnan/mrpnet/pkg/domain/entities"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Loader reads MRP source data from CSV files into entity slices.
type Loader struct{}

// NewLoader creates a new CSV loader.
func NewLoader() *Loader {
	return &Loader{}
}

func readRows(filename string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("%s must have at least a header row", filename)
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch: expected %v, got %v", filename, expectedHeader, records[0])
	}

	rows := records[1:]
	for i, row := range rows {
		if len(row) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", filename, i+2, len(expectedHeader), len(row))
		}
	}
	return rows, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseDecimal(field, colName string, rowNum int) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(field)
	if err != nil {
		return decimal.Zero, fmt.Errorf("row %d: invalid %s: %s", rowNum, colName, field)
	}
	return d, nil
}

func parseDate(field, colName string, rowNum int) (time.Time, error) {
	t, err := time.Parse(dateLayout, field)
	if err != nil {
		return time.Time{}, fmt.Errorf("row %d: invalid %s %q, expected YYYY-MM-DD", rowNum, colName, field)
	}
	return t, nil
}

// LoadBOMEdges loads BOM parent/child/qtyPer/effectivity rows.
func (l *Loader) LoadBOMEdges(filename string) ([]entities.BOMEdge, error) {
	header := []string{"parent_part", "child_part", "qty_per", "effective_from", "effective_to"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var edges []entities.BOMEdge
	for i, r := range rows {
		rowNum := i + 2
		qtyPer, err := strconv.ParseInt(r[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid qty_per: %s", rowNum, r[2])
		}
		from, err := parseDate(r[3], "effective_from", rowNum)
		if err != nil {
			return nil, err
		}
		var to time.Time
		if r[4] != "" {
			to, err = parseDate(r[4], "effective_to", rowNum)
			if err != nil {
				return nil, err
			}
		}
		edge, err := entities.NewBOMEdge(entities.Part(r[0]), entities.Part(r[1]), qtyPer, from, to)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

// LoadItems loads item-master rows.
func (l *Loader) LoadItems(filename string) ([]entities.Item, error) {
	header := []string{"part", "lead_time_days", "pan_size", "shrink_factor", "eoq"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var items []entities.Item
	for i, r := range rows {
		rowNum := i + 2
		leadTime, err := strconv.Atoi(r[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid lead_time_days: %s", rowNum, r[1])
		}
		panSize, err := parseDecimal(r[2], "pan_size", rowNum)
		if err != nil {
			return nil, err
		}
		shrink, err := parseDecimal(r[3], "shrink_factor", rowNum)
		if err != nil {
			return nil, err
		}
		eoq, err := parseDecimal(r[4], "eoq", rowNum)
		if err != nil {
			return nil, err
		}
		item, err := entities.NewItem(entities.Part(r[0]), leadTime, panSize, shrink, eoq)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// LoadPreferredSupplierLeadTimes loads preferred-supplier lead-time
// override rows.
func (l *Loader) LoadPreferredSupplierLeadTimes(filename string) ([]entities.PreferredSupplierLeadTime, error) {
	header := []string{"part", "lead_time_days"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.PreferredSupplierLeadTime
	for i, r := range rows {
		leadTime, err := strconv.Atoi(r[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid lead_time_days: %s", i+2, r[1])
		}
		out = append(out, entities.PreferredSupplierLeadTime{Part: entities.Part(r[0]), LeadTimeDays: leadTime})
	}
	return out, nil
}

// LoadSalesOrders loads open sales-order-line rows.
func (l *Loader) LoadSalesOrders(filename string) ([]entities.SalesOrderLine, error) {
	header := []string{"part", "order_no", "ordered_qty", "invoiced_qty", "due_date"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.SalesOrderLine
	for i, r := range rows {
		rowNum := i + 2
		ordered, err := parseDecimal(r[2], "ordered_qty", rowNum)
		if err != nil {
			return nil, err
		}
		invoiced, err := parseDecimal(r[3], "invoiced_qty", rowNum)
		if err != nil {
			return nil, err
		}
		due, err := parseDate(r[4], "due_date", rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.SalesOrderLine{
			Part: entities.Part(r[0]), OrderNo: r[1], OrderedQty: ordered, InvoicedQty: invoiced, DueDate: due,
		})
	}
	return out, nil
}

// LoadWorkOrders loads open work-order component-need rows.
func (l *Loader) LoadWorkOrders(filename string) ([]entities.OpenWorkOrder, error) {
	header := []string{"wo_no", "output_part", "output_qty_reqd", "output_received", "component_part", "qty_per_unit", "qty_required", "required_by"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.OpenWorkOrder
	for i, r := range rows {
		rowNum := i + 2
		outputReqd, err := parseDecimal(r[2], "output_qty_reqd", rowNum)
		if err != nil {
			return nil, err
		}
		outputReceived, err := parseDecimal(r[3], "output_received", rowNum)
		if err != nil {
			return nil, err
		}
		qtyPerUnit, err := parseDecimal(r[5], "qty_per_unit", rowNum)
		if err != nil {
			return nil, err
		}
		qtyRequired, err := parseDecimal(r[6], "qty_required", rowNum)
		if err != nil {
			return nil, err
		}
		requiredBy, err := parseDate(r[7], "required_by", rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.OpenWorkOrder{
			WONo: r[0], OutputPart: entities.Part(r[1]), OutputQtyReqd: outputReqd, OutputReceived: outputReceived,
			ComponentPart: entities.Part(r[4]), QtyPerUnit: qtyPerUnit, QtyRequired: qtyRequired, RequiredBy: requiredBy,
		})
	}
	return out, nil
}

// LoadIssuedStockMoves loads component issues against open work orders.
func (l *Loader) LoadIssuedStockMoves(filename string) ([]entities.IssuedStockMove, error) {
	header := []string{"wo_no", "component_part", "qty_issued"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.IssuedStockMove
	for i, r := range rows {
		qty, err := parseDecimal(r[2], "qty_issued", i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.IssuedStockMove{WONo: r[0], ComponentPart: entities.Part(r[1]), QtyIssued: qty})
	}
	return out, nil
}

// LoadMRPDemands loads recorded MRP demand rows.
func (l *Loader) LoadMRPDemands(filename string) ([]entities.MRPDemand, error) {
	header := []string{"part", "quantity", "date_required", "order_no"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.MRPDemand
	for i, r := range rows {
		rowNum := i + 2
		qty, err := parseDecimal(r[1], "quantity", rowNum)
		if err != nil {
			return nil, err
		}
		due, err := parseDate(r[2], "date_required", rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.MRPDemand{Part: entities.Part(r[0]), Quantity: qty, DateRequired: due, OrderNo: r[3]})
	}
	return out, nil
}

// LoadLocationStock loads per-location on-hand and reorder-level rows.
func (l *Loader) LoadLocationStock(filename string) ([]entities.LocationStock, error) {
	header := []string{"part", "location", "on_hand", "reorder_level"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.LocationStock
	for i, r := range rows {
		rowNum := i + 2
		onHand, err := parseDecimal(r[2], "on_hand", rowNum)
		if err != nil {
			return nil, err
		}
		reorderLevel, err := parseDecimal(r[3], "reorder_level", rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.LocationStock{Part: entities.Part(r[0]), Location: r[1], OnHand: onHand, ReorderLevel: reorderLevel})
	}
	return out, nil
}

// LoadPurchaseOrders loads open purchase-order-line rows.
func (l *Loader) LoadPurchaseOrders(filename string) ([]entities.PurchaseOrderLine, error) {
	header := []string{"part", "order_no", "ordered_qty", "received_qty", "due_date"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.PurchaseOrderLine
	for i, r := range rows {
		rowNum := i + 2
		ordered, err := parseDecimal(r[2], "ordered_qty", rowNum)
		if err != nil {
			return nil, err
		}
		received, err := parseDecimal(r[3], "received_qty", rowNum)
		if err != nil {
			return nil, err
		}
		due, err := parseDate(r[4], "due_date", rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.PurchaseOrderLine{Part: entities.Part(r[0]), OrderNo: r[1], OrderedQty: ordered, ReceivedQty: received, DueDate: due})
	}
	return out, nil
}

// LoadPositiveStockMoves loads inventory receipt rows.
func (l *Loader) LoadPositiveStockMoves(filename string) ([]entities.StockMove, error) {
	header := []string{"part", "location", "quantity"}
	rows, err := readRows(filename, header)
	if err != nil {
		return nil, err
	}

	var out []entities.StockMove
	for i, r := range rows {
		qty, err := parseDecimal(r[2], "quantity", i+2)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.StockMove{Part: entities.Part(r[0]), Location: r[1], Quantity: qty})
	}
	return out, nil
}
