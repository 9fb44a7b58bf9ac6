package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/errs"
	"github.com/avolkov/washconv/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Table is a raw grid of cell values.
type Table [][]string

// Expected column names used for header detection and field mapping.
var (
	OrderFields = []string{"order_id", "name", "phone", "gender", "address", "paid_amount", "pay_time", "user_group", "status"}
	PriceFields = []string{"item_name", "unit_price", "service_type"}
)

const headerProbeRows = 5

// ReadTable loads a csv or xlsx table, picking the format by file extension
// (xlsx when the extension is not .csv, matching upload behavior).
func ReadTable(r io.Reader, filename string) (Table, error) {
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return rows, nil
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	return rows, nil
}

// DetectHeader probes the first few rows for any of the expected column
// names and returns the index of the first row that contains one.
// Falls back to row 0.
func DetectHeader(t Table, expected []string) int {
	want := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		want[name] = struct{}{}
	}
	limit := headerProbeRows
	if len(t) < limit {
		limit = len(t)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range t[i] {
			if _, ok := want[normalize(cell)]; ok {
				return i
			}
		}
	}
	return 0
}

// columnIndex maps expected field names to column positions in the header
// row. Missing fields come back in warnings and read as empty values.
func columnIndex(header []string, expected []string) (map[string]int, []string) {
	pos := make(map[string]int, len(header))
	for i, cell := range header {
		name := normalize(cell)
		if _, seen := pos[name]; !seen {
			pos[name] = i
		}
	}

	idx := make(map[string]int, len(expected))
	var warnings []string
	for _, name := range expected {
		i, ok := pos[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("column %q not found", name))
			continue
		}
		idx[name] = i
	}
	return idx, warnings
}

// ParseOrders maps the orders table into source orders. Unparseable paid
// amounts become zero and get filtered out before conversion.
func ParseOrders(t Table) ([]model.SourceOrder, []string, error) {
	if len(t) == 0 {
		return nil, nil, errs.ErrEmptyTable
	}

	h := DetectHeader(t, OrderFields)
	idx, warnings := columnIndex(t[h], OrderFields)

	var orders []model.SourceOrder
	for _, row := range t[h+1:] {
		o := model.SourceOrder{
			ID:        cell(row, idx, "order_id"),
			Name:      cell(row, idx, "name"),
			Phone:     cell(row, idx, "phone"),
			Gender:    cell(row, idx, "gender"),
			Address:   cell(row, idx, "address"),
			UserGroup: cell(row, idx, "user_group"),
			PayTime:   cell(row, idx, "pay_time"),
			Status:    cell(row, idx, "status"),
		}
		o.Paid, _ = ToMinor(cell(row, idx, "paid_amount"))
		if o.ID == "" && o.Name == "" && o.Paid == 0 {
			continue
		}
		orders = append(orders, o)
	}
	return orders, warnings, nil
}

// ParsePriceRows maps the price table into catalog rows.
func ParsePriceRows(t Table) ([]catalog.PriceRow, []string, error) {
	if len(t) == 0 {
		return nil, nil, errs.ErrEmptyTable
	}

	h := DetectHeader(t, PriceFields)
	idx, warnings := columnIndex(t[h], PriceFields)

	var rows []catalog.PriceRow
	for _, row := range t[h+1:] {
		r := catalog.PriceRow{
			Name:        cell(row, idx, "item_name"),
			ServiceType: cell(row, idx, "service_type"),
		}
		r.UnitPrice, _ = ToMinor(cell(row, idx, "unit_price"))
		if r.Name == "" && r.ServiceType == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows, warnings, nil
}

// ToMinor converts a currency string to integer minor units, rounding
// half away from zero at the cent boundary so the conversion is
// deterministic.
func ToMinor(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

func cell(row []string, idx map[string]int, field string) string {
	i, ok := idx[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
