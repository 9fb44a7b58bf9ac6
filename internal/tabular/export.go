package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/avolkov/washconv/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet the xlsx export writes to.
const SheetName = "laundry orders"

// Columns is the exported column order.
var Columns = []string{
	"new_order_id", "source_order_id", "name", "phone", "gender", "address",
	"user_group", "item", "quantity", "unit_price", "paid_amount", "status",
	"order_time",
}

// Rows flattens sub-orders into the denormalized export layout: only the
// first row of each sub-order carries the shared header fields, every row
// carries the line item. The layout reads like merged cells in a sheet.
func Rows(subs []model.SubOrder) []model.Row {
	var rows []model.Row
	for _, sub := range subs {
		header := model.SubOrderHeader{
			OrderID:   sub.ID,
			SourceID:  sub.Source.ID,
			Name:      sub.Source.Name,
			Phone:     sub.Source.Phone,
			Gender:    sub.Source.Gender,
			Address:   sub.Source.Address,
			UserGroup: sub.Source.UserGroup,
			Amount:    FormatMinor(sub.Amount),
			Status:    model.StatusCompleted,
			OrderedAt: sub.OrderedAt.Format("2006-01-02 15:04:05"),
		}
		for i, line := range sub.Items {
			row := model.Row{
				Line: model.LineItemRecord{
					Item:      line.Name,
					Quantity:  line.Quantity,
					UnitPrice: FormatMinor(line.UnitPrice),
				},
			}
			if i == 0 {
				row.Header = header
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// WriteCSV writes the column header plus one record per row.
func WriteCSV(w io.Writer, rows []model.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(Record(row)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the rows as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []model.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, Columns); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, i+2, Record(row)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

// FormatMinor renders minor units as a currency string with two decimals.
func FormatMinor(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}

// Record renders one row in Columns order.
func Record(row model.Row) []string {
	h, l := row.Header, row.Line
	return []string{
		h.OrderID, h.SourceID, h.Name, h.Phone, h.Gender, h.Address,
		h.UserGroup, l.Item, strconv.Itoa(l.Quantity), l.UnitPrice,
		h.Amount, h.Status, h.OrderedAt,
	}
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cellName, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cellName, &cells); err != nil {
		return fmt.Errorf("set sheet row: %w", err)
	}
	return nil
}
