package tabular

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/avolkov/washconv/internal/model"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleSubOrders() []model.SubOrder {
	src := model.SourceOrder{
		ID:        "1001",
		Name:      "alice",
		Phone:     "555-0100",
		Gender:    "female",
		Address:   "12 main st",
		UserGroup: "wash",
	}
	at := time.Date(2025, 1, 5, 8, 30, 0, 0, time.UTC)

	return []model.SubOrder{
		{
			ID:     "2503270000000000001",
			Source: src,
			Amount: 1500,
			Items: []model.LineItem{
				{Name: "basic wash", Quantity: 1, UnitPrice: 1000},
				{Name: "iron", Quantity: 1, UnitPrice: 500},
			},
			OrderedAt: at,
		},
		{
			ID:        "2503270000000000002",
			Source:    src,
			Amount:    700,
			Items:     []model.LineItem{{Name: "duvet clean", Quantity: 1, UnitPrice: 700}},
			OrderedAt: at.AddDate(0, 0, 1),
		},
	}
}

func TestRowsFirstRowCarriesHeader(t *testing.T) {
	rows := Rows(sampleSubOrders())
	require.Len(t, rows, 3)

	first := rows[0]
	require.Equal(t, "2503270000000000001", first.Header.OrderID)
	require.Equal(t, "1001", first.Header.SourceID)
	require.Equal(t, "15.00", first.Header.Amount)
	require.Equal(t, "2025-01-05 08:30:00", first.Header.OrderedAt)
	require.Equal(t, "basic wash", first.Line.Item)

	second := rows[1]
	require.Equal(t, model.SubOrderHeader{}, second.Header)
	require.Equal(t, "iron", second.Line.Item)
	require.Equal(t, "5.00", second.Line.UnitPrice)

	third := rows[2]
	require.Equal(t, "2503270000000000002", third.Header.OrderID)
	require.Equal(t, "2025-01-06 08:30:00", third.Header.OrderedAt)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(sampleSubOrders())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, Columns, records[0])
	require.Equal(t, "2503270000000000001", records[1][0])
	require.Equal(t, "", records[2][0])
	require.Equal(t, "iron", records[2][7])
	require.Equal(t, "1", records[2][8])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Rows(sampleSubOrders())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	require.Equal(t, Columns, rows[0])
	require.Equal(t, "basic wash", rows[1][7])
}

func TestFormatMinor(t *testing.T) {
	require.Equal(t, "15.00", FormatMinor(1500))
	require.Equal(t, "0.05", FormatMinor(5))
	require.Equal(t, "300.00", FormatMinor(30000))
}
