package catalog

import (
	"testing"

	"github.com/avolkov/washconv/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBuildGroupsByServiceType(t *testing.T) {
	rows := []PriceRow{
		{Name: "basic wash", UnitPrice: 1000, ServiceType: "wash"},
		{Name: "iron", UnitPrice: 500, ServiceType: "wash"},
		{Name: "duvet clean", UnitPrice: 700, ServiceType: "dry"},
	}

	cat := Build(rows)
	require.Len(t, cat, 2)
	require.Equal(t, []model.CatalogItem{
		{Name: "basic wash", UnitPrice: 1000},
		{Name: "iron", UnitPrice: 500},
	}, cat["wash"])
	require.Equal(t, []model.CatalogItem{{Name: "duvet clean", UnitPrice: 700}}, cat["dry"])
}

func TestBuildDropsEmptyNames(t *testing.T) {
	rows := []PriceRow{
		{Name: "", UnitPrice: 1000, ServiceType: "wash"},
		{Name: "iron", UnitPrice: 500, ServiceType: "wash"},
	}

	cat := Build(rows)
	require.Equal(t, []model.CatalogItem{{Name: "iron", UnitPrice: 500}}, cat["wash"])
}

func TestBuildKeepsRowOrder(t *testing.T) {
	rows := []PriceRow{
		{Name: "z item", UnitPrice: 1, ServiceType: "wash"},
		{Name: "a item", UnitPrice: 2, ServiceType: "wash"},
		{Name: "m item", UnitPrice: 3, ServiceType: "wash"},
	}

	cat := Build(rows)
	require.Equal(t, "z item", cat["wash"][0].Name)
	require.Equal(t, "a item", cat["wash"][1].Name)
	require.Equal(t, "m item", cat["wash"][2].Name)
}

func TestItemNames(t *testing.T) {
	rows := []PriceRow{
		{Name: "iron", ServiceType: "wash"},
		{Name: "basic wash", ServiceType: "wash"},
		{Name: "iron", ServiceType: "dry"},
		{Name: "", ServiceType: "dry"},
	}

	require.Equal(t, []string{"basic wash", "iron"}, ItemNames(rows))
}
