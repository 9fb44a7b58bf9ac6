package catalog

import (
	"sort"

	"github.com/avolkov/washconv/internal/model"
)

// PriceRow is one parsed row of the price table.
type PriceRow struct {
	Name        string
	UnitPrice   int64 // minor units
	ServiceType string
}

// Build groups price rows by service type, keeping source row order within
// each group. Rows with an empty item name are dropped.
func Build(rows []PriceRow) model.ServiceCatalog {
	cat := make(model.ServiceCatalog)
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		cat[row.ServiceType] = append(cat[row.ServiceType], model.CatalogItem{
			Name:      row.Name,
			UnitPrice: row.UnitPrice,
		})
	}
	return cat
}

// ItemNames returns the distinct item names of the catalog, sorted.
func ItemNames(rows []PriceRow) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		if _, ok := seen[row.Name]; ok {
			continue
		}
		seen[row.Name] = struct{}{}
		names = append(names, row.Name)
	}
	sort.Strings(names)
	return names
}
