package catalog

import (
	"testing"

	"github.com/avolkov/washconv/internal/model"
	"github.com/stretchr/testify/require"
)

func TestDefaultSets(t *testing.T) {
	names := []string{
		"pleated skirt press",
		"female coat clean",
		"male suit clean",
		"shirt wash",
		"male and female robe", // both tokens, restricted to neither
	}

	sets := DefaultSets(names)

	require.Equal(t, map[string]struct{}{
		"pleated skirt press": {},
		"female coat clean":   {},
	}, sets.FemaleOnly)
	require.Equal(t, map[string]struct{}{
		"male suit clean": {},
	}, sets.MaleOnly)
}

func TestDefaultSetsFemaleIsNotAMaleToken(t *testing.T) {
	sets := DefaultSets([]string{"female dress clean"})

	require.Contains(t, sets.FemaleOnly, "female dress clean")
	require.NotContains(t, sets.MaleOnly, "female dress clean")
}

func TestFilterByGender(t *testing.T) {
	items := []model.CatalogItem{
		{Name: "skirt press", UnitPrice: 800},
		{Name: "male suit clean", UnitPrice: 1200},
		{Name: "shirt wash", UnitPrice: 500},
	}
	sets := DefaultSets([]string{"skirt press", "male suit clean", "shirt wash"})

	male := Filter(items, "male", sets)
	require.Equal(t, []model.CatalogItem{
		{Name: "male suit clean", UnitPrice: 1200},
		{Name: "shirt wash", UnitPrice: 500},
	}, male)

	female := Filter(items, "Female", sets)
	require.Equal(t, []model.CatalogItem{
		{Name: "skirt press", UnitPrice: 800},
		{Name: "shirt wash", UnitPrice: 500},
	}, female)
}

func TestFilterUnknownGenderPassesAll(t *testing.T) {
	items := []model.CatalogItem{
		{Name: "skirt press", UnitPrice: 800},
		{Name: "male suit clean", UnitPrice: 1200},
	}
	sets := DefaultSets([]string{"skirt press", "male suit clean"})

	require.Equal(t, items, Filter(items, "", sets))
	require.Equal(t, items, Filter(items, "other", sets))
}

func TestFilterCanEmpty(t *testing.T) {
	items := []model.CatalogItem{{Name: "skirt press", UnitPrice: 800}}
	sets := SetsFromNames([]string{"skirt press"}, nil)

	require.Empty(t, Filter(items, "male", sets))
}
