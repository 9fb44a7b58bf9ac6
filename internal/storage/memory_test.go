package storage

import (
	"testing"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/convert"
	"github.com/avolkov/washconv/internal/errs"
	"github.com/avolkov/washconv/internal/model"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Catalog()
	require.ErrorIs(t, err, errs.ErrNoCatalog)

	_, err = s.Orders()
	require.ErrorIs(t, err, errs.ErrNoOrders)

	_, err = s.Result()
	require.ErrorIs(t, err, errs.ErrNoResult)
}

func TestMemoryStoreSaveCatalogDerivesIndex(t *testing.T) {
	s := NewMemoryStore()
	s.SaveCatalog([]catalog.PriceRow{
		{Name: "skirt press", UnitPrice: 800, ServiceType: "wash"},
		{Name: "iron", UnitPrice: 500, ServiceType: "wash"},
	})

	cat, err := s.Catalog()
	require.NoError(t, err)
	require.Len(t, cat["wash"], 2)

	require.Equal(t, []string{"iron", "skirt press"}, s.ItemNames())

	sets, err := s.DefaultSets()
	require.NoError(t, err)
	require.Contains(t, sets.FemaleOnly, "skirt press")
}

func TestMemoryStoreUploadsInvalidateResult(t *testing.T) {
	s := NewMemoryStore()
	s.SaveResult(&convert.Result{})

	_, err := s.Result()
	require.NoError(t, err)

	s.SaveCatalog(nil)
	_, err = s.Result()
	require.ErrorIs(t, err, errs.ErrNoResult)

	s.SaveResult(&convert.Result{})
	s.SaveOrders([]model.SourceOrder{{ID: "1"}})
	_, err = s.Result()
	require.ErrorIs(t, err, errs.ErrNoResult)

	orders, err := s.Orders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
}
