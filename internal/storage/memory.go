package storage

import (
	"sync"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/convert"
	"github.com/avolkov/washconv/internal/errs"
	"github.com/avolkov/washconv/internal/model"
)

// MemoryStore holds the state of one interactive session: the last loaded
// catalog, the last loaded orders and the last conversion result. Nothing
// survives a restart. Uploading new data invalidates whatever was derived
// from the previous upload.
type MemoryStore struct {
	mu sync.Mutex

	priceRows []catalog.PriceRow
	cat       model.ServiceCatalog
	itemNames []string
	defaults  model.EligibilitySets
	hasCat    bool

	orders    []model.SourceOrder
	hasOrders bool

	result *convert.Result
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveCatalog replaces the session catalog, rebuilds the derived index and
// default eligibility sets and drops any previous result.
func (s *MemoryStore) SaveCatalog(rows []catalog.PriceRow) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.priceRows = rows
	s.cat = catalog.Build(rows)
	s.itemNames = catalog.ItemNames(rows)
	s.defaults = catalog.DefaultSets(s.itemNames)
	s.hasCat = true
	s.result = nil
}

func (s *MemoryStore) Catalog() (model.ServiceCatalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCat {
		return nil, errs.ErrNoCatalog
	}
	return s.cat, nil
}

func (s *MemoryStore) ItemNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemNames
}

func (s *MemoryStore) DefaultSets() (model.EligibilitySets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasCat {
		return model.EligibilitySets{}, errs.ErrNoCatalog
	}
	return s.defaults, nil
}

// SaveOrders replaces the session orders and drops any previous result.
func (s *MemoryStore) SaveOrders(orders []model.SourceOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = orders
	s.hasOrders = true
	s.result = nil
}

func (s *MemoryStore) Orders() ([]model.SourceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasOrders {
		return nil, errs.ErrNoOrders
	}
	return s.orders, nil
}

func (s *MemoryStore) SaveResult(res *convert.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = res
}

func (s *MemoryStore) Result() (*convert.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return nil, errs.ErrNoResult
	}
	return s.result, nil
}
