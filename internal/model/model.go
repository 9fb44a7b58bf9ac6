package model

import "time"

type Outcome string

const (
	Success Outcome = "SUCCESS"
	Failure Outcome = "FAILURE"
	Warning Outcome = "WARNING"
)

// StatusCompleted is the only source order status eligible for conversion.
const StatusCompleted = "completed"

type CatalogItem struct {
	Name      string
	UnitPrice int64 // minor units
}

// ServiceCatalog maps a service type to its items in source row order.
// Row order matters: the combination matcher breaks ties by it.
type ServiceCatalog map[string][]CatalogItem

type EligibilitySets struct {
	FemaleOnly map[string]struct{}
	MaleOnly   map[string]struct{}
}

type SourceOrder struct {
	ID        string
	Name      string
	Phone     string
	Gender    string
	Address   string
	UserGroup string
	Paid      int64 // minor units
	PayTime   string
	Status    string
}

type LineItem struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

type SubOrder struct {
	ID        string
	Source    SourceOrder
	Amount    int64
	Items     []LineItem
	OrderedAt time.Time
}

type LogEntry struct {
	Outcome Outcome `json:"outcome"`
	OrderID string  `json:"order_id"`
	Message string  `json:"message"`
}
