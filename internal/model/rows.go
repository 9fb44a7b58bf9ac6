package model

// SubOrderHeader carries the fields written only on the first row of each
// sub-order in the exported table.
type SubOrderHeader struct {
	OrderID   string
	SourceID  string
	Name      string
	Phone     string
	Gender    string
	Address   string
	UserGroup string
	Amount    string // formatted currency units
	Status    string
	OrderedAt string
}

// LineItemRecord carries the fields written on every row.
type LineItemRecord struct {
	Item      string
	Quantity  int
	UnitPrice string // formatted currency units
}

// Row is one exported row: the header part is zero-valued except on the
// first row of a sub-order.
type Row struct {
	Header SubOrderHeader
	Line   LineItemRecord
}
