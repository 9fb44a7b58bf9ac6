package errs

import "errors"

var ErrNoServiceType = errors.New("no matching service type")
var ErrNoEligibleItems = errors.New("no eligible catalog items")
var ErrEmptyTable = errors.New("table has no data rows")
var ErrNoCatalog = errors.New("catalog not loaded")
var ErrNoOrders = errors.New("orders not loaded")
var ErrNoResult = errors.New("no conversion result")
var ErrBadAmount = errors.New("amount must be positive")
