package match

import "github.com/avolkov/washconv/internal/model"

// MaxQuantity caps how many units of one catalog item a combination may use.
const MaxQuantity = 3

type Pick struct {
	Name      string
	Quantity  int
	UnitPrice int64
}

type memoKey struct {
	idx       int
	remaining int64
}

type memoEntry struct {
	picks []Pick
	sum   int64
}

// Find returns the multiset of items (0..MaxQuantity units each) whose total
// price is the largest value not exceeding target, and that total. Items are
// tried in list order, quantities from high to low, and a combination only
// replaces the current best on a strict improvement, so for a fixed list and
// target the result is deterministic and exact matches anchor on the earliest
// items. Each subproblem short-circuits once its remaining budget is matched
// exactly.
func Find(items []model.CatalogItem, target int64) ([]Pick, int64) {
	if target <= 0 || len(items) == 0 {
		return nil, 0
	}
	memo := make(map[memoKey]memoEntry)
	e := search(items, 0, target, memo)
	return e.picks, e.sum
}

func search(items []model.CatalogItem, idx int, remaining int64, memo map[memoKey]memoEntry) memoEntry {
	if remaining == 0 || idx == len(items) {
		return memoEntry{}
	}
	key := memoKey{idx, remaining}
	if e, ok := memo[key]; ok {
		return e
	}

	var best memoEntry
	for qty := MaxQuantity; qty >= 0; qty-- {
		cost := items[idx].UnitPrice * int64(qty)
		if cost > remaining {
			continue
		}
		sub := search(items, idx+1, remaining-cost, memo)
		if cost+sub.sum > best.sum {
			best.sum = cost + sub.sum
			best.picks = nil
			if qty > 0 {
				best.picks = append(best.picks, Pick{
					Name:      items[idx].Name,
					Quantity:  qty,
					UnitPrice: items[idx].UnitPrice,
				})
			}
			best.picks = append(best.picks, sub.picks...)
		}
		if best.sum == remaining {
			break
		}
	}

	memo[key] = best
	return best
}
