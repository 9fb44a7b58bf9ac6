package split

import (
	"math/rand"

	"github.com/avolkov/washconv/internal/errs"
)

// Split partitions total into parts that sum to total, each in (0, ceiling].
// While the remainder exceeds the ceiling it draws a part uniformly from
// [floor, min(ceiling, remaining-floor)] so the tail never ends up below the
// floor. When that range is empty the draw falls back to
// [remaining-ceiling, ceiling], which keeps both the drawn part and the
// remainder within the ceiling. The final remainder is emitted as the last
// part. Randomness comes from the caller's source so runs are seedable.
func Split(total, ceiling, floor int64, rnd *rand.Rand) ([]int64, error) {
	if total <= 0 || ceiling <= 0 {
		return nil, errs.ErrBadAmount
	}
	if floor < 1 {
		floor = 1
	}
	if floor > ceiling {
		floor = ceiling
	}

	if total <= ceiling {
		return []int64{total}, nil
	}

	var parts []int64
	remaining := total
	for remaining > ceiling {
		lo, hi := floor, min64(ceiling, remaining-floor)
		if hi < lo {
			lo, hi = remaining-ceiling, ceiling
			if lo < 1 {
				lo = 1
			}
		}
		part := lo + rnd.Int63n(hi-lo+1)
		parts = append(parts, part)
		remaining -= part
	}
	if remaining > 0 {
		parts = append(parts, remaining)
	}
	return parts, nil
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
