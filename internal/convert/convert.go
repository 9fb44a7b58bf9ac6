package convert

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/avolkov/washconv/internal/catalog"
	"github.com/avolkov/washconv/internal/match"
	"github.com/avolkov/washconv/internal/model"
	"github.com/avolkov/washconv/internal/split"
)

const (
	DefaultCeiling = 30000 // minor units
	DefaultFloor   = 20000
	DefaultMakeup  = "make-up service"
)

type Options struct {
	Ceiling int64 // max sub-order amount, minor units
	Floor   int64 // min random draw, minor units
	Makeup  string
}

type Transformer struct {
	catalog model.ServiceCatalog
	sets    model.EligibilitySets
	opts    Options
	rnd     *rand.Rand
	now     func() time.Time
	seq     int64
}

type Result struct {
	SubOrders []model.SubOrder
	Logs      []model.LogEntry
}

func New(cat model.ServiceCatalog, sets model.EligibilitySets, opts Options, rnd *rand.Rand, now func() time.Time) *Transformer {
	if opts.Ceiling <= 0 {
		opts.Ceiling = DefaultCeiling
	}
	if opts.Floor <= 0 {
		opts.Floor = DefaultFloor
	}
	if opts.Makeup == "" {
		opts.Makeup = DefaultMakeup
	}
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(now().UnixNano()))
	}
	return &Transformer{catalog: cat, sets: sets, opts: opts, rnd: rnd, now: now}
}

// Convertible reports whether a source order passes the pre-filter:
// completed status and a positive paid amount.
func Convertible(o model.SourceOrder) bool {
	return strings.EqualFold(strings.TrimSpace(o.Status), model.StatusCompleted) && o.Paid > 0
}

// ConvertAll processes orders one by one. A failed order never aborts the
// batch; its outcome lands in the log and processing moves on.
func (t *Transformer) ConvertAll(orders []model.SourceOrder) *Result {
	res := &Result{}
	for _, o := range orders {
		if !Convertible(o) {
			continue
		}
		subs, logs := t.convertOrder(o)
		res.SubOrders = append(res.SubOrders, subs...)
		res.Logs = append(res.Logs, logs...)
	}
	return res
}

func (t *Transformer) convertOrder(o model.SourceOrder) ([]model.SubOrder, []model.LogEntry) {
	items, ok := t.catalog[o.UserGroup]
	if !ok {
		return nil, []model.LogEntry{{
			Outcome: model.Failure,
			OrderID: o.ID,
			Message: fmt.Sprintf("no service type matching group %q", o.UserGroup),
		}}
	}

	eligible := catalog.Filter(items, o.Gender, t.sets)
	if len(eligible) == 0 {
		return nil, []model.LogEntry{{
			Outcome: model.Failure,
			OrderID: o.ID,
			Message: "no eligible items after gender restrictions",
		}}
	}

	parts, err := split.Split(o.Paid, t.opts.Ceiling, t.opts.Floor, t.rnd)
	if err != nil {
		return nil, []model.LogEntry{{
			Outcome: model.Failure,
			OrderID: o.ID,
			Message: fmt.Sprintf("split amount %d: %v", o.Paid, err),
		}}
	}

	base := t.parsePayTime(o.PayTime)

	var subs []model.SubOrder
	var logs []model.LogEntry
	for i, part := range parts {
		picks, achieved := match.Find(eligible, part)

		lines := make([]model.LineItem, 0, len(picks)+1)
		for _, p := range picks {
			lines = append(lines, model.LineItem{Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice})
		}
		if achieved < part {
			lines = append(lines, model.LineItem{Name: t.opts.Makeup, Quantity: 1, UnitPrice: part - achieved})
		}

		var total int64
		for _, l := range lines {
			total += l.UnitPrice * int64(l.Quantity)
		}
		if total != part {
			logs = append(logs, model.LogEntry{
				Outcome: model.Warning,
				OrderID: o.ID,
				Message: fmt.Sprintf("sub-order %d: assembled %d, expected %d", i+1, total, part),
			})
		}

		subs = append(subs, model.SubOrder{
			ID:        t.nextID(),
			Source:    o,
			Amount:    part,
			Items:     lines,
			OrderedAt: base.AddDate(0, 0, i),
		})
	}

	summary := model.LogEntry{
		Outcome: model.Success,
		OrderID: o.ID,
		Message: fmt.Sprintf("converted into %d laundry order(s)", len(parts)),
	}
	if len(logs) > 0 {
		summary.Outcome = model.Warning
		summary.Message = fmt.Sprintf("converted into %d laundry order(s) with %d amount mismatch(es)", len(parts), len(logs))
	}
	return subs, append(logs, summary)
}

// nextID builds a date-prefixed decimal id, monotonic within one run.
func (t *Transformer) nextID() string {
	t.seq++
	return fmt.Sprintf("%s%013d", t.now().Format("060102"), t.seq)
}

var payTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parsePayTime falls back to the current time on anything unparseable;
// that case is deliberately not logged.
func (t *Transformer) parsePayTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return t.now()
	}
	for _, layout := range payTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return t.now()
}
