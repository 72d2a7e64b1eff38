package billing

import (
	"sort"

	"github.com/google/uuid"

	"stablemate/internal/joblog"
	"stablemate/internal/stable"
)

// HorseTotal is one horse's share of an owner's balance.
type HorseTotal struct {
	Horse stable.Horse `json:"horse"`
	Count int          `json:"count"`
	Total int64        `json:"total"`
}

// OwnerTotal aggregates the whole log for one owner.
type OwnerTotal struct {
	Owner  stable.Owner `json:"owner"`
	Horses []HorseTotal `json:"horses"`
	Total  int64        `json:"total"`
}

// ComputeTotals reduces the job log to per-owner and per-horse sums in a
// single pass. Entries whose horse or owner no longer resolves contribute
// nothing; stale references degrade gracefully instead of crashing.
//
// The reduction is pure and order-independent: the result depends only on
// the multiset of entries. Output is sorted by owner name, then horse name,
// so callers get a stable view.
func ComputeTotals(entries []*joblog.Entry, owners []stable.Owner, horses []stable.Horse) []OwnerTotal {
	ownerByID := make(map[uuid.UUID]stable.Owner, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o
	}

	horseByID := make(map[uuid.UUID]stable.Horse, len(horses))
	for _, h := range horses {
		horseByID[h.ID] = h
	}

	type acc struct {
		owner  stable.Owner
		horses map[uuid.UUID]*HorseTotal
		total  int64
	}

	byOwner := make(map[uuid.UUID]*acc)

	for _, e := range entries {
		h, ok := horseByID[e.HorseID]
		if !ok {
			continue
		}

		o, ok := ownerByID[h.OwnerID]
		if !ok {
			continue
		}

		a := byOwner[o.ID]
		if a == nil {
			a = &acc{owner: o, horses: make(map[uuid.UUID]*HorseTotal)}
			byOwner[o.ID] = a
		}

		ht := a.horses[h.ID]
		if ht == nil {
			ht = &HorseTotal{Horse: h}
			a.horses[h.ID] = ht
		}

		ht.Count++
		ht.Total += e.Price
		a.total += e.Price
	}

	totals := make([]OwnerTotal, 0, len(byOwner))

	for _, a := range byOwner {
		ot := OwnerTotal{Owner: a.owner, Total: a.total}

		for _, ht := range a.horses {
			ot.Horses = append(ot.Horses, *ht)
		}

		sort.Slice(ot.Horses, func(i, j int) bool {
			return ot.Horses[i].Horse.Name < ot.Horses[j].Horse.Name
		})

		totals = append(totals, ot)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Owner.Name < totals[j].Owner.Name
	})

	return totals
}
