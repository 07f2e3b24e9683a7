package rankings

import (
	"cmp"
	"slices"

	domainrankings "github.com/preston-bernstein/fantasy-hoops-service/internal/domain/rankings"
)

// Sort returns a copy of items ordered by sel. Ties keep their input order in either direction,
// and a zero selector returns the input order unchanged.
func Sort(items []domainrankings.Entity, sel domainrankings.Selector) []domainrankings.Entity {
	out := slices.Clone(items)
	if sel.IsZero() {
		return out
	}
	slices.SortStableFunc(out, func(a, b domainrankings.Entity) int {
		av, _ := domainrankings.Field(a, sel.Key)
		bv, _ := domainrankings.Field(b, sel.Key)
		c := cmp.Compare(av, bv)
		if sel.Direction == domainrankings.Ascending {
			return c
		}
		return -c
	})
	return out
}

// Toggle applies the column-click policy: the active key flips to ascending only from descending,
// and every other case (including a new key) starts descending. An empty key clears the sort.
// Turnovers follow the same rule as every other category.
func Toggle(cur domainrankings.Selector, key domainrankings.Key) domainrankings.Selector {
	if key == "" {
		return domainrankings.Selector{}
	}
	if cur.Key == key && cur.Direction == domainrankings.Descending {
		return domainrankings.Selector{Key: key, Direction: domainrankings.Ascending}
	}
	return domainrankings.Selector{Key: key, Direction: domainrankings.Descending}
}
