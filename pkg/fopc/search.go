package fopc

import (
	"context"
	"sort"
)

// Limits bounds an optional safety ceiling on the saturation loop. A
// zero value means unlimited.
type Limits struct {
	MaxLevel   int
	MaxClauses int
}

// pairKey identifies an unordered pair of clause ids by its canonical
// (lower, higher) ordering, for a deterministic lexicographic
// enumeration of candidate pairs.
type pairKey struct{ lo, hi int }

// saturate runs the breadth-first level-saturation loop over store,
// starting from whatever initial clauses have already been loaded into
// it. It returns the id of the empty clause if one was derived, or -1 if
// the search terminated with "no proof".
func saturate(ctx context.Context, store *ClauseStore, limits Limits) (int, error) {
	tried := make(map[pairKey]bool)
	level := 0

	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if limits.MaxLevel > 0 && level >= limits.MaxLevel {
			return -1, nil
		}

		pairs := pendingPairs(store, level, tried)
		if len(pairs) == 0 {
			return -1, nil
		}

		insertedAny := false
		for _, pk := range pairs {
			tried[pk] = true
			a, aok := store.Get(pk.lo)
			b, bok := store.Get(pk.hi)
			if !aok || !bok || !store.IsLive(pk.lo) || !store.IsLive(pk.hi) {
				continue
			}

			for _, r := range Resolve(a, b, store.session) {
				if limits.MaxClauses > 0 && len(store.All()) >= limits.MaxClauses {
					return -1, nil
				}
				c, result := store.tryInsertResolvent(r, level+1)
				if result != insertKept {
					continue
				}
				insertedAny = true
				if c.IsEmpty() {
					return c.ID, nil
				}
			}
		}

		if !insertedAny {
			return -1, nil
		}
		level++
	}
}

// pendingPairs enumerates every unordered pair (A, B) of live clauses
// where at least one of A, B was inserted at level >= currentLevel, that
// has not already been tried, in lexicographic (lo id, hi id) order —
// the deterministic selection order the saturation loop relies on.
func pendingPairs(store *ClauseStore, currentLevel int, tried map[pairKey]bool) []pairKey {
	live := store.Live()
	var out []pairKey
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			a, b := live[i], live[j]
			if a.ID == b.ID {
				continue
			}
			if a.Level < currentLevel && b.Level < currentLevel {
				continue
			}
			lo, hi := a.ID, b.ID
			if lo > hi {
				lo, hi = hi, lo
			}
			pk := pairKey{lo, hi}
			if tried[pk] {
				continue
			}
			out = append(out, pk)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].lo != out[j].lo {
			return out[i].lo < out[j].lo
		}
		return out[i].hi < out[j].hi
	})
	return out
}
