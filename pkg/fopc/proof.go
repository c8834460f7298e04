package fopc

import (
	"fmt"
	"sort"
)

// ProofLine is one step of a resolution refutation trace: two parent
// clauses, the resolvent, and the substitution that produced it.
type ProofLine struct {
	Parent1      *Clause
	Parent2      *Clause
	Resolvent    *Clause
	Substitution *Substitution
}

// String renders the line as:
//
//	[parent1 literals] | [parent2 literals] -> [resolvent literals] with substitution [σ]
func (p ProofLine) String() string {
	return p.Parent1.String() + " | " + p.Parent2.String() + " -> " + p.Resolvent.String() + " with substitution " + p.Substitution.String()
}

// ReconstructProof walks backward from the empty clause's id through
// parent pointers, collects every ancestor derivation, and returns them
// in topological order (parents before children).
func ReconstructProof(store *ClauseStore, emptyClauseID int) ([]ProofLine, error) {
	empty, ok := store.Get(emptyClauseID)
	if !ok {
		return nil, errClauseNotFound(emptyClauseID)
	}

	// Reverse BFS over parent pointers to collect the ancestor id set,
	// restricted to derived clauses (initial clauses have no derivation
	// line of their own).
	ancestors := make(map[int]bool)
	queue := []int{empty.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if ancestors[id] {
			continue
		}
		c, ok := store.Get(id)
		if !ok || !c.IsDerived() {
			continue
		}
		ancestors[id] = true
		queue = append(queue, c.Parent1, c.Parent2)
	}

	// Topological order: emit a derived ancestor once both its parents
	// (if themselves derived ancestors) have already been emitted. Since
	// clause ids are assigned in strictly increasing derivation order
	// and a clause's parents always have a smaller id than the clause
	// itself, sorting ancestors by id ascending is already a valid
	// topological order.
	ids := make([]int, 0, len(ancestors))
	for id := range ancestors {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lines := make([]ProofLine, 0, len(ids))
	for _, id := range ids {
		c, _ := store.Get(id)
		p1, ok1 := store.Get(c.Parent1)
		p2, ok2 := store.Get(c.Parent2)
		if !ok1 || !ok2 {
			return nil, errClauseNotFound(c.Parent1)
		}
		lines = append(lines, ProofLine{Parent1: p1, Parent2: p2, Resolvent: c, Substitution: c.Subst})
	}
	return lines, nil
}

type clauseNotFoundError struct{ id int }

func (e clauseNotFoundError) Error() string {
	return fmt.Sprintf("fopc: clause %d not found in store during proof reconstruction", e.id)
}

func errClauseNotFound(id int) error { return clauseNotFoundError{id: id} }
