package shuffle

import (
	"github.com/google/uuid"

	"github.com/hkarls/teamdeck/internal/models"
)

// Scoring weights for the greedy fill phase. A group's attractiveness for
// a candidate is dominated by how empty it is, nudged by which
// classifications it still lacks, and tie-broken by a random jitter.
const (
	fillWeight  = 10
	seniorBonus = 5
	officeBonus = 3
)

// Allocate partitions the population into ceil(len(people)/GroupSize)
// groups using a fixed four-phase greedy procedure, drawing every random
// decision from seq in a deterministic order.
//
// When prior is non-nil the run is a carry-over: new group i reuses the
// identity of prior group i, and every prior member that is still present
// in the population and still flagged Locked is re-inserted into the
// group at the index it previously occupied. Locked members of prior
// groups beyond the new group count have no positional target and rejoin
// the pool.
//
// Allocate never mutates people or prior; groups are built fresh.
// Callers are expected to gate on Validate first — with infeasible
// settings the output groups are simply tagged as violated later.
func Allocate(people []models.Person, set models.Settings, seq *Sequence, prior []models.Group) []models.Group {
	numGroups := NumGroups(len(people), set.GroupSize)
	groups := make([]models.Group, numGroups)

	// Phase 0: group identities and locked carry-over.
	for i := range groups {
		if i < len(prior) && prior[i].ID != "" {
			groups[i].ID = prior[i].ID
		} else {
			groups[i].ID = uuid.New().String()
		}
	}

	byID := make(map[string]models.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	placed := make(map[string]bool, len(people))
	for i := 0; i < len(prior) && i < numGroups; i++ {
		for _, m := range prior[i].Members {
			cur, ok := byID[m.ID]
			if !ok || !cur.Locked || placed[cur.ID] {
				continue
			}
			groups[i].Members = append(groups[i].Members, cur)
			placed[cur.ID] = true
		}
	}

	pool := make([]models.Person, 0, len(people))
	for _, p := range people {
		if !placed[p.ID] {
			pool = append(pool, p)
		}
	}

	// Phase 1: seed required seniors round-robin. The senior sub-pool is
	// shuffled unconditionally so the draw sequence does not depend on
	// the quota value.
	var seniors []models.Person
	for _, p := range pool {
		if p.Seniority == models.Senior {
			seniors = append(seniors, p)
		}
	}
	seniors = Shuffle(seq, seniors)
	next := 0
	for round := 0; round < set.MinSeniorsPerGroup; round++ {
		for g := range groups {
			if next >= len(seniors) {
				break
			}
			groups[g].Members = append(groups[g].Members, seniors[next])
			placed[seniors[next].ID] = true
			next++
		}
	}
	pool = withoutPlaced(pool, placed)

	// Phase 2: seed office mix with a first-match scan over the pool in
	// its current order (input order minus placed members). No draws are
	// consumed here, which biases this phase toward population input
	// order; that bias is a documented quirk of the procedure.
	if set.RequireOfficeMix {
		for g := range groups {
			if len(groups[g].Members) >= set.GroupSize {
				continue
			}
			if !groups[g].HasOffice(models.FrontOffice) {
				pool = moveFirstOffice(&groups[g], pool, models.FrontOffice)
			}
			if len(groups[g].Members) < set.GroupSize && !groups[g].HasOffice(models.BackOffice) {
				pool = moveFirstOffice(&groups[g], pool, models.BackOffice)
			}
		}
	}

	// Phase 3: greedy fill. One draw per (candidate, eligible group)
	// pair in group index order; the first group to reach the maximum
	// score wins ties.
	pool = Shuffle(seq, pool)
	for _, cand := range pool {
		best := -1
		bestScore := 0.0
		for g := range groups {
			if len(groups[g].Members) >= set.GroupSize {
				continue
			}
			score := float64(max(0, fillWeight-len(groups[g].Members)))
			if cand.Seniority == models.Senior && groups[g].Seniors() == 0 {
				score += seniorBonus
			}
			if cand.Office == models.FrontOffice && !groups[g].HasOffice(models.FrontOffice) {
				score += officeBonus
			}
			if cand.Office == models.BackOffice && !groups[g].HasOffice(models.BackOffice) {
				score += officeBonus
			}
			score += seq.Next()
			if best == -1 || score > bestScore {
				best, bestScore = g, score
			}
		}
		if best == -1 {
			// No group has room. Capacity is numGroups*GroupSize >=
			// len(people), so this only fires on malformed input.
			break
		}
		groups[best].Members = append(groups[best].Members, cand)
	}

	return groups
}

// withoutPlaced filters pool down to members not yet placed, preserving
// relative order.
func withoutPlaced(pool []models.Person, placed map[string]bool) []models.Person {
	out := pool[:0:0]
	for _, p := range pool {
		if !placed[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// moveFirstOffice moves the first pool member of the given office into g
// and returns the shrunk pool. The pool is returned unchanged when no
// member matches.
func moveFirstOffice(g *models.Group, pool []models.Person, o models.Office) []models.Person {
	for i, p := range pool {
		if p.Office != o {
			continue
		}
		g.Members = append(g.Members, p)
		out := make([]models.Person, 0, len(pool)-1)
		out = append(out, pool[:i]...)
		return append(out, pool[i+1:]...)
	}
	return pool
}
