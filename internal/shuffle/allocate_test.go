package shuffle

import (
	"fmt"
	"testing"

	"github.com/hkarls/teamdeck/internal/models"
)

// roster builds a population with the given seniority/office pattern,
// e.g. roster("S/FO", "M/BO") yields a senior front-office person and a
// medior back-office person with stable ids p0, p1, ...
func roster(specs ...string) []models.Person {
	people := make([]models.Person, len(specs))
	for i, spec := range specs {
		p := models.Person{
			ID:        fmt.Sprintf("p%d", i),
			Name:      fmt.Sprintf("Person %d", i),
			Seniority: models.Medior,
			Office:    models.FrontOffice,
		}
		switch spec[0] {
		case 'S':
			p.Seniority = models.Senior
		case 'J':
			p.Seniority = models.Junior
		}
		if spec[len(spec)-2:] == "BO" {
			p.Office = models.BackOffice
		}
		people[i] = p
	}
	return people
}

func memberIDs(groups []models.Group) map[string]int {
	ids := make(map[string]int)
	for _, g := range groups {
		for _, m := range g.Members {
			ids[m.ID]++
		}
	}
	return ids
}

func TestAllocatePartitionCompleteness(t *testing.T) {
	people := roster("S/FO", "S/BO", "M/FO", "M/BO", "M/FO", "J/BO", "J/FO", "M/BO", "S/FO", "M/FO", "J/BO")
	set := models.Settings{GroupSize: 4, MinSeniorsPerGroup: 1, RequireOfficeMix: true}

	seq := NewSequence(SeedFromText("partition"))
	groups := Allocate(people, set, seq, nil)

	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}

	ids := memberIDs(groups)
	if len(ids) != len(people) {
		t.Errorf("output covers %d distinct people, want %d", len(ids), len(people))
	}
	for _, p := range people {
		if ids[p.ID] != 1 {
			t.Errorf("person %s appears %d times, want exactly once", p.ID, ids[p.ID])
		}
	}
	for i, g := range groups {
		if len(g.Members) > set.GroupSize {
			t.Errorf("group %d has %d members, exceeds group size %d", i, len(g.Members), set.GroupSize)
		}
		if g.ID == "" {
			t.Errorf("group %d has no identity", i)
		}
	}
}

func TestAllocateDeterminism(t *testing.T) {
	people := roster("S/FO", "S/BO", "M/FO", "M/BO", "J/FO", "J/BO", "M/FO", "S/BO", "M/FO")
	set := models.Settings{GroupSize: 3, MinSeniorsPerGroup: 1, RequireOfficeMix: true}

	a := Allocate(people, set, NewSequence(SeedFromText("det")), nil)
	b := Allocate(people, set, NewSequence(SeedFromText("det")), nil)

	for i := range a {
		if len(a[i].Members) != len(b[i].Members) {
			t.Fatalf("group %d size diverged: %d != %d", i, len(a[i].Members), len(b[i].Members))
		}
		for j := range a[i].Members {
			if a[i].Members[j].ID != b[i].Members[j].ID {
				t.Fatalf("group %d member %d diverged: %s != %s",
					i, j, a[i].Members[j].ID, b[i].Members[j].ID)
			}
		}
	}
}

func TestAllocateLockPersistence(t *testing.T) {
	people := roster("S/FO", "S/BO", "M/FO", "M/BO", "J/FO", "J/BO")
	set := models.Settings{GroupSize: 3}

	first := Allocate(people, set, NewSequence(SeedFromText("run-1")), nil)
	if len(first) != 2 {
		t.Fatalf("got %d groups, want 2", len(first))
	}

	// Lock one member of each group, then re-shuffle with a new seed.
	locked := map[string]int{
		first[0].Members[0].ID: 0,
		first[1].Members[0].ID: 1,
	}
	for i := range people {
		if _, ok := locked[people[i].ID]; ok {
			people[i].Locked = true
		}
	}

	second := Allocate(people, set, NewSequence(SeedFromText("run-2")), first)

	for id, wantGroup := range locked {
		found := -1
		for gi, g := range second {
			for _, m := range g.Members {
				if m.ID == id {
					found = gi
				}
			}
		}
		if found != wantGroup {
			t.Errorf("locked member %s landed in group %d, want %d", id, found, wantGroup)
		}
	}

	// Group identities carry over positionally.
	for i := range second {
		if second[i].ID != first[i].ID {
			t.Errorf("group %d identity changed across carry-over: %s != %s", i, second[i].ID, first[i].ID)
		}
	}

	// Unlocked members are still all placed exactly once.
	ids := memberIDs(second)
	for _, p := range people {
		if ids[p.ID] != 1 {
			t.Errorf("person %s appears %d times after carry-over", p.ID, ids[p.ID])
		}
	}
}

func TestAllocateUnlockedMembersNotCarried(t *testing.T) {
	people := roster("M/FO", "M/BO", "M/FO", "M/BO")
	set := models.Settings{GroupSize: 2}

	first := Allocate(people, set, NewSequence(1), nil)

	// Nobody is locked: carry-over keeps identities but re-shuffles
	// everyone, and departed members must not resurface.
	prior := make([]models.Group, len(first))
	copy(prior, first)
	prior[0].Members = append([]models.Person{{ID: "ghost", Name: "Left the team", Locked: true}}, prior[0].Members...)

	second := Allocate(people, set, NewSequence(2), prior)

	ids := memberIDs(second)
	if ids["ghost"] != 0 {
		t.Error("member absent from the population was carried over")
	}
	if len(ids) != len(people) {
		t.Errorf("output covers %d people, want %d", len(ids), len(people))
	}
}

func TestAllocateSeniorRounds(t *testing.T) {
	// 2 groups x 2 required seniors: all four seniors must spread 2/2.
	people := roster("S/FO", "S/BO", "S/FO", "S/BO", "M/FO", "M/BO", "J/FO", "M/BO")
	set := models.Settings{GroupSize: 4, MinSeniorsPerGroup: 2}

	groups := Allocate(people, set, NewSequence(SeedFromText("seniors")), nil)

	for i, g := range groups {
		if got := g.Seniors(); got != 2 {
			t.Errorf("group %d has %d seniors, want 2", i, got)
		}
	}
}

func TestAllocateOfficeMixSeeding(t *testing.T) {
	people := roster("M/FO", "M/FO", "M/FO", "M/BO", "M/BO", "M/FO", "M/BO", "M/FO")
	set := models.Settings{GroupSize: 4, RequireOfficeMix: true}

	groups := Allocate(people, set, NewSequence(SeedFromText("mix")), nil)

	for i, g := range groups {
		if !g.HasOffice(models.FrontOffice) || !g.HasOffice(models.BackOffice) {
			t.Errorf("group %d lacks office mix: %+v", i, g.Members)
		}
	}
}

func TestAllocateDrawCountContract(t *testing.T) {
	// The cross-phase draw ordering is part of the observable contract.
	// 3 seniors shuffled (2 draws), office seeding (0 draws), 3 pool
	// candidates shuffled (2 draws), then 3+2+1 tie-break draws.
	people := roster("S/FO", "S/FO", "S/BO", "M/BO", "M/BO", "J/FO", "M/FO", "M/BO", "J/FO")
	set := models.Settings{GroupSize: 3, MinSeniorsPerGroup: 1, RequireOfficeMix: true}

	seq := NewSequence(99)
	Allocate(people, set, seq, nil)

	ref := NewSequence(99)
	for i := 0; i < 10; i++ {
		ref.Next()
	}
	if seq.state != ref.state {
		t.Error("allocation consumed an unexpected number of draws")
	}
}
