package models

// Group represents one shuffled sub-group of a roster.
//
// A group's ID is stable across re-shuffles when the run carries over a
// prior grouping: new group i reuses the identity of prior group i. A
// person appears in at most one group's member list, and the union of all
// groups' members in one run equals exactly the input population.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the generated display name (e.g., "🦊 Foxes").
	Name string `json:"name"`

	// Members is the ordered member list.
	Members []Person `json:"members"`

	// ConstraintOK reports whether the group satisfies the run's
	// constraints. It is informational tagging computed after
	// allocation; a false value never blocks or retries a run.
	ConstraintOK bool `json:"constraint_ok"`
}

// Seniors returns the number of members at Senior level.
func (g Group) Seniors() int {
	n := 0
	for _, m := range g.Members {
		if m.Seniority == Senior {
			n++
		}
	}
	return n
}

// HasOffice reports whether any member belongs to the given office.
func (g Group) HasOffice(o Office) bool {
	for _, m := range g.Members {
		if m.Office == o {
			return true
		}
	}
	return false
}

// Grouping is the persisted output of one allocation run: the ordered
// group list together with the inputs that produced it, so the run can be
// audited or used as the prior grouping of a carry-over re-shuffle.
type Grouping struct {
	// ID is the unique identifier for the grouping (UUID format).
	ID string `json:"id"`

	// RosterID is the roster this grouping was produced from.
	RosterID string `json:"roster_id"`

	// Seed is the seed text the run was keyed on.
	Seed string `json:"seed"`

	// Settings are the constraints the run honored.
	Settings Settings `json:"settings"`

	// Groups is the ordered output group list.
	Groups []Group `json:"groups"`

	// CreatedAt is the Unix timestamp when the grouping was created.
	CreatedAt int64 `json:"created_at"`
}

// Roster is a named population of people owned by a user.
type Roster struct {
	// ID is the unique identifier for the roster (UUID format).
	ID string `json:"id"`

	// OwnerID is the user who owns this roster.
	OwnerID string `json:"owner_id"`

	// Name is the display name of the roster (e.g., "Design Guild").
	Name string `json:"name"`

	// People is the population, in import order.
	People []Person `json:"people"`

	// CreatedAt is the Unix timestamp when the roster was created.
	CreatedAt int64 `json:"created_at"`
}
