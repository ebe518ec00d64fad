package shuffle

import (
	"fmt"

	"github.com/hkarls/teamdeck/internal/models"
)

// Verdict is the validator's structured answer: either the run is worth
// attempting (OK with the computed group count) or it is infeasible with a
// human-readable reason.
type Verdict struct {
	OK        bool   `json:"ok"`
	NumGroups int    `json:"num_groups"`
	Reason    string `json:"reason,omitempty"`
}

// NumGroups returns the number of groups a population of n people splits
// into at the given group size: ceil(n / size).
func NumGroups(n, size int) int {
	return (n + size - 1) / size
}

// Validate decides up front whether a feasible grouping can exist for the
// population under the given settings. Checks run in order and
// short-circuit on the first failure.
//
// This is a necessary-condition check only: it gives fast, actionable
// feedback before allocation but does not exhaustively model the greedy
// allocator's behavior (locked carry-over members can still produce
// locally violated groups, which the evaluator tags after the fact).
func Validate(people []models.Person, set models.Settings) Verdict {
	if set.GroupSize < 2 {
		return Verdict{Reason: fmt.Sprintf("group size must be at least 2, got %d", set.GroupSize)}
	}
	if len(people) == 0 {
		return Verdict{Reason: "population is empty"}
	}

	numGroups := NumGroups(len(people), set.GroupSize)

	if set.MinSeniorsPerGroup > 0 {
		seniors := 0
		for _, p := range people {
			if p.Seniority == models.Senior {
				seniors++
			}
		}
		required := numGroups * set.MinSeniorsPerGroup
		if seniors < required {
			return Verdict{
				NumGroups: numGroups,
				Reason: fmt.Sprintf("need at least %d senior members to staff %d groups, have %d",
					required, numGroups, seniors),
			}
		}
	}

	if set.RequireOfficeMix && len(people) >= 2 {
		front, back := false, false
		for _, p := range people {
			switch p.Office {
			case models.FrontOffice:
				front = true
			case models.BackOffice:
				back = true
			}
		}
		if !front || !back {
			return Verdict{
				NumGroups: numGroups,
				Reason:    "office mix requires at least one front office and one back office member",
			}
		}
	}

	return Verdict{OK: true, NumGroups: numGroups}
}
