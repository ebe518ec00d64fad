package shuffle

import (
	"errors"
	"fmt"

	"github.com/hkarls/teamdeck/internal/models"
)

// ErrInfeasible is returned by Run when the validator rejects the
// population/settings combination. The wrapped message carries the
// validator's reason.
var ErrInfeasible = errors.New("infeasible grouping")

// Run executes the full pipeline for one seed text: validate, allocate,
// name, evaluate. The allocator is never invoked when validation fails.
//
// Pass the groups of a previous run as prior to carry over group
// identities and locked members; pass nil for a fresh shuffle. Two calls
// with identical inputs produce byte-identical group lists.
func Run(people []models.Person, set models.Settings, seedText string, prior []models.Group) ([]models.Group, error) {
	v := Validate(people, set)
	if !v.OK {
		return nil, fmt.Errorf("%w: %s", ErrInfeasible, v.Reason)
	}

	seq := NewSequence(SeedFromText(seedText))
	groups := Allocate(people, set, seq, prior)
	names := AssignNames(seq, len(groups))
	for i := range groups {
		groups[i].Name = names[i]
	}
	return EvaluateConstraints(groups, set), nil
}
