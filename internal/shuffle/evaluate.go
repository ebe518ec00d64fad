package shuffle

import "github.com/hkarls/teamdeck/internal/models"

// EvaluateConstraints re-checks each produced group against the run's
// constraints and returns a copy with ConstraintOK tagged. A group is
// violated when it holds fewer seniors than the quota, or when office mix
// is required, the group has at least two members, and it lacks either
// office.
//
// The tagging is informational only: a constraint can be infeasible at
// the population level yet satisfied per group, or vice versa when locked
// carry-over members interfere. It never blocks or retries allocation.
func EvaluateConstraints(groups []models.Group, set models.Settings) []models.Group {
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		g.ConstraintOK = true
		if g.Seniors() < set.MinSeniorsPerGroup {
			g.ConstraintOK = false
		}
		if set.RequireOfficeMix && len(g.Members) >= 2 &&
			(!g.HasOffice(models.FrontOffice) || !g.HasOffice(models.BackOffice)) {
			g.ConstraintOK = false
		}
		out[i] = g
	}
	return out
}
