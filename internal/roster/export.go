package roster

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hkarls/teamdeck/internal/models"
)

// ExportText renders groups as human-readable lines:
//
//	✓ 🦊 Foxes — [Alice (senior, FO), Bob (junior, BO)]
//
// A leading ✓ marks a group that satisfies its constraints, ! one that
// does not.
func ExportText(groups []models.Group) string {
	var b strings.Builder
	for _, g := range groups {
		mark := "✓"
		if !g.ConstraintOK {
			mark = "!"
		}
		members := make([]string, len(g.Members))
		for i, m := range g.Members {
			members[i] = fmt.Sprintf("%s (%s, %s)", m.Name, m.Seniority, m.Office.Short())
		}
		fmt.Fprintf(&b, "%s %s — [%s]\n", mark, g.Name, strings.Join(members, ", "))
	}
	return b.String()
}

// ExportCSV renders groups as tabular rows, one per member, under the
// header group_id,group_name,member,seniority,office.
func ExportCSV(groups []models.Group) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"group_id", "group_name", "member", "seniority", "office"}); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for _, g := range groups {
		for _, m := range g.Members {
			row := []string{g.ID, g.Name, m.Name, string(m.Seniority), string(m.Office)}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("failed to write row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return b.String(), nil
}

// ExportJSON renders the full group list as indented JSON.
func ExportJSON(groups []models.Group) ([]byte, error) {
	data, err := json.MarshalIndent(groups, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal groups: %w", err)
	}
	return data, nil
}
