package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hkarls/teamdeck/internal/models"
)

// CreateGrouping persists the output of one allocation run: the grouping
// header, its ordered groups, and a snapshot of each member.
func (s *SQLiteStore) CreateGrouping(ctx context.Context, grouping *models.Grouping) error {
	if grouping.ID == "" {
		grouping.ID = uuid.New().String()
	}
	if grouping.CreatedAt == 0 {
		grouping.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO groupings (id, roster_id, seed, group_size, min_seniors, office_mix, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		grouping.ID, grouping.RosterID, grouping.Seed,
		grouping.Settings.GroupSize, grouping.Settings.MinSeniorsPerGroup, grouping.Settings.RequireOfficeMix,
		grouping.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert grouping: %w", err)
	}

	for gi, g := range grouping.Groups {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO grouping_groups (id, grouping_id, position, name, constraint_ok)
			 VALUES (?, ?, ?, ?, ?)`,
			g.ID, grouping.ID, gi, g.Name, g.ConstraintOK,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for mi, m := range g.Members {
			_, err = tx.ExecContext(ctx,
				`INSERT INTO group_members (grouping_id, group_position, member_position, person_id, name, seniority, office, locked)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				grouping.ID, gi, mi, m.ID, m.Name, string(m.Seniority), string(m.Office), m.Locked,
			)
			if err != nil {
				return fmt.Errorf("failed to insert group member: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetGrouping retrieves a grouping by ID, including its ordered groups
// and member snapshots.
func (s *SQLiteStore) GetGrouping(ctx context.Context, groupingID string) (*models.Grouping, error) {
	grouping := &models.Grouping{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, roster_id, seed, group_size, min_seniors, office_mix, created_at
		 FROM groupings WHERE id = ?`,
		groupingID,
	).Scan(&grouping.ID, &grouping.RosterID, &grouping.Seed,
		&grouping.Settings.GroupSize, &grouping.Settings.MinSeniorsPerGroup, &grouping.Settings.RequireOfficeMix,
		&grouping.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("grouping not found: %s", groupingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get grouping: %w", err)
	}

	if err := s.loadGroups(ctx, grouping); err != nil {
		return nil, err
	}
	return grouping, nil
}

// LatestGrouping retrieves the most recent grouping for a roster, or
// (nil, nil) when the roster has none. This feeds carry-over re-shuffles.
func (s *SQLiteStore) LatestGrouping(ctx context.Context, rosterID string) (*models.Grouping, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM groupings WHERE roster_id = ? ORDER BY created_at DESC, id DESC LIMIT 1",
		rosterID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil // No grouping yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest grouping: %w", err)
	}
	return s.GetGrouping(ctx, id)
}

func (s *SQLiteStore) loadGroups(ctx context.Context, grouping *models.Grouping) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, position, name, constraint_ok
		 FROM grouping_groups WHERE grouping_id = ? ORDER BY position`,
		grouping.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get groups: %w", err)
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var g models.Group
		var pos int
		if err := rows.Scan(&g.ID, &pos, &g.Name, &g.ConstraintOK); err != nil {
			return fmt.Errorf("failed to scan group: %w", err)
		}
		grouping.Groups = append(grouping.Groups, g)
		positions = append(positions, pos)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate groups: %w", err)
	}

	for i := range grouping.Groups {
		memberRows, err := s.db.QueryContext(ctx,
			`SELECT person_id, name, seniority, office, locked
			 FROM group_members WHERE grouping_id = ? AND group_position = ? ORDER BY member_position`,
			grouping.ID, positions[i],
		)
		if err != nil {
			return fmt.Errorf("failed to get group members: %w", err)
		}

		for memberRows.Next() {
			var m models.Person
			var seniority, office string
			if err := memberRows.Scan(&m.ID, &m.Name, &seniority, &office, &m.Locked); err != nil {
				memberRows.Close()
				return fmt.Errorf("failed to scan group member: %w", err)
			}
			m.Seniority = models.Seniority(seniority)
			m.Office = models.Office(office)
			grouping.Groups[i].Members = append(grouping.Groups[i].Members, m)
		}
		memberRows.Close()
		if err := memberRows.Err(); err != nil {
			return fmt.Errorf("failed to iterate group members: %w", err)
		}
	}

	return nil
}
