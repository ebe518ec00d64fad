package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hkarls/teamdeck/internal/models"
)

// CreateRoster persists a roster and its population.
func (s *SQLiteStore) CreateRoster(ctx context.Context, roster *models.Roster) error {
	if roster.ID == "" {
		roster.ID = uuid.New().String()
	}
	if roster.CreatedAt == 0 {
		roster.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO rosters (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)",
		roster.ID, roster.OwnerID, roster.Name, roster.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert roster: %w", err)
	}

	for i := range roster.People {
		p := &roster.People[i]
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO people (id, roster_id, position, name, seniority, office, locked, pinned_group_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, roster.ID, i, p.Name, string(p.Seniority), string(p.Office), p.Locked, p.PinnedGroupID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRoster retrieves a roster by ID, including its population in import
// order.
func (s *SQLiteStore) GetRoster(ctx context.Context, rosterID string) (*models.Roster, error) {
	roster := &models.Roster{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM rosters WHERE id = ?",
		rosterID,
	).Scan(&roster.ID, &roster.OwnerID, &roster.Name, &roster.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("roster not found: %s", rosterID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, seniority, office, locked, pinned_group_id
		 FROM people WHERE roster_id = ? ORDER BY position`,
		rosterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get people: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Person
		var seniority, office string
		if err := rows.Scan(&p.ID, &p.Name, &seniority, &office, &p.Locked, &p.PinnedGroupID); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p.Seniority = models.Seniority(seniority)
		p.Office = models.Office(office)
		roster.People = append(roster.People, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return roster, nil
}

// ListRosters retrieves all rosters owned by a user, newest first. The
// populations are not loaded.
func (s *SQLiteStore) ListRosters(ctx context.Context, ownerID string) ([]models.Roster, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, owner_id, name, created_at FROM rosters WHERE owner_id = ? ORDER BY created_at DESC, id",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rosters: %w", err)
	}
	defer rows.Close()

	var rosters []models.Roster
	for rows.Next() {
		var r models.Roster
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Name, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roster: %w", err)
		}
		rosters = append(rosters, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rosters: %w", err)
	}
	return rosters, nil
}
