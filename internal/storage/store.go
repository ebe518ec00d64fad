// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/hkarls/teamdeck/internal/models"
)

// Store defines the interface for teamdeck's storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateRoster persists a new roster with its population.
	// Missing ids and timestamps are populated by the store.
	CreateRoster(ctx context.Context, roster *models.Roster) error

	// GetRoster retrieves a roster with its population by ID.
	GetRoster(ctx context.Context, rosterID string) (*models.Roster, error)

	// ListRosters retrieves all rosters owned by the given user,
	// newest first, without their populations.
	ListRosters(ctx context.Context, ownerID string) ([]models.Roster, error)

	// CreateGrouping persists the output of one allocation run.
	CreateGrouping(ctx context.Context, grouping *models.Grouping) error

	// GetGrouping retrieves a grouping with its groups and member
	// snapshots by ID.
	GetGrouping(ctx context.Context, groupingID string) (*models.Grouping, error)

	// LatestGrouping retrieves the most recent grouping for a roster.
	// Returns (nil, nil) when the roster has no groupings yet.
	LatestGrouping(ctx context.Context, rosterID string) (*models.Grouping, error)

	// Close releases any resources held by the store.
	Close() error
}
