package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// Group member rows snapshot the person's name and classifications at
// allocation time, so a grouping stays readable even after the roster
// changes; carry-over matching still goes through person_id only.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS rosters (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    roster_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    seniority TEXT NOT NULL,
    office TEXT NOT NULL,
    locked INTEGER NOT NULL DEFAULT 0,
    pinned_group_id TEXT NOT NULL DEFAULT '',
    FOREIGN KEY (roster_id) REFERENCES rosters(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS groupings (
    id TEXT PRIMARY KEY,
    roster_id TEXT NOT NULL,
    seed TEXT NOT NULL,
    group_size INTEGER NOT NULL,
    min_seniors INTEGER NOT NULL,
    office_mix INTEGER NOT NULL,
    created_at INTEGER NOT NULL,
    FOREIGN KEY (roster_id) REFERENCES rosters(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS grouping_groups (
    id TEXT NOT NULL,
    grouping_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    constraint_ok INTEGER NOT NULL,
    PRIMARY KEY (grouping_id, position),
    FOREIGN KEY (grouping_id) REFERENCES groupings(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS group_members (
    grouping_id TEXT NOT NULL,
    group_position INTEGER NOT NULL,
    member_position INTEGER NOT NULL,
    person_id TEXT NOT NULL,
    name TEXT NOT NULL,
    seniority TEXT NOT NULL,
    office TEXT NOT NULL,
    locked INTEGER NOT NULL,
    PRIMARY KEY (grouping_id, group_position, member_position),
    FOREIGN KEY (grouping_id, group_position) REFERENCES grouping_groups(grouping_id, position) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_rosters_owner_id ON rosters(owner_id);
CREATE INDEX IF NOT EXISTS idx_people_roster_id ON people(roster_id);
CREATE INDEX IF NOT EXISTS idx_groupings_roster_id ON groupings(roster_id);
CREATE INDEX IF NOT EXISTS idx_group_members_grouping_id ON group_members(grouping_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
