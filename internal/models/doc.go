// Package models defines the core domain models for teamdeck.
//
// # Models
//
//   - Person: A member of a roster, classified by seniority and office
//   - Group: One shuffled sub-group with a generated name
//   - Grouping: The full output of one allocation run (ordered groups)
//   - Roster: A named population of people owned by a user
//   - Settings: The constraints one allocation run must honor
//   - User: A registered account that owns rosters
//
// # Design Principles
//
//  1. **Value semantics**: Person and Group are treated as immutable values;
//     the allocator builds new groups rather than mutating shared state, so
//     carry-over matching never aliases a prior run's data.
//  2. **Closed enumerations**: Seniority and Office are typed constants at
//     the core boundary. All free-text coercion and defaulting lives in the
//     import adapters, which reject unrecognized values.
//  3. **Stable identity**: a Person's ID is the only identity used to match
//     members across re-shuffles; names and classifications may change
//     between runs without breaking carry-over.
package models
