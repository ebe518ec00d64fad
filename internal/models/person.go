package models

// Seniority is the ordered three-level classification of a person.
// It is used by per-group minimum quotas (Settings.MinSeniorsPerGroup).
type Seniority string

const (
	Junior Seniority = "junior"
	Medior Seniority = "medior"
	Senior Seniority = "senior"
)

// Valid reports whether s is one of the three known levels.
func (s Seniority) Valid() bool {
	return s == Junior || s == Medior || s == Senior
}

// Office is the two-valued classification used for the office-mix
// requirement (Settings.RequireOfficeMix).
type Office string

const (
	FrontOffice Office = "front_office"
	BackOffice  Office = "back_office"
)

// Valid reports whether o is one of the two known offices.
func (o Office) Valid() bool {
	return o == FrontOffice || o == BackOffice
}

// Short returns the two-letter abbreviation used by the text export.
func (o Office) Short() string {
	if o == BackOffice {
		return "BO"
	}
	return "FO"
}

// Person represents one member of a roster.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	// It is stable for the lifetime of the record and is the only
	// identity used to match members across re-shuffles.
	ID string `json:"id"`

	// Name is the display name of the person.
	Name string `json:"name"`

	// Seniority is the person's level (junior, medior, senior).
	Seniority Seniority `json:"seniority"`

	// Office is the person's office category.
	Office Office `json:"office"`

	// Locked pins the person to their current group: a carry-over run
	// re-inserts them into the group at the same index they occupied
	// in the prior grouping.
	Locked bool `json:"locked"`

	// PinnedGroupID is a declared-but-unenforced group preference.
	// Reserved for future use; the allocator ignores it.
	PinnedGroupID string `json:"pinned_group_id,omitempty"`
}
