package models

// Settings are the constraints one allocation run must honor.
type Settings struct {
	// GroupSize is the desired number of members per group (>= 2).
	GroupSize int `json:"group_size"`

	// MinSeniorsPerGroup is the minimum number of Senior members each
	// group must receive (>= 0).
	MinSeniorsPerGroup int `json:"min_seniors_per_group"`

	// RequireOfficeMix requires every group of size >= 2 to contain at
	// least one FrontOffice and one BackOffice member.
	RequireOfficeMix bool `json:"require_office_mix"`
}
