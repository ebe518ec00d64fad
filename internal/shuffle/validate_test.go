package shuffle

import (
	"strings"
	"testing"

	"github.com/hkarls/teamdeck/internal/models"
)

func makePeople(counts map[models.Seniority]int, offices []models.Office) []models.Person {
	var people []models.Person
	i := 0
	for _, level := range []models.Seniority{models.Senior, models.Medior, models.Junior} {
		for n := 0; n < counts[level]; n++ {
			office := models.FrontOffice
			if len(offices) > 0 {
				office = offices[i%len(offices)]
			}
			people = append(people, models.Person{
				ID:        string(rune('a' + i)),
				Name:      "P" + string(rune('A'+i)),
				Seniority: level,
				Office:    office,
			})
			i++
		}
	}
	return people
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		people     []models.Person
		settings   models.Settings
		wantOK     bool
		wantGroups int
		wantReason string
	}{
		{
			name:       "group size too small",
			people:     makePeople(map[models.Seniority]int{models.Medior: 4}, nil),
			settings:   models.Settings{GroupSize: 1},
			wantOK:     false,
			wantReason: "group size",
		},
		{
			name:       "empty population",
			people:     nil,
			settings:   models.Settings{GroupSize: 3},
			wantOK:     false,
			wantReason: "empty",
		},
		{
			name:       "ok without quotas",
			people:     makePeople(map[models.Seniority]int{models.Medior: 7}, nil),
			settings:   models.Settings{GroupSize: 3},
			wantOK:     true,
			wantGroups: 3,
		},
		{
			name:   "not enough seniors",
			people: makePeople(map[models.Seniority]int{models.Senior: 2, models.Medior: 7}, nil),
			settings: models.Settings{
				GroupSize:          3,
				MinSeniorsPerGroup: 1,
			},
			wantOK: false,
			// 3 groups x 1 senior each.
			wantReason: "3 senior",
		},
		{
			name:   "exactly enough seniors",
			people: makePeople(map[models.Seniority]int{models.Senior: 3, models.Medior: 6}, nil),
			settings: models.Settings{
				GroupSize:          3,
				MinSeniorsPerGroup: 1,
			},
			wantOK:     true,
			wantGroups: 3,
		},
		{
			name: "office mix without back office",
			people: makePeople(map[models.Seniority]int{models.Medior: 6},
				[]models.Office{models.FrontOffice}),
			settings: models.Settings{
				GroupSize:        3,
				RequireOfficeMix: true,
			},
			wantOK:     false,
			wantReason: "office mix",
		},
		{
			name: "office mix satisfied",
			people: makePeople(map[models.Seniority]int{models.Medior: 6},
				[]models.Office{models.FrontOffice, models.BackOffice}),
			settings: models.Settings{
				GroupSize:        3,
				RequireOfficeMix: true,
			},
			wantOK:     true,
			wantGroups: 2,
		},
		{
			name: "senior check runs before office check",
			people: makePeople(map[models.Seniority]int{models.Medior: 6},
				[]models.Office{models.FrontOffice}),
			settings: models.Settings{
				GroupSize:          3,
				MinSeniorsPerGroup: 1,
				RequireOfficeMix:   true,
			},
			wantOK:     false,
			wantReason: "senior",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.people, tt.settings)
			if v.OK != tt.wantOK {
				t.Fatalf("Validate OK = %v, want %v (reason: %q)", v.OK, tt.wantOK, v.Reason)
			}
			if tt.wantOK && v.NumGroups != tt.wantGroups {
				t.Errorf("NumGroups = %d, want %d", v.NumGroups, tt.wantGroups)
			}
			if tt.wantReason != "" && !strings.Contains(strings.ToLower(v.Reason), tt.wantReason) {
				t.Errorf("Reason = %q, want it to mention %q", v.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidateRequiredSeniorCount(t *testing.T) {
	// 10 people at size 3 -> 4 groups; 2 seniors per group -> 8 required.
	people := makePeople(map[models.Seniority]int{models.Senior: 5, models.Medior: 5}, nil)
	v := Validate(people, models.Settings{GroupSize: 3, MinSeniorsPerGroup: 2})

	if v.OK {
		t.Fatal("expected infeasible verdict")
	}
	if !strings.Contains(v.Reason, "8") {
		t.Errorf("Reason = %q, want it to cite the required count 8", v.Reason)
	}
}
