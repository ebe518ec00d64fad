package roster

import (
	"errors"
	"strings"
	"testing"

	"github.com/hkarls/teamdeck/internal/models"
)

func TestImportCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		validate func(t *testing.T, people []models.Person)
	}{
		{
			name: "full rows",
			input: "name,seniority,office\n" +
				"Alice,senior,front office\n" +
				"Bob,junior,back office\n",
			validate: func(t *testing.T, people []models.Person) {
				if len(people) != 2 {
					t.Fatalf("got %d people, want 2", len(people))
				}
				if people[0].Name != "Alice" || people[0].Seniority != models.Senior || people[0].Office != models.FrontOffice {
					t.Errorf("Alice parsed as %+v", people[0])
				}
				if people[1].Name != "Bob" || people[1].Seniority != models.Junior || people[1].Office != models.BackOffice {
					t.Errorf("Bob parsed as %+v", people[1])
				}
				if people[0].ID == "" || people[0].ID == people[1].ID {
					t.Error("imported people must get fresh unique ids")
				}
			},
		},
		{
			name: "case-insensitive header, reordered columns",
			input: "Office,NAME,Seniority\n" +
				"BO,Carol,sr\n",
			validate: func(t *testing.T, people []models.Person) {
				if people[0].Name != "Carol" || people[0].Seniority != models.Senior || people[0].Office != models.BackOffice {
					t.Errorf("Carol parsed as %+v", people[0])
				}
			},
		},
		{
			name: "missing values default to medior and front office",
			input: "name,seniority,office\n" +
				"Dave,,\n" +
				"Erin\n",
			validate: func(t *testing.T, people []models.Person) {
				for _, p := range people {
					if p.Seniority != models.Medior {
						t.Errorf("%s seniority = %s, want medior", p.Name, p.Seniority)
					}
					if p.Office != models.FrontOffice {
						t.Errorf("%s office = %s, want front office", p.Name, p.Office)
					}
				}
			},
		},
		{
			name:    "unknown seniority is rejected",
			input:   "name,seniority\nFrank,principal\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "unknown office is rejected",
			input:   "name,office\nGrace,remote\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "missing name column",
			input:   "seniority,office\nsenior,FO\n",
			wantErr: ErrMalformed,
		},
		{
			name:    "header only",
			input:   "name,seniority,office\n",
			wantErr: ErrEmptyImport,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmptyImport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := ImportCSV(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImportCSV failed: %v", err)
			}
			tt.validate(t, people)
		})
	}
}

func TestImportJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLen  int
		validate func(t *testing.T, people []models.Person)
	}{
		{
			name:    "flat array",
			input:   `[{"name":"Alice","seniority":"senior","office":"back office"},{"name":"Bob"}]`,
			wantLen: 2,
			validate: func(t *testing.T, people []models.Person) {
				if people[0].Office != models.BackOffice {
					t.Errorf("Alice office = %s, want back office", people[0].Office)
				}
				if people[1].Seniority != models.Medior || people[1].Office != models.FrontOffice {
					t.Errorf("Bob should get defaults, got %+v", people[1])
				}
			},
		},
		{
			name:    "designers wrapper",
			input:   `{"designers":[{"name":"Carol","seniority":"junior","office":"FO"}]}`,
			wantLen: 1,
		},
		{
			name:    "object without designers",
			input:   `{"people":[{"name":"Dave"}]}`,
			wantErr: ErrMalformed,
		},
		{
			name:    "malformed json",
			input:   `[{"name":`,
			wantErr: ErrMalformed,
		},
		{
			name:    "scalar input",
			input:   `42`,
			wantErr: ErrMalformed,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantErr: ErrEmptyImport,
		},
		{
			name:    "unknown seniority",
			input:   `[{"name":"Eve","seniority":"staff"}]`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := ImportJSON(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImportJSON failed: %v", err)
			}
			if len(people) != tt.wantLen {
				t.Fatalf("got %d people, want %d", len(people), tt.wantLen)
			}
			if tt.validate != nil {
				tt.validate(t, people)
			}
		})
	}
}
