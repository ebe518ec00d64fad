// Package roster implements the population import and group export
// adapters. All free-text coercion and defaulting happens here, so the
// shuffling core only ever sees closed enumerations.
package roster

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/hkarls/teamdeck/internal/models"
)

var (
	// ErrEmptyImport is returned when an import yields no people.
	ErrEmptyImport = errors.New("import contains no people")

	// ErrMalformed is returned for structurally invalid input. A
	// malformed import is always a distinct error, never a silently
	// empty population.
	ErrMalformed = errors.New("malformed import")
)

// Record is the shape both import encodings decode into before
// coercion: free-text seniority/office with documented defaults.
type Record struct {
	Name      string `json:"name"`
	Seniority string `json:"seniority"`
	Office    string `json:"office"`

	// Locked is honored for inline roster creation only; the file
	// import encodings do not carry it.
	Locked bool `json:"locked,omitempty"`
}

// ImportCSV parses delimited text with a header row naming (in any order,
// case-insensitively) the columns name, seniority, and office. Missing
// seniority defaults to medior and missing office to front office;
// unrecognized non-empty values are rejected rather than silently
// defaulted, so data-quality errors surface at the boundary.
func ImportCSV(r io.Reader) ([]models.Person, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	// Rows may omit trailing columns; the defaults cover them.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyImport
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameCol, ok := cols["name"]
	if !ok {
		return nil, fmt.Errorf("%w: header must include a name column", ErrMalformed)
	}
	seniorityCol, hasSeniority := cols["seniority"]
	officeCol, hasOffice := cols["office"]

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		rec := Record{Name: strings.TrimSpace(field(row, nameCol))}
		if hasSeniority {
			rec.Seniority = strings.TrimSpace(field(row, seniorityCol))
		}
		if hasOffice {
			rec.Office = strings.TrimSpace(field(row, officeCol))
		}
		records = append(records, rec)
	}

	return Coerce(records)
}

// jsonImport matches the wrapped encoding: an object holding the
// population under a "designers" field.
type jsonImport struct {
	Designers []Record `json:"designers"`
}

// ImportJSON parses either a flat array of {name, seniority, office}
// objects or an object with a designers array. Field defaults and
// strictness match ImportCSV.
func ImportJSON(r io.Reader) ([]models.Person, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	trimmed := strings.TrimSpace(string(data))
	var records []Record
	switch {
	case strings.HasPrefix(trimmed, "["):
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case strings.HasPrefix(trimmed, "{"):
		var wrapped jsonImport
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if wrapped.Designers == nil {
			return nil, fmt.Errorf("%w: object form requires a designers array", ErrMalformed)
		}
		records = wrapped.Designers
	default:
		return nil, fmt.Errorf("%w: expected a JSON array or object", ErrMalformed)
	}

	return Coerce(records)
}

// Coerce turns decoded records into Person values with fresh identities,
// applying defaults for missing fields and rejecting unknown ones. The
// API uses it directly for inline roster creation so that hand-entered
// and imported populations follow the same rules.
func Coerce(records []Record) ([]models.Person, error) {
	if len(records) == 0 {
		return nil, ErrEmptyImport
	}

	people := make([]models.Person, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d has no name", ErrMalformed, i+1)
		}
		seniority, err := parseSeniority(rec.Seniority)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, rec.Name, err)
		}
		office, err := parseOffice(rec.Office)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i+1, rec.Name, err)
		}
		people = append(people, models.Person{
			ID:        uuid.New().String(),
			Name:      rec.Name,
			Seniority: seniority,
			Office:    office,
			Locked:    rec.Locked,
		})
	}
	return people, nil
}

func parseSeniority(s string) (models.Seniority, error) {
	switch strings.ToLower(s) {
	case "":
		return models.Medior, nil
	case "junior", "jr":
		return models.Junior, nil
	case "medior", "mid", "medium":
		return models.Medior, nil
	case "senior", "sr":
		return models.Senior, nil
	}
	return "", fmt.Errorf("%w: unknown seniority %q", ErrMalformed, s)
}

func parseOffice(s string) (models.Office, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, " ", "_"), "-", "_")) {
	case "":
		return models.FrontOffice, nil
	case "front_office", "frontoffice", "front", "fo":
		return models.FrontOffice, nil
	case "back_office", "backoffice", "back", "bo":
		return models.BackOffice, nil
	}
	return "", fmt.Errorf("%w: unknown office %q", ErrMalformed, s)
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
