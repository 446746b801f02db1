package profile

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/mikael/cv-tailor/internal/schemas"
	"github.com/mikael/cv-tailor/internal/types"
)

// Load reads a profile JSON file, validates it, and normalizes it for the
// matching engine: stable IDs on every entry and work experience ordered
// by start date descending for recency-weighted scoring.
func Load(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read file", Cause: err}
	}

	if err := schemas.Validate(schemas.ProfileSchema, data); err != nil {
		return nil, &LoadError{Path: path, Message: "schema violation", Cause: err}
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Path: path, Message: "cannot parse JSON", Cause: err}
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}

	Normalize(&p)
	return &p, nil
}

// Normalize enforces the Profile invariants in place: every entry gets a
// stable ID when the source omitted one, and work experience is sorted by
// start date descending. Ties preserve source order.
func Normalize(p *types.Profile) {
	for i := range p.WorkExperience {
		if p.WorkExperience[i].ID == "" {
			p.WorkExperience[i].ID = newEntryID("exp")
		}
	}
	for i := range p.Projects {
		if p.Projects[i].ID == "" {
			p.Projects[i].ID = newEntryID("proj")
		}
	}
	for i := range p.Education {
		if p.Education[i].ID == "" {
			p.Education[i].ID = newEntryID("edu")
		}
	}
	for i := range p.Certifications {
		if p.Certifications[i].ID == "" {
			p.Certifications[i].ID = newEntryID("cert")
		}
	}

	// "YYYY-MM" compares correctly as a string.
	sort.SliceStable(p.WorkExperience, func(i, j int) bool {
		return p.WorkExperience[i].StartDate > p.WorkExperience[j].StartDate
	})
}

func newEntryID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
