package screening

import (
	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/pkg/candidate"
)

// Upload is one uploaded resume file.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
}

// Match is a candidate returned by a screening query.
type Match struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name,omitempty"`
	Email  string    `json:"email,omitempty"`
	Phone  string    `json:"phone,omitempty"`
	Skills []string  `json:"skills"`
}

// RankedMatch is a Match with its similarity to the query on a 0-100 scale.
type RankedMatch struct {
	Match
	Similarity float64 `json:"similarity"`
}

func matchOf(r candidate.Record) Match {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return Match{ID: r.ID, Name: r.Name, Email: r.Email, Phone: r.Phone, Skills: skills}
}
