// Package matching implements exact skill-set filtering of candidates.
package matching

import (
	"fmt"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/skills"
)

// Filter keeps the candidates whose skills include every query skill.
// Comparison is exact after normalization; the input order is preserved.
// An empty query fails with apperrors.ErrInvalidQuery.
func Filter(querySkills skills.Set, corpus []candidate.Record) ([]candidate.Record, error) {
	query := normalized(querySkills)
	if len(query) == 0 {
		return nil, fmt.Errorf("no actionable skills found in query: %w", apperrors.ErrInvalidQuery)
	}
	out := make([]candidate.Record, 0, len(corpus))
	for _, rec := range corpus {
		if len(rec.Skills) == 0 {
			continue
		}
		if rec.SkillSet().ContainsAll(query) {
			out = append(out, rec)
		}
	}
	return out, nil
}

// normalized re-normalizes a set that may have been built by hand.
func normalized(s skills.Set) skills.Set {
	out := make(skills.Set, len(s))
	for t := range s {
		out.Add(t)
	}
	return out
}
