package candidate

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/skills"
)

type stubExtractor struct {
	out   []string
	calls int
}

func (s *stubExtractor) Extract(string, skills.Vocabulary) skills.Set {
	s.calls++
	set := skills.Set{}
	for _, t := range s.out {
		set[t] = struct{}{}
	}
	return set
}

func TestBuildRejectsBlankText(t *testing.T) {
	ex := &stubExtractor{}
	b := NewBuilder(ex, skills.NewVocabulary("v", "go"))

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := b.Build(text)
		require.ErrorIs(t, err, apperrors.ErrExtraction)
	}
	_, err := b.BuildFrom(" ", Source{Filename: "cv.pdf"})
	require.ErrorIs(t, err, apperrors.ErrExtraction)
	assert.Contains(t, err.Error(), "cv.pdf")
	assert.Zero(t, ex.calls)
}

func TestBuildComposesFieldsAndSkills(t *testing.T) {
	id := uuid.MustParse("4c1b5d4e-7f2a-4a3e-9a62-0c4a1e1f2b3c")
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	ex := &stubExtractor{out: []string{" Python", "SQL", "python"}}
	b := NewBuilder(ex, skills.NewVocabulary("v"),
		WithIDGenerator(func() uuid.UUID { return id }),
		WithClock(func() time.Time { return now }),
	)

	raw := "Jane Doe\njane@example.com\n+1 555 123 4567\nPython and SQL"
	rec, err := b.BuildFrom(raw, Source{Filename: "jane.pdf", MimeType: "application/pdf", Size: 42})
	require.NoError(t, err)

	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, "+1 555 123 4567", rec.Phone)
	assert.Equal(t, []string{"python", "sql"}, rec.Skills)
	assert.Equal(t, raw, rec.RawText)
	assert.Equal(t, "jane.pdf", rec.Filename)
	assert.Equal(t, int64(42), rec.Size)
	assert.Equal(t, now.UTC(), rec.CreatedAt)
	assert.True(t, rec.SkillSet().Has("SQL"))
}

func TestBuildAssignsFreshIDs(t *testing.T) {
	b := NewBuilder(skills.KeywordExtractor{}, skills.NewVocabulary("v", "go"))
	a, err := b.Build("golang")
	require.NoError(t, err)
	c, err := b.Build("golang")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, uuid.Nil, a.ID)
}

func TestBuildWithoutContacts(t *testing.T) {
	b := NewBuilder(skills.KeywordExtractor{}, skills.NewVocabulary("v", "docker"))
	rec, err := b.Build("experienced with containers")
	require.NoError(t, err)
	assert.Empty(t, rec.Name)
	assert.Empty(t, rec.Email)
	assert.Empty(t, rec.Phone)
	assert.Empty(t, rec.Skills)
	assert.NotNil(t, rec.Skills)
}
