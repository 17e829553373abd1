// Package candidate turns extracted resume text into structured candidate records.
package candidate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/extract"
	"github.com/artem13815/hr/screening/pkg/skills"
)

// Builder composes field and skill extraction into a Record.
type Builder struct {
	skills skills.Extractor
	vocab  skills.Vocabulary
	newID  func() uuid.UUID
	now    func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithIDGenerator overrides the id source.
func WithIDGenerator(fn func() uuid.UUID) BuilderOption {
	return func(b *Builder) { b.newID = fn }
}

// WithClock overrides the creation time source.
func WithClock(fn func() time.Time) BuilderOption {
	return func(b *Builder) { b.now = fn }
}

func NewBuilder(extractor skills.Extractor, vocab skills.Vocabulary, opts ...BuilderOption) *Builder {
	b := &Builder{
		skills: extractor,
		vocab:  vocab,
		newID:  uuid.New,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates a record from raw document text. Blank text fails with
// apperrors.ErrExtraction; nothing is ever filled in on its behalf.
func (b *Builder) Build(rawText string) (Record, error) {
	return b.BuildFrom(rawText, Source{})
}

// BuildFrom is Build with upload metadata attached to the record.
func (b *Builder) BuildFrom(rawText string, src Source) (Record, error) {
	if strings.TrimSpace(rawText) == "" {
		if src.Filename != "" {
			return Record{}, fmt.Errorf("%s: %w", src.Filename, apperrors.ErrExtraction)
		}
		return Record{}, apperrors.ErrExtraction
	}
	fields := extract.ExtractFields(rawText)
	found := b.skills.Extract(rawText, b.vocab)
	return Record{
		ID:        b.newID(),
		Name:      fields.Name,
		Email:     fields.Email,
		Phone:     fields.Phone,
		Skills:    skills.NewSet(found.Sorted()...).Sorted(),
		RawText:   rawText,
		Filename:  src.Filename,
		MimeType:  src.MimeType,
		Size:      src.Size,
		CreatedAt: b.now().UTC(),
	}, nil
}

// SkillSet returns the record's skills as a normalized set.
func (r Record) SkillSet() skills.Set {
	return skills.NewSet(r.Skills...)
}
