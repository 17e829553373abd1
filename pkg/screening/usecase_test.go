package screening

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/blob"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/nlp"
	"github.com/artem13815/hr/screening/pkg/ranking"
	"github.com/artem13815/hr/screening/pkg/repository/badgerdb"
	"github.com/artem13815/hr/screening/pkg/skills"
)

const (
	janeCV = "Jane Doe\njane@example.com\n+1 555 123 4567\n" +
		"Python developer with SQL and Docker experience. Built Django services."
	johnCV = "John Smith\njohn@example.com\n" +
		"Frontend engineer: React, HTML and CSS."
)

type fixture struct {
	svc     *Service
	repo    candidate.Repository
	blobDir string
}

func newFixture(t *testing.T, wrap func(candidate.Repository) candidate.Repository) fixture {
	t.Helper()
	backend, err := badgerdb.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	var repo candidate.Repository = badgerdb.NewCandidateRepository(backend)
	if wrap != nil {
		repo = wrap(repo)
	}

	dir := t.TempDir()
	disk, err := blob.NewDisk(dir)
	require.NoError(t, err)

	presets := skills.DefaultPresets()
	resumeVocab, err := presets.Get(skills.PresetTechnology)
	require.NoError(t, err)
	queryVocab, err := presets.Get(skills.PresetKnown)
	require.NoError(t, err)

	tok := nlp.NewWordTokenizer()
	svc := NewService(Deps{
		Repo:        repo,
		Blobs:       disk,
		Builder:     candidate.NewBuilder(skills.KeywordExtractor{}, resumeVocab),
		QuerySkills: skills.KeywordExtractor{},
		QueryVocab:  queryVocab,
		Engine:      ranking.NewEngine(tok, ranking.WithWorkers(2)),
		Logger:      zap.NewNop(),
	})
	return fixture{svc: svc, repo: repo, blobDir: dir}
}

func (f fixture) ingest(t *testing.T, name, text string) candidate.Record {
	t.Helper()
	rec, err := f.svc.Ingest(context.Background(), Upload{
		Filename: name,
		MimeType: "text/plain",
		Data:     []byte(text),
	})
	require.NoError(t, err)
	return rec
}

func TestIngest(t *testing.T) {
	f := newFixture(t, nil)
	rec := f.ingest(t, "jane.txt", janeCV)

	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "jane@example.com", rec.Email)
	assert.Equal(t, "+1 555 123 4567", rec.Phone)
	assert.Equal(t, []string{"django", "docker", "python", "sql"}, rec.Skills)
	assert.Equal(t, "jane.txt", rec.Filename)
	assert.Equal(t, int64(len(janeCV)), rec.Size)
	assert.NotEmpty(t, rec.StorageURI)

	stored, err := f.svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, stored.ID)
	assert.Contains(t, stored.RawText, "Python developer")

	got, data, err := f.svc.File(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, []byte(janeCV), data)
}

func TestIngestErrors(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.Ingest(ctx, Upload{Filename: "cv.rtf", Data: []byte("{\\rtf1}")})
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)

	_, err = f.svc.Ingest(ctx, Upload{Filename: "blank.txt", Data: []byte("  \n\t ")})
	assert.ErrorIs(t, err, apperrors.ErrExtraction)

	all, err := f.repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed uploads must not create records")
}

type failingSave struct {
	candidate.Repository
}

func (failingSave) Save(context.Context, candidate.Record) (uuid.UUID, error) {
	return uuid.Nil, errors.New("disk full")
}

func TestIngestRemovesFileWhenSaveFails(t *testing.T) {
	f := newFixture(t, func(r candidate.Repository) candidate.Repository { return failingSave{r} })

	_, err := f.svc.Ingest(context.Background(), Upload{Filename: "jane.txt", Data: []byte(janeCV)})
	require.Error(t, err)

	entries, err := os.ReadDir(f.blobDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFilter(t *testing.T) {
	f := newFixture(t, nil)
	jane := f.ingest(t, "jane.txt", janeCV)
	f.ingest(t, "john.txt", johnCV)
	ctx := context.Background()

	got, err := f.svc.Filter(ctx, "We need a Python engineer who knows SQL.")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, jane.ID, got[0].ID)
	assert.Equal(t, "Jane Doe", got[0].Name)

	got, err = f.svc.Filter(ctx, "Python, SQL and Kubernetes")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterInvalidQuery(t *testing.T) {
	f := newFixture(t, nil)
	f.ingest(t, "jane.txt", janeCV)

	for _, q := range []string{"", "   ", "Looking for a friendly colleague"} {
		_, err := f.svc.Filter(context.Background(), q)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuery, q)
	}
}

func TestRank(t *testing.T) {
	f := newFixture(t, nil)
	jane := f.ingest(t, "jane.txt", janeCV)
	john := f.ingest(t, "john.txt", johnCV)
	ctx := context.Background()

	got, err := f.svc.Rank(ctx, "Python developer, Django and SQL", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, jane.ID, got[0].ID)
	assert.Equal(t, john.ID, got[1].ID)
	assert.Greater(t, got[0].Similarity, got[1].Similarity)
	assert.LessOrEqual(t, got[0].Similarity, 100.0)
	assert.Equal(t, []string{"django", "docker", "python", "sql"}, got[0].Skills)

	got, err = f.svc.Rank(ctx, "Python developer, Django and SQL", 0.2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, jane.ID, got[0].ID)
}

func TestRankEmptyCorpus(t *testing.T) {
	f := newFixture(t, nil)

	got, err := f.svc.Rank(context.Background(), "python", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankErrors(t *testing.T) {
	f := newFixture(t, nil)
	f.ingest(t, "jane.txt", janeCV)
	ctx := context.Background()

	_, err := f.svc.Rank(ctx, "  ", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuery)

	_, err = f.svc.Rank(ctx, "python", 1.5)
	assert.ErrorIs(t, err, apperrors.ErrInvalidThreshold)

	_, err = f.svc.Rank(ctx, "!!! ...", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidQuery)
}

func TestListAndDelete(t *testing.T) {
	f := newFixture(t, nil)
	jane := f.ingest(t, "jane.txt", janeCV)
	f.ingest(t, "john.txt", johnCV)
	ctx := context.Background()

	page, err := f.svc.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	require.NoError(t, f.svc.Delete(ctx, jane.ID))

	_, err = f.svc.Get(ctx, jane.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, _, err = f.svc.File(ctx, jane.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, jane.ID), apperrors.ErrNotFound)

	entries, err := os.ReadDir(f.blobDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
