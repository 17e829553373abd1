package badgerdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/candidate"
)

func newRepo(t *testing.T) *CandidateRepository {
	t.Helper()
	backend, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return NewCandidateRepository(backend)
}

func record(name string, created time.Time) candidate.Record {
	return candidate.Record{
		ID:        uuid.New(),
		Name:      name,
		Skills:    []string{"python"},
		RawText:   name + " python developer",
		CreatedAt: created,
	}
}

func TestSaveAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	rec := record("Jane Doe", base)
	rec.Email = "jane@example.com"
	rec.Filename = "jane.pdf"
	rec.Size = 1024

	id, err := repo.Save(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.Equal(t, "Jane Doe python developer", got.RawText)
}

func TestSaveAssignsIDAndTime(t *testing.T) {
	repo := newRepo(t)
	id, err := repo.Save(context.Background(), candidate.Record{Skills: []string{}})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.CreatedAt.IsZero())
	assert.NotNil(t, got.Skills)
}

func TestListAllCreationOrder(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// saved out of order on purpose
	c := record("C", base.Add(2*time.Minute))
	a := record("A", base)
	b := record("B", base.Add(time.Minute))
	for _, r := range []candidate.Record{c, a, b} {
		_, err := repo.Save(ctx, r)
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{all[0].Name, all[1].Name, all[2].Name})

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "C", page[0].Name)
	assert.Equal(t, "B", page[1].Name)

	page, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "A", page[0].Name)
}

func TestListAllEmpty(t *testing.T) {
	repo := newRepo(t)
	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	rec := record("Jane Doe", time.Now().UTC())
	_, err := repo.Save(ctx, rec)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, deleted.ID)

	_, err = repo.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = repo.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveReplacesExisting(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	rec := record("Old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := repo.Save(ctx, rec)
	require.NoError(t, err)

	rec.Name = "New"
	rec.CreatedAt = rec.CreatedAt.Add(time.Hour)
	_, err = repo.Save(ctx, rec)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New", all[0].Name)
}

func TestCanceledContext(t *testing.T) {
	repo := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Save(ctx, record("X", time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPing(t *testing.T) {
	backend, err := OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, backend.Ping())
	require.NoError(t, backend.Close())
	assert.Error(t, backend.Ping())
}

func TestRecordKeyOrdering(t *testing.T) {
	id := uuid.New()
	early := recordKey(time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC), id)
	late := recordKey(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), id)
	assert.Less(t, string(early), string(late))
	assert.Greater(t, string(recordSeekLast()), string(late))
}
