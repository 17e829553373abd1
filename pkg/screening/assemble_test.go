package screening

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/repository/badgerdb"
)

func TestAssemble(t *testing.T) {
	backend, err := badgerdb.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	repo := badgerdb.NewCandidateRepository(backend)

	t.Run("defaults", func(t *testing.T) {
		svc, err := Assemble(repo, nil, Settings{}, nil)
		require.NoError(t, err)
		rec, err := svc.Ingest(context.Background(), Upload{Filename: "a.txt", Data: []byte("Kubernetes and Docker")})
		require.NoError(t, err)
		assert.Equal(t, []string{"docker", "kubernetes"}, rec.Skills)
		assert.Empty(t, rec.StorageURI)

		_, _, err = svc.File(context.Background(), rec.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("custom presets file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("presets:\n  mine: [erlang, elixir]\n"), 0o644))

		svc, err := Assemble(repo, nil, Settings{
			PresetsFile:  path,
			ResumePreset: "mine",
			QueryPreset:  "mine",
			Strategy:     "token",
			MaxCorpus:    1,
		}, nil)
		require.NoError(t, err)

		rec, err := svc.Ingest(context.Background(), Upload{Filename: "b.txt", Data: []byte("Elixir on the BEAM")})
		require.NoError(t, err)
		assert.Equal(t, []string{"elixir"}, rec.Skills)

		// two stored documents now exceed the corpus cap of one
		_, err = svc.Rank(context.Background(), "elixir", 0)
		assert.ErrorIs(t, err, apperrors.ErrCorpusTooLarge)
	})

	t.Run("bad settings", func(t *testing.T) {
		_, err := Assemble(repo, nil, Settings{ResumePreset: "nope"}, nil)
		assert.Error(t, err)
		_, err = Assemble(repo, nil, Settings{Strategy: "fuzzy"}, nil)
		assert.Error(t, err)
		_, err = Assemble(repo, nil, Settings{PresetsFile: "/does/not/exist.yaml"}, nil)
		assert.Error(t, err)
	})
}
