// Package screening wires document extraction, record building, storage and
// the two matching modes into the application use cases.
package screening

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/blob"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/document"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/matching"
	"github.com/artem13815/hr/screening/pkg/ranking"
	"github.com/artem13815/hr/screening/pkg/skills"
)

// UseCase describes the screening operations exposed to transports.
type UseCase interface {
	Ingest(ctx context.Context, up Upload) (candidate.Record, error)
	Filter(ctx context.Context, query string) ([]Match, error)
	Rank(ctx context.Context, query string, threshold float64) ([]RankedMatch, error)
	List(ctx context.Context, limit, offset int) ([]candidate.Record, error)
	Get(ctx context.Context, id uuid.UUID) (candidate.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// File returns the record together with its original upload.
	File(ctx context.Context, id uuid.UUID) (candidate.Record, []byte, error)
}

// Deps are the collaborators of Service. Blobs may be nil, in which case
// uploads are not retained and File reports ErrNotFound.
type Deps struct {
	Repo        candidate.Repository
	Blobs       blob.Store
	Builder     *candidate.Builder
	QuerySkills skills.Extractor
	QueryVocab  skills.Vocabulary
	Engine      *ranking.Engine
	Logger      *zap.Logger
}

type Service struct {
	repo        candidate.Repository
	blobs       blob.Store
	builder     *candidate.Builder
	querySkills skills.Extractor
	queryVocab  skills.Vocabulary
	engine      *ranking.Engine
	log         *zap.Logger
}

var _ UseCase = (*Service)(nil)

func NewService(d Deps) *Service {
	return &Service{
		repo:        d.Repo,
		blobs:       d.Blobs,
		builder:     d.Builder,
		querySkills: d.QuerySkills,
		queryVocab:  d.QueryVocab,
		engine:      d.Engine,
		log:         logger.WithFields(d.Logger),
	}
}

// Ingest extracts, builds, stores the file and saves the record. A record
// that cannot be saved leaves no file behind.
func (s *Service) Ingest(ctx context.Context, up Upload) (candidate.Record, error) {
	text, err := document.ParseResumeText(up.Filename, up.MimeType, up.Data)
	if err != nil {
		return candidate.Record{}, err
	}
	rec, err := s.builder.BuildFrom(text, candidate.Source{
		Filename: up.Filename,
		MimeType: up.MimeType,
		Size:     int64(len(up.Data)),
	})
	if err != nil {
		return candidate.Record{}, err
	}

	key := blobKey(rec)
	if s.blobs != nil {
		uri, err := s.blobs.Put(ctx, key, up.MimeType, up.Data)
		if err != nil {
			return candidate.Record{}, fmt.Errorf("store upload: %w", err)
		}
		rec.StorageURI = uri
	}

	if _, err := s.repo.Save(ctx, rec); err != nil {
		if s.blobs != nil {
			if dErr := s.blobs.Delete(context.WithoutCancel(ctx), key); dErr != nil {
				s.log.Warn("orphan upload left behind", zap.String("key", key), zap.Error(dErr))
			}
		}
		return candidate.Record{}, fmt.Errorf("save candidate: %w", err)
	}

	s.log.Info("candidate ingested",
		zap.Stringer(logger.FieldCandidate, rec.ID),
		zap.String(logger.FieldFilename, rec.Filename),
		zap.Int("skills", len(rec.Skills)),
	)
	return rec, nil
}

// Filter returns the candidates holding every skill named in the query text.
func (s *Service) Filter(ctx context.Context, query string) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty: %w", apperrors.ErrInvalidQuery)
	}
	wanted := s.querySkills.Extract(query, s.queryVocab)

	corpus, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	found, err := matching.Filter(wanted, corpus)
	if err != nil {
		return nil, err
	}

	out := make([]Match, 0, len(found))
	for _, rec := range found {
		out = append(out, matchOf(rec))
	}
	s.log.Debug("exact filter done",
		logger.QueryField(query),
		zap.Strings("skills", wanted.Sorted()),
		zap.Int("corpus", len(corpus)),
		zap.Int("matched", len(out)),
	)
	return out, nil
}

// Rank orders candidates by similarity of their text to the query.
// No eligible candidates yields an empty list, not an error.
func (s *Service) Rank(ctx context.Context, query string, threshold float64) ([]RankedMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is empty: %w", apperrors.ErrInvalidQuery)
	}
	corpus, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	byID := make(map[uuid.UUID]candidate.Record, len(corpus))
	docs := make([]ranking.Document, 0, len(corpus))
	for _, rec := range corpus {
		byID[rec.ID] = rec
		docs = append(docs, ranking.Document{ID: rec.ID, Text: rec.RawText})
	}

	results, err := s.engine.Rank(ctx, query, docs, threshold)
	if errors.Is(err, apperrors.ErrEmptyCorpus) {
		return []RankedMatch{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]RankedMatch, 0, len(results))
	for _, r := range results {
		rec, ok := byID[r.ID]
		if !ok {
			continue
		}
		out = append(out, RankedMatch{Match: matchOf(rec), Similarity: r.Similarity})
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]candidate.Record, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (candidate.Record, error) {
	return s.repo.Get(ctx, id)
}

// Delete removes the record, then its file. A file that fails to go away is
// only logged: the record is already gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if s.blobs != nil && rec.StorageURI != "" {
		if err := s.blobs.Delete(ctx, blobKey(rec)); err != nil {
			s.log.Warn("delete upload", zap.Stringer(logger.FieldCandidate, id), zap.Error(err))
		}
	}
	return nil
}

func (s *Service) File(ctx context.Context, id uuid.UUID) (candidate.Record, []byte, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return candidate.Record{}, nil, err
	}
	if s.blobs == nil || rec.StorageURI == "" {
		return candidate.Record{}, nil, fmt.Errorf("file of %s: %w", id, apperrors.ErrNotFound)
	}
	data, err := s.blobs.Get(ctx, blobKey(rec))
	if errors.Is(err, blob.ErrNotFound) {
		return candidate.Record{}, nil, fmt.Errorf("file of %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return candidate.Record{}, nil, err
	}
	return rec, data, nil
}

// blobKey names the stored upload: <id><ext>, ext taken from the filename.
func blobKey(rec candidate.Record) string {
	return rec.ID.String() + strings.ToLower(filepath.Ext(rec.Filename))
}
