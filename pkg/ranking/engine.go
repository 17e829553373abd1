// Package ranking scores candidate documents against a query with a
// TF-IDF vector space built fresh from the query and the current corpus.
//
// Each call is a pure function of its inputs: the vocabulary is the sorted set
// of tokens of {query} ∪ corpus, term weights are raw counts times a smoothed
// IDF, and every document vector is L2-normalized so the dot product is the
// cosine similarity. Documents with empty text take no part in the space.
package ranking

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/apperrors"
	"github.com/artem13815/hr/screening/pkg/nlp"
)

// Document is one corpus entry.
type Document struct {
	ID   uuid.UUID
	Text string
}

// Result is one ranked corpus entry.
type Result struct {
	ID uuid.UUID `json:"id"`
	// Score is the raw cosine similarity in [0,1].
	Score float64 `json:"-"`
	// Similarity is Score scaled to 0-100 and rounded to two decimals.
	Similarity float64 `json:"similarity"`
}

// Engine ranks documents. It holds configuration only and is safe for
// concurrent use.
type Engine struct {
	tokenizer    nlp.Tokenizer
	workers      int
	maxChars     int
	maxDocuments int
	logger       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds how many documents are vectorized concurrently.
// Default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithMaxChars truncates every document, the query included, to n runes.
// Zero means no limit.
func WithMaxChars(n int) Option {
	return func(e *Engine) { e.maxChars = max(n, 0) }
}

// WithMaxDocuments rejects corpora with more than n eligible documents.
// Zero means no limit.
func WithMaxDocuments(n int) Option {
	return func(e *Engine) { e.maxDocuments = max(n, 0) }
}

// WithLogger sets the logger for per-run debug stats. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine returns an engine using one worker per GOMAXPROCS and no limits.
func NewEngine(tokenizer nlp.Tokenizer, opts ...Option) *Engine {
	e := &Engine{
		tokenizer: tokenizer,
		workers:   runtime.GOMAXPROCS(0),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rank returns the corpus entries whose cosine similarity to query is at
// least threshold, most similar first. Ties keep corpus order.
//
// Errors: apperrors.ErrInvalidThreshold for a threshold outside [0,1],
// apperrors.ErrInvalidQuery for a blank or term-less query,
// apperrors.ErrEmptyCorpus when no entry has text, and
// apperrors.ErrCorpusTooLarge past the WithMaxDocuments bound.
func (e *Engine) Rank(ctx context.Context, query string, corpus []Document, threshold float64) ([]Result, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%v: %w", threshold, apperrors.ErrInvalidThreshold)
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query text is empty: %w", apperrors.ErrInvalidQuery)
	}

	eligible := make([]Document, 0, len(corpus))
	for _, d := range corpus {
		if strings.TrimSpace(d.Text) != "" {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		return nil, apperrors.ErrEmptyCorpus
	}
	if e.maxDocuments > 0 && len(eligible) > e.maxDocuments {
		return nil, fmt.Errorf("%d documents, limit %d: %w", len(eligible), e.maxDocuments, apperrors.ErrCorpusTooLarge)
	}

	texts := make([]string, 0, len(eligible)+1)
	texts = append(texts, query)
	for _, d := range eligible {
		texts = append(texts, d.Text)
	}

	space, err := e.build(ctx, texts)
	if err != nil {
		return nil, err
	}
	q := space.vectors[0]
	if len(q) == 0 {
		return nil, fmt.Errorf("query has no terms: %w", apperrors.ErrInvalidQuery)
	}

	results := make([]Result, 0, len(eligible))
	for i, d := range eligible {
		score := clamp01(dot(q, space.vectors[i+1]))
		if score < threshold {
			continue
		}
		results = append(results, Result{
			ID:         d.ID,
			Score:      score,
			Similarity: math.Round(score*100*100) / 100,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	e.logger.Debug("ranking completed",
		zap.Int("documents", len(eligible)),
		zap.Int("vocabulary", len(space.idf)),
		zap.Float64("threshold", threshold),
		zap.Int("matched", len(results)),
	)
	return results, nil
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
