package screening

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/blob"
	"github.com/artem13815/hr/screening/pkg/candidate"
	"github.com/artem13815/hr/screening/pkg/nlp"
	"github.com/artem13815/hr/screening/pkg/ranking"
	"github.com/artem13815/hr/screening/pkg/skills"
)

// Settings select vocabularies and ranking limits. Zero values mean defaults.
type Settings struct {
	PresetsFile  string
	ResumePreset string
	QueryPreset  string
	Strategy     string

	Workers          int
	MaxDocumentChars int
	MaxCorpus        int
}

// Assemble builds a Service from settings: presets, skill extractor, record
// builder and ranking engine share one tokenizer.
func Assemble(repo candidate.Repository, blobs blob.Store, s Settings, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	presets, err := skills.LoadPresetsFile(s.PresetsFile)
	if err != nil {
		return nil, err
	}
	resumeVocab, err := presets.Get(orDefault(s.ResumePreset, skills.PresetTechnology))
	if err != nil {
		return nil, fmt.Errorf("resume preset: %w", err)
	}
	queryVocab, err := presets.Get(orDefault(s.QueryPreset, skills.PresetKnown))
	if err != nil {
		return nil, fmt.Errorf("query preset: %w", err)
	}

	tok := nlp.NewWordTokenizer()
	extractor, err := skills.NewExtractor(s.Strategy, tok)
	if err != nil {
		return nil, err
	}

	opts := []ranking.Option{
		ranking.WithMaxChars(s.MaxDocumentChars),
		ranking.WithMaxDocuments(s.MaxCorpus),
		ranking.WithLogger(log.Named("ranking")),
	}
	if s.Workers > 0 {
		opts = append(opts, ranking.WithWorkers(s.Workers))
	}

	log.Info("screening configured",
		zap.String("resume_preset", resumeVocab.Name()),
		zap.Int("resume_terms", resumeVocab.Len()),
		zap.String("query_preset", queryVocab.Name()),
		zap.Int("query_terms", queryVocab.Len()),
	)
	return NewService(Deps{
		Repo:        repo,
		Blobs:       blobs,
		Builder:     candidate.NewBuilder(extractor, resumeVocab),
		QuerySkills: extractor,
		QueryVocab:  queryVocab,
		Engine:      ranking.NewEngine(tok, opts...),
		Logger:      log,
	}), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
