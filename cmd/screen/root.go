package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/artem13815/hr/screening/pkg/document"
	"github.com/artem13815/hr/screening/pkg/logger"
	"github.com/artem13815/hr/screening/pkg/repository/badgerdb"
	"github.com/artem13815/hr/screening/pkg/screening"
)

const app = "screen"

func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("SCREEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           app,
		Short:         "screen matches resume files against a job description",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.BoolP("debug", "d", false, "verbose/debug output")
	pf.BoolP("json", "j", false, "json format for logging")
	pf.String("presets", "", "skill presets YAML file (default: built-in presets)")
	pf.String("resume-preset", "technology", "preset used for resume skills")
	pf.String("query-preset", "known", "preset used for job description skills")
	pf.String("strategy", "keyword", "skill matching strategy: keyword or token")
	pf.Int("max-chars", 0, "truncate every document to this many characters (0 = no limit)")
	// flags are bound per run: subcommands share keys like "query"
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return v.BindPFlags(cmd.Flags())
	}

	root.AddCommand(newFilterCmd(v, out), newRankCmd(v, out), newTokenCmd(v, out))
	return root
}

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("query", "q", "", "job description file (pdf, docx or txt)")
	cmd.Flags().String("query-text", "", "job description text, instead of --query")
}

// session is an in-memory screening service loaded with the given files.
type session struct {
	svc   *screening.Service
	files map[uuid.UUID]string
	log   *zap.Logger
	close func()
}

func openSession(ctx context.Context, v *viper.Viper, paths []string) (*session, error) {
	log, err := logger.New(v.GetBool("json"), v.GetBool("debug"))
	if err != nil {
		return nil, err
	}
	backend, err := badgerdb.Open("", log)
	if err != nil {
		return nil, err
	}
	svc, err := screening.Assemble(badgerdb.NewCandidateRepository(backend), nil, screening.Settings{
		PresetsFile:      v.GetString("presets"),
		ResumePreset:     v.GetString("resume-preset"),
		QueryPreset:      v.GetString("query-preset"),
		Strategy:         v.GetString("strategy"),
		MaxDocumentChars: v.GetInt("max-chars"),
	}, log)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	s := &session{
		svc:   svc,
		files: make(map[uuid.UUID]string, len(paths)),
		log:   log,
		close: func() { _ = backend.Close(); _ = log.Sync() },
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			s.close()
			return nil, err
		}
		rec, err := svc.Ingest(ctx, screening.Upload{Filename: p, Data: data})
		if err != nil {
			// one unreadable resume must not sink the batch
			log.Warn("skipping file", zap.String(logger.FieldFilename, p), zap.Error(err))
			continue
		}
		s.files[rec.ID] = p
	}
	return s, nil
}

func readQuery(v *viper.Viper) (string, error) {
	if text := v.GetString("query-text"); text != "" {
		return text, nil
	}
	path := v.GetString("query")
	if path == "" {
		return "", errors.New("either --query or --query-text is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return document.ParseResumeText(path, "", data)
}

func writeJSON(out io.Writer, data any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Data any `json:"data"`
	}{data})
}

func requireFiles(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one resume file is required")
	}
	return nil
}
