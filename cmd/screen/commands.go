package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/artem13815/hr/screening/pkg/screening"
	"github.com/artem13815/hr/screening/pkg/security/jwt"
)

type fileMatch struct {
	File string `json:"file"`
	screening.Match
}

type fileRanked struct {
	File string `json:"file"`
	screening.RankedMatch
}

func newFilterCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter FILE...",
		Short: "List resumes that have every skill named in the job description",
		Args:  requireFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := readQuery(v)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), v, args)
			if err != nil {
				return err
			}
			defer s.close()

			matches, err := s.svc.Filter(cmd.Context(), query)
			if err != nil {
				return err
			}
			rows := make([]fileMatch, 0, len(matches))
			for _, m := range matches {
				rows = append(rows, fileMatch{File: s.files[m.ID], Match: m})
			}
			return writeJSON(out, rows)
		},
	}
	addQueryFlags(cmd)
	return cmd
}

func newRankCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank FILE...",
		Short: "Order resumes by text similarity to the job description",
		Args:  requireFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := readQuery(v)
			if err != nil {
				return err
			}
			s, err := openSession(cmd.Context(), v, args)
			if err != nil {
				return err
			}
			defer s.close()

			ranked, err := s.svc.Rank(cmd.Context(), query, v.GetFloat64("threshold"))
			if err != nil {
				return err
			}
			rows := make([]fileRanked, 0, len(ranked))
			for _, r := range ranked {
				rows = append(rows, fileRanked{File: s.files[r.ID], RankedMatch: r})
			}
			return writeJSON(out, rows)
		},
	}
	addQueryFlags(cmd)
	cmd.Flags().Float64P("threshold", "t", 0, "minimum similarity in [0,1]")
	return cmd
}

func newTokenCmd(v *viper.Viper, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the screening API (needs the shared JWT secret)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := jwt.NewGenerator(v.GetString("jwt-secret"), v.GetString("jwt-issuer"), v.GetDuration("ttl"))
			tok, err := gen.Generate(v.GetString("subject"), v.GetBool("admin"))
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, tok+"\n")
			return err
		},
	}
	f := cmd.Flags()
	f.String("jwt-secret", "", "HS256 secret (or SCREEN_JWT_SECRET)")
	f.String("jwt-issuer", "hr-service", "token issuer")
	f.String("subject", "screen-cli", "token subject")
	f.Bool("admin", false, "set the admin flag")
	f.Duration("ttl", time.Hour, "token lifetime")
	return cmd
}
