package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/obadx/quran-transcript/config"
	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/phonindex"
	"github.com/obadx/quran-transcript/search"
)

func newSearchCmd() *cobra.Command {
	var errorRatio float64
	var dataDir string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Fuzzy-search the phoneme index for a phonetic query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if dataDir == "" {
				dataDir = cfg.DataDir
			}

			idx, err := phonindex.Load(dataDir)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			c, err := corpus.Load()
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			s := search.New(idx, c)
			matches, err := s.Search(args[0], errorRatio)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}

			for _, m := range matches {
				uthmani, err := s.GetUthmani(m)
				if err != nil {
					return fmt.Errorf("search: %w", err)
				}
				fmt.Printf("%d:%d-%d:%d\t%s\n", m.Start.Sura, m.Start.Aya, m.End.Sura, m.End.Aya, uthmani)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&errorRatio, "error-ratio", 0.2, "maximum fraction of edits allowed relative to the query length")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "index directory (defaults to config data_dir)")
	return cmd
}
