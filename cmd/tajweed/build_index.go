package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/obadx/quran-transcript/config"
	"github.com/obadx/quran-transcript/corpus"
	"github.com/obadx/quran-transcript/phonindex"
)

func newBuildIndexCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build-index",
		Short: "Phonetize the whole corpus and persist the phoneme index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.DataDir
			}

			c, err := corpus.Load()
			if err != nil {
				return fmt.Errorf("build-index: %w", err)
			}

			idx, err := phonindex.Build(c, cfg.Moshaf)
			if err != nil {
				return fmt.Errorf("build-index: %w", err)
			}

			if err := idx.Save(outDir); err != nil {
				return fmt.Errorf("build-index: %w", err)
			}

			log.Info().Str("dir", outDir).Int("rows", len(idx.Rows)).Msg("index built")
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to config data_dir)")
	return cmd
}
