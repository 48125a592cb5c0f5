package phonetizer

import (
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/obadx/quran-transcript/internal/arabicnorm"
	"github.com/obadx/quran-transcript/mapping"
	"github.com/obadx/quran-transcript/moshaf"
	"github.com/obadx/quran-transcript/operation"
	"github.com/obadx/quran-transcript/sifat"
)

var (
	multiSpace = regexp.MustCompile(`\s+`)
	trimEdges  = regexp.MustCompile(`^\s+|\s+$`)
	anySpace   = regexp.MustCompile(` `)
)

// Phonetize converts Uthmani text to phonetic form per the Moshaf-selected
// variant (spec §4.4): whitespace collapse, the fixed OperationOrder
// pipeline, sifat projection, and optional space removal. It returns the
// phonetic string, its per-phoneme-group sifat attributes, and the
// codepoint mapping from the original Uthmani input to the phonetic output.
func Phonetize(uthmani string, cfg moshaf.Config, removeSpaces bool) (string, []sifat.Output, mapping.List, error) {
	text := arabicnorm.ComposeNFC(uthmani)
	var m mapping.List

	var err error
	text, m, err = mapping.ApplyRegex(trimEdges, "", text, m, nil)
	if err != nil {
		return "", nil, nil, fmt.Errorf("phonetizer: trimming whitespace: %w", err)
	}
	text, m, err = mapping.ApplyRegex(multiSpace, " ", text, m, nil)
	if err != nil {
		return "", nil, nil, fmt.Errorf("phonetizer: collapsing whitespace: %w", err)
	}

	for _, op := range OperationOrder {
		text, m, err = op.Apply(text, cfg, m, operation.Production, nil)
		if err != nil {
			return "", nil, nil, fmt.Errorf("phonetizer: %w", err)
		}
		log.Debug().Str("operation", op.ArabicName).Str("text", text).Msg("phonetizer step")
	}

	attrs, err := sifat.Process(uthmani, text, cfg)
	if err != nil {
		return "", nil, nil, fmt.Errorf("phonetizer: sifat projection: %w", err)
	}

	if removeSpaces {
		text, m, err = mapping.ApplyRegex(anySpace, "", text, m, nil)
		if err != nil {
			return "", nil, nil, fmt.Errorf("phonetizer: removing spaces: %w", err)
		}
	}

	return text, attrs, m, nil
}
