package translate

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Augmenter turns a description into a bilingual composite when
// translation is enabled: the translated text first, then the
// original in italics. Provider failures never escape this type; they
// are logged and the original text is kept.
type Augmenter struct {
	translator Translator
	enabled    bool
	logger     zerolog.Logger
}

// NewAugmenter builds an Augmenter. A nil translator behaves as if
// augmentation were disabled.
func NewAugmenter(translator Translator, enabled bool, logger zerolog.Logger) *Augmenter {
	return &Augmenter{
		translator: translator,
		enabled:    enabled,
		logger:     logger,
	}
}

// Describe returns text unchanged when augmentation is off or the
// text is blank; no provider call is made in either case.
func (a *Augmenter) Describe(ctx context.Context, text string) string {
	if !a.enabled || a.translator == nil || strings.TrimSpace(text) == "" {
		return text
	}

	translated, err := a.translator.Translate(ctx, text)
	if err != nil {
		a.logger.Warn().Err(err).Msg("translation failed, keeping original description")
		return text
	}

	return translated + "<br><i>" + text + "</i>"
}
