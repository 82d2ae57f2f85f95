package db

import (
	"context"
	"fmt"
	"strings"

	"procurement/internal/logger"
	"procurement/models"
)

// languageKey is stored without the collection prefix.
const languageKey = "language"

// Language returns the saved interface language, falling back to Arabic when
// nothing valid is stored.
func (s *Storage) Language(ctx context.Context) models.Language {
	raw, err := s.readRaw(ctx, languageKey)
	if err != nil {
		s.log.Warn("failed to read language preference", logger.ErrorF(err))
		return models.DefaultLanguage
	}
	lang := models.Language(strings.Trim(strings.TrimSpace(string(raw)), `"`))
	if !models.ValidLanguage(lang) {
		return models.DefaultLanguage
	}
	return lang
}

func (s *Storage) SetLanguage(ctx context.Context, lang models.Language) error {
	const op = "db.SetLanguage"

	if !models.ValidLanguage(lang) {
		return fmt.Errorf("%s: %w", op, models.ErrInvalidLanguage)
	}
	if err := s.writeRaw(ctx, languageKey, []byte(lang)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
