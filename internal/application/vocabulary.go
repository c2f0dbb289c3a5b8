package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListAlertWords(ctx context.Context, category string) ([]domain.AlertWord, error) {
	return s.repos.AlertWords.List(ctx, category)
}

func (s *Service) CreateAlertWord(ctx context.Context, value domain.NewAlertWord) (domain.AlertWord, error) {
	if strings.TrimSpace(value.Keyword) == "" || strings.TrimSpace(value.Category) == "" {
		return domain.AlertWord{}, errors.New("keyword and category are required")
	}
	return s.repos.AlertWords.Create(ctx, value)
}

func (s *Service) DeleteAlertWord(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("alert word id is required")
	}
	return s.repos.AlertWords.Delete(ctx, id)
}

func (s *Service) ListReplacementWords(ctx context.Context) ([]domain.ReplacementWord, error) {
	return s.repos.ReplacementWords.List(ctx)
}

func (s *Service) CreateReplacementWord(ctx context.Context, value domain.NewReplacementWord) (domain.ReplacementWord, error) {
	if strings.TrimSpace(value.Original) == "" || strings.TrimSpace(value.Correct) == "" {
		return domain.ReplacementWord{}, errors.New("original and correct are required")
	}
	return s.repos.ReplacementWords.Create(ctx, value)
}

func (s *Service) DeleteReplacementWord(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("replacement word id is required")
	}
	return s.repos.ReplacementWords.Delete(ctx, id)
}
