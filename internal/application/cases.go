package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListCases(ctx context.Context) ([]domain.Case, error) {
	return s.repos.Cases.List(ctx)
}

func (s *Service) GetCase(ctx context.Context, id uint) (domain.Case, error) {
	if id == 0 {
		return domain.Case{}, errors.New("case id is required")
	}
	return s.repos.Cases.Get(ctx, id)
}

func (s *Service) CreateCase(ctx context.Context, value domain.NewCase) (domain.Case, error) {
	if strings.TrimSpace(value.Code) == "" || strings.TrimSpace(value.Title) == "" {
		return domain.Case{}, errors.New("code and title are required")
	}
	return s.repos.Cases.Create(ctx, value)
}

func (s *Service) UpdateCase(ctx context.Context, id uint, value domain.UpdateCase) (domain.Case, error) {
	if id == 0 {
		return domain.Case{}, errors.New("case id is required")
	}
	return s.repos.Cases.Update(ctx, id, value)
}

func (s *Service) DeleteCase(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("case id is required")
	}
	return s.repos.Cases.Delete(ctx, id)
}
