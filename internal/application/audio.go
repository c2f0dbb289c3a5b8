package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListAudioFiles(ctx context.Context, caseID uint) ([]domain.AudioFile, error) {
	if caseID == 0 {
		return nil, errors.New("case id is required")
	}
	return s.repos.AudioFiles.ListByCase(ctx, caseID)
}

func (s *Service) GetAudioFile(ctx context.Context, id uint) (domain.AudioFile, error) {
	if id == 0 {
		return domain.AudioFile{}, errors.New("audio file id is required")
	}
	return s.repos.AudioFiles.Get(ctx, id)
}

func (s *Service) CreateAudioFile(ctx context.Context, value domain.NewAudioFile) (domain.AudioFile, error) {
	if value.CaseID == 0 || strings.TrimSpace(value.FileName) == "" || strings.TrimSpace(value.FilePath) == "" {
		return domain.AudioFile{}, errors.New("case_id, file_name and file_path are required")
	}
	return s.repos.AudioFiles.Create(ctx, value)
}

func (s *Service) UpdateAudioFile(ctx context.Context, id uint, value domain.UpdateAudioFile) (domain.AudioFile, error) {
	if id == 0 {
		return domain.AudioFile{}, errors.New("audio file id is required")
	}
	return s.repos.AudioFiles.Update(ctx, id, value)
}

func (s *Service) DeleteAudioFile(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("audio file id is required")
	}
	return s.repos.AudioFiles.Delete(ctx, id)
}
