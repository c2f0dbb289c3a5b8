package application

import (
	"context"
	"errors"
	"strings"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	return s.repos.Speakers.List(ctx)
}

func (s *Service) GetSpeaker(ctx context.Context, id uint) (domain.Speaker, error) {
	if id == 0 {
		return domain.Speaker{}, errors.New("speaker id is required")
	}
	return s.repos.Speakers.Get(ctx, id)
}

func (s *Service) CreateSpeaker(ctx context.Context, value domain.NewSpeaker) (domain.Speaker, error) {
	if strings.TrimSpace(value.Name) == "" {
		return domain.Speaker{}, errors.New("speaker name is required")
	}
	return s.repos.Speakers.Create(ctx, value)
}

func (s *Service) UpdateSpeaker(ctx context.Context, id uint, value domain.UpdateSpeaker) (domain.Speaker, error) {
	if id == 0 {
		return domain.Speaker{}, errors.New("speaker id is required")
	}
	return s.repos.Speakers.Update(ctx, id, value)
}

func (s *Service) DeleteSpeaker(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("speaker id is required")
	}
	return s.repos.Speakers.Delete(ctx, id)
}

func (s *Service) ListVoiceSamples(ctx context.Context, speakerID uint) ([]domain.VoiceSample, error) {
	if speakerID == 0 {
		return nil, errors.New("speaker id is required")
	}
	return s.repos.VoiceSamples.ListBySpeaker(ctx, speakerID)
}

func (s *Service) CreateVoiceSample(ctx context.Context, value domain.NewVoiceSample) (domain.VoiceSample, error) {
	if value.SpeakerID == 0 || strings.TrimSpace(value.FileName) == "" || strings.TrimSpace(value.FilePath) == "" {
		return domain.VoiceSample{}, errors.New("speaker_id, file_name and file_path are required")
	}
	return s.repos.VoiceSamples.Create(ctx, value)
}

func (s *Service) DeleteVoiceSample(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("voice sample id is required")
	}
	return s.repos.VoiceSamples.Delete(ctx, id)
}
