package application

import (
	"context"
	"errors"

	"github.com/vuminhieu/spexor-client/internal/domain"
)

func (s *Service) ListTranscript(ctx context.Context, audioFileID uint) ([]domain.TranscriptSegment, error) {
	if audioFileID == 0 {
		return nil, errors.New("audio file id is required")
	}
	return s.repos.Transcripts.ListByAudioFile(ctx, audioFileID)
}

func (s *Service) CreateTranscriptSegment(ctx context.Context, value domain.NewTranscriptSegment) (domain.TranscriptSegment, error) {
	if value.AudioFileID == 0 {
		return domain.TranscriptSegment{}, errors.New("audio file id is required")
	}
	if value.EndTime < value.StartTime {
		return domain.TranscriptSegment{}, errors.New("end_time must not precede start_time")
	}
	return s.repos.Transcripts.Create(ctx, value)
}

func (s *Service) BulkCreateTranscript(ctx context.Context, audioFileID uint, values []domain.NewTranscriptSegment) (int, error) {
	if audioFileID == 0 {
		return 0, errors.New("audio file id is required")
	}
	for _, value := range values {
		if value.EndTime < value.StartTime {
			return 0, errors.New("end_time must not precede start_time")
		}
	}
	return s.repos.Transcripts.BulkCreate(ctx, audioFileID, values)
}

func (s *Service) UpdateTranscriptSegment(ctx context.Context, id uint, value domain.UpdateTranscriptSegment) (domain.TranscriptSegment, error) {
	if id == 0 {
		return domain.TranscriptSegment{}, errors.New("transcript segment id is required")
	}
	return s.repos.Transcripts.Update(ctx, id, value)
}

func (s *Service) DeleteTranscriptSegment(ctx context.Context, id uint) error {
	if id == 0 {
		return errors.New("transcript segment id is required")
	}
	return s.repos.Transcripts.Delete(ctx, id)
}
