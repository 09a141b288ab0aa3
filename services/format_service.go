package services

import (
	"context"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
)

type FormatService interface {
	CreateFormat(ctx context.Context, format *models.CompetitionFormat) error
	GetFormat(ctx context.Context, id int) (*models.CompetitionFormat, error)
	ListFormats(ctx context.Context) ([]*models.CompetitionFormat, error)
}

type formatService struct {
	formatRepo repositories.FormatRepository
}

func NewFormatService(formatRepo repositories.FormatRepository) FormatService {
	return &formatService{formatRepo: formatRepo}
}

func (s *formatService) CreateFormat(ctx context.Context, format *models.CompetitionFormat) error {
	if format.Status == "" {
		format.Status = format.Type.DefaultStatus()
	}
	return s.formatRepo.Create(ctx, format)
}

func (s *formatService) GetFormat(ctx context.Context, id int) (*models.CompetitionFormat, error) {
	return s.formatRepo.GetByID(ctx, id)
}

func (s *formatService) ListFormats(ctx context.Context) ([]*models.CompetitionFormat, error) {
	return s.formatRepo.List(ctx)
}
