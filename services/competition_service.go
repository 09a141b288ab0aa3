package services

import (
	"context"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
)

type CompetitionService interface {
	CreateCompetition(ctx context.Context, comp *models.Competition) error
	GetCompetition(ctx context.Context, id int) (*models.Competition, error)
	ListCompetitions(ctx context.Context) ([]*models.Competition, error)
	UpdateCompetition(ctx context.Context, comp *models.Competition) error
	DeleteCompetition(ctx context.Context, id int) error
}

type competitionService struct {
	competitionRepo repositories.CompetitionRepository
	formatRepo      repositories.FormatRepository
}

func NewCompetitionService(competitionRepo repositories.CompetitionRepository, formatRepo repositories.FormatRepository) CompetitionService {
	return &competitionService{
		competitionRepo: competitionRepo,
		formatRepo:      formatRepo,
	}
}

func (s *competitionService) CreateCompetition(ctx context.Context, comp *models.Competition) error {
	if comp.ParticipantType == "" {
		comp.ParticipantType = models.ParticipantTypeClubs
	}
	if comp.Frequency == "" {
		comp.Frequency = models.FrequencyAllDays
	}
	if _, err := s.formatRepo.GetByID(ctx, comp.FormatID); err != nil {
		return err
	}
	return s.competitionRepo.Create(ctx, comp)
}

func (s *competitionService) GetCompetition(ctx context.Context, id int) (*models.Competition, error) {
	comp, err := s.competitionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if format, err := s.formatRepo.GetByID(ctx, comp.FormatID); err == nil {
		comp.Format = format
	}
	return comp, nil
}

func (s *competitionService) ListCompetitions(ctx context.Context) ([]*models.Competition, error) {
	return s.competitionRepo.List(ctx)
}

func (s *competitionService) UpdateCompetition(ctx context.Context, comp *models.Competition) error {
	if _, err := s.formatRepo.GetByID(ctx, comp.FormatID); err != nil {
		return err
	}
	return s.competitionRepo.Update(ctx, comp)
}

func (s *competitionService) DeleteCompetition(ctx context.Context, id int) error {
	return s.competitionRepo.Delete(ctx, id)
}
