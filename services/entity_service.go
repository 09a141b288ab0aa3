package services

import (
	"context"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
)

type ClubService interface {
	CreateClub(ctx context.Context, club *models.Club) error
	GetClub(ctx context.Context, id int) (*models.Club, error)
	ListClubs(ctx context.Context) ([]*models.Club, error)
}

type clubService struct {
	clubRepo repositories.ClubRepository
}

func NewClubService(clubRepo repositories.ClubRepository) ClubService {
	return &clubService{clubRepo: clubRepo}
}

func (s *clubService) CreateClub(ctx context.Context, club *models.Club) error {
	return s.clubRepo.Create(ctx, club)
}

func (s *clubService) GetClub(ctx context.Context, id int) (*models.Club, error) {
	return s.clubRepo.GetByID(ctx, id)
}

func (s *clubService) ListClubs(ctx context.Context) ([]*models.Club, error) {
	return s.clubRepo.List(ctx)
}

type ParticipantService interface {
	CreateParticipant(ctx context.Context, participant *models.Participant) error
	GetParticipant(ctx context.Context, id int) (*models.Participant, error)
	ListParticipants(ctx context.Context) ([]*models.Participant, error)
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
}

func NewParticipantService(participantRepo repositories.ParticipantRepository) ParticipantService {
	return &participantService{participantRepo: participantRepo}
}

func (s *participantService) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	return s.participantRepo.Create(ctx, participant)
}

func (s *participantService) GetParticipant(ctx context.Context, id int) (*models.Participant, error) {
	return s.participantRepo.GetByID(ctx, id)
}

func (s *participantService) ListParticipants(ctx context.Context) ([]*models.Participant, error) {
	return s.participantRepo.List(ctx)
}
