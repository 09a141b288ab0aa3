package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
	"github.com/gms-project/gms-backend/schedule"
)

// ResultInput carries the final score of a match, home side first.
type ResultInput struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

type MatchService interface {
	GetMatch(ctx context.Context, matchID int) (*models.Match, error)
	SubmitResult(ctx context.Context, matchID int, input ResultInput) (*models.Match, error)
	PostponeMatch(ctx context.Context, matchID int) (*models.Match, error)
}

type matchService struct {
	db              *sql.DB
	competitionRepo repositories.CompetitionRepository
	formatRepo      repositories.FormatRepository
	matchRepo       repositories.MatchRepository
	resultRepo      repositories.ResultRepository
	standings       StandingsService
	hub             *schedule.Hub
	logger          *slog.Logger
}

func NewMatchService(
	db *sql.DB,
	competitionRepo repositories.CompetitionRepository,
	formatRepo repositories.FormatRepository,
	matchRepo repositories.MatchRepository,
	resultRepo repositories.ResultRepository,
	standings StandingsService,
	hub *schedule.Hub,
	logger *slog.Logger,
) MatchService {
	return &matchService{
		db:              db,
		competitionRepo: competitionRepo,
		formatRepo:      formatRepo,
		matchRepo:       matchRepo,
		resultRepo:      resultRepo,
		standings:       standings,
		hub:             hub,
		logger:          logger,
	}
}

func (s *matchService) GetMatch(ctx context.Context, matchID int) (*models.Match, error) {
	return s.matchRepo.GetByID(ctx, matchID)
}

// SubmitResult records both sides' outcomes, completes the match and, for
// single elimination, pushes the winner into the next round's first open slot.
// League family competitions get their standings recomputed afterwards.
func (s *matchService) SubmitResult(ctx context.Context, matchID int, input ResultInput) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status == models.MatchStatusCompleted {
		return nil, ErrMatchAlreadyDecided
	}

	comp, err := s.competitionRepo.GetByID(ctx, match.CompetitionID)
	if err != nil {
		return nil, err
	}
	format, err := s.formatRepo.GetByID(ctx, comp.FormatID)
	if err != nil {
		return nil, err
	}

	homeID := match.HomeEntityID(comp.ParticipantType)
	awayID := match.AwayEntityID(comp.ParticipantType)
	if homeID == nil || awayID == nil {
		return nil, ErrMatchSlotsIncomplete
	}

	draw := input.HomeScore == input.AwayScore
	if draw && format.Type.IsElimination() {
		return nil, ErrEliminationDraw
	}

	homeOutcome, awayOutcome := outcomes(input)
	var winnerID *int
	switch {
	case input.HomeScore > input.AwayScore:
		winnerID = homeID
	case input.AwayScore > input.HomeScore:
		winnerID = awayID
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		homeResult := resultRow(match.ID, comp.ParticipantType, homeID, homeOutcome, input.HomeScore)
		if err := s.resultRepo.Upsert(ctx, tx, homeResult); err != nil {
			return err
		}
		awayResult := resultRow(match.ID, comp.ParticipantType, awayID, awayOutcome, input.AwayScore)
		if err := s.resultRepo.Upsert(ctx, tx, awayResult); err != nil {
			return err
		}

		var winnerClubID, winnerParticipantID *int
		if winnerID != nil {
			if comp.ParticipantType == models.ParticipantTypeParticipants {
				winnerParticipantID = winnerID
			} else {
				winnerClubID = winnerID
			}
		}
		if err := s.matchRepo.UpdateResultFields(ctx, tx, match.ID, models.MatchStatusCompleted, winnerClubID, winnerParticipantID); err != nil {
			return err
		}
		match.Status = models.MatchStatusCompleted
		match.WinnerClubID = winnerClubID
		match.WinnerParticipantID = winnerParticipantID

		if winnerID != nil && format.Type == models.FormatSingleElimination {
			return s.advanceWinner(ctx, tx, comp, match, *winnerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast(comp.ID, schedule.EventMatchUpdated, match)

	if format.Type.IsLeagueFamily() && comp.ParticipantType == models.ParticipantTypeClubs {
		if _, err := s.standings.Recompute(ctx, comp.ID); err != nil {
			return nil, fmt.Errorf("result recorded but standings recompute failed: %w", err)
		}
		s.broadcast(comp.ID, schedule.EventStandingsUpdated, nil)
	}

	return match, nil
}

func (s *matchService) PostponeMatch(ctx context.Context, matchID int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status == models.MatchStatusCompleted {
		return nil, ErrMatchAlreadyDecided
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		return s.matchRepo.UpdateResultFields(ctx, tx, match.ID, models.MatchStatusPostponed, match.WinnerClubID, match.WinnerParticipantID)
	})
	if err != nil {
		return nil, err
	}
	match.Status = models.MatchStatusPostponed

	s.broadcast(match.CompetitionID, schedule.EventMatchUpdated, match)
	return match, nil
}

// advanceWinner places the winner into the first open slot of the next round,
// home before away, scanning matches in creation order. The final has no next
// round, which is a normal no-op.
func (s *matchService) advanceWinner(ctx context.Context, tx *sql.Tx, comp *models.Competition, match *models.Match, winnerID int) error {
	if match.RoundNumber == nil {
		return nil
	}
	nextRound := *match.RoundNumber + 1

	candidates, err := s.matchRepo.ListByCompetition(ctx, comp.ID, &nextRound, nil)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	target, fillHome := pickAdvancementSlot(candidates, comp.ParticipantType)
	if target == nil {
		s.logger.Warn("no open slot for winner in next round",
			slog.Int("competition_id", comp.ID),
			slog.Int("match_id", match.ID),
			slog.Int("round", nextRound),
		)
		return nil
	}

	if fillHome {
		return s.fillSlot(ctx, tx, comp, target, &winnerID, target.AwayEntityID(comp.ParticipantType), true)
	}
	return s.fillSlot(ctx, tx, comp, target, target.HomeEntityID(comp.ParticipantType), &winnerID, false)
}

// pickAdvancementSlot finds where the next winner goes: the first match with an
// open home slot in creation order, otherwise the first with an open away slot.
func pickAdvancementSlot(candidates []*models.Match, pt models.ParticipantType) (*models.Match, bool) {
	for _, candidate := range candidates {
		if candidate.HomeEntityID(pt) == nil {
			return candidate, true
		}
	}
	for _, candidate := range candidates {
		if candidate.AwayEntityID(pt) == nil {
			return candidate, false
		}
	}
	return nil, false
}

func (s *matchService) fillSlot(ctx context.Context, tx *sql.Tx, comp *models.Competition, target *models.Match, homeID, awayID *int, filledHome bool) error {
	var err error
	if comp.ParticipantType == models.ParticipantTypeParticipants {
		err = s.matchRepo.UpdateSlots(ctx, tx, target.ID, nil, nil, homeID, awayID)
	} else {
		err = s.matchRepo.UpdateSlots(ctx, tx, target.ID, homeID, awayID, nil, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to advance winner into match %d: %w", target.ID, err)
	}

	s.broadcast(comp.ID, schedule.EventWinnerAdvanced, map[string]interface{}{
		"match_id":    target.ID,
		"filled_home": filledHome,
	})
	return nil
}

func (s *matchService) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("transaction rollback failed", slog.Any("error", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *matchService) broadcast(competitionID int, event string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(strconv.Itoa(competitionID), schedule.Message{Type: event, Payload: payload})
}

func outcomes(input ResultInput) (models.Outcome, models.Outcome) {
	switch {
	case input.HomeScore > input.AwayScore:
		return models.OutcomeWin, models.OutcomeLoss
	case input.AwayScore > input.HomeScore:
		return models.OutcomeLoss, models.OutcomeWin
	default:
		return models.OutcomeDraw, models.OutcomeDraw
	}
}

func resultRow(matchID int, pt models.ParticipantType, entityID *int, outcome models.Outcome, score int) *models.MatchResult {
	result := &models.MatchResult{
		MatchID: matchID,
		Outcome: outcome,
		Score:   &score,
	}
	if pt == models.ParticipantTypeParticipants {
		result.ParticipantID = entityID
	} else {
		result.ClubID = entityID
	}
	return result
}
