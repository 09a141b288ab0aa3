package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"github.com/gms-project/gms-backend/models"
	"github.com/gms-project/gms-backend/repositories"
)

// Points awarded per outcome.
const (
	pointsWin  = 3
	pointsDraw = 1
	pointsLoss = 0
)

type StandingsService interface {
	Recompute(ctx context.Context, competitionID int) ([]*models.Standing, error)
	List(ctx context.Context, competitionID int) ([]*models.Standing, error)
}

type standingsService struct {
	db              *sql.DB
	competitionRepo repositories.CompetitionRepository
	resultRepo      repositories.ResultRepository
	standingRepo    repositories.StandingRepository
	logger          *slog.Logger
}

func NewStandingsService(
	db *sql.DB,
	competitionRepo repositories.CompetitionRepository,
	resultRepo repositories.ResultRepository,
	standingRepo repositories.StandingRepository,
	logger *slog.Logger,
) StandingsService {
	return &standingsService{
		db:              db,
		competitionRepo: competitionRepo,
		resultRepo:      resultRepo,
		standingRepo:    standingRepo,
		logger:          logger,
	}
}

type tally struct {
	played       int
	wins         int
	draws        int
	losses       int
	goalsFor     int
	goalsAgainst int
}

// Recompute rebuilds the full standings table from the completed results of
// the competition. It is a pure function of stored results, so running it
// twice in a row yields identical rows.
func (s *standingsService) Recompute(ctx context.Context, competitionID int) ([]*models.Standing, error) {
	comp, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, err
	}
	if comp.ParticipantType != models.ParticipantTypeClubs {
		return nil, ErrStandingsClubsOnly
	}

	results, err := s.resultRepo.ListCompletedByCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	standings := computeStandings(competitionID, results)

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.standingRepo.DeleteByCompetition(ctx, tx, competitionID); err != nil {
			return err
		}
		for _, standing := range standings {
			if err := s.standingRepo.Upsert(ctx, tx, standing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("standings recomputed",
		slog.Int("competition_id", competitionID),
		slog.Int("clubs", len(standings)),
	)
	return s.standingRepo.ListByCompetition(ctx, competitionID)
}

// computeStandings folds completed results into per-club aggregates with 3/1/0
// points. Rows are keyed by club id, so the output is deterministic for a
// given result set.
func computeStandings(competitionID int, results []*models.MatchResult) []*models.Standing {
	byMatch := make(map[int][]*models.MatchResult)
	for _, result := range results {
		byMatch[result.MatchID] = append(byMatch[result.MatchID], result)
	}

	tallies := make(map[int]*tally)
	for _, rows := range byMatch {
		// A completed match contributes exactly two rows, one per side.
		if len(rows) != 2 {
			continue
		}
		for i, row := range rows {
			if row.ClubID == nil {
				continue
			}
			t, ok := tallies[*row.ClubID]
			if !ok {
				t = &tally{}
				tallies[*row.ClubID] = t
			}
			t.played++
			switch row.Outcome {
			case models.OutcomeWin:
				t.wins++
			case models.OutcomeDraw:
				t.draws++
			case models.OutcomeLoss:
				t.losses++
			}
			if row.Score != nil {
				t.goalsFor += *row.Score
			}
			opponent := rows[1-i]
			if opponent.Score != nil {
				t.goalsAgainst += *opponent.Score
			}
		}
	}

	clubIDs := make([]int, 0, len(tallies))
	for clubID := range tallies {
		clubIDs = append(clubIDs, clubID)
	}
	sort.Ints(clubIDs)

	standings := make([]*models.Standing, 0, len(clubIDs))
	for _, clubID := range clubIDs {
		t := tallies[clubID]
		standings = append(standings, &models.Standing{
			CompetitionID: competitionID,
			ClubID:        clubID,
			Points:        t.wins*pointsWin + t.draws*pointsDraw + t.losses*pointsLoss,
			Played:        t.played,
			Wins:          t.wins,
			Draws:         t.draws,
			Losses:        t.losses,
			GoalsFor:      t.goalsFor,
			GoalsAgainst:  t.goalsAgainst,
		})
	}
	return standings
}

func (s *standingsService) List(ctx context.Context, competitionID int) ([]*models.Standing, error) {
	if _, err := s.competitionRepo.GetByID(ctx, competitionID); err != nil {
		return nil, err
	}
	return s.standingRepo.ListByCompetition(ctx, competitionID)
}

func (s *standingsService) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
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
