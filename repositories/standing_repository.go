package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gms-project/gms-backend/models"
	"github.com/lib/pq"
)

var (
	ErrStandingNotFound    = errors.New("standing not found")
	ErrStandingClubInvalid = errors.New("standing club conflict or invalid")
)

type StandingRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, standing *models.Standing) error
	ListByCompetition(ctx context.Context, competitionID int) ([]*models.Standing, error)
	DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error
}

type postgresStandingRepository struct {
	db *sql.DB
}

func NewPostgresStandingRepository(db *sql.DB) StandingRepository {
	return &postgresStandingRepository{db: db}
}

func (r *postgresStandingRepository) Upsert(ctx context.Context, exec SQLExecutor, standing *models.Standing) error {
	query := `
		INSERT INTO standings
			(competition_id, club_id, points, played, wins, draws, losses, goals_for, goals_against, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (competition_id, club_id)
		DO UPDATE SET
			points = EXCLUDED.points,
			played = EXCLUDED.played,
			wins = EXCLUDED.wins,
			draws = EXCLUDED.draws,
			losses = EXCLUDED.losses,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			updated_at = NOW()
		RETURNING id, updated_at`

	err := exec.QueryRowContext(ctx, query,
		standing.CompetitionID,
		standing.ClubID,
		standing.Points,
		standing.Played,
		standing.Wins,
		standing.Draws,
		standing.Losses,
		standing.GoalsFor,
		standing.GoalsAgainst,
	).Scan(&standing.ID, &standing.UpdatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "standings_club_id_fkey":
				return ErrStandingClubInvalid
			case "standings_competition_id_fkey":
				return ErrCompetitionNotFound
			}
		}
		return fmt.Errorf("failed to upsert standing: %w", err)
	}
	return nil
}

// ListByCompetition returns standings in table order: points, goal difference,
// goals scored, then club id for a stable tail.
func (r *postgresStandingRepository) ListByCompetition(ctx context.Context, competitionID int) ([]*models.Standing, error) {
	query := `
		SELECT id, competition_id, club_id, points, played, wins, draws, losses,
		       goals_for, goals_against, updated_at
		FROM standings
		WHERE competition_id = $1
		ORDER BY points DESC, (goals_for - goals_against) DESC, goals_for DESC, club_id ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	standings := make([]*models.Standing, 0)
	for rows.Next() {
		var standing models.Standing
		if scanErr := rows.Scan(
			&standing.ID,
			&standing.CompetitionID,
			&standing.ClubID,
			&standing.Points,
			&standing.Played,
			&standing.Wins,
			&standing.Draws,
			&standing.Losses,
			&standing.GoalsFor,
			&standing.GoalsAgainst,
			&standing.UpdatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan standing row: %w", scanErr)
		}
		standings = append(standings, &standing)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during standing rows iteration: %w", err)
	}
	return standings, nil
}

func (r *postgresStandingRepository) DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM standings WHERE competition_id = $1`, competitionID); err != nil {
		return fmt.Errorf("failed to delete standings for competition %d: %w", competitionID, err)
	}
	return nil
}
