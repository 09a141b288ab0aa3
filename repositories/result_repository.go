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
	ErrResultNotFound     = errors.New("match result not found")
	ErrResultMatchInvalid = errors.New("match result match conflict or invalid")
)

type ResultRepository interface {
	Upsert(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error
	ListByMatch(ctx context.Context, matchID int) ([]*models.MatchResult, error)
	ListCompletedByCompetition(ctx context.Context, competitionID int) ([]*models.MatchResult, error)
	DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error
}

type postgresResultRepository struct {
	db *sql.DB
}

func NewPostgresResultRepository(db *sql.DB) ResultRepository {
	return &postgresResultRepository{db: db}
}

// Upsert records one side's outcome for a match, replacing a previous entry
// for the same side so result corrections do not duplicate rows.
func (r *postgresResultRepository) Upsert(ctx context.Context, exec SQLExecutor, result *models.MatchResult) error {
	query := `
		INSERT INTO match_results (match_id, club_id, participant_id, outcome, score)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id, club_id, participant_id)
		DO UPDATE SET outcome = EXCLUDED.outcome, score = EXCLUDED.score
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		result.MatchID,
		result.ClubID,
		result.ParticipantID,
		result.Outcome,
		result.Score,
	).Scan(&result.ID, &result.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "match_results_match_id_fkey" {
			return ErrResultMatchInvalid
		}
		return fmt.Errorf("failed to upsert match result: %w", err)
	}
	return nil
}

func (r *postgresResultRepository) ListByMatch(ctx context.Context, matchID int) ([]*models.MatchResult, error) {
	query := `
		SELECT id, match_id, club_id, participant_id, outcome, score, created_at
		FROM match_results
		WHERE match_id = $1
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results for match %d: %w", matchID, err)
	}
	defer rows.Close()

	return r.scanResults(rows)
}

// ListCompletedByCompetition returns every result row belonging to a completed
// match of the competition, the input for a standings recompute.
func (r *postgresResultRepository) ListCompletedByCompetition(ctx context.Context, competitionID int) ([]*models.MatchResult, error) {
	query := `
		SELECT mr.id, mr.match_id, mr.club_id, mr.participant_id, mr.outcome, mr.score, mr.created_at
		FROM match_results mr
		JOIN matches m ON m.id = mr.match_id
		WHERE m.competition_id = $1 AND m.status = $2
		ORDER BY mr.match_id ASC, mr.id ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID, models.MatchStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed results for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	return r.scanResults(rows)
}

func (r *postgresResultRepository) DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) error {
	query := `
		DELETE FROM match_results
		WHERE match_id IN (SELECT id FROM matches WHERE competition_id = $1)`

	if _, err := exec.ExecContext(ctx, query, competitionID); err != nil {
		return fmt.Errorf("failed to delete results for competition %d: %w", competitionID, err)
	}
	return nil
}

func (r *postgresResultRepository) scanResults(rows *sql.Rows) ([]*models.MatchResult, error) {
	results := make([]*models.MatchResult, 0)
	for rows.Next() {
		var result models.MatchResult
		if scanErr := rows.Scan(
			&result.ID,
			&result.MatchID,
			&result.ClubID,
			&result.ParticipantID,
			&result.Outcome,
			&result.Score,
			&result.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match result row: %w", scanErr)
		}
		results = append(results, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match result rows iteration: %w", err)
	}
	return results, nil
}
