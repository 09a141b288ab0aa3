package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gms-project/gms-backend/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound           = errors.New("match not found")
	ErrMatchCompetitionInvalid = errors.New("match competition conflict or invalid")
	ErrMatchEntityInvalid      = errors.New("match entity conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListByCompetition(ctx context.Context, competitionID int, round *int, status *models.MatchStatus) ([]*models.Match, error)
	UpdateSlots(ctx context.Context, exec SQLExecutor, matchID int, homeClubID, awayClubID, homeParticipantID, awayParticipantID *int) error
	UpdateSchedule(ctx context.Context, exec SQLExecutor, matchID int, scheduledTime time.Time, status models.MatchStatus) error
	UpdateResultFields(ctx context.Context, exec SQLExecutor, matchID int, status models.MatchStatus, winnerClubID, winnerParticipantID *int) error
	DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) (int64, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, competition_id, home_club_id, away_club_id, home_participant_id, away_participant_id,
	scheduled_time, status, round_number, group_number, bracket_type,
	winner_club_id, winner_participant_id, created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `
		INSERT INTO matches
			(competition_id, home_club_id, away_club_id, home_participant_id, away_participant_id,
			 scheduled_time, status, round_number, group_number, bracket_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := exec.QueryRowContext(ctx, query,
		match.CompetitionID,
		match.HomeClubID,
		match.AwayClubID,
		match.HomeParticipantID,
		match.AwayParticipantID,
		match.ScheduledTime,
		match.Status,
		match.RoundNumber,
		match.GroupNumber,
		match.BracketType,
	).Scan(&match.ID, &match.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&match.ID,
		&match.CompetitionID,
		&match.HomeClubID,
		&match.AwayClubID,
		&match.HomeParticipantID,
		&match.AwayParticipantID,
		&match.ScheduledTime,
		&match.Status,
		&match.RoundNumber,
		&match.GroupNumber,
		&match.BracketType,
		&match.WinnerClubID,
		&match.WinnerParticipantID,
		&match.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to scan match by id %d: %w", id, err)
	}
	return match, nil
}

// ListByCompetition returns matches ordered by round then id, which is the
// bracket creation order winner advancement relies on.
func (r *postgresMatchRepository) ListByCompetition(ctx context.Context, competitionID int, roundFilter *int, statusFilter *models.MatchStatus) ([]*models.Match, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + matchColumns + ` FROM matches WHERE competition_id = $1`)

	args := []interface{}{competitionID}
	placeholderIndex := 2

	if roundFilter != nil {
		queryBuilder.WriteString(" AND round_number = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *roundFilter)
		placeholderIndex++
	}

	if statusFilter != nil {
		queryBuilder.WriteString(" AND status = $")
		queryBuilder.WriteString(strconv.Itoa(placeholderIndex))
		args = append(args, *statusFilter)
	}

	queryBuilder.WriteString(" ORDER BY round_number ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.ID,
			&match.CompetitionID,
			&match.HomeClubID,
			&match.AwayClubID,
			&match.HomeParticipantID,
			&match.AwayParticipantID,
			&match.ScheduledTime,
			&match.Status,
			&match.RoundNumber,
			&match.GroupNumber,
			&match.BracketType,
			&match.WinnerClubID,
			&match.WinnerParticipantID,
			&match.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", scanErr)
		}
		matches = append(matches, &match)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during match rows iteration: %w", err)
	}
	return matches, nil
}

func (r *postgresMatchRepository) UpdateSlots(ctx context.Context, exec SQLExecutor, matchID int, homeClubID, awayClubID, homeParticipantID, awayParticipantID *int) error {
	query := `
		UPDATE matches
		SET home_club_id = $1, away_club_id = $2, home_participant_id = $3, away_participant_id = $4
		WHERE id = $5`

	result, err := exec.ExecContext(ctx, query, homeClubID, awayClubID, homeParticipantID, awayParticipantID, matchID)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateSchedule(ctx context.Context, exec SQLExecutor, matchID int, scheduledTime time.Time, status models.MatchStatus) error {
	query := `UPDATE matches SET scheduled_time = $1, status = $2 WHERE id = $3`

	result, err := exec.ExecContext(ctx, query, scheduledTime, status, matchID)
	if err != nil {
		return fmt.Errorf("UpdateSchedule: failed to execute query for match %d: %w", matchID, err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateResultFields(ctx context.Context, exec SQLExecutor, matchID int, status models.MatchStatus, winnerClubID, winnerParticipantID *int) error {
	query := `
		UPDATE matches
		SET status = $1, winner_club_id = $2, winner_participant_id = $3
		WHERE id = $4`

	result, err := exec.ExecContext(ctx, query, status, winnerClubID, winnerParticipantID, matchID)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

// DeleteByCompetition removes the whole schedule of a competition. Zero rows is
// not an error here: regeneration starts from an empty or already-cleared state.
func (r *postgresMatchRepository) DeleteByCompetition(ctx context.Context, exec SQLExecutor, competitionID int) (int64, error) {
	result, err := exec.ExecContext(ctx, `DELETE FROM matches WHERE competition_id = $1`, competitionID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches for competition %d: %w", competitionID, err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return deleted, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "matches_competition_id_fkey":
			return ErrMatchCompetitionInvalid
		case "matches_home_club_id_fkey", "matches_away_club_id_fkey",
			"matches_home_participant_id_fkey", "matches_away_participant_id_fkey",
			"matches_winner_club_id_fkey", "matches_winner_participant_id_fkey":
			return ErrMatchEntityInvalid
		}
	}
	return err
}
