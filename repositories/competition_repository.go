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
	ErrCompetitionNotFound      = errors.New("competition not found")
	ErrCompetitionFormatInvalid = errors.New("competition format conflict or invalid")
	ErrCompetitionNameExists    = errors.New("competition name already exists")
)

type CompetitionRepository interface {
	Create(ctx context.Context, comp *models.Competition) error
	GetByID(ctx context.Context, id int) (*models.Competition, error)
	List(ctx context.Context) ([]*models.Competition, error)
	Update(ctx context.Context, comp *models.Competition) error
	Delete(ctx context.Context, id int) error

	CountEnrolled(ctx context.Context, competitionID int, pt models.ParticipantType) (int, error)
	ListEnrolledClubs(ctx context.Context, competitionID int) ([]*models.Club, error)
	ListEnrolledParticipants(ctx context.Context, competitionID int) ([]*models.Participant, error)
	ListCustomDays(ctx context.Context, competitionID int) ([]models.CustomDay, error)
}

type postgresCompetitionRepository struct {
	db *sql.DB
}

func NewPostgresCompetitionRepository(db *sql.DB) CompetitionRepository {
	return &postgresCompetitionRepository{db: db}
}

const competitionColumns = `
	id, name, format_id, participant_type, number_of_clubs, number_of_participants,
	is_league_with_groups, number_of_groups, clubs_per_group, frequency_day,
	start_date, end_date, sport_type, has_third_place_match, created_at`

func (r *postgresCompetitionRepository) Create(ctx context.Context, comp *models.Competition) error {
	query := `
		INSERT INTO competitions
			(name, format_id, participant_type, number_of_clubs, number_of_participants,
			 is_league_with_groups, number_of_groups, clubs_per_group, frequency_day,
			 start_date, end_date, sport_type, has_third_place_match)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		comp.Name,
		comp.FormatID,
		comp.ParticipantType,
		comp.PlannedClubs,
		comp.PlannedParticipants,
		comp.IsLeagueWithGroups,
		comp.NumberOfGroups,
		comp.ClubsPerGroup,
		comp.Frequency,
		comp.StartDate,
		comp.EndDate,
		comp.SportType,
		comp.HasThirdPlaceMatch,
	).Scan(&comp.ID, &comp.CreatedAt)

	return r.handleCompetitionError(err)
}

func (r *postgresCompetitionRepository) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions WHERE id = $1`

	comp := &models.Competition{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comp.ID,
		&comp.Name,
		&comp.FormatID,
		&comp.ParticipantType,
		&comp.PlannedClubs,
		&comp.PlannedParticipants,
		&comp.IsLeagueWithGroups,
		&comp.NumberOfGroups,
		&comp.ClubsPerGroup,
		&comp.Frequency,
		&comp.StartDate,
		&comp.EndDate,
		&comp.SportType,
		&comp.HasThirdPlaceMatch,
		&comp.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCompetitionNotFound
		}
		return nil, fmt.Errorf("failed to scan competition by id %d: %w", id, err)
	}
	return comp, nil
}

func (r *postgresCompetitionRepository) List(ctx context.Context) ([]*models.Competition, error) {
	query := `SELECT ` + competitionColumns + ` FROM competitions ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitions: %w", err)
	}
	defer rows.Close()

	comps := make([]*models.Competition, 0)
	for rows.Next() {
		var comp models.Competition
		if scanErr := rows.Scan(
			&comp.ID,
			&comp.Name,
			&comp.FormatID,
			&comp.ParticipantType,
			&comp.PlannedClubs,
			&comp.PlannedParticipants,
			&comp.IsLeagueWithGroups,
			&comp.NumberOfGroups,
			&comp.ClubsPerGroup,
			&comp.Frequency,
			&comp.StartDate,
			&comp.EndDate,
			&comp.SportType,
			&comp.HasThirdPlaceMatch,
			&comp.CreatedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan competition row: %w", scanErr)
		}
		comps = append(comps, &comp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during competition rows iteration: %w", err)
	}
	return comps, nil
}

func (r *postgresCompetitionRepository) Update(ctx context.Context, comp *models.Competition) error {
	query := `
		UPDATE competitions
		SET name = $1, format_id = $2, participant_type = $3, number_of_clubs = $4,
		    number_of_participants = $5, is_league_with_groups = $6, number_of_groups = $7,
		    clubs_per_group = $8, frequency_day = $9, start_date = $10, end_date = $11,
		    sport_type = $12, has_third_place_match = $13
		WHERE id = $14`

	result, err := r.db.ExecContext(ctx, query,
		comp.Name,
		comp.FormatID,
		comp.ParticipantType,
		comp.PlannedClubs,
		comp.PlannedParticipants,
		comp.IsLeagueWithGroups,
		comp.NumberOfGroups,
		comp.ClubsPerGroup,
		comp.Frequency,
		comp.StartDate,
		comp.EndDate,
		comp.SportType,
		comp.HasThirdPlaceMatch,
		comp.ID,
	)
	if err != nil {
		return r.handleCompetitionError(err)
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

func (r *postgresCompetitionRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM competitions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrCompetitionNotFound)
}

// CountEnrolled counts entities currently enrolled in the competition for the
// active participant mode.
func (r *postgresCompetitionRepository) CountEnrolled(ctx context.Context, competitionID int, pt models.ParticipantType) (int, error) {
	table := "competition_clubs"
	if pt == models.ParticipantTypeParticipants {
		table = "competition_participants"
	}
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE competition_id = $1`, table)

	var count int
	if err := r.db.QueryRowContext(ctx, query, competitionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count enrolled entities for competition %d: %w", competitionID, err)
	}
	return count, nil
}

func (r *postgresCompetitionRepository) ListEnrolledClubs(ctx context.Context, competitionID int) ([]*models.Club, error) {
	query := `
		SELECT c.id, c.name, c.city, c.created_at
		FROM clubs c
		JOIN competition_clubs cc ON cc.club_id = c.id
		WHERE cc.competition_id = $1
		ORDER BY c.name ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled clubs for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	clubs := make([]*models.Club, 0)
	for rows.Next() {
		var club models.Club
		if scanErr := rows.Scan(&club.ID, &club.Name, &club.City, &club.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan enrolled club row: %w", scanErr)
		}
		clubs = append(clubs, &club)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during enrolled club rows iteration: %w", err)
	}
	return clubs, nil
}

func (r *postgresCompetitionRepository) ListEnrolledParticipants(ctx context.Context, competitionID int) ([]*models.Participant, error) {
	query := `
		SELECT p.id, p.first_name, p.last_name, p.club_id, p.created_at
		FROM participants p
		JOIN competition_participants cp ON cp.participant_id = p.id
		WHERE cp.competition_id = $1
		ORDER BY p.first_name ASC, p.last_name ASC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled participants for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	participants := make([]*models.Participant, 0)
	for rows.Next() {
		var p models.Participant
		if scanErr := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.ClubID, &p.CreatedAt); scanErr != nil {
			return nil, fmt.Errorf("failed to scan enrolled participant row: %w", scanErr)
		}
		participants = append(participants, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during enrolled participant rows iteration: %w", err)
	}
	return participants, nil
}

func (r *postgresCompetitionRepository) ListCustomDays(ctx context.Context, competitionID int) ([]models.CustomDay, error) {
	query := `
		SELECT id, competition_id, date, description
		FROM competition_custom_days
		WHERE competition_id = $1
		ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query, competitionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query custom days for competition %d: %w", competitionID, err)
	}
	defer rows.Close()

	days := make([]models.CustomDay, 0)
	for rows.Next() {
		var day models.CustomDay
		if scanErr := rows.Scan(&day.ID, &day.CompetitionID, &day.Date, &day.Description); scanErr != nil {
			return nil, fmt.Errorf("failed to scan custom day row: %w", scanErr)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during custom day rows iteration: %w", err)
	}
	return days, nil
}

func (r *postgresCompetitionRepository) handleCompetitionError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Constraint {
		case "competitions_format_id_fkey":
			return ErrCompetitionFormatInvalid
		case "competitions_name_key":
			return ErrCompetitionNameExists
		}
	}
	return err
}
