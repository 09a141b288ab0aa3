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
	ErrFormatNotFound   = errors.New("competition format not found")
	ErrFormatNameExists = errors.New("competition format name already exists")
)

type FormatRepository interface {
	Create(ctx context.Context, format *models.CompetitionFormat) error
	GetByID(ctx context.Context, id int) (*models.CompetitionFormat, error)
	List(ctx context.Context) ([]*models.CompetitionFormat, error)
}

type postgresFormatRepository struct {
	db *sql.DB
}

func NewPostgresFormatRepository(db *sql.DB) FormatRepository {
	return &postgresFormatRepository{db: db}
}

func (r *postgresFormatRepository) Create(ctx context.Context, format *models.CompetitionFormat) error {
	query := `
		INSERT INTO competition_formats (name, format_type, status, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		format.Name,
		format.Type,
		format.Status,
		format.Description,
	).Scan(&format.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "competition_formats_name_key" {
			return ErrFormatNameExists
		}
		return fmt.Errorf("failed to create competition format: %w", err)
	}
	return nil
}

func (r *postgresFormatRepository) GetByID(ctx context.Context, id int) (*models.CompetitionFormat, error) {
	query := `
		SELECT id, name, format_type, status, description
		FROM competition_formats
		WHERE id = $1`

	format := &models.CompetitionFormat{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&format.ID,
		&format.Name,
		&format.Type,
		&format.Status,
		&format.Description,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFormatNotFound
		}
		return nil, fmt.Errorf("failed to scan competition format by id %d: %w", id, err)
	}
	return format, nil
}

func (r *postgresFormatRepository) List(ctx context.Context) ([]*models.CompetitionFormat, error) {
	query := `
		SELECT id, name, format_type, status, description
		FROM competition_formats
		ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query competition formats: %w", err)
	}
	defer rows.Close()

	formats := make([]*models.CompetitionFormat, 0)
	for rows.Next() {
		var format models.CompetitionFormat
		if scanErr := rows.Scan(
			&format.ID,
			&format.Name,
			&format.Type,
			&format.Status,
			&format.Description,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan competition format row: %w", scanErr)
		}
		formats = append(formats, &format)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during competition format rows iteration: %w", err)
	}
	return formats, nil
}
