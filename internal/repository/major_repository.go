package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MajorRepository struct {
	*base.Repository
}

func NewMajorRepository(pool *pgxpool.Pool) *MajorRepository {
	return &MajorRepository{Repository: base.NewRepository(pool)}
}

// List получает все группы
func (r *MajorRepository) List(ctx context.Context) ([]model.Major, error) {
	query := `
		SELECT id, title, enrollment_year
		FROM majors
		ORDER BY title
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list majors: %w", err)
	}
	defer rows.Close()

	var majors []model.Major
	for rows.Next() {
		var major model.Major
		if err := rows.Scan(&major.ID, &major.Title, &major.EnrollmentYear); err != nil {
			return nil, fmt.Errorf("scan major: %w", err)
		}
		majors = append(majors, major)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate majors: %w", err)
	}

	return majors, nil
}

// GetByID получает группу по ID
func (r *MajorRepository) GetByID(ctx context.Context, id string) (*model.Major, error) {
	query := `
		SELECT id, title, enrollment_year
		FROM majors
		WHERE id = $1
	`

	var major model.Major
	err := r.QueryRow(ctx, query, id).Scan(&major.ID, &major.Title, &major.EnrollmentYear)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get major by id: %w", err)
	}

	return &major, nil
}
