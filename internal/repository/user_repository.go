package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	*base.Repository
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository: base.NewRepository(pool)}
}

// Upsert создаёт пользователя или меняет его группу
func (r *UserRepository) Upsert(ctx context.Context, id int64, majorID string) (*model.User, error) {
	query := `
		INSERT INTO users (id, major_id)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET major_id = EXCLUDED.major_id
		RETURNING id, major_id
	`

	var user model.User
	err := r.QueryRow(ctx, query, id, majorID).Scan(&user.ID, &user.MajorID)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	return &user, nil
}

// GetByID получает пользователя по Telegram ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `
		SELECT id, major_id
		FROM users
		WHERE id = $1
	`

	var user model.User
	err := r.QueryRow(ctx, query, id).Scan(&user.ID, &user.MajorID)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil // Пользователь ещё не выбрал группу
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	return &user, nil
}
