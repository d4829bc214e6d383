package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimetableRepository struct {
	*base.Repository
}

func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{Repository: base.NewRepository(pool)}
}

// Find получает занятия группы на день недели с заданной чётностью, по времени начала
func (r *TimetableRepository) Find(ctx context.Context, majorID string, week model.WeekParity, day model.DayOfWeek) ([]model.TimetableEntry, error) {
	query := `
		SELECT id, major_id, week::text, day_of_week::text, starts_at, ends_at,
		       subject_name, subject_type, auditorium, professor
		FROM timetable
		WHERE week = $1::week_type
		  AND day_of_week = $2::day_type
		  AND major_id = $3
		ORDER BY starts_at
	`

	rows, err := r.Query(ctx, query, string(week), string(day), majorID)
	if err != nil {
		return nil, fmt.Errorf("find timetable: %w", err)
	}
	defer rows.Close()

	var entries []model.TimetableEntry
	for rows.Next() {
		var (
			entry             model.TimetableEntry
			weekText, dayText string
			startsAt, endsAt  pgtype.Time
		)

		err := rows.Scan(
			&entry.ID,
			&entry.MajorID,
			&weekText,
			&dayText,
			&startsAt,
			&endsAt,
			&entry.SubjectName,
			&entry.SubjectType,
			&entry.Auditorium,
			&entry.Professor,
		)
		if err != nil {
			return nil, fmt.Errorf("scan timetable entry: %w", err)
		}

		entry.Week = model.WeekParity(weekText)
		entry.DayOfWeek = model.DayOfWeek(dayText)
		entry.StartsAt = timeOfDay(startsAt)
		entry.EndsAt = timeOfDay(endsAt)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timetable: %w", err)
	}

	return entries, nil
}

func timeOfDay(t pgtype.Time) model.TimeOfDay {
	return model.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
