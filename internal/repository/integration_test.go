package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/migrations"
)

// openTestPool подключается к TEST_DB_DSN и накатывает миграции.
// Без переменной окружения тесты пропускаются.
func openTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping repository integration tests")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := stdlib.OpenDBFromPool(pool)
	t.Cleanup(func() { db.Close() })

	goose.SetBaseFS(migrations.FS)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.ResetContext(ctx, db, "."))
	require.NoError(t, goose.UpContext(ctx, db, "."))

	_, err = pool.Exec(ctx, `
		INSERT INTO majors (id, title, enrollment_year) VALUES
			('CS101', 'Информатика', 2024),
			('MATH', 'Математика', 2023)
	`)
	require.NoError(t, err)

	return pool
}

func TestMajorRepository(t *testing.T) {
	pool := openTestPool(t)
	repo := NewMajorRepository(pool)
	ctx := context.Background()

	majors, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, majors, 2)
	assert.Equal(t, "Информатика", majors[0].Title)

	major, err := repo.GetByID(ctx, "MATH")
	require.NoError(t, err)
	require.NotNil(t, major)
	assert.Equal(t, int16(2023), major.EnrollmentYear)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryUpsert(t *testing.T) {
	pool := openTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	user, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.Upsert(ctx, 42, "CS101")
	require.NoError(t, err)
	assert.Equal(t, &model.User{ID: 42, MajorID: "CS101"}, user)

	user, err = repo.Upsert(ctx, 42, "MATH")
	require.NoError(t, err)
	assert.Equal(t, "MATH", user.MajorID)

	var count int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM users WHERE id = 42`).Scan(&count))
	assert.Equal(t, 1, count)

	_, err = repo.Upsert(ctx, 43, "unknown")
	assert.Error(t, err)
}

func TestTimetableRepositoryFind(t *testing.T) {
	pool := openTestPool(t)
	repo := NewTimetableRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO timetable (major_id, week, day_of_week, starts_at, ends_at, subject_name, subject_type, auditorium, professor) VALUES
			('CS101', 'odd', 'monday', '11:40', '13:15', 'Алгебра', 'Лекция', '101', NULL),
			('CS101', 'odd', 'monday', '09:50', '11:25', 'Физика', 'Практика', '202', 'Иванов И. И.'),
			('CS101', 'even', 'monday', '08:00', '09:35', 'История', 'Лекция', '303', NULL),
			('MATH', 'odd', 'monday', '08:00', '09:35', 'Анализ', 'Лекция', '404', NULL)
	`)
	require.NoError(t, err)

	entries, err := repo.Find(ctx, "CS101", model.WeekOdd, model.Monday)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Физика", entries[0].SubjectName)
	assert.Equal(t, model.NewTimeOfDay(9, 50), entries[0].StartsAt)
	assert.Equal(t, model.NewTimeOfDay(11, 25), entries[0].EndsAt)
	require.NotNil(t, entries[0].Professor)
	assert.Equal(t, "Иванов И. И.", *entries[0].Professor)
	assert.Equal(t, model.WeekOdd, entries[0].Week)
	assert.Equal(t, model.Monday, entries[0].DayOfWeek)

	assert.Equal(t, "Алгебра", entries[1].SubjectName)
	assert.Nil(t, entries[1].Professor)

	none, err := repo.Find(ctx, "CS101", model.WeekEven, model.Tuesday)
	require.NoError(t, err)
	assert.Empty(t, none)
}
