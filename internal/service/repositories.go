package service

import (
	"context"
	"errors"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// ErrMajorNotFound группа с таким идентификатором не найдена
var ErrMajorNotFound = errors.New("major not found")

// UserRepository хранилище пользователей
type UserRepository interface {
	Upsert(ctx context.Context, id int64, majorID string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// MajorRepository хранилище групп
type MajorRepository interface {
	List(ctx context.Context) ([]model.Major, error)
	GetByID(ctx context.Context, id string) (*model.Major, error)
}

// TimetableRepository хранилище расписания
type TimetableRepository interface {
	Find(ctx context.Context, majorID string, week model.WeekParity, day model.DayOfWeek) ([]model.TimetableEntry, error)
}

// MajorCache кэш списка групп. ok == false означает промах
type MajorCache interface {
	Majors(ctx context.Context) (majors []model.Major, ok bool, err error)
	SetMajors(ctx context.Context, majors []model.Major) error
}
