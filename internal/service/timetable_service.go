package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

type TimetableService struct {
	timetableRepo TimetableRepository
	logger        *zap.Logger
}

func NewTimetableService(timetableRepo TimetableRepository, logger *zap.Logger) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		logger:        logger,
	}
}

// DayTimetable занятия одного дня
type DayTimetable struct {
	Date    time.Time
	Entries []model.TimetableEntry
}

// ForDay возвращает занятия группы на день t, упорядоченные по времени начала
func (s *TimetableService) ForDay(ctx context.Context, majorID string, t time.Time) ([]model.TimetableEntry, error) {
	day, week := calendar.Classify(t)

	entries, err := s.timetableRepo.Find(ctx, majorID, week, day)
	if err != nil {
		return nil, fmt.Errorf("find timetable: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartsAt < entries[j].StartsAt
	})

	s.logger.Debug("Timetable resolved",
		zap.String("major_id", majorID),
		zap.String("day", string(day)),
		zap.String("week", string(week)),
		zap.Int("entries", len(entries)),
	)

	return entries, nil
}

// ForWeek возвращает занятия группы с понедельника по субботу недели, в которую попадает t
func (s *TimetableService) ForWeek(ctx context.Context, majorID string, t time.Time) ([]DayTimetable, error) {
	days := calendar.WeekDays(t, calendar.WeekCurrent)

	week := make([]DayTimetable, 0, len(days))
	for _, date := range days {
		entries, err := s.ForDay(ctx, majorID, date)
		if err != nil {
			return nil, err
		}
		week = append(week, DayTimetable{Date: date, Entries: entries})
	}

	return week, nil
}
