package weekimage

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

func week(t *testing.T, now time.Time) []service.DayTimetable {
	t.Helper()

	var days []service.DayTimetable
	for _, date := range calendar.WeekDays(now, calendar.WeekCurrent) {
		days = append(days, service.DayTimetable{Date: date})
	}
	require.Len(t, days, 6)
	return days
}

func TestRenderProducesPNG(t *testing.T) {
	now := time.Date(2026, 10, 14, 10, 30, 0, 0, time.FixedZone("UTC+4", 4*3600))
	days := week(t, now)

	days[0].Entries = []model.TimetableEntry{
		{StartsAt: model.NewTimeOfDay(8, 0), EndsAt: model.NewTimeOfDay(9, 35), SubjectName: "Математический анализ и линейная алгебра", SubjectType: "Лекция", Auditorium: "101"},
	}
	days[2].Entries = []model.TimetableEntry{
		{StartsAt: model.NewTimeOfDay(9, 50), EndsAt: model.NewTimeOfDay(11, 25), SubjectName: "Физика", SubjectType: "Практика", Auditorium: "202"},
		{StartsAt: model.NewTimeOfDay(18, 0), EndsAt: model.NewTimeOfDay(19, 30), SubjectName: "История", SubjectType: "Семинар", Auditorium: "303"},
	}

	data, err := Render("Информатика", days, now)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestRenderEmptyWeek(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	data, err := Render("Пусто", week(t, now), now)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = Render("Пусто", nil, now)
	assert.Error(t, err)
}

func TestCalculateHourRange(t *testing.T) {
	days := []service.DayTimetable{{Entries: []model.TimetableEntry{
		{StartsAt: model.NewTimeOfDay(8, 0), EndsAt: model.NewTimeOfDay(9, 35)},
		{StartsAt: model.NewTimeOfDay(13, 30), EndsAt: model.NewTimeOfDay(15, 0)},
	}}}

	hours := calculateHourRange(days)
	assert.Equal(t, hourRange{start: 7, end: 16, total: 9}, hours)

	empty := calculateHourRange([]service.DayTimetable{{}})
	assert.Equal(t, defaultMinHour-hourPaddingTop, empty.start)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Физика", truncate("Физика", 10))
	assert.Equal(t, "Мате…", truncate("Математика", 5))
}
