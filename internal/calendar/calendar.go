package calendar

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// DefaultOffsetHours смещение от UTC, в котором живёт расписание
const DefaultOffsetHours = 4

// dayPickerHour время суток, которое кодируется в кнопках выбора дня
const dayPickerHour = 8

// Clock отдаёт текущее время в фиксированном смещении от UTC
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock создаёт часы со смещением offsetHours. now может быть nil, тогда используется time.Now
func NewClock(offsetHours int, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		loc: time.FixedZone(fmt.Sprintf("UTC%+d", offsetHours), offsetHours*3600),
		now: now,
	}
}

// Now возвращает текущее время в зоне часов
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Location возвращает зону часов
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Classify определяет день недели и чётность недели по ISO-номеру недели
func Classify(t time.Time) (model.DayOfWeek, model.WeekParity) {
	return model.DayOfWeekFrom(t.Weekday()), Parity(t)
}

// Parity возвращает чётность ISO-недели, в которую попадает t
func Parity(t time.Time) model.WeekParity {
	_, week := t.ISOWeek()
	if week%2 == 0 {
		return model.WeekEven
	}
	return model.WeekOdd
}

// Week выбор недели для клавиатуры дней
type Week int

const (
	WeekCurrent Week = iota
	WeekNext
)

// Monday возвращает понедельник ISO-недели, в которую попадает t, в 08:00 той же зоны.
// Следующая неделя считается как +7 дней, поэтому переход через год не требует особой обработки.
func Monday(t time.Time, w Week) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day()-daysSinceMonday, dayPickerHour, 0, 0, 0, t.Location())
	if w == WeekNext {
		monday = monday.AddDate(0, 0, 7)
	}
	return monday
}

// WeekDays возвращает учебные дни (Пн–Сб) выбранной недели
func WeekDays(t time.Time, w Week) []time.Time {
	monday := Monday(t, w)

	days := make([]time.Time, 0, 6)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		if day.Weekday() == time.Sunday {
			continue
		}
		days = append(days, day)
	}
	return days
}
