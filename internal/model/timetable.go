package model

import (
	"fmt"
	"time"
)

// WeekParity чётность учебной недели
type WeekParity string

const (
	WeekOdd  WeekParity = "odd"
	WeekEven WeekParity = "even"
)

// DayOfWeek день недели, неделя начинается с понедельника
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Weekdays дни недели по порядку, с понедельника
var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOfWeekFrom переводит time.Weekday в DayOfWeek
func DayOfWeekFrom(wd time.Weekday) DayOfWeek {
	if wd == time.Sunday {
		return Sunday
	}
	return Weekdays[int(wd)-1]
}

// Weekday переводит DayOfWeek обратно в time.Weekday
func (d DayOfWeek) Weekday() time.Weekday {
	for i, day := range Weekdays {
		if day == d {
			return time.Weekday((i + 1) % 7)
		}
	}
	return time.Sunday
}

// TimeOfDay время суток без даты (смещение от полуночи)
type TimeOfDay time.Duration

// NewTimeOfDay создаёт TimeOfDay из часов и минут
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Hour возвращает час
func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

// Minute возвращает минуты
func (t TimeOfDay) Minute() int {
	return int(time.Duration(t)%time.Hour) / int(time.Minute)
}

// String форматирует время как ЧЧ:ММ
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimetableEntry одно занятие в расписании группы
type TimetableEntry struct {
	ID          int64      `json:"id"`
	MajorID     *string    `json:"major_id"`
	Week        WeekParity `json:"week"`
	DayOfWeek   DayOfWeek  `json:"day_of_week"`
	StartsAt    TimeOfDay  `json:"starts_at"`
	EndsAt      TimeOfDay  `json:"ends_at"`
	SubjectName string     `json:"subject_name"`
	SubjectType string     `json:"subject_type"`
	Auditorium  string     `json:"auditorium"`
	Professor   *string    `json:"professor"` // может отсутствовать
}
