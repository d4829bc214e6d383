// Package callbackdata описывает данные inline-кнопок в виде "<prefix>:<payload>"
package callbackdata

import (
	"strings"
	"time"
)

// Kind тип кнопки
type Kind int

const (
	KindSetMajor Kind = iota + 1
	KindTimetableWeekday
)

const (
	prefixSetMajor         = "set-major"
	prefixTimetableWeekday = "timetable-weekday"
)

// Data разобранные данные кнопки. Создаётся только через SetMajor, TimetableWeekday или Decode
type Data struct {
	kind    Kind
	majorID string
	date    time.Time
}

// SetMajor кнопка выбора группы
func SetMajor(majorID string) Data {
	return Data{kind: KindSetMajor, majorID: majorID}
}

// TimetableWeekday кнопка дня недели
func TimetableWeekday(date time.Time) Data {
	return Data{kind: KindTimetableWeekday, date: date}
}

func (d Data) Kind() Kind { return d.kind }

// MajorID идентификатор группы для KindSetMajor
func (d Data) MajorID() string { return d.majorID }

// Date выбранный день для KindTimetableWeekday
func (d Data) Date() time.Time { return d.date }

// Encode сериализует данные кнопки
func (d Data) Encode() string {
	switch d.kind {
	case KindSetMajor:
		return prefixSetMajor + ":" + d.majorID
	case KindTimetableWeekday:
		return prefixTimetableWeekday + ":" + d.date.Format(time.RFC3339)
	default:
		return ""
	}
}

// Decode разбирает данные кнопки. ok == false для неизвестного префикса и битого содержимого
func Decode(raw string) (Data, bool) {
	prefix, payload, found := strings.Cut(raw, ":")
	if !found {
		return Data{}, false
	}

	switch prefix {
	case prefixSetMajor:
		if payload == "" {
			return Data{}, false
		}
		return SetMajor(payload), true
	case prefixTimetableWeekday:
		date, err := time.Parse(time.RFC3339, payload)
		if err != nil {
			return Data{}, false
		}
		return TimetableWeekday(date), true
	default:
		return Data{}, false
	}
}
