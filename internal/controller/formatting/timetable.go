package formatting

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// NothingFound текст для дня без занятий
const NothingFound = "<i>Ничего не найдено.</i>"

const indent = "    "

var monthsGenitive = map[time.Month]string{
	time.January:   "января",
	time.February:  "февраля",
	time.March:     "марта",
	time.April:     "апреля",
	time.May:       "мая",
	time.June:      "июня",
	time.July:      "июля",
	time.August:    "августа",
	time.September: "сентября",
	time.October:   "октября",
	time.November:  "ноября",
	time.December:  "декабря",
}

// FormatDayMonth форматирует дату как "5 октября"
func FormatDayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthsGenitive[t.Month()])
}

// FormatTimeRange форматирует диапазон времени
func FormatTimeRange(start, end model.TimeOfDay) string {
	return fmt.Sprintf("%s – %s", start, end)
}

// FormatEntry форматирует одно занятие
func FormatEntry(entry model.TimetableEntry) string {
	var sb strings.Builder

	sb.WriteString(FormatTimeRange(entry.StartsAt, entry.EndsAt))
	sb.WriteString("\n<b>" + html.EscapeString(entry.SubjectName) + "</b>")
	sb.WriteString("\n" + indent + html.EscapeString(entry.SubjectType))
	if entry.Professor != nil {
		sb.WriteString("\n" + indent + html.EscapeString(*entry.Professor))
	}
	sb.WriteString("\n" + indent + html.EscapeString(entry.Auditorium))

	return sb.String()
}

// FormatTimetable форматирует расписание на день date в HTML
func FormatTimetable(entries []model.TimetableEntry, date time.Time) string {
	if len(entries) == 0 {
		return NothingFound
	}

	paragraphs := make([]string, 0, len(entries))
	for _, entry := range entries {
		paragraphs = append(paragraphs, FormatEntry(entry))
	}

	return fmt.Sprintf("<b>Расписание занятий на %s</b>\n\n\n%s",
		FormatDayMonth(date),
		strings.Join(paragraphs, "\n\n"),
	)
}
