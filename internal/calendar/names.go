package calendar

import "github.com/Freeeeeet/timetable_bot/internal/model"

var weekdayNames = map[model.DayOfWeek]string{
	model.Monday:    "Понедельник",
	model.Tuesday:   "Вторник",
	model.Wednesday: "Среда",
	model.Thursday:  "Четверг",
	model.Friday:    "Пятница",
	model.Saturday:  "Суббота",
	model.Sunday:    "Воскресенье",
}

// WeekdayName возвращает название дня недели на русском
func WeekdayName(day model.DayOfWeek) string {
	if name, ok := weekdayNames[day]; ok {
		return name
	}
	return "Неизвестно"
}
