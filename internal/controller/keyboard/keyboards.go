package keyboard

import (
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbackdata"
	"github.com/Freeeeeet/timetable_bot/internal/model"
)

// ButtonsPerRow максимальное количество кнопок в ряду
const ButtonsPerRow = 3

// DayPicker клавиатура с днями (Пн–Сб) текущей или следующей недели относительно now
func DayPicker(now time.Time, week calendar.Week) *models.InlineKeyboardMarkup {
	days := calendar.WeekDays(now, week)

	buttons := make([]models.InlineKeyboardButton, 0, len(days))
	for _, day := range days {
		label := calendar.WeekdayName(model.DayOfWeekFrom(day.Weekday()))
		buttons = append(buttons, Button(label, callbackdata.TimetableWeekday(day).Encode()))
	}

	return NewBuilder().Grid(ButtonsPerRow, buttons...).Build()
}

// Majors клавиатура выбора группы
func Majors(majors []model.Major) *models.InlineKeyboardMarkup {
	buttons := make([]models.InlineKeyboardButton, 0, len(majors))
	for _, major := range majors {
		buttons = append(buttons, Button(major.Title, callbackdata.SetMajor(major.ID).Encode()))
	}

	return NewBuilder().Grid(ButtonsPerRow, buttons...).Build()
}
