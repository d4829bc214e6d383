package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/controller/weekimage"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/Freeeeeet/timetable_bot/internal/service/servicetest"
)

const majorID = "CS101"

func main() {
	output := flag.String("o", "week.png", "output PNG file")
	offset := flag.Int("utc-offset", calendar.DefaultOffsetHours, "UTC offset in hours")
	flag.Parse()

	now := calendar.NewClock(*offset, nil).Now()

	// Тестовое расписание на обе чётности, чтобы картинка не зависела от текущей недели
	var entries []model.TimetableEntry
	for _, week := range []model.WeekParity{model.WeekOdd, model.WeekEven} {
		entries = append(entries,
			lesson(week, model.Monday, 8, 0, 9, 35, "Математический анализ", "Лекция", "101"),
			lesson(week, model.Monday, 9, 50, 11, 25, "Алгебра", "Практика", "204"),
			lesson(week, model.Tuesday, 11, 40, 13, 15, "Физика", "Лабораторная", "310"),
			lesson(week, model.Wednesday, 8, 0, 9, 35, "История", "Лекция", "101"),
			lesson(week, model.Thursday, 13, 45, 15, 20, "Программирование", "Практика", "415"),
			lesson(week, model.Friday, 15, 35, 17, 10, "Английский язык", "Семинар", "118"),
		)
	}
	entries = append(entries, lesson(model.WeekEven, model.Saturday, 9, 50, 11, 25, "Физкультура", "Практика", "Спортзал"))

	timetableService := service.NewTimetableService(servicetest.NewTimetable(entries...), zap.NewNop())

	week, err := timetableService.ForWeek(context.Background(), majorID, now)
	if err != nil {
		fmt.Printf("Ошибка получения расписания: %v\n", err)
		os.Exit(1)
	}

	imageData, err := weekimage.Render(majorID, week, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, imageData, 0o644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Изображение сохранено в %s\n", *output)
	fmt.Printf("Неделя: %s - %s, %s\n",
		week[0].Date.Format("02.01.2006"),
		week[len(week)-1].Date.Format("02.01.2006"),
		calendar.Parity(now),
	)
}

func lesson(week model.WeekParity, day model.DayOfWeek, h1, m1, h2, m2 int, subject, kind, room string) model.TimetableEntry {
	entry := servicetest.Entry(majorID, week, day, model.NewTimeOfDay(h1, m1), model.NewTimeOfDay(h2, m2), subject)
	entry.SubjectType = kind
	entry.Auditorium = room
	return entry
}
