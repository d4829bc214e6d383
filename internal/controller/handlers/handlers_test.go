package handlers

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbackdata"
	"github.com/Freeeeeet/timetable_bot/internal/controller/telegramtest"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/Freeeeeet/timetable_bot/internal/service/servicetest"
)

const ownerID = 1000

type fixture struct {
	users     *servicetest.Users
	majors    *servicetest.Majors
	timetable *servicetest.Timetable
	server    *telegramtest.Server
	handlers  *Handlers
}

// 2026-10-12 10:00 +04:00, понедельник чётной недели
var mondayMorning = time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, users ...model.User) *fixture {
	t.Helper()

	f := &fixture{
		users: servicetest.NewUsers(users...),
		majors: servicetest.NewMajors(
			model.Major{ID: "CS101", Title: "Информатика"},
			model.Major{ID: "MATH", Title: "Математика"},
		),
		timetable: servicetest.NewTimetable(
			servicetest.Entry("CS101", model.WeekEven, model.Monday, model.NewTimeOfDay(9, 50), model.NewTimeOfDay(11, 25), "Физика"),
			servicetest.Entry("CS101", model.WeekEven, model.Monday, model.NewTimeOfDay(8, 0), model.NewTimeOfDay(9, 35), "Алгебра"),
		),
		server: telegramtest.NewServer(t),
	}

	logger := zap.NewNop()
	f.handlers = NewHandlers(
		service.NewUserService(f.users, f.majors, logger),
		service.NewMajorService(f.majors, nil, logger),
		service.NewTimetableService(f.timetable, logger),
		calendar.NewClock(calendar.DefaultOffsetHours, func() time.Time { return mondayMorning }),
		func(userID int64) bool { return userID == ownerID },
		logger,
	)
	return f
}

func TestTodayWithoutMajorOnlyPrompts(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handlers.RequireMajor(f.handlers.HandleToday)(t.Context(), b, telegramtest.MessageUpdate(42, "/today"))

	requests := f.server.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "sendMessage", requests[0].Method)
	assert.Equal(t, "Вы должны указать свою группу!\nИспользуйте /setmajor", requests[0].Fields["text"])
	assert.Zero(t, f.timetable.CallCount())
}

func TestTodayWithMajor(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	f.handlers.RequireMajor(f.handlers.HandleToday)(t.Context(), b, telegramtest.MessageUpdate(42, "/today"))

	require.Len(t, f.timetable.Calls, 1)
	assert.Equal(t, servicetest.FindCall{MajorID: "CS101", Week: model.WeekEven, Day: model.Monday}, f.timetable.Calls[0])

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, "HTML", sent[0].Fields["parse_mode"])
	assert.Equal(t,
		"<b>Расписание занятий на 12 октября</b>\n\n\n"+
			"08:00 – 09:35\n<b>Алгебра</b>\n    Лекция\n    101\n\n"+
			"09:50 – 11:25\n<b>Физика</b>\n    Лекция\n    101",
		sent[0].Fields["text"])
}

func TestTomorrowAndYesterday(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	f.handlers.RequireMajor(f.handlers.HandleTomorrow)(t.Context(), b, telegramtest.MessageUpdate(42, "/tomorrow"))
	f.handlers.RequireMajor(f.handlers.HandleYesterday)(t.Context(), b, telegramtest.MessageUpdate(42, "/yesterday"))

	require.Len(t, f.timetable.Calls, 2)
	assert.Equal(t, servicetest.FindCall{MajorID: "CS101", Week: model.WeekEven, Day: model.Tuesday}, f.timetable.Calls[0])
	// воскресенье относится к предыдущей, нечётной неделе
	assert.Equal(t, servicetest.FindCall{MajorID: "CS101", Week: model.WeekOdd, Day: model.Sunday}, f.timetable.Calls[1])

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 2)
	assert.Equal(t, "<i>Ничего не найдено.</i>", sent[0].Fields["text"])
}

func TestThisWeekAndNextWeekKeyboards(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	f.handlers.RequireMajor(f.handlers.HandleThisWeek)(t.Context(), b, telegramtest.MessageUpdate(42, "/thisweek"))
	f.handlers.RequireMajor(f.handlers.HandleNextWeek)(t.Context(), b, telegramtest.MessageUpdate(42, "/nextweek"))

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 2)
	assert.Equal(t, "Выберите интересующий вас день текущей недели", sent[0].Fields["text"])
	assert.Equal(t, "Выберите интересующий вас день следующей недели", sent[1].Fields["text"])

	current := decodeKeyboard(t, sent[0].Fields["reply_markup"])
	next := decodeKeyboard(t, sent[1].Fields["reply_markup"])
	require.Len(t, current, 6)
	require.Len(t, next, 6)

	assert.Equal(t, "timetable-weekday:2026-10-12T08:00:00+04:00", current[0].CallbackData)
	assert.Equal(t, "timetable-weekday:2026-10-19T08:00:00+04:00", next[0].CallbackData)
	assert.Equal(t, "Суббота", next[5].Text)
}

func TestSetMajorShowsKeyboard(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handlers.HandleSetMajor(t.Context(), b, telegramtest.MessageUpdate(42, "/setmajor"))

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 1)
	assert.Equal(t, "Выберите свою группу", sent[0].Fields["text"])

	buttons := decodeKeyboard(t, sent[0].Fields["reply_markup"])
	require.Len(t, buttons, 2)
	assert.Equal(t, "Информатика", buttons[0].Text)

	data, ok := callbackdata.Decode(buttons[0].CallbackData)
	require.True(t, ok)
	assert.Equal(t, "CS101", data.MajorID())
}

func TestHelp(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handlers.HandleHelp(t.Context(), b, telegramtest.MessageUpdate(42, "/help"))

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 1)
	text := sent[0].Fields["text"]
	assert.Contains(t, text, "<b>Общедоступные команды</b>")
	assert.Contains(t, text, "<b>Команды для студентов</b>")
	assert.Contains(t, text, "/setmajor - Установить свою группу")
	assert.NotContains(t, text, "/rand")
}

func TestRand(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handlers.HandleRand(t.Context(), b, telegramtest.MessageUpdate(ownerID, "/rand 5 7"))
	f.handlers.HandleRand(t.Context(), b, telegramtest.MessageUpdate(ownerID, "/rand 9 3"))
	f.handlers.HandleRand(t.Context(), b, telegramtest.MessageUpdate(ownerID, "/rand x"))

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 3)

	n, err := strconv.Atoi(sent[0].Fields["text"])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 5)
	assert.LessOrEqual(t, n, 7)

	assert.Equal(t, randUsage, sent[1].Fields["text"])
	assert.Equal(t, randUsage, sent[2].Fields["text"])
}

func TestRandomInRangeBounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		n, err := randomInRange(3, 4)
		require.NoError(t, err)
		assert.Contains(t, []uint64{3, 4}, n)
	}

	n, err := randomInRange(8, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), n)

	_, err = randomInRange(0, ^uint64(0))
	assert.NoError(t, err)
}

func TestMatchCommand(t *testing.T) {
	match := MatchCommand(CmdToday)

	assert.True(t, match(telegramtest.MessageUpdate(1, "/today")))
	assert.True(t, match(telegramtest.MessageUpdate(1, "/today@timetable_bot")))
	assert.True(t, match(telegramtest.MessageUpdate(1, "/today extra")))
	assert.False(t, match(telegramtest.MessageUpdate(1, "/todayx")))
	assert.False(t, match(telegramtest.MessageUpdate(1, "today")))
	assert.False(t, match(&models.Update{}))
}

func TestMatchAdminCommand(t *testing.T) {
	f := newFixture(t)
	match := f.handlers.MatchAdminCommand(CmdRand)

	assert.True(t, match(telegramtest.MessageUpdate(ownerID, "/rand 1 2")))
	assert.False(t, match(telegramtest.MessageUpdate(42, "/rand 1 2")))
	assert.False(t, match(telegramtest.MessageUpdate(ownerID, "/today")))
}

func TestBotCommandsExcludeAdmin(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range BotCommands() {
		names[cmd.Command] = true
	}

	assert.True(t, names[CmdToday])
	assert.True(t, names[CmdSetMajor])
	assert.False(t, names[CmdRand])
	assert.False(t, names[CmdAdminHelp])
}

func decodeKeyboard(t *testing.T, raw string) []models.InlineKeyboardButton {
	t.Helper()

	var markup models.InlineKeyboardMarkup
	require.NoError(t, json.Unmarshal([]byte(raw), &markup))

	var buttons []models.InlineKeyboardButton
	for _, row := range markup.InlineKeyboard {
		assert.LessOrEqual(t, len(row), 3)
		buttons = append(buttons, row...)
	}
	return buttons
}

func TestWeekImage(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	f.handlers.RequireMajor(f.handlers.HandleWeekImage)(t.Context(), b, telegramtest.MessageUpdate(42, "/weekimage"))

	photos := f.server.Calls("sendPhoto")
	require.Len(t, photos, 1)
	assert.Equal(t, "week-2026-10-12.png", photos[0].Files["photo"])
	assert.Equal(t, "Неделя 12.10, чётная", photos[0].Fields["caption"])
	assert.Equal(t, 6, f.timetable.CallCount())
}

func TestAdminHelp(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handlers.HandleAdminHelp(t.Context(), b, telegramtest.MessageUpdate(ownerID, "/adminhelp"))

	sent := f.server.Calls("sendMessage")
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].Fields["text"], "/rand - generate a number within range")
	assert.Empty(t, sent[0].Fields["parse_mode"])
}
