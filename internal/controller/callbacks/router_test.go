package callbacks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/telegramtest"
	"github.com/Freeeeeet/timetable_bot/internal/model"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"github.com/Freeeeeet/timetable_bot/internal/service/servicetest"
)

type fixture struct {
	users     *servicetest.Users
	timetable *servicetest.Timetable
	server    *telegramtest.Server
	handler   *Handler
}

func newFixture(t *testing.T, users ...model.User) *fixture {
	t.Helper()

	f := &fixture{
		users: servicetest.NewUsers(users...),
		timetable: servicetest.NewTimetable(
			servicetest.Entry("CS101", model.WeekEven, model.Monday, model.NewTimeOfDay(9, 50), model.NewTimeOfDay(11, 25), "Физика"),
			servicetest.Entry("CS101", model.WeekEven, model.Monday, model.NewTimeOfDay(8, 0), model.NewTimeOfDay(9, 35), "Алгебра"),
		),
		server: telegramtest.NewServer(t),
	}
	majors := servicetest.NewMajors(
		model.Major{ID: "CS101", Title: "Информатика & Co"},
		model.Major{ID: "MATH", Title: "Математика"},
	)

	logger := zap.NewNop()
	f.handler = NewHandler(
		service.NewUserService(f.users, majors, logger),
		service.NewTimetableService(f.timetable, logger),
		logger,
	)
	return f
}

func TestSetMajorCallback(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handler.HandleCallbackQuery(t.Context(), b, telegramtest.CallbackUpdate(42, "set-major:CS101"))

	require.Len(t, f.users.Upserts, 1)
	assert.Equal(t, model.User{ID: 42, MajorID: "CS101"}, f.users.Upserts[0])

	require.Len(t, f.server.Calls("answerCallbackQuery"), 1)

	edits := f.server.Calls("editMessageText")
	require.Len(t, edits, 1)
	assert.Equal(t, "Вы успешно сменили группу на <b>Информатика &amp; Co</b>!", edits[0].Fields["text"])
	assert.Equal(t, "HTML", edits[0].Fields["parse_mode"])
	assert.Equal(t, "42", edits[0].Fields["chat_id"])
	assert.Equal(t, "20", edits[0].Fields["message_id"])
}

func TestSetMajorCallbackInlineMessage(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	update := telegramtest.CallbackUpdate(42, "set-major:MATH")
	update.CallbackQuery.Message.Message = nil
	update.CallbackQuery.InlineMessageID = "inline-7"

	f.handler.HandleCallbackQuery(t.Context(), b, update)

	edits := f.server.Calls("editMessageText")
	require.Len(t, edits, 1)
	assert.Equal(t, "inline-7", edits[0].Fields["inline_message_id"])
	assert.Contains(t, edits[0].Fields["text"], "Математика")
}

func TestTimetableWeekdayCallback(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	// 2026-10-12 понедельник чётной недели
	f.handler.HandleCallbackQuery(t.Context(), b, telegramtest.CallbackUpdate(42, "timetable-weekday:2026-10-12T08:00:00+04:00"))

	require.Len(t, f.timetable.Calls, 1)
	assert.Equal(t, servicetest.FindCall{MajorID: "CS101", Week: model.WeekEven, Day: model.Monday}, f.timetable.Calls[0])

	edits := f.server.Calls("editMessageText")
	require.Len(t, edits, 1)
	text := edits[0].Fields["text"]
	assert.Contains(t, text, "<b>Расписание занятий на 12 октября</b>")
	assert.Less(t, strings.Index(text, "Алгебра"), strings.Index(text, "Физика"))
}

func TestTimetableWeekdayCallbackWithoutMajor(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handler.HandleCallbackQuery(t.Context(), b, telegramtest.CallbackUpdate(42, "timetable-weekday:2026-10-12T08:00:00+04:00"))

	assert.Zero(t, f.timetable.CallCount())
	assert.Empty(t, f.server.Calls("editMessageText"))

	answers := f.server.Calls("answerCallbackQuery")
	require.Len(t, answers, 1)
	assert.Equal(t, "Вы должны указать свою группу!\nИспользуйте /setmajor", answers[0].Fields["text"])
	assert.Equal(t, "true", answers[0].Fields["show_alert"])
}

func TestMalformedCallbacksAreIgnored(t *testing.T) {
	f := newFixture(t, model.User{ID: 42, MajorID: "CS101"})
	b := f.server.Bot(t)

	for _, data := range []string{"bogus:abc", "set-major:", "timetable-weekday:not-a-date", "nocolon"} {
		f.handler.HandleCallbackQuery(t.Context(), b, telegramtest.CallbackUpdate(42, data))
	}

	assert.Empty(t, f.server.Requests())
	assert.Empty(t, f.users.Upserts)
	assert.Zero(t, f.timetable.CallCount())
}

func TestSetMajorCallbackUnknownMajor(t *testing.T) {
	f := newFixture(t)
	b := f.server.Bot(t)

	f.handler.HandleCallbackQuery(t.Context(), b, telegramtest.CallbackUpdate(42, "set-major:GHOST"))

	assert.Empty(t, f.server.Calls("editMessageText"))
}
