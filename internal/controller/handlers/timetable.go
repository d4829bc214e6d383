package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
	"github.com/Freeeeeet/timetable_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
	"github.com/Freeeeeet/timetable_bot/internal/controller/weekimage"
	"github.com/Freeeeeet/timetable_bot/internal/model"
)

const day = 24 * time.Hour

// HandleToday обрабатывает команду /today
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sendDay(ctx, b, update, h.clock.Now())
}

// HandleTomorrow обрабатывает команду /tomorrow
func (h *Handlers) HandleTomorrow(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sendDay(ctx, b, update, h.clock.Now().Add(day))
}

// HandleYesterday обрабатывает команду /yesterday
func (h *Handlers) HandleYesterday(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.sendDay(ctx, b, update, h.clock.Now().Add(-day))
}

// HandleThisWeek показывает дни текущей недели
func (h *Handlers) HandleThisWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	markup := keyboard.DayPicker(h.clock.Now(), calendar.WeekCurrent)
	h.sendHTML(ctx, b, update.Message.Chat.ID, common.TextChooseDay, markup)
}

// HandleNextWeek показывает дни следующей недели
func (h *Handlers) HandleNextWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	markup := keyboard.DayPicker(h.clock.Now(), calendar.WeekNext)
	h.sendHTML(ctx, b, update.Message.Chat.ID, common.TextChooseNextDay, markup)
}

// HandleWeekImage присылает картинку с расписанием текущей недели
func (h *Handlers) HandleWeekImage(ctx context.Context, b *bot.Bot, update *models.Update) {
	majorID, ok := MajorIDFromContext(ctx)
	if update.Message == nil || !ok {
		return
	}

	logger := reqctx.Logger(ctx, h.logger).With(zap.String("major_id", majorID))
	now := h.clock.Now()

	week, err := h.timetableService.ForWeek(ctx, majorID, now)
	if err != nil {
		logger.Error("Failed to get week timetable", zap.Error(err))
		return
	}

	title := majorID
	if major, err := h.majorService.GetByID(ctx, majorID); err != nil {
		logger.Warn("Failed to get major title", zap.Error(err))
	} else if major != nil {
		title = major.Title
	}

	image, err := weekimage.Render(title, week, now)
	if err != nil {
		logger.Error("Failed to render week image", zap.Error(err))
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID:  update.Message.Chat.ID,
		Photo:   &models.InputFileUpload{Filename: fmt.Sprintf("week-%s.png", now.Format("2006-01-02")), Data: bytes.NewReader(image)},
		Caption: fmt.Sprintf("Неделя %s, %s", calendar.Monday(now, calendar.WeekCurrent).Format("02.01"), weekParityName(now)),
	})
	if err != nil {
		logger.Error("Failed to send week image", zap.Error(err))
	}
}

// sendDay отправляет расписание на день date. Группу кладёт в контекст RequireMajor
func (h *Handlers) sendDay(ctx context.Context, b *bot.Bot, update *models.Update, date time.Time) {
	majorID, ok := MajorIDFromContext(ctx)
	if update.Message == nil || !ok {
		return
	}

	entries, err := h.timetableService.ForDay(ctx, majorID, date)
	if err != nil {
		reqctx.Logger(ctx, h.logger).Error("Failed to get timetable",
			zap.String("major_id", majorID),
			zap.Time("date", date),
			zap.Error(err),
		)
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, formatting.FormatTimetable(entries, date), nil)
}

func weekParityName(t time.Time) string {
	if calendar.Parity(t) == model.WeekEven {
		return "чётная"
	}
	return "нечётная"
}
