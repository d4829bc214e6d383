package callbacks

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbackdata"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/formatting"
)

// Route распределяет callback query по соответствующим обработчикам
func (h *Handler) Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, data callbackdata.Data) {
	hc := common.NewHandlerContext(ctx, b, callback, h.logger)

	switch data.Kind() {
	case callbackdata.KindSetMajor:
		h.handleSetMajor(hc, data.MajorID())
	case callbackdata.KindTimetableWeekday:
		h.handleTimetableWeekday(hc, data.Date())
	}
}

// handleSetMajor сохраняет выбранную группу и подтверждает выбор
func (h *Handler) handleSetMajor(hc *common.HandlerContext, majorID string) {
	hc.Answer("")

	major, err := h.userService.SetMajor(hc.Ctx, hc.UserID, majorID)
	if err != nil {
		hc.Logger.Error("Failed to set major", zap.String("major_id", majorID), zap.Error(err))
		return
	}

	hc.EditText(fmt.Sprintf(common.TextMajorChanged, html.EscapeString(major.Title)))
}

// handleTimetableWeekday показывает расписание на выбранный день вместо клавиатуры
func (h *Handler) handleTimetableWeekday(hc *common.HandlerContext, date time.Time) {
	majorID, ok, err := h.userService.MajorID(hc.Ctx, hc.UserID)
	if err != nil {
		hc.Logger.Error("Failed to get user major", zap.Error(err))
		hc.Answer("")
		return
	}

	if !ok {
		hc.AnswerAlert(common.TextMajorRequired)
		return
	}

	hc.Answer("")

	entries, err := h.timetableService.ForDay(hc.Ctx, majorID, date)
	if err != nil {
		hc.Logger.Error("Failed to get timetable",
			zap.String("major_id", majorID),
			zap.Time("date", date),
			zap.Error(err),
		)
		return
	}

	hc.EditText(formatting.FormatTimetable(entries, date))
}
