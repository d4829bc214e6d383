package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
)

type majorKey struct{}

// MajorIDFromContext возвращает группу, проверенную RequireMajor
func MajorIDFromContext(ctx context.Context) (string, bool) {
	majorID, ok := ctx.Value(majorKey{}).(string)
	return majorID, ok
}

// RequireMajor пропускает команду дальше только если у пользователя выбрана группа.
// Иначе отвечает подсказкой про /setmajor.
func (h *Handlers) RequireMajor(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil || update.Message.From == nil {
			return
		}

		logger := reqctx.Logger(ctx, h.logger)
		userID := update.Message.From.ID

		majorID, ok, err := h.userService.MajorID(ctx, userID)
		if err != nil {
			logger.Error("Failed to get user major", zap.Int64("user_id", userID), zap.Error(err))
			return
		}

		if !ok {
			h.sendHTML(ctx, b, update.Message.Chat.ID, common.TextMajorRequired, nil)
			return
		}

		next(context.WithValue(ctx, majorKey{}, majorID), b, update)
	}
}
