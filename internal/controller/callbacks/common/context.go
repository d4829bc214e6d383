package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
)

// HandlerContext содержит общие данные для обработки callback
type HandlerContext struct {
	Ctx      context.Context
	Bot      *bot.Bot
	Callback *models.CallbackQuery
	Logger   *zap.Logger
	UserID   int64
}

// NewHandlerContext создаёт новый контекст обработчика
func NewHandlerContext(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, logger *zap.Logger) *HandlerContext {
	return &HandlerContext{
		Ctx:      ctx,
		Bot:      b,
		Callback: callback,
		Logger:   reqctx.Logger(ctx, logger).With(zap.Int64("user_id", callback.From.ID)),
		UserID:   callback.From.ID,
	}
}

// Answer отвечает на callback без alert
func (hc *HandlerContext) Answer(text string) {
	if err := AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text); err != nil {
		hc.Logger.Error("Failed to answer callback", zap.Error(err))
	}
}

// AnswerAlert отвечает на callback всплывающим окном
func (hc *HandlerContext) AnswerAlert(text string) {
	if err := AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text); err != nil {
		hc.Logger.Error("Failed to answer callback", zap.Error(err))
	}
}

// EditText заменяет текст исходного сообщения
func (hc *HandlerContext) EditText(text string) {
	if err := EditCallbackText(hc.Ctx, hc.Bot, hc.Callback, text); err != nil {
		hc.Logger.Error("Failed to edit callback message", zap.Error(err))
	}
}
