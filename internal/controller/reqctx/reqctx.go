// Package reqctx привязывает к каждому апдейту идентификатор запроса
package reqctx

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey struct{}

type meta struct {
	requestID string
	updateID  int64
}

// WithRequest кладёт в контекст идентификатор запроса и апдейта
func WithRequest(ctx context.Context, requestID string, updateID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, meta{requestID: requestID, updateID: updateID})
}

// RequestID возвращает идентификатор запроса или пустую строку
func RequestID(ctx context.Context) string {
	m, _ := ctx.Value(ctxKey{}).(meta)
	return m.requestID
}

// Logger возвращает логгер с полями текущего запроса
func Logger(ctx context.Context, base *zap.Logger) *zap.Logger {
	m, ok := ctx.Value(ctxKey{}).(meta)
	if !ok {
		return base
	}
	return base.With(zap.String("request_id", m.requestID), zap.Int64("update_id", m.updateID))
}

// Middleware выдаёт каждому апдейту новый request_id
func Middleware(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		next(WithRequest(ctx, uuid.NewString(), update.ID), b, update)
	}
}
