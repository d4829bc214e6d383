package callbacks

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/callbackdata"
	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

// Handler содержит зависимости для обработки нажатий на inline-кнопки
type Handler struct {
	userService      *service.UserService
	timetableService *service.TimetableService
	logger           *zap.Logger
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(userService *service.UserService, timetableService *service.TimetableService, logger *zap.Logger) *Handler {
	return &Handler{
		userService:      userService,
		timetableService: timetableService,
		logger:           logger,
	}
}

// HandleCallbackQuery - главный обработчик callback queries.
// Кнопки с нераспознанными данными молча игнорируются.
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	data, ok := callbackdata.Decode(callback.Data)
	if !ok {
		reqctx.Logger(ctx, h.logger).Debug("Ignoring unknown callback",
			zap.String("data", callback.Data),
			zap.Int64("user_id", callback.From.ID),
		)
		return
	}

	h.Route(ctx, b, callback, data)
}
