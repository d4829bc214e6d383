package controller

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/timetable_bot/internal/controller/handlers"
	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	userService *service.UserService,
	majorService *service.MajorService,
	timetableService *service.TimetableService,
	clock *calendar.Clock,
	isOwner func(userID int64) bool,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:             botInstance,
		handlers:        handlers.NewHandlers(userService, majorService, timetableService, clock, isOwner, logger),
		callbackHandler: callbacks.NewHandler(userService, timetableService, logger),
		logger:          logger,
	}
}

// BotOptions общие опции клиента: request_id для каждого апдейта, логирование
// необработанных апдейтов и ошибок библиотеки
func BotOptions(logger *zap.Logger) []bot.Option {
	return []bot.Option{
		bot.WithMiddlewares(reqctx.Middleware),
		bot.WithDefaultHandler(DefaultHandler(logger)),
		bot.WithErrorsHandler(func(err error) {
			logger.Error("Telegram bot error", zap.Error(err))
		}),
	}
}

// DefaultHandler логирует апдейты, для которых не нашлось обработчика
func DefaultHandler(logger *zap.Logger) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		fields := []zap.Field{}
		if update.Message != nil {
			fields = append(fields, zap.String("text", update.Message.Text))
			if update.Message.From != nil {
				fields = append(fields, zap.Int64("user_id", update.Message.From.ID))
			}
		}
		reqctx.Logger(ctx, logger).Warn("Unhandled update", fields...)
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	h := c.handlers

	// Общедоступные команды
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand(handlers.CmdHelp), h.HandleHelp)
	c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand(handlers.CmdSetMajor), h.HandleSetMajor)

	// Команды для студентов, только после выбора группы
	for name, handler := range map[string]bot.HandlerFunc{
		handlers.CmdYesterday: h.HandleYesterday,
		handlers.CmdToday:     h.HandleToday,
		handlers.CmdTomorrow:  h.HandleTomorrow,
		handlers.CmdThisWeek:  h.HandleThisWeek,
		handlers.CmdNextWeek:  h.HandleNextWeek,
		handlers.CmdWeekImage: h.HandleWeekImage,
	} {
		c.bot.RegisterHandlerMatchFunc(handlers.MatchCommand(name), h.RequireMajor(handler))
	}

	// Команды администратора
	c.bot.RegisterHandlerMatchFunc(h.MatchAdminCommand(handlers.CmdAdminHelp), h.HandleAdminHelp)
	c.bot.RegisterHandlerMatchFunc(h.MatchAdminCommand(handlers.CmdRand), h.HandleRand)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: handlers.BotCommands(),
	})
	if err != nil {
		return fmt.Errorf("set bot commands: %w", err)
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота в режиме long polling и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	if _, err := c.bot.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}

	c.logger.Info("Starting bot in polling mode")
	c.bot.Start(ctx)
	return nil
}

// StartWebhook регистрирует webhook и обрабатывает апдейты, пришедшие через WebhookHandler
func (c *BotController) StartWebhook(ctx context.Context, url, secret string) error {
	_, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:         url,
		SecretToken: secret,
	})
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	c.logger.Info("Starting bot in webhook mode", zap.String("url", url))
	c.bot.StartWebhook(ctx)
	return nil
}

// WebhookHandler HTTP-обработчик для входящих апдейтов
func (c *BotController) WebhookHandler() http.Handler {
	return c.bot.WebhookHandler()
}
