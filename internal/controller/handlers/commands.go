package handlers

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/timetable_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/timetable_bot/internal/controller/reqctx"
)

const randUsage = "Использование: /rand <from> <to>, где 0 <= from <= to"

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, HelpText(), nil)
}

// HandleSetMajor показывает клавиатуру со списком групп
func (h *Handlers) HandleSetMajor(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	majors, err := h.majorService.List(ctx)
	if err != nil {
		reqctx.Logger(ctx, h.logger).Error("Failed to list majors", zap.Error(err))
		return
	}

	if len(majors) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, common.TextNoMajors)
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, common.TextChooseMajor, keyboard.Majors(majors))
}

// HandleAdminHelp обрабатывает команду /adminhelp
func (h *Handlers) HandleAdminHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, AdminHelpText())
}

// HandleRand присылает случайное число из диапазона [from, to]
func (h *Handlers) HandleRand(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	from, to, ok := parseRange(update.Message.Text)
	if !ok {
		h.sendMessage(ctx, b, chatID, randUsage)
		return
	}

	n, err := randomInRange(from, to)
	if err != nil {
		reqctx.Logger(ctx, h.logger).Error("Failed to generate random number", zap.Error(err))
		return
	}

	h.sendMessage(ctx, b, chatID, strconv.FormatUint(n, 10))
}

// parseRange разбирает аргументы "/rand <from> <to>"
func parseRange(text string) (uint64, uint64, bool) {
	_, args := parseCommand(text)
	if len(args) != 2 {
		return 0, 0, false
	}

	from, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	to, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if from > to {
		return 0, 0, false
	}

	return from, to, true
}

// randomInRange возвращает равномерно распределённое число из [from, to]
func randomInRange(from, to uint64) (uint64, error) {
	span := new(big.Int).SetUint64(to - from)
	span.Add(span, big.NewInt(1))

	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, err
	}

	return from + n.Uint64(), nil
}
