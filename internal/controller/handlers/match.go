package handlers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// parseCommand разбирает "/cmd@botname arg1 arg2" на имя команды и аргументы
func parseCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}

	name, _, _ := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	return name, fields[1:]
}

// MatchCommand срабатывает на сообщение с командой name, в том числе с суффиксом @botname и аргументами
func MatchCommand(name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}
		cmd, _ := parseCommand(update.Message.Text)
		return cmd == name
	}
}

// MatchAdminCommand как MatchCommand, но только для владельцев бота.
// Для остальных апдейт уходит в обработчик по умолчанию.
func (h *Handlers) MatchAdminCommand(name string) bot.MatchFunc {
	match := MatchCommand(name)
	return func(update *models.Update) bool {
		if !match(update) || update.Message.From == nil {
			return false
		}
		return h.isOwner(update.Message.From.ID)
	}
}
