package common

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для команд и callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) error {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
	return err
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) error {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
	return err
}

// EditCallbackText заменяет текст сообщения, к которому привязана кнопка.
// Сообщения из inline-режима редактируются по inline_message_id.
func EditCallbackText(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, text string) error {
	params := &bot.EditMessageTextParams{
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}

	switch {
	case callback.Message.Message != nil:
		params.ChatID = callback.Message.Message.Chat.ID
		params.MessageID = callback.Message.Message.ID
	case callback.Message.InaccessibleMessage != nil:
		params.ChatID = callback.Message.InaccessibleMessage.Chat.ID
		params.MessageID = callback.Message.InaccessibleMessage.MessageID
	case callback.InlineMessageID != "":
		params.InlineMessageID = callback.InlineMessageID
	default:
		return ErrNoMessage
	}

	_, err := b.EditMessageText(ctx, params)
	return err
}

// SendHTML отправляет сообщение с HTML-разметкой
func SendHTML(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) error {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: markup,
	})
	return err
}
