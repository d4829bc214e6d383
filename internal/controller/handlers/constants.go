package handlers

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Command команда бота и её описание
type Command struct {
	Name        string
	Description string
}

// Имена команд
const (
	CmdHelp      = "help"
	CmdSetMajor  = "setmajor"
	CmdYesterday = "yesterday"
	CmdToday     = "today"
	CmdTomorrow  = "tomorrow"
	CmdNextWeek  = "nextweek"
	CmdThisWeek  = "thisweek"
	CmdWeekImage = "weekimage"
	CmdAdminHelp = "adminhelp"
	CmdRand      = "rand"
)

// GeneralCommands доступны всем
var GeneralCommands = []Command{
	{CmdHelp, "Отображает список команд"},
	{CmdSetMajor, "Установить свою группу"},
}

// TimetableCommands требуют выбранной группы
var TimetableCommands = []Command{
	{CmdYesterday, "Просмотр расписания за вчера."},
	{CmdToday, "Просмотр расписания на сегодня."},
	{CmdTomorrow, "Просмотр расписания на завтра."},
	{CmdNextWeek, "Выбрать день со следующей недели."},
	{CmdThisWeek, "Выбрать день на неделе."},
	{CmdWeekImage, "Расписание текущей недели картинкой."},
}

// AdminCommands доступны только владельцам бота
var AdminCommands = []Command{
	{CmdAdminHelp, "Help for admin only commands"},
	{CmdRand, "generate a number within range"},
}

// describe собирает список команд под заголовком
func describe(title string, commands []Command) string {
	lines := make([]string, 0, len(commands))
	for _, cmd := range commands {
		lines = append(lines, "/"+cmd.Name+" - "+cmd.Description)
	}
	return title + "\n\n" + strings.Join(lines, "\n")
}

// HelpText справка для всех пользователей
func HelpText() string {
	return describe("<b>Общедоступные команды</b>", GeneralCommands) + "\n\n" +
		describe("<b>Команды для студентов</b>", TimetableCommands)
}

// AdminHelpText справка по командам администратора
func AdminHelpText() string {
	return describe("Admin commands", AdminCommands)
}

// BotCommands меню команд для setMyCommands. Команды администратора в меню не попадают
func BotCommands() []models.BotCommand {
	var commands []models.BotCommand
	for _, group := range [][]Command{GeneralCommands, TimetableCommands} {
		for _, cmd := range group {
			commands = append(commands, models.BotCommand{Command: cmd.Name, Description: cmd.Description})
		}
	}
	return commands
}
