package common

import "errors"

// ErrNoMessage у callback нет ни сообщения, ни inline_message_id
var ErrNoMessage = errors.New("no message in callback")

// Тексты, общие для команд и кнопок
const (
	TextMajorRequired = "Вы должны указать свою группу!\nИспользуйте /setmajor"
	TextChooseMajor   = "Выберите свою группу"
	TextMajorChanged  = "Вы успешно сменили группу на <b>%s</b>!"
	TextChooseDay     = "Выберите интересующий вас день текущей недели"
	TextChooseNextDay = "Выберите интересующий вас день следующей недели"
	TextNoMajors      = "Список групп пока пуст."
)
