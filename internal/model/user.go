package model

// User пользователь бота. ID совпадает с Telegram ID отправителя
type User struct {
	ID      int64  `json:"id"`
	MajorID string `json:"major_id"`
}
