package handlers

import (
	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService      *service.UserService
	majorService     *service.MajorService
	timetableService *service.TimetableService
	clock            *calendar.Clock
	isOwner          func(userID int64) bool
	logger           *zap.Logger
}

// NewHandlers создаёт новый обработчик команд. isOwner решает, доступны ли пользователю команды администратора
func NewHandlers(
	userService *service.UserService,
	majorService *service.MajorService,
	timetableService *service.TimetableService,
	clock *calendar.Clock,
	isOwner func(userID int64) bool,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:      userService,
		majorService:     majorService,
		timetableService: timetableService,
		clock:            clock,
		isOwner:          isOwner,
		logger:           logger,
	}
}
