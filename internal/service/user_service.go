package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo  UserRepository
	majorRepo MajorRepository
	logger    *zap.Logger
}

func NewUserService(userRepo UserRepository, majorRepo MajorRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo:  userRepo,
		majorRepo: majorRepo,
		logger:    logger,
	}
}

// MajorID возвращает группу пользователя. ok == false, если группа ещё не выбрана
func (s *UserService) MajorID(ctx context.Context, userID int64) (string, bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", false, fmt.Errorf("get user: %w", err)
	}

	if user == nil || user.MajorID == "" {
		return "", false, nil
	}

	return user.MajorID, true, nil
}

// SetMajor привязывает пользователя к группе и возвращает выбранную группу.
// Повторное нажатие на ту же кнопку ничего не меняет.
func (s *UserService) SetMajor(ctx context.Context, userID int64, majorID string) (*model.Major, error) {
	if _, err := s.userRepo.Upsert(ctx, userID, majorID); err != nil {
		return nil, fmt.Errorf("set user major: %w", err)
	}

	major, err := s.majorRepo.GetByID(ctx, majorID)
	if err != nil {
		return nil, fmt.Errorf("get major: %w", err)
	}

	if major == nil {
		return nil, fmt.Errorf("get major %q: %w", majorID, ErrMajorNotFound)
	}

	s.logger.Info("User major changed",
		zap.Int64("user_id", userID),
		zap.String("major_id", majorID),
	)

	return major, nil
}
