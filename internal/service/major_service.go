package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/timetable_bot/internal/model"
	"go.uber.org/zap"
)

type MajorService struct {
	majorRepo MajorRepository
	cache     MajorCache // может быть nil
	logger    *zap.Logger
}

// NewMajorService создаёт сервис групп. cache может быть nil, тогда список всегда читается из БД
func NewMajorService(majorRepo MajorRepository, cache MajorCache, logger *zap.Logger) *MajorService {
	return &MajorService{
		majorRepo: majorRepo,
		cache:     cache,
		logger:    logger,
	}
}

// List возвращает все группы, сначала пробуя кэш
func (s *MajorService) List(ctx context.Context) ([]model.Major, error) {
	if s.cache != nil {
		majors, ok, err := s.cache.Majors(ctx)
		switch {
		case err != nil:
			s.logger.Warn("Majors cache read failed, falling back to database", zap.Error(err))
		case ok:
			return majors, nil
		}
	}

	majors, err := s.majorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list majors: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetMajors(ctx, majors); err != nil {
			s.logger.Warn("Failed to store majors in cache", zap.Error(err))
		}
	}

	return majors, nil
}

// Refresh перечитывает группы из БД и кладёт их в кэш
func (s *MajorService) Refresh(ctx context.Context) (int, error) {
	majors, err := s.majorRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list majors: %w", err)
	}

	if s.cache == nil {
		return len(majors), nil
	}

	if err := s.cache.SetMajors(ctx, majors); err != nil {
		return 0, fmt.Errorf("store majors in cache: %w", err)
	}

	return len(majors), nil
}

// GetByID возвращает группу или nil, если её нет
func (s *MajorService) GetByID(ctx context.Context, id string) (*model.Major, error) {
	major, err := s.majorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get major: %w", err)
	}
	return major, nil
}
