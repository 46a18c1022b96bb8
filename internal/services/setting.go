package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"medequip-system/internal/dto"
	"medequip-system/internal/entities"
	"medequip-system/internal/repositories"
	apperrors "medequip-system/pkg/errors"
)

const settingCacheTTL = 10 * time.Minute

type SettingServiceInterface interface {
	FindSetting(ctx context.Context, key string) (*dto.SettingDTO, error)
	UpsertSetting(ctx context.Context, key string, payload dto.UpdateSettingDTO) (*dto.SettingDTO, error)
	EmailNotificationsEnabled(ctx context.Context) bool
}

type SettingService struct {
	settingRepository repositories.SettingRepositoryInterface
	cache             repositories.CacheRepositoryInterface
	logger            *zap.Logger
}

func NewSettingService(
	settingRepository repositories.SettingRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) SettingServiceInterface {
	return &SettingService{
		settingRepository: settingRepository,
		cache:             cache,
		logger:            logger,
	}
}

func settingCacheKey(key string) string { return "setting:" + key }

func (s *SettingService) FindSetting(ctx context.Context, key string) (*dto.SettingDTO, error) {
	if cached, err := s.cache.Get(ctx, settingCacheKey(key)); err == nil {
		return &dto.SettingDTO{Key: key, Value: cached}, nil
	}

	setting, err := s.settingRepository.FindSetting(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, settingCacheKey(key), setting.Value, settingCacheTTL); err != nil {
		s.logger.Warn("setting cache set failed", zap.String("key", key), zap.Error(err))
	}

	return &dto.SettingDTO{Key: setting.Key, Value: setting.Value}, nil
}

func (s *SettingService) UpsertSetting(ctx context.Context, key string, payload dto.UpdateSettingDTO) (*dto.SettingDTO, error) {
	setting, err := s.settingRepository.UpsertSetting(ctx, key, payload.Value)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Del(ctx, settingCacheKey(key)); err != nil {
		s.logger.Warn("setting cache invalidation failed", zap.String("key", key), zap.Error(err))
	}

	s.logger.Info("setting updated", zap.String("key", key), zap.String("value", setting.Value))
	return &dto.SettingDTO{Key: setting.Key, Value: setting.Value}, nil
}

// EmailNotificationsEnabled reports the notification flag; a missing
// setting means off.
func (s *SettingService) EmailNotificationsEnabled(ctx context.Context) bool {
	setting, err := s.FindSetting(ctx, entities.SettingEmailNotifications)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("could not read notification flag", zap.Error(err))
		}
		return false
	}
	return setting.Value == "true"
}
