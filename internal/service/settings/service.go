package settings

import (
	"promo_backend/internal/config"
	"promo_backend/internal/repository"
	"promo_backend/internal/service"
)

type serv struct {
	settingsRepo repository.SettingsRepository
	defaults     config.DefaultsConfig
}

// NewSettingsService Создать сервис настроек
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	defaults config.DefaultsConfig,
) service.SettingsService {
	return &serv{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}
