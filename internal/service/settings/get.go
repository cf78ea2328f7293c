package settings

import (
	"context"
	"errors"
	"log"
	"promo_backend/internal/model"
)

// Get текущая конфигурация. Отсутствующие или нечитаемые сохраненные
// настройки — не ошибка: клиент получает дефолты и игра продолжается
func (s *serv) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return s.defaults.Defaults().Clone(), nil
		}
		log.Println("failed to load settings:", err)
		return nil, err
	}

	settings.Normalize()
	return settings, nil
}
