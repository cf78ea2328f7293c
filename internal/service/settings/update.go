package settings

import (
	"context"
	"errors"
	"promo_backend/internal/model"
)

// Update заменяет конфигурацию целиком. Перед записью она нормализуется:
// вероятности зажимаются в [0,1], отрицательные остатки обнуляются,
// сегменты колеса получают явную разметку prize/lose
func (s *serv) Update(ctx context.Context, settings *model.Settings) (*model.Settings, error) {
	if settings == nil {
		return nil, errors.New("settings must not be nil")
	}

	settings.Normalize()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
