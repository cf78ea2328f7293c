package shuffle

import (
	"context"
	"errors"
	"promo_backend/internal/config"
	"promo_backend/internal/model"
	"promo_backend/internal/repository"
	"promo_backend/internal/service"
	"promo_backend/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	settingsRepo repository.SettingsRepository
	roundRepo    repository.RoundRepository
	statsRepo    repository.StatsRepository
	defaults     config.DefaultsConfig
	txManager    trm.Manager
	rnd          rng.Source
}

// NewShuffleService Создать сервис игры с крышками
func NewShuffleService(
	settingsRepo repository.SettingsRepository,
	roundRepo repository.RoundRepository,
	statsRepo repository.StatsRepository,
	defaults config.DefaultsConfig,
	txManager trm.Manager,
	rnd rng.Source,
) service.ShuffleService {
	return &serv{
		settingsRepo: settingsRepo,
		roundRepo:    roundRepo,
		statsRepo:    statsRepo,
		defaults:     defaults,
		txManager:    txManager,
		rnd:          rnd,
	}
}

func (s *serv) Stats() model.PlayStats {
	return s.statsRepo.State()
}

// loadSettings читает конфигурацию, подставляя дефолты если сохраненной нет
func (s *serv) loadSettings(ctx context.Context, forUpdate bool) (*model.Settings, error) {
	var (
		settings *model.Settings
		err      error
	)
	if forUpdate {
		settings, err = s.settingsRepo.GetForUpdate(ctx)
	} else {
		settings, err = s.settingsRepo.Get(ctx)
	}
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return s.defaults.Defaults().Clone(), nil
		}
		return nil, err
	}
	settings.Normalize()
	return settings, nil
}
