package shuffle

import (
	"context"
	"promo_backend/internal/catalog"
	"promo_backend/internal/model"
)

// State снимок каталога и фазы раунда для устройства.
// Проверка истощения выполняется при каждой гидрации: администратор мог
// изменить остатки извне
func (s *serv) State(ctx context.Context, deviceID string) (*model.ShuffleState, error) {
	settings, err := s.loadSettings(ctx, false)
	if err != nil {
		return nil, err
	}

	phase := model.RoundIdle
	if _, ok := s.roundRepo.Get(deviceID); ok {
		phase = model.RoundFirstPicked
	}

	return &model.ShuffleState{
		Prizes:   settings.ShufflePrizes,
		Depleted: catalog.IsDepleted(settings.ShufflePrizes),
		Phase:    phase,
	}, nil
}
