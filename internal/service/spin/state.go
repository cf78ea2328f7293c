package spin

import (
	"context"
	"promo_backend/internal/catalog"
	"promo_backend/internal/model"
)

// State снимок каталога колеса. Истощение проверяется на каждом запросе,
// а не только перед вращением: остатки могут измениться извне
func (s *serv) State(ctx context.Context) (*model.SpinState, error) {
	settings, err := s.loadSettings(ctx, false)
	if err != nil {
		return nil, err
	}

	prizes := settings.SpinPrizes

	// Колесо истощено когда выигрышных сегментов с остатком не осталось
	depleted := catalog.IsDepleted(prizes) || len(catalog.AvailableWinning(prizes)) == 0

	return &model.SpinState{
		Prizes:   prizes,
		Depleted: depleted,
	}, nil
}
