package shuffle

import (
	"context"
	"errors"
	"promo_backend/internal/catalog"
	"promo_backend/internal/model"
)

// На экране девять крышек, слоты 0-8
const slotCount = 9

// FirstPick вскрытие первой крышки: равномерный выбор среди доступных
// призов. Вскрытие расходует единицу остатка сразу, независимо от того,
// совпадет ли вторая крышка — запас тратится на показ приза, не на выигрыш
func (s *serv) FirstPick(ctx context.Context, deviceID string, slot int) (*model.FirstPickResult, error) {
	if slot < 0 || slot >= slotCount {
		return nil, errors.New("slot out of range")
	}
	if _, ok := s.roundRepo.Get(deviceID); ok {
		return nil, model.ErrRoundInProgress
	}

	var res *model.FirstPickResult

	// Списание и проверка доступности идут в одной транзакции: розыгрыш
	// фиксируется раньше, чем следующий увидит остатки
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		settings, err := s.loadSettings(txCtx, true)
		if err != nil {
			return err
		}

		available := catalog.Available(settings.ShufflePrizes)
		if len(available) == 0 {
			return model.ErrNoPrizesLeft
		}

		prize := available[s.rnd.Intn(len(available))]

		settings.ShufflePrizes = catalog.Decrement(settings.ShufflePrizes, prize.ID)
		if err := s.settingsRepo.Save(txCtx, settings); err != nil {
			return err
		}

		res = &model.FirstPickResult{
			PrizeID: prize.ID,
			Label:   prize.Label(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.roundRepo.Put(deviceID, &model.Round{
		FirstSlot:    slot,
		FirstPrizeID: res.PrizeID,
		FirstLabel:   res.Label,
	})

	return res, nil
}
