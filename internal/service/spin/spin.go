package spin

import (
	"context"
	"promo_backend/internal/catalog"
	"promo_backend/internal/model"
)

const (
	// Полных оборотов колеса до остановки (анимация на клиенте)
	extraSpins = 14
	fullCircle = 360.0
)

// Spin один розыгрыш колеса. Победный исход списывает единицу остатка
// в той же транзакции; проигрышные сегменты запас не расходуют никогда
func (s *serv) Spin(ctx context.Context) (*model.SpinOutcome, error) {
	var out *model.SpinOutcome

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		settings, err := s.loadSettings(txCtx, true)
		if err != nil {
			return err
		}

		prizes := settings.SpinPrizes
		available := catalog.Available(prizes)
		winning := catalog.AvailableWinning(prizes)
		lose := catalog.LoseSegments(prizes)

		// Вращение невозможно без хотя бы одного выигрышного и одного
		// проигрышного сегмента
		if len(available) == 0 || len(winning) == 0 {
			return model.ErrNoPrizesLeft
		}
		if len(lose) == 0 {
			return model.ErrNoLoseSegments
		}

		var selected model.Prize
		won := s.rnd.Float64() < settings.SpinWinningProbability
		if won {
			selected = winning[s.rnd.Intn(len(winning))]
		} else {
			selected = lose[s.rnd.Intn(len(lose))]
		}

		idx := catalog.IndexOf(prizes, selected.ID)

		if won {
			settings.SpinPrizes = catalog.Decrement(prizes, selected.ID)
			if err := s.settingsRepo.Save(txCtx, settings); err != nil {
				return err
			}
			// В ответ уходит остаток уже после списания
			selected = settings.SpinPrizes[idx]
		}

		out = &model.SpinOutcome{
			Won:          won,
			Prize:        &selected,
			SegmentIndex: idx,
			Degree:       rotationDegree(idx, len(prizes)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.Record(out.Won)

	return out, nil
}

// rotationDegree угол остановки колеса для выбранной позиции. Сегменты на
// картинке колеса нарисованы в обратном порядке, поэтому индекс зеркалится
func rotationDegree(idx, total int) float64 {
	segment := fullCircle / float64(total)
	visual := float64(total - idx - 1)
	return extraSpins*fullCircle + visual*segment + segment/2
}
