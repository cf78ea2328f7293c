package shuffle

import (
	"context"
	"errors"
	"promo_backend/internal/catalog"
	"promo_backend/internal/model"
)

// SecondPick вскрытие второй крышки и развязка раунда. Выигрыш — это
// равенство идентификаторов за двумя крышками: розыгрыш по вероятности
// решает, принудить ли вторую крышку к совпадению
func (s *serv) SecondPick(ctx context.Context, deviceID string, slot int) (*model.ShuffleOutcome, error) {
	if slot < 0 || slot >= slotCount {
		return nil, errors.New("slot out of range")
	}

	round, ok := s.roundRepo.Get(deviceID)
	if !ok {
		return nil, model.ErrRoundNotStarted
	}
	if slot == round.FirstSlot {
		return nil, model.ErrSameSlot
	}

	// Вторая крышка остатки не трогает, блокировка строки не нужна
	settings, err := s.loadSettings(ctx, false)
	if err != nil {
		return nil, err
	}

	outcome := &model.ShuffleOutcome{
		FirstLabel: round.FirstLabel,
	}

	if s.rnd.Float64() < settings.ShuffleWinningProbability {
		// Совпадение: вторая крышка показывает тот же приз
		outcome.Matched = true
		outcome.PrizeID = round.FirstPrizeID
		outcome.SecondPrizeID = round.FirstPrizeID
		outcome.SecondLabel = round.FirstLabel
	} else {
		outcome.SecondPrizeID, outcome.SecondLabel = s.pickDifferent(settings, round)
	}

	// Раунд завершен, состояние двух крышек очищается
	s.roundRepo.Delete(deviceID)
	s.statsRepo.Record(outcome.Matched)

	return outcome, nil
}

// pickDifferent подбирает приз для второй крышки проигрышного раунда:
// другой доступный приз; иначе отличный от первого неактивный приз с
// картинкой; иначе общая проигрышная заглушка
func (s *serv) pickDifferent(settings *model.Settings, round *model.Round) (string, string) {
	var candidates []model.Prize
	for _, p := range catalog.Available(settings.ShufflePrizes) {
		if p.ID != round.FirstPrizeID {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		for _, p := range settings.ShufflePrizes {
			if !p.IsActive && p.Image != nil && p.ID != round.FirstPrizeID {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return "", settings.LoseLabel
	}

	p := candidates[s.rnd.Intn(len(candidates))]
	return p.ID, p.Label()
}
