package converter

import (
	dto "promo_backend/internal/api/dto/settings"
	"promo_backend/internal/model"
)

func ToSettingsModel(req dto.Settings) *model.Settings {
	return &model.Settings{
		ShufflePrizes:             toModelPrizes(req.ShufflePrizes),
		SpinPrizes:                toModelPrizes(req.SpinPrizes),
		ShuffleWinningProbability: req.ShuffleWinningProbability,
		SpinWinningProbability:    req.SpinWinningProbability,
		LoseLabel:                 req.LoseLabel,
		Colors: model.Colors{
			Primary:   req.Colors.Primary,
			Secondary: req.Colors.Secondary,
		},
		Images: model.Images{
			Cap:    req.Images.Cap,
			Header: req.Images.Header,
			Banner: req.Images.Banner,
			Wheel:  req.Images.Wheel,
			Lose:   req.Images.Lose,
		},
		Texts: model.Texts{
			Am: model.LocalizedTexts{Win: req.Texts.Am.Win, Lose: req.Texts.Am.Lose},
			En: model.LocalizedTexts{Win: req.Texts.En.Win, Lose: req.Texts.En.Lose},
		},
	}
}

func ToSettingsResponse(settings model.Settings) dto.Settings {
	return dto.Settings{
		ShufflePrizes:             toDTOPrizes(settings.ShufflePrizes),
		SpinPrizes:                toDTOPrizes(settings.SpinPrizes),
		ShuffleWinningProbability: settings.ShuffleWinningProbability,
		SpinWinningProbability:    settings.SpinWinningProbability,
		LoseLabel:                 settings.LoseLabel,
		Colors: dto.Colors{
			Primary:   settings.Colors.Primary,
			Secondary: settings.Colors.Secondary,
		},
		Images: dto.Images{
			Cap:    settings.Images.Cap,
			Header: settings.Images.Header,
			Banner: settings.Images.Banner,
			Wheel:  settings.Images.Wheel,
			Lose:   settings.Images.Lose,
		},
		Texts: dto.Texts{
			Am: dto.LocalizedTexts{Win: settings.Texts.Am.Win, Lose: settings.Texts.Am.Lose},
			En: dto.LocalizedTexts{Win: settings.Texts.En.Win, Lose: settings.Texts.En.Lose},
		},
	}
}

func toModelPrizes(in []dto.Prize) []model.Prize {
	result := make([]model.Prize, len(in))
	for i, p := range in {
		result[i] = model.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
			Kind:     model.SegmentKind(p.Kind),
		}
	}
	return result
}

func toDTOPrizes(in []model.Prize) []dto.Prize {
	result := make([]dto.Prize, len(in))
	for i, p := range in {
		result[i] = dto.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
			Kind:     string(p.Kind),
		}
	}
	return result
}
