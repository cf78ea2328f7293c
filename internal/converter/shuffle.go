package converter

import (
	dto "promo_backend/internal/api/dto/shuffle"
	"promo_backend/internal/model"
)

func ToFirstPickResponse(res model.FirstPickResult) dto.FirstPickResponse {
	return dto.FirstPickResponse{
		PrizeID: res.PrizeID,
		Label:   res.Label,
	}
}

func ToSecondPickResponse(out model.ShuffleOutcome) dto.SecondPickResponse {
	return dto.SecondPickResponse{
		Matched:     out.Matched,
		PrizeID:     out.PrizeID,
		FirstLabel:  out.FirstLabel,
		SecondLabel: out.SecondLabel,
	}
}

func ToShuffleStateResponse(state model.ShuffleState) dto.StateResponse {
	return dto.StateResponse{
		Prizes:       toShufflePrizes(state.Prizes),
		NoPrizesLeft: state.Depleted,
		Phase:        string(state.Phase),
	}
}

func ToShuffleStatsResponse(stats model.PlayStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRounds:   stats.TotalRounds,
		TotalWins:     stats.TotalWins,
		WinRate:       stats.WinRate,
		WindowWinRate: stats.WindowWinRate,
		WindowSize:    stats.WindowSize,
	}
}

func toShufflePrizes(prizes []model.Prize) []dto.Prize {
	result := make([]dto.Prize, len(prizes))
	for i, p := range prizes {
		result[i] = dto.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
		}
	}
	return result
}
