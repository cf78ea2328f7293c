package converter

import (
	dto "promo_backend/internal/api/dto/spin"
	"promo_backend/internal/model"
)

func ToSpinResponse(out model.SpinOutcome) dto.SpinResponse {
	resp := dto.SpinResponse{
		Won:          out.Won,
		SegmentIndex: out.SegmentIndex,
		Degree:       out.Degree,
	}
	if out.Prize != nil {
		p := toSpinPrize(*out.Prize)
		resp.Prize = &p
	}
	return resp
}

func ToSpinStateResponse(state model.SpinState) dto.StateResponse {
	return dto.StateResponse{
		Prizes:       toSpinPrizes(state.Prizes),
		NoPrizesLeft: state.Depleted,
	}
}

func ToSpinStatsResponse(stats model.PlayStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalRounds:   stats.TotalRounds,
		TotalWins:     stats.TotalWins,
		WinRate:       stats.WinRate,
		WindowWinRate: stats.WindowWinRate,
		WindowSize:    stats.WindowSize,
	}
}

func toSpinPrizes(prizes []model.Prize) []dto.Prize {
	result := make([]dto.Prize, len(prizes))
	for i, p := range prizes {
		result[i] = toSpinPrize(p)
	}
	return result
}

func toSpinPrize(p model.Prize) dto.Prize {
	return dto.Prize{
		ID:       p.ID,
		Name:     p.Name,
		Amount:   p.Amount,
		IsActive: p.IsActive,
		Image:    p.Image,
		Kind:     string(p.Kind),
	}
}
