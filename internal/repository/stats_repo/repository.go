package stats_repo

import (
	"promo_backend/internal/model"
	"promo_backend/internal/repository"
	"sync"
)

const windowSize = 500

// StatsRepo потокобезопасная статистика раундов одной игры в памяти.
// Диагностика для администратора: селекторы на нее не опираются,
// вероятность выигрыша задается только конфигурацией
type StatsRepo struct {
	mtx         sync.RWMutex
	totalRounds int
	totalWins   int
	window      []bool
}

func NewStatsRepository() repository.StatsRepository {
	return &StatsRepo{
		window: make([]bool, 0, windowSize),
	}
}

// Record фиксирует исход завершенного раунда
func (r *StatsRepo) Record(won bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.totalRounds++
	if won {
		r.totalWins++
	}

	r.window = append(r.window, won)
	if len(r.window) > windowSize {
		r.window = r.window[1:]
	}
}

// State снимок статистики
func (r *StatsRepo) State() model.PlayStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	stats := model.PlayStats{
		TotalRounds: r.totalRounds,
		TotalWins:   r.totalWins,
		WindowSize:  len(r.window),
	}
	if r.totalRounds > 0 {
		stats.WinRate = float64(r.totalWins) / float64(r.totalRounds)
	}

	windowWins := 0
	for _, won := range r.window {
		if won {
			windowWins++
		}
	}
	if len(r.window) > 0 {
		stats.WindowWinRate = float64(windowWins) / float64(len(r.window))
	}

	return stats
}
