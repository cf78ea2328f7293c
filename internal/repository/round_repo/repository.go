package round_repo

import (
	"promo_backend/internal/model"
	"promo_backend/internal/repository"
	"sync"
	"time"
)

// Раунд живет в памяти: до второй крышки доходят за секунды, а единственное
// долговременное следствие раунда (списание остатка) уже зафиксировано
// на первой крышке

type entry struct {
	round        *model.Round
	lastActivity time.Time
}

type repo struct {
	mu     sync.Mutex
	rounds map[string]*entry
}

func NewRoundRepository() repository.RoundRepository {
	return &repo{
		rounds: make(map[string]*entry),
	}
}

func (r *repo) Get(deviceID string) (*model.Round, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.rounds[deviceID]
	if !ok {
		return nil, false
	}
	e.lastActivity = time.Now()
	return e.round, true
}

func (r *repo) Put(deviceID string, round *model.Round) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[deviceID] = &entry{
		round:        round,
		lastActivity: time.Now(),
	}
}

func (r *repo) Delete(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rounds, deviceID)
}

// CleanupStale удаляет раунды брошенные до второй крышки.
// Списание первой крышки при этом не откатывается
func (r *repo) CleanupStale(olderThan time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for deviceID, e := range r.rounds {
		if time.Since(e.lastActivity) > olderThan {
			delete(r.rounds, deviceID)
		}
	}
}
