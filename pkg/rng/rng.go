package rng

import (
	"math/rand"
	"sync"
	"time"
)

// Source источник случайности игровых сервисов. Интерфейс позволяет
// подставить воспроизводимый генератор в тестах
type Source interface {
	Float64() float64 // [0,1)
	Intn(n int) int
}

// locked обертка над *rand.Rand: обработчики HTTP дергают сервисы
// из разных горутин
type locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func Default() Source {
	return &locked{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded воспроизводимый генератор для тестов и симуляций
func NewSeeded(seed int64) Source {
	return &locked{r: rand.New(rand.NewSource(seed))}
}
