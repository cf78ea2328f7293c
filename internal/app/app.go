package app

import (
	"context"
	"log"
	"net/http"
	"promo_backend/internal/config"
	"time"
)

const (
	// Брошенные раунды двух крышек убираются из памяти спустя полчаса
	staleRoundAge    = 30 * time.Minute
	roundSweepPeriod = 5 * time.Minute
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	go s.sweepStaleRounds()

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}

func (s *App) sweepStaleRounds() {
	ticker := time.NewTicker(roundSweepPeriod)
	defer ticker.Stop()

	for range ticker.C {
		s.ServiceProvider.RoundRepository().CleanupStale(staleRoundAge)
	}
}
