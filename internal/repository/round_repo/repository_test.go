package round_repo

import (
	"testing"
	"time"

	"promo_backend/internal/model"
)

func TestRoundLifecycle(t *testing.T) {
	repo := NewRoundRepository()

	if _, ok := repo.Get("dev-1"); ok {
		t.Fatal("expected no round for a fresh device")
	}

	repo.Put("dev-1", &model.Round{FirstSlot: 2, FirstPrizeID: "1"})

	round, ok := repo.Get("dev-1")
	if !ok || round.FirstSlot != 2 || round.FirstPrizeID != "1" {
		t.Fatalf("unexpected round: %+v ok=%v", round, ok)
	}

	// Раунды изолированы по устройствам
	if _, ok := repo.Get("dev-2"); ok {
		t.Fatal("round leaked to another device")
	}

	repo.Delete("dev-1")
	if _, ok := repo.Get("dev-1"); ok {
		t.Fatal("expected round to be deleted")
	}
}

func TestCleanupStale(t *testing.T) {
	repo := NewRoundRepository()
	repo.Put("dev-1", &model.Round{FirstSlot: 0})

	// Свежий раунд чистку переживает
	repo.CleanupStale(time.Minute)
	if _, ok := repo.Get("dev-1"); !ok {
		t.Fatal("fresh round must survive cleanup")
	}

	repo.CleanupStale(-time.Second)
	if _, ok := repo.Get("dev-1"); ok {
		t.Fatal("stale round must be removed")
	}
}
