package catalog

import (
	"testing"

	"promo_backend/internal/model"
)

func testPrizes() []model.Prize {
	img := "cap.png"
	return []model.Prize{
		{ID: "1", Name: "Prize 1", Amount: 2, IsActive: true, Kind: model.SegmentPrize},
		{ID: "2", Name: "Prize 2", Amount: 5, IsActive: true, Kind: model.SegmentLose},
		{ID: "3", Name: "Prize 3", Amount: 0, IsActive: true, Kind: model.SegmentPrize},
		{ID: "4", Name: "Prize 4", Amount: 3, IsActive: false, Image: &img, Kind: model.SegmentPrize},
	}
}

func TestAvailable(t *testing.T) {
	available := Available(testPrizes())

	// доступны только активные с остатком: "1" и "2"
	if len(available) != 2 {
		t.Fatalf("expected 2 available prizes, got %d", len(available))
	}
	if available[0].ID != "1" || available[1].ID != "2" {
		t.Errorf("expected prizes 1 and 2, got %s and %s", available[0].ID, available[1].ID)
	}
}

func TestAvailableWinning(t *testing.T) {
	winning := AvailableWinning(testPrizes())

	// "2" размечен как lose и выигрышным быть не может
	if len(winning) != 1 {
		t.Fatalf("expected 1 winning prize, got %d", len(winning))
	}
	if winning[0].ID != "1" {
		t.Errorf("expected prize 1, got %s", winning[0].ID)
	}
}

func TestLoseSegments(t *testing.T) {
	prizes := testPrizes()
	prizes[1].Amount = 0
	prizes[1].IsActive = false

	// проигрышный сегмент остается в игре независимо от остатка и активности
	lose := LoseSegments(prizes)
	if len(lose) != 1 || lose[0].ID != "2" {
		t.Fatalf("expected lose segment 2, got %v", lose)
	}
}

func TestDecrement(t *testing.T) {
	t.Run("decrements named prize", func(t *testing.T) {
		prizes := Decrement(testPrizes(), "1")
		if prizes[0].Amount != 1 {
			t.Errorf("expected amount 1, got %d", prizes[0].Amount)
		}
	})

	t.Run("does not go below zero", func(t *testing.T) {
		prizes := Decrement(testPrizes(), "3")
		if prizes[2].Amount != 0 {
			t.Errorf("expected amount to stay 0, got %d", prizes[2].Amount)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := testPrizes()
		after := Decrement(testPrizes(), "nope")
		for i := range before {
			if after[i].Amount != before[i].Amount {
				t.Errorf("prize %s amount changed: %d -> %d", before[i].ID, before[i].Amount, after[i].Amount)
			}
		}
	})
}

func TestIsDepleted(t *testing.T) {
	prizes := testPrizes()
	if IsDepleted(prizes) {
		t.Fatal("catalog with available prizes must not be depleted")
	}

	prizes[0].Amount = 0
	prizes[1].IsActive = false
	if !IsDepleted(prizes) {
		t.Fatal("catalog without available prizes must be depleted")
	}
}

func TestIndexOf(t *testing.T) {
	prizes := testPrizes()
	if idx := IndexOf(prizes, "3"); idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}
	if idx := IndexOf(prizes, "nope"); idx != -1 {
		t.Errorf("expected -1 for unknown id, got %d", idx)
	}
}
