package settings

import (
	"context"
	"testing"

	"promo_backend/internal/model"
)

type fakeSettingsRepo struct {
	settings *model.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*model.Settings, error) {
	if r.settings == nil {
		return nil, model.ErrSettingsNotFound
	}
	return r.settings.Clone(), nil
}

func (r *fakeSettingsRepo) GetForUpdate(ctx context.Context) (*model.Settings, error) {
	return r.Get(ctx)
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *model.Settings) error {
	r.settings = settings.Clone()
	return nil
}

type staticDefaults struct {
	settings *model.Settings
}

func (d staticDefaults) Defaults() *model.Settings {
	return d.settings
}

func TestGetFallsBackToDefaults(t *testing.T) {
	defaults := model.DefaultSettings()
	s := NewSettingsService(&fakeSettingsRepo{}, staticDefaults{settings: defaults})

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.ShufflePrizes) != len(defaults.ShufflePrizes) {
		t.Fatalf("expected default catalog, got %d prizes", len(got.ShufflePrizes))
	}

	// Отдается копия: мутации клиента не задевают дефолты
	got.ShufflePrizes[0].Amount = 0
	if defaults.ShufflePrizes[0].Amount == 0 {
		t.Fatal("defaults were mutated through the returned settings")
	}
}

func TestUpdateNormalizesBeforeSave(t *testing.T) {
	repo := &fakeSettingsRepo{}
	s := NewSettingsService(repo, staticDefaults{settings: model.DefaultSettings()})

	saved, err := s.Update(context.Background(), &model.Settings{
		ShufflePrizes:             []model.Prize{{ID: "1", Amount: -5, IsActive: true}},
		SpinPrizes:                []model.Prize{{ID: "2"}, {ID: "3"}},
		ShuffleWinningProbability: 2,
		SpinWinningProbability:    -1,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if saved.ShuffleWinningProbability != 1 || saved.SpinWinningProbability != 0 {
		t.Errorf("probabilities not clamped: %+v", saved)
	}
	if saved.ShufflePrizes[0].Amount != 0 {
		t.Errorf("negative amount not floored: %d", saved.ShufflePrizes[0].Amount)
	}
	// Старая разметка колеса восстановлена по историческим позициям
	if !saved.SpinPrizes[0].IsLoseSegment() || saved.SpinPrizes[1].IsLoseSegment() {
		t.Errorf("legacy lose segments not derived: %+v", saved.SpinPrizes)
	}

	if repo.settings == nil {
		t.Fatal("expected settings to be persisted")
	}
}

func TestUpdateRejectsNil(t *testing.T) {
	s := NewSettingsService(&fakeSettingsRepo{}, staticDefaults{settings: model.DefaultSettings()})
	if _, err := s.Update(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil settings")
	}
}

func TestGetNormalizesStoredSettings(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.Settings{
		SpinPrizes:                []model.Prize{{ID: "4", Amount: 3, IsActive: true}},
		ShuffleWinningProbability: 0.5,
		SpinWinningProbability:    0.5,
	}}
	s := NewSettingsService(repo, staticDefaults{settings: model.DefaultSettings()})

	got, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.SpinPrizes[0].IsLoseSegment() {
		t.Errorf("stored blob without kind must get legacy markup, got %+v", got.SpinPrizes[0])
	}
	if got.LoseLabel != model.DefaultLoseLabel {
		t.Errorf("empty lose label must be filled, got %q", got.LoseLabel)
	}
}
