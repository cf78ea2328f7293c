package shuffle

import (
	"context"
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"promo_backend/internal/model"
	"promo_backend/internal/repository/round_repo"
	"promo_backend/internal/repository/stats_repo"
	"promo_backend/pkg/rng"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

// fakeSettingsRepo хранилище настроек в памяти. Как и настоящее,
// на каждое чтение отдает свежую копию
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

// nopTxManager транзакции не нужны поверх хранилища в памяти
type nopTxManager struct{}

func (nopTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (nopTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type staticDefaults struct {
	settings *model.Settings
}

func (d staticDefaults) Defaults() *model.Settings {
	return d.settings
}

func shufflePrizes(amounts ...int) []model.Prize {
	prizes := make([]model.Prize, 0, len(amounts))
	for i, amount := range amounts {
		id := string(rune('1' + i))
		prizes = append(prizes, model.Prize{
			ID:       id,
			Name:     "Prize " + id,
			Amount:   amount,
			IsActive: true,
			Kind:     model.SegmentPrize,
		})
	}
	return prizes
}

func newTestService(settings *model.Settings, seed int64) (*serv, *fakeSettingsRepo) {
	repo := &fakeSettingsRepo{settings: settings}
	s := NewShuffleService(
		repo,
		round_repo.NewRoundRepository(),
		stats_repo.NewStatsRepository(),
		staticDefaults{settings: model.DefaultSettings()},
		nopTxManager{},
		rng.NewSeeded(seed),
	)
	return s.(*serv), repo
}

func TestFirstPickConsumesStock(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(1, 2),
		ShuffleWinningProbability: 1,
		LoseLabel:                 "Try Again",
	}
	s, repo := newTestService(settings, 1)

	res, err := s.FirstPick(ctx, "dev-1", 0)
	if err != nil {
		t.Fatalf("first pick failed: %v", err)
	}
	if res.PrizeID == "" || res.Label == "" {
		t.Fatalf("expected prize id and label, got %+v", res)
	}

	// Остаток списывается на вскрытии, до развязки раунда
	total := 0
	for _, p := range repo.settings.ShufflePrizes {
		total += p.Amount
	}
	if total != 2 {
		t.Errorf("expected total stock 2 after pick, got %d", total)
	}

	if _, ok := s.roundRepo.Get("dev-1"); !ok {
		t.Error("expected round to be recorded for the device")
	}
}

func TestFirstPickRefusals(t *testing.T) {
	ctx := context.Background()

	t.Run("depleted catalog", func(t *testing.T) {
		settings := &model.Settings{
			ShufflePrizes:             shufflePrizes(0, 0),
			ShuffleWinningProbability: 1,
			LoseLabel:                 "Try Again",
		}
		s, _ := newTestService(settings, 1)

		_, err := s.FirstPick(ctx, "dev-1", 0)
		if !errors.Is(err, model.ErrNoPrizesLeft) {
			t.Fatalf("expected ErrNoPrizesLeft, got %v", err)
		}
	})

	t.Run("round already in progress", func(t *testing.T) {
		settings := &model.Settings{
			ShufflePrizes:             shufflePrizes(5, 5),
			ShuffleWinningProbability: 1,
			LoseLabel:                 "Try Again",
		}
		s, _ := newTestService(settings, 1)

		if _, err := s.FirstPick(ctx, "dev-1", 0); err != nil {
			t.Fatalf("first pick failed: %v", err)
		}
		_, err := s.FirstPick(ctx, "dev-1", 1)
		if !errors.Is(err, model.ErrRoundInProgress) {
			t.Fatalf("expected ErrRoundInProgress, got %v", err)
		}
	})

	t.Run("slot out of range", func(t *testing.T) {
		settings := &model.Settings{
			ShufflePrizes:             shufflePrizes(5, 5),
			ShuffleWinningProbability: 1,
			LoseLabel:                 "Try Again",
		}
		s, repo := newTestService(settings, 1)

		if _, err := s.FirstPick(ctx, "dev-1", -1); err == nil {
			t.Fatal("expected error for negative slot")
		}
		// Крышек девять, валидны слоты 0-8
		if _, err := s.FirstPick(ctx, "dev-1", 9); err == nil {
			t.Fatal("expected error for slot above the cap count")
		}

		// Отказ до списания: остатки не тронуты
		total := 0
		for _, p := range repo.settings.ShufflePrizes {
			total += p.Amount
		}
		if total != 10 {
			t.Errorf("refused pick must not consume stock, total %d", total)
		}
	})
}

func TestSecondPickRefusals(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(5, 5),
		ShuffleWinningProbability: 1,
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 1)

	_, err := s.SecondPick(ctx, "dev-1", 1)
	if !errors.Is(err, model.ErrRoundNotStarted) {
		t.Fatalf("expected ErrRoundNotStarted, got %v", err)
	}

	if _, err := s.FirstPick(ctx, "dev-1", 2); err != nil {
		t.Fatalf("first pick failed: %v", err)
	}
	_, err = s.SecondPick(ctx, "dev-1", 2)
	if !errors.Is(err, model.ErrSameSlot) {
		t.Fatalf("expected ErrSameSlot, got %v", err)
	}

	if _, err := s.SecondPick(ctx, "dev-1", 9); err == nil {
		t.Fatal("expected error for slot above the cap count")
	}
	// Неудачная вторая крышка раунд не закрывает
	if _, ok := s.roundRepo.Get("dev-1"); !ok {
		t.Fatal("round must survive a refused second pick")
	}
}

func TestSecondPickForcedMatch(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(5, 5),
		ShuffleWinningProbability: 1, // каждый раунд выигрышный
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 7)

	first, err := s.FirstPick(ctx, "dev-1", 0)
	if err != nil {
		t.Fatalf("first pick failed: %v", err)
	}
	out, err := s.SecondPick(ctx, "dev-1", 1)
	if err != nil {
		t.Fatalf("second pick failed: %v", err)
	}

	if !out.Matched {
		t.Fatal("expected a matched round with probability 1")
	}
	// Выигрыш — равенство идентификаторов за двумя крышками
	if out.PrizeID != first.PrizeID || out.SecondPrizeID != first.PrizeID {
		t.Errorf("expected both caps to show prize %s, got %+v", first.PrizeID, out)
	}

	// Раунд завершен, можно начинать следующий
	if _, ok := s.roundRepo.Get("dev-1"); ok {
		t.Error("expected round state to be cleared after second pick")
	}
}

func TestSecondPickLoseShowsDifferentPrize(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(5, 5, 5),
		ShuffleWinningProbability: 0, // каждый раунд проигрышный
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 7)

	first, err := s.FirstPick(ctx, "dev-1", 0)
	if err != nil {
		t.Fatalf("first pick failed: %v", err)
	}
	out, err := s.SecondPick(ctx, "dev-1", 1)
	if err != nil {
		t.Fatalf("second pick failed: %v", err)
	}

	if out.Matched {
		t.Fatal("expected a lost round with probability 0")
	}
	if out.SecondPrizeID == first.PrizeID {
		t.Errorf("second cap must differ from the first, both show %s", first.PrizeID)
	}
	if out.SecondPrizeID == "" {
		t.Errorf("expected another available prize on the second cap, got lose label %q", out.SecondLabel)
	}
}

func TestSecondPickLoseFallbacks(t *testing.T) {
	ctx := context.Background()
	img := "cap.png"

	t.Run("inactive prize with image", func(t *testing.T) {
		settings := &model.Settings{
			ShufflePrizes: []model.Prize{
				{ID: "1", Name: "Prize 1", Amount: 5, IsActive: true, Kind: model.SegmentPrize},
				{ID: "2", Name: "Prize 2", Amount: 0, IsActive: false, Image: &img, Kind: model.SegmentPrize},
			},
			ShuffleWinningProbability: 0,
			LoseLabel:                 "Try Again",
		}
		s, _ := newTestService(settings, 3)

		if _, err := s.FirstPick(ctx, "dev-1", 0); err != nil {
			t.Fatalf("first pick failed: %v", err)
		}
		out, err := s.SecondPick(ctx, "dev-1", 1)
		if err != nil {
			t.Fatalf("second pick failed: %v", err)
		}

		if out.Matched {
			t.Fatal("expected a lost round")
		}
		// Единственный доступный приз занят первой крышкой — берется
		// неактивный с картинкой
		if out.SecondPrizeID != "2" {
			t.Errorf("expected inactive prize 2 on the second cap, got %q", out.SecondPrizeID)
		}
	})

	t.Run("generic lose label", func(t *testing.T) {
		settings := &model.Settings{
			ShufflePrizes: []model.Prize{
				{ID: "1", Name: "Prize 1", Amount: 5, IsActive: true, Kind: model.SegmentPrize},
			},
			ShuffleWinningProbability: 0,
			LoseLabel:                 "Try Again",
		}
		s, _ := newTestService(settings, 3)

		if _, err := s.FirstPick(ctx, "dev-1", 0); err != nil {
			t.Fatalf("first pick failed: %v", err)
		}
		out, err := s.SecondPick(ctx, "dev-1", 1)
		if err != nil {
			t.Fatalf("second pick failed: %v", err)
		}

		if out.SecondPrizeID != "" || out.SecondLabel != "Try Again" {
			t.Errorf("expected generic lose label, got %+v", out)
		}
	})
}

func TestFirstPickNeverShowsInactive(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes: []model.Prize{
			{ID: "1", Name: "Prize 1", Amount: 1000, IsActive: true, Kind: model.SegmentPrize},
			{ID: "2", Name: "Prize 2", Amount: 1000, IsActive: false, Kind: model.SegmentPrize},
			{ID: "3", Name: "Prize 3", Amount: 0, IsActive: true, Kind: model.SegmentPrize},
		},
		ShuffleWinningProbability: 1,
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 11)

	for i := 0; i < 200; i++ {
		res, err := s.FirstPick(ctx, "dev-1", 0)
		if err != nil {
			t.Fatalf("first pick %d failed: %v", i, err)
		}
		if res.PrizeID != "1" {
			t.Fatalf("pick %d revealed unavailable prize %s", i, res.PrizeID)
		}
		if _, err := s.SecondPick(ctx, "dev-1", 1); err != nil {
			t.Fatalf("second pick %d failed: %v", i, err)
		}
	}
}

func TestStateReportsPhaseAndDepletion(t *testing.T) {
	ctx := context.Background()
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(1, 0),
		ShuffleWinningProbability: 1,
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 1)

	st, err := s.State(ctx, "dev-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if st.Depleted || st.Phase != model.RoundIdle {
		t.Fatalf("expected idle undepleted state, got %+v", st)
	}

	if _, err := s.FirstPick(ctx, "dev-1", 0); err != nil {
		t.Fatalf("first pick failed: %v", err)
	}

	st, err = s.State(ctx, "dev-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if st.Phase != model.RoundFirstPicked {
		t.Errorf("expected first_picked phase, got %s", st.Phase)
	}
	// Единственный приз списан вскрытием
	if !st.Depleted {
		t.Error("expected depleted catalog after the last prize was revealed")
	}
}

func TestFallsBackToDefaultsWhenUnset(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(nil, 1)

	st, err := s.State(ctx, "dev-1")
	if err != nil {
		t.Fatalf("state failed: %v", err)
	}
	if len(st.Prizes) != len(model.DefaultSettings().ShufflePrizes) {
		t.Fatalf("expected built-in default catalog, got %d prizes", len(st.Prizes))
	}
}

func TestMatchRateConvergesToProbability(t *testing.T) {
	ctx := context.Background()
	const (
		p = 0.3
		n = 5000
	)
	settings := &model.Settings{
		ShufflePrizes:             shufflePrizes(n*2, n*2),
		ShuffleWinningProbability: p,
		LoseLabel:                 "Try Again",
	}
	s, _ := newTestService(settings, 42)

	wins := 0
	for i := 0; i < n; i++ {
		if _, err := s.FirstPick(ctx, "dev-1", 0); err != nil {
			t.Fatalf("first pick %d failed: %v", i, err)
		}
		out, err := s.SecondPick(ctx, "dev-1", 1)
		if err != nil {
			t.Fatalf("second pick %d failed: %v", i, err)
		}
		if out.Matched {
			wins++
		}
	}

	bin := distuv.Binomial{N: n, P: p}
	if diff := float64(wins) - bin.Mean(); diff > 5*bin.StdDev() || diff < -5*bin.StdDev() {
		t.Fatalf("wins=%d too far from expected %.0f (sigma=%.1f)", wins, bin.Mean(), bin.StdDev())
	}

	stats := s.Stats()
	if stats.TotalRounds != n || stats.TotalWins != wins {
		t.Errorf("stats out of sync: %+v, wins=%d", stats, wins)
	}
}
