package settings_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"promo_backend/internal/model"
	"promo_backend/internal/repository"
	repoModel "promo_backend/internal/repository/settings_repo/model"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table     = "settings"
	idCol     = "id"
	dataCol   = "data"
	updatedAt = "updated_at"

	// Конфигурация одна на всю кампанию
	singletonID = "default"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettingsRepository(dbc *pgxpool.Pool) repository.SettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Get читает блоб настроек целиком.
// Возвращает model.ErrSettingsNotFound если строки нет или она нечитаема
func (r *repo) Get(ctx context.Context) (*model.Settings, error) {
	return r.get(ctx, false)
}

// GetForUpdate то же, но с блокировкой строки до конца транзакции
func (r *repo) GetForUpdate(ctx context.Context) (*model.Settings, error) {
	return r.get(ctx, true)
}

func (r *repo) get(ctx context.Context, forUpdate bool) (*model.Settings, error) {
	query := sq.Select(dataCol).
		From(table).
		Where(sq.Eq{idCol: singletonID}).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSettingsNotFound
		}
		return nil, err
	}

	var blob repoModel.Settings
	if err := json.Unmarshal(raw, &blob); err != nil {
		// Нечитаемый блоб приравнивается к отсутствующему: вызывающий
		// подставит дефолты вместо отказа игры
		return nil, fmt.Errorf("%w: %v", model.ErrSettingsNotFound, err)
	}

	return toModel(&blob), nil
}

// Save пишет блоб настроек целиком (upsert)
func (r *repo) Save(ctx context.Context, settings *model.Settings) error {
	raw, err := json.Marshal(toBlob(settings))
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(idCol, dataCol, updatedAt).
		Values(singletonID, raw, time.Now()).
		Suffix("ON CONFLICT (" + idCol + ") DO UPDATE SET " +
			dataCol + " = EXCLUDED." + dataCol + ", " +
			updatedAt + " = EXCLUDED." + updatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

func toModel(blob *repoModel.Settings) *model.Settings {
	return &model.Settings{
		ShufflePrizes:             toModelPrizes(blob.ShufflePrizes),
		SpinPrizes:                toModelPrizes(blob.SpinPrizes),
		ShuffleWinningProbability: blob.ShuffleWinningProbability,
		SpinWinningProbability:    blob.SpinWinningProbability,
		LoseLabel:                 blob.LoseLabel,
		Colors: model.Colors{
			Primary:   blob.Colors.Primary,
			Secondary: blob.Colors.Secondary,
		},
		Images: model.Images{
			Cap:    blob.Images.Cap,
			Header: blob.Images.Header,
			Banner: blob.Images.Banner,
			Wheel:  blob.Images.Wheel,
			Lose:   blob.Images.Lose,
		},
		Texts: model.Texts{
			Am: model.LocalizedTexts{Win: blob.Texts.Am.Win, Lose: blob.Texts.Am.Lose},
			En: model.LocalizedTexts{Win: blob.Texts.En.Win, Lose: blob.Texts.En.Lose},
		},
	}
}

func toModelPrizes(in []repoModel.Prize) []model.Prize {
	out := make([]model.Prize, 0, len(in))
	for _, p := range in {
		out = append(out, model.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
			Kind:     model.SegmentKind(p.Kind),
		})
	}
	return out
}

func toBlob(settings *model.Settings) *repoModel.Settings {
	return &repoModel.Settings{
		ShufflePrizes:             toBlobPrizes(settings.ShufflePrizes),
		SpinPrizes:                toBlobPrizes(settings.SpinPrizes),
		ShuffleWinningProbability: settings.ShuffleWinningProbability,
		SpinWinningProbability:    settings.SpinWinningProbability,
		LoseLabel:                 settings.LoseLabel,
		Colors: repoModel.Colors{
			Primary:   settings.Colors.Primary,
			Secondary: settings.Colors.Secondary,
		},
		Images: repoModel.Images{
			Cap:    settings.Images.Cap,
			Header: settings.Images.Header,
			Banner: settings.Images.Banner,
			Wheel:  settings.Images.Wheel,
			Lose:   settings.Images.Lose,
		},
		Texts: repoModel.Texts{
			Am: repoModel.LocalizedTexts{Win: settings.Texts.Am.Win, Lose: settings.Texts.Am.Lose},
			En: repoModel.LocalizedTexts{Win: settings.Texts.En.Win, Lose: settings.Texts.En.Lose},
		},
	}
}

func toBlobPrizes(in []model.Prize) []repoModel.Prize {
	out := make([]repoModel.Prize, 0, len(in))
	for _, p := range in {
		out = append(out, repoModel.Prize{
			ID:       p.ID,
			Name:     p.Name,
			Amount:   p.Amount,
			IsActive: p.IsActive,
			Image:    p.Image,
			Kind:     string(p.Kind),
		})
	}
	return out
}
