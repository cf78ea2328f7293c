package repository

import (
	"context"
	"promo_backend/internal/model"
	"time"
)

// SettingsRepository долговременное хранилище конфигурации. Читается и
// пишется целиком, частичных обновлений нет
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	// GetForUpdate блокирует строку настроек до конца текущей транзакции,
	// чтобы списание одного розыгрыша фиксировалось раньше проверки
	// доступности следующего
	GetForUpdate(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

// RoundRepository эфемерное состояние раундов игры с крышками по устройствам
type RoundRepository interface {
	Get(deviceID string) (*model.Round, bool)
	Put(deviceID string, round *model.Round)
	Delete(deviceID string)
	CleanupStale(olderThan time.Duration)
}

// StatsRepository накопительная статистика раундов одной игры
type StatsRepository interface {
	Record(won bool)
	State() model.PlayStats
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetAdminBySessionID(ctx context.Context, sessionID string) (*model.Admin, error)
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) (id int, err error)
	GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error)
}
