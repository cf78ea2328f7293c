package service

import (
	"context"
	"promo_backend/internal/model"
)

type ShuffleService interface {
	State(ctx context.Context, deviceID string) (*model.ShuffleState, error)
	FirstPick(ctx context.Context, deviceID string, slot int) (*model.FirstPickResult, error)
	SecondPick(ctx context.Context, deviceID string, slot int) (*model.ShuffleOutcome, error)
	Stats() model.PlayStats
}

type SpinService interface {
	State(ctx context.Context) (*model.SpinState, error)
	Spin(ctx context.Context) (*model.SpinOutcome, error)
	Stats() model.PlayStats
}

type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Update(ctx context.Context, settings *model.Settings) (*model.Settings, error)
}

type AuthService interface {
	Register(ctx context.Context, admin *model.Admin) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}
