package config

import (
	"time"

	"promo_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// DefaultsConfig стартовая конфигурация игр: подставляется когда
// сохраненных настроек нет или они нечитаемы
type DefaultsConfig interface {
	Defaults() *model.Settings
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
