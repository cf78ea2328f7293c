package auth

import (
	"promo_backend/internal/config"
	"promo_backend/internal/repository"
	"promo_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager trm.Manager
	adminRepo repository.AdminRepository
	authRepo  repository.AuthRepository
	jwtConfig config.JWTConfig
}

// NewAuthService Создать сервис аутентификации администраторов
func NewAuthService(
	txManager trm.Manager,
	adminRepo repository.AdminRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager: txManager,
		adminRepo: adminRepo,
		authRepo:  authRepo,
		jwtConfig: jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
