package app

import (
	"context"
	authAPI "promo_backend/internal/api/auth"
	settingsAPI "promo_backend/internal/api/settings"
	shuffleAPI "promo_backend/internal/api/shuffle"
	spinAPI "promo_backend/internal/api/spin"
	"promo_backend/internal/config"
	"promo_backend/internal/config/env"
	"promo_backend/internal/middleware"
	"promo_backend/internal/repository"
	"promo_backend/internal/repository/admin_repo"
	"promo_backend/internal/repository/auth_repo"
	"promo_backend/internal/repository/round_repo"
	"promo_backend/internal/repository/settings_repo"
	"promo_backend/internal/repository/stats_repo"
	"promo_backend/internal/service"
	"promo_backend/internal/service/auth"
	"promo_backend/internal/service/settings"
	"promo_backend/internal/service/shuffle"
	"promo_backend/internal/service/spin"
	"promo_backend/pkg/rng"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Random source
	rnd rng.Source

	// Defaults (стартовая конфигурация игр)
	defaultsCfg config.DefaultsConfig

	// Settings bits
	settingsRepo repository.SettingsRepository
	settingsServ service.SettingsService
	settingsHand *settingsAPI.Handler

	// Shuffle bits
	roundRepo    repository.RoundRepository
	shuffleStats repository.StatsRepository
	shuffleServ  service.ShuffleService
	shuffleHand  *shuffleAPI.Handler

	// Spin bits
	spinStats repository.StatsRepository
	spinServ  service.SpinService
	spinHand  *spinAPI.Handler

	// Auth bits
	jwtConfig config.JWTConfig
	adminRepo repository.AdminRepository
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) Rnd() rng.Source {
	if sp.rnd == nil {
		sp.rnd = rng.Default()
	}
	return sp.rnd
}

func (sp *ServiceProvider) DefaultsCfg() config.DefaultsConfig {
	if sp.defaultsCfg == nil {
		cfg, err := env.NewDefaultsConfigFromYAML()
		if err != nil {
			panic("failed to get defaults config: " + err.Error())
		}
		sp.defaultsCfg = cfg
	}
	return sp.defaultsCfg
}

func (sp *ServiceProvider) SettingsRepository(ctx context.Context) repository.SettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = settings_repo.NewSettingsRepository(sp.DBClient(ctx))
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) SettingsService(ctx context.Context) service.SettingsService {
	if sp.settingsServ == nil {
		sp.settingsServ = settings.NewSettingsService(sp.SettingsRepository(ctx), sp.DefaultsCfg())
	}
	return sp.settingsServ
}

func (sp *ServiceProvider) SettingsHandler(ctx context.Context) *settingsAPI.Handler {
	if sp.settingsHand == nil {
		sp.settingsHand = settingsAPI.NewHandler(settingsAPI.HandlerDeps{
			Serv: sp.SettingsService(ctx),
		})
	}
	return sp.settingsHand
}

func (sp *ServiceProvider) RoundRepository() repository.RoundRepository {
	if sp.roundRepo == nil {
		sp.roundRepo = round_repo.NewRoundRepository()
	}
	return sp.roundRepo
}

func (sp *ServiceProvider) ShuffleStatsRepository() repository.StatsRepository {
	if sp.shuffleStats == nil {
		sp.shuffleStats = stats_repo.NewStatsRepository()
	}
	return sp.shuffleStats
}

func (sp *ServiceProvider) ShuffleService(ctx context.Context) service.ShuffleService {
	if sp.shuffleServ == nil {
		sp.shuffleServ = shuffle.NewShuffleService(
			sp.SettingsRepository(ctx),
			sp.RoundRepository(),
			sp.ShuffleStatsRepository(),
			sp.DefaultsCfg(),
			sp.TXManager(ctx),
			sp.Rnd(),
		)
	}
	return sp.shuffleServ
}

func (sp *ServiceProvider) ShuffleHandler(ctx context.Context) *shuffleAPI.Handler {
	if sp.shuffleHand == nil {
		sp.shuffleHand = shuffleAPI.NewHandler(shuffleAPI.HandlerDeps{
			Serv: sp.ShuffleService(ctx),
		})
	}
	return sp.shuffleHand
}

func (sp *ServiceProvider) SpinStatsRepository() repository.StatsRepository {
	if sp.spinStats == nil {
		sp.spinStats = stats_repo.NewStatsRepository()
	}
	return sp.spinStats
}

func (sp *ServiceProvider) SpinService(ctx context.Context) service.SpinService {
	if sp.spinServ == nil {
		sp.spinServ = spin.NewSpinService(
			sp.SettingsRepository(ctx),
			sp.SpinStatsRepository(),
			sp.DefaultsCfg(),
			sp.TXManager(ctx),
			sp.Rnd(),
		)
	}
	return sp.spinServ
}

func (sp *ServiceProvider) SpinHandler(ctx context.Context) *spinAPI.Handler {
	if sp.spinHand == nil {
		sp.spinHand = spinAPI.NewHandler(spinAPI.HandlerDeps{Serv: sp.SpinService(ctx)})
	}
	return sp.spinHand
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AdminRepo(ctx context.Context) repository.AdminRepository {
	if sp.adminRepo == nil {
		sp.adminRepo = admin_repo.NewAdminRepository(sp.DBClient(ctx))
	}
	return sp.adminRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.AdminRepo(ctx),
			sp.AuthRepo(ctx),
			sp.JWTConfig(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Settings endpoints: чтение публичное, запись только администраторам
		settingsHandler := sp.SettingsHandler(ctx)
		r.Route("/settings", func(rr chi.Router) {
			rr.Get("/", settingsHandler.Get)
			rr.With(middleware.Auth(sp.JWTConfig())).Put("/", settingsHandler.Update)
		})

		// Shuffle endpoints
		shuffleHandler := sp.ShuffleHandler(ctx)
		r.Route("/shuffle", func(rr chi.Router) {
			rr.Get("/state", shuffleHandler.State)
			rr.Post("/first-pick", shuffleHandler.FirstPick)
			rr.Post("/second-pick", shuffleHandler.SecondPick)
			rr.Get("/stats", shuffleHandler.Stats)
		})

		// Spin endpoints
		spinHandler := sp.SpinHandler(ctx)
		r.Route("/spin", func(rr chi.Router) {
			rr.Get("/state", spinHandler.State)
			rr.Post("/spin", spinHandler.Spin)
			rr.Get("/stats", spinHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}
