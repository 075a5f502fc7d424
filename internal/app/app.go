package app

import (
	"context"
	"fmt"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/auth"
	"shop_backend/internal/config"
	"shop_backend/internal/email"
	"shop_backend/internal/handlers"
	"shop_backend/internal/imageprocessor"
	"shop_backend/internal/logger"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
	"shop_backend/internal/routes"
	"shop_backend/internal/services"
	"shop_backend/internal/storage"
	"shop_backend/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Run wires the whole application together and starts the HTTP server. It
// blocks until the server stops.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()
	apperrors.SetDebug(!cfg.IsProduction())
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	store, err := storage.NewLocalStorage(cfg.Upload.BasePath, cfg.Upload.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	uploads := services.NewUploadService(
		store,
		imageprocessor.NewProcessor(cfg.Upload.ImageQuality),
		cfg.Upload.ThumbnailPx,
	)

	var mail email.Provider
	if cfg.Email.SMTPHost != "" {
		mail = email.NewSMTPProvider(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			From:     cfg.Email.FromEmail,
		})
	} else {
		mail = email.NoopProvider{}
	}

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	reviewRepo := repositories.NewGormRepository[models.Review](db)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authService := services.NewAuthService(userRepo, mail)

	if err := seedFirstOwner(cfg, userRepo, authService); err != nil {
		return fmt.Errorf("seed owner: %w", err)
	}

	base := handlers.NewBaseHandler(validator.New())
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(base, authService, tokens, cfg.JWT.CookieExpires, cfg.IsProduction()),
		Users:      handlers.NewUserHandler(base, userRepo),
		Products:   handlers.NewProductHandler(base, productRepo, categoryRepo, uploads),
		Categories: handlers.NewCategoryHandler(base, categoryRepo, uploads),
		Reviews:    handlers.NewReviewHandler(base, reviewRepo),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	r.Static(cfg.Upload.BaseURL, store.BasePath())
	routes.Register(r, h, middleware.Protect(tokens, userRepo))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	return r.Run(addr)
}

// openDatabase connects to Postgres and migrates the schema. TranslateError
// turns driver unique-violation errors into gorm.ErrDuplicatedKey, which the
// repositories rely on.
func openDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// seedFirstOwner creates the bootstrap owner account from the environment when
// no owner exists yet. Without it a fresh deployment has no way to log in.
func seedFirstOwner(cfg *config.Config, users repositories.UserRepository, authService services.AuthService) error {
	if cfg.Seed.OwnerUsername == "" || cfg.Seed.OwnerPassword == "" {
		return nil
	}

	ctx := context.Background()
	owners, err := users.FindByRole(ctx, models.UserRoleOwner)
	if err != nil {
		return err
	}
	if len(owners) > 0 {
		return nil
	}

	_, err = authService.Register(ctx, cfg.Seed.OwnerUsername, "", cfg.Seed.OwnerPassword, cfg.Seed.OwnerPassword, models.UserRoleOwner)
	if err != nil {
		return err
	}
	logger.Info("seeded first owner account", "username", cfg.Seed.OwnerUsername)
	return nil
}
