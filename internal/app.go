// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "bloglist/internal/api"
	"bloglist/internal/api/handler"
	"bloglist/internal/config"
	"bloglist/internal/repository"
	"bloglist/internal/repository/postgres"
	"bloglist/internal/service"
	"bloglist/internal/util"
	"bloglist/pkg/auth"
	"bloglist/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository repository.UserRepository
	BlogRepository repository.BlogRepository

	// Services
	AuthService service.AuthService
	UserService service.UserService
	BlogService service.BlogService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.BlogRepository = postgres.NewBlogRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	hasher := auth.NewPasswordHasher(app.Config.BcryptCost)
	tokens := auth.NewTokenManager([]byte(app.Config.JWTSecret), app.Config.JWTTTL)

	app.AuthService = service.NewAuthService(app.DB, app.UserRepository, hasher, tokens)
	app.UserService = service.NewUserService(app.DB, app.UserRepository, hasher)
	app.BlogService = service.NewBlogService(
		app.DB, // DBTxBeginner
		app.DB, // DBExecutor
		app.UserRepository,
		app.BlogRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	blogHandler := handler.NewBlogHandler(app.BlogService, app.Logger)
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	loginHandler := handler.NewLoginHandler(app.AuthService, app.Logger)
	app.HTTPHandler = router.NewRouter(blogHandler, userHandler, loginHandler, app.AuthService, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
