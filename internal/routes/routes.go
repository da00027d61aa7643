package routes

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/balcao-bank/balcao/internal/account"
	"github.com/balcao-bank/balcao/internal/client"
	"github.com/balcao-bank/balcao/internal/config"
	"github.com/balcao-bank/balcao/internal/middleware"
	"github.com/balcao-bank/balcao/internal/notification"
	"github.com/balcao-bank/balcao/internal/teller"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// may be nil; the ledger then runs on the in-memory stores.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres when configured, in-memory otherwise.
	var clientRepo client.Repository
	var accountRepo account.Repository
	if d.DB != nil {
		clientRepo = client.NewPostgresRepository(d.DB)
		accountRepo = account.NewPostgresRepository(d.DB)
	} else {
		clientRepo = client.NewMemoryRepository()
		accountRepo = account.NewMemoryRepository()
	}

	// Services and handlers
	clientSvc := client.NewService(clientRepo)
	accountSvc := account.NewService(accountRepo, d.Cfg.BranchCode, d.Cfg.CheckingPolicy())
	notifier := notification.NewLoggerNotifier(d.Logger)
	tellerSvc := teller.NewService(clientSvc, accountSvc, notifier)

	clientHandler := client.NewHandler(clientSvc)
	accountHandler := account.NewHandler(accountSvc)
	tellerHandler := teller.NewHandler(tellerSvc)

	// API routes
	api := app.Group("/api/v1")

	RegisterClientRoutes(api, clientHandler)
	RegisterAccountRoutes(api, accountHandler, clientSvc, accountSvc, d.Logger)

	// Money-moving endpoints get an audit log on top of the access log.
	ops := api.Group("", middleware.Audit(d.Logger))
	withdrawLimiter := middleware.WithdrawalRateLimit(d.Cache, 5)
	RegisterOperationRoutes(ops, tellerHandler, withdrawLimiter)

	return nil
}
