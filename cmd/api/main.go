package main

import (
	"context"
	"expvar"
	"os"
	"runtime"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wot/internal/auth"
	"wot/internal/config"
	"wot/internal/db"
	"wot/internal/domain/aggregates/cache"
	"wot/internal/domain/storage"
	"wot/internal/enrich"
	"wot/internal/ratelimiter"
	"wot/internal/service"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.InfoLevel)

	return zap.New(core).Sugar(), nil
}

//	@title			Where is the toilet API
//	@description	Public toilet directory with ratings, comments and reactions.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token whose subject is the requester id.

//	@securityDefinitions.basic	BasicAuth

func main() {
	logger, err := NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.New(ctx, cfg.DB.Addr, cfg.DB.MaxOpenConns, cfg.DB.MaxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	if cfg.DB.AutoMigrate {
		if err := db.RunMigrations(ctx, pool, db.Migrations(), logger); err != nil {
			logger.Fatal(err)
		}
	}

	//storage
	container := storage.NewContainer(pool)

	// Aggregates are read through redis when it is configured.
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		container.Aggregates = cache.New(container.Aggregates, rdb, cfg.Redis.CacheTTL, logger)
		logger.Infow("aggregate cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	mapper := enrich.NewMapper(container.Aggregates, container.Extras)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.RateLimiter.RequestsPerTimeFrame,
		cfg.RateLimiter.TimeFrame,
	)
	if cfg.RateLimiter.Enabled {
		go rateLimiter.Run(ctx)
	}

	app := &application{
		config: cfg,
		logger: logger,
		db:     pool,
		toilets: service.NewToiletService(
			container.Reference, container.Toilets, container.Exclusions, mapper, container, logger,
		),
		comments: service.NewCommentService(
			container.Reference, container.Comments, container.Reactions, container.Exclusions, mapper, container, logger,
		),
		views:         db.NewViewRefresher(pool, logger),
		authenticator: auth.NewJWTAuthenticator(cfg.Auth.Token.Secret, cfg.Auth.Token.Iss),
		rateLimiter:   rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(cfg.Version)
	expvar.Publish("database", expvar.Func(func() any {
		stat := pool.Stat()
		return map[string]any{
			"total_conns":    stat.TotalConns(),
			"idle_conns":     stat.IdleConns(),
			"acquired_conns": stat.AcquiredConns(),
			"max_conns":      stat.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	app.refreshViewsEvery(ctx, cfg.Views.RefreshInterval)

	mux := app.mount()

	if err := app.run(mux); err != nil {
		logger.Fatal(err)
	}
}
