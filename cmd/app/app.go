package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/swingthoughts/swing-thoughts-api/internal/api"
	"github.com/swingthoughts/swing-thoughts-api/internal/config"
	"github.com/swingthoughts/swing-thoughts-api/internal/db"
	"github.com/swingthoughts/swing-thoughts-api/internal/logger"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository"
	"github.com/swingthoughts/swing-thoughts-api/internal/repository/dao"
	"github.com/swingthoughts/swing-thoughts-api/internal/worker"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fanout, leaders, err := startWorkers(ctx, conf, postgresDB)
	if err != nil {
		return fmt.Errorf("failed to start workers -> %w", err)
	}

	s := api.NewServer(conf, postgresDB, fanout, leaders)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func startWorkers(ctx context.Context, conf *config.AppConfig, postgresDB *gorm.DB) (*worker.FanoutWorker, *worker.LeaderWorker, error) {
	thoughtRepo := repository.NewFeedRepository(dao.NewThoughtDAO(postgresDB))
	socialRepo := repository.NewSocialRepository(dao.NewSocialDAO(postgresDB))
	boardRepo := repository.NewLeaderboardRepository(dao.NewLeaderboardDAO(postgresDB))
	leaderRepo := repository.NewCourseLeaderRepository(dao.NewCourseLeaderDAO(postgresDB))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))

	fanout := worker.NewFanoutWorker(thoughtRepo, socialRepo, boardRepo, worker.FanoutOptions{
		ThoughtLimit: conf.Fanout.ThoughtLimit,
		ChunkSize:    conf.Fanout.ChunkSize,
		QueueSize:    conf.Fanout.QueueSize,
	})
	fanout.Start(ctx)

	leaders := worker.NewLeaderWorker(leaderRepo, userRepo)
	if err := leaders.Start(ctx, conf.Fanout.LeaderSweepInterval); err != nil {
		return nil, nil, err
	}

	return fanout, leaders, nil
}
