package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	grpcrouter "github.com/dtroode/playground-api/internal/api/grpc/router"
	grpcServer "github.com/dtroode/playground-api/internal/api/grpc/server"
	httpctx "github.com/dtroode/playground-api/internal/api/http/context"
	httprouter "github.com/dtroode/playground-api/internal/api/http/router"
	httpServer "github.com/dtroode/playground-api/internal/api/http/server"
	"github.com/dtroode/playground-api/internal/clock"
	"github.com/dtroode/playground-api/internal/config"
	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/repository/memory"
	"github.com/dtroode/playground-api/internal/seed"
	"github.com/dtroode/playground-api/internal/server"
	"github.com/dtroode/playground-api/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	clk := clock.NewRealClock()
	userRepo := memory.NewUserRepository()
	postRepo := memory.NewPostRepository(clk)

	if err := seedStores(ctx, cfg.Seed, clk, userRepo, postRepo); err != nil {
		logger.Fatal("failed to seed storage", "error", err)
	}
	logger.Info("storage ready", "users", userRepo.Count(ctx), "posts", postRepo.Count(ctx))

	userService := service.NewUser(userRepo, logger)
	postService := service.NewPost(postRepo, logger)
	ctxMgr := httpctx.NewManager()

	handler := httprouter.New(userService, postService, ctxMgr, logger, cfg.HTTP.MaxBodyBytes).Register()
	servers := []model.Server{
		httpServer.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout),
	}

	var health *grpcrouter.Router
	if cfg.GRPC.Enabled {
		health = grpcrouter.New(ctxMgr, logger)
		servers = append(servers, grpcServer.NewGRPCServer(health.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.TLS)

	logAppVersion()

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range servers {
		g.Go(func() error {
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				return fmt.Errorf("server %s: %w", s.Address(), err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("received interruption signal, shutting down")

		if health != nil {
			health.Shutdown()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		var errs []error
		for _, s := range servers {
			if err := s.Stop(shutdownCtx); err != nil {
				logger.Error("error during server shutdown", "error", err, "address", s.Address())
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
	}
	logger.Info("shutdown complete")
}

func seedStores(
	ctx context.Context,
	cfg config.Seed,
	clk clock.Clock,
	users model.UserStore,
	posts model.PostStore,
) error {
	if cfg.Disabled {
		return nil
	}

	data := seed.Default(clk.NowUtc())
	if cfg.File != "" {
		var err error
		data, err = seed.LoadFile(cfg.File, clk.NowUtc())
		if err != nil {
			return err
		}
	}

	return seed.Apply(ctx, users, posts, data)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
