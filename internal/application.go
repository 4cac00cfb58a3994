package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/cardgames-backend/internal/config"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
	"github.com/rocketscienceinc/cardgames-backend/internal/repository"
	"github.com/rocketscienceinc/cardgames-backend/internal/repository/storage"
	"github.com/rocketscienceinc/cardgames-backend/internal/service"
	"github.com/rocketscienceinc/cardgames-backend/transport/rest"
)

const shutdownTimeout = 5 * time.Second

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	seeder := newSeeder(log, conf.RandomSeed)

	concentrationRepo := repository.NewConcentrationRepository(redisStorage, conf.Redis.GameTTL)
	setRepo := repository.NewSetRepository(redisStorage, conf.Redis.GameTTL)

	concentrationService := service.NewConcentrationService(logger, concentrationRepo, seeder, service.ConcentrationOptions{
		DefaultPairs:    conf.Concentration.DefaultPairs,
		MaxPairs:        conf.Concentration.MaxPairs,
		CardAspectRatio: conf.Concentration.CardAspectRatio,
	})
	setService := service.NewSetService(logger, setRepo, seeder)

	httpServer := rest.New(logger, conf.HTTPPort, concentrationService, setService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		if httpErr := httpServer.Start(); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	return nil
}

// newSeeder gives every game its own seed: consecutive seeds from a
// configured one, crypto random ones otherwise.
func newSeeder(log *slog.Logger, seed int64) random.Seeder {
	if seed != 0 {
		log.Warn("Using a fixed random seed, games are reproducible", "seed", seed)
		return random.FixedSeeder(seed)
	}

	return random.NewSeed
}
