package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yigit/cgpatracker/internal/app/repositories"
	"github.com/yigit/cgpatracker/internal/bootstrap"
	"github.com/yigit/cgpatracker/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config    *config.Config
	router    *gin.Engine
	redis     *redis.Client
	purger    repositories.Purger // nil when the store expires keys itself
	logger    zerolog.Logger
	http      *http.Server
	stopPurge context.CancelFunc
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	repos, redisClient, err := bootstrap.SetupSessionStore(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup session store: %w", err)
	}

	closeRedis := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}

	deps, err := bootstrap.BuildDependencies(cfg, repos, redisClient, lgr)
	if err != nil {
		closeRedis()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		closeRedis()
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &Server{
		config: cfg,
		router: router,
		redis:  redisClient,
		logger: lgr,
	}
	if purger, ok := repos.SessionRepository.(repositories.Purger); ok {
		srv.purger = purger
	}
	return srv, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if s.purger != nil {
		var purgeCtx context.Context
		purgeCtx, s.stopPurge = context.WithCancel(context.Background())
		go purgeSessions(purgeCtx, s.purger, s.config.SessionPurgeInterval(), s.logger)
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.stopPurge != nil {
		s.stopPurge()
	}

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.redis != nil {
		s.logger.Info().Msg("Closing redis client...")
		if err := s.redis.Close(); err != nil {
			s.logger.Error().Err(err).Msg("Redis close error")
			shutdownError = true
		}
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}

// purgeSessions drops expired sessions every interval until ctx is done.
func purgeSessions(ctx context.Context, purger repositories.Purger, interval time.Duration, lgr zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lgr.Info().Dur("interval", interval).Msg("Session purge started")
	for {
		select {
		case <-ctx.Done():
			lgr.Info().Msg("Session purge stopped")
			return
		case <-ticker.C:
			if n := purger.PurgeExpired(); n > 0 {
				lgr.Debug().Int("purged", n).Int("active", purger.Len()).Msg("Expired sessions purged")
			}
		}
	}
}
