package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vmedia/showreel/internal/admin"
	"github.com/vmedia/showreel/internal/config"
	"github.com/vmedia/showreel/internal/gallery"
	"github.com/vmedia/showreel/internal/genai"
	"github.com/vmedia/showreel/internal/httpserver"
	"github.com/vmedia/showreel/internal/httpserver/deps"
	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/metadata"
	"github.com/vmedia/showreel/internal/persist"
	"github.com/vmedia/showreel/internal/redis"
	"github.com/vmedia/showreel/internal/scheduler"
	"github.com/vmedia/showreel/internal/seed"
	"github.com/vmedia/showreel/internal/version"
	"github.com/vmedia/showreel/internal/view"
)

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	server  *httpserver.Server
	adapter persist.Adapter
	syncer  *persist.Syncer
	backup  *scheduler.BackupWriter
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Seed dataset: an optional YAML file overrides the bundled defaults.
	dataset := seed.Default()
	if cfg.SeedFile != "" {
		loaded, err := seed.NewLoader(cfg.SeedFile).Load()
		if err != nil {
			loggerClient.Errorf("Failed to load seed file %s: %v", cfg.SeedFile, err)
			os.Exit(1)
		}
		dataset = loaded
	}

	items := gallery.NewItemStore()
	profile := gallery.NewProfileStore(dataset.Profile)

	// Persistence backend: per-host files, or a shared Redis store that
	// fans edits out to every running presenter.
	var adapter persist.Adapter
	switch cfg.Backend {
	case config.BackendRedis:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		redisClient, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		adapter = persist.NewRedisAdapter(redisClient)
	case config.BackendLocal:
		loggerClient.Infof("Using local persistence in %s", cfg.DataDir)
		adapter = persist.NewLocalAdapter(cfg.DataDir)
	}

	syncer := persist.NewSyncer(adapter, items, profile, dataset, loggerClient)

	views := view.NewController(cfg.AdminPath)
	sessions := admin.NewManager(cfg.AdminUser, cfg.AdminPassword, cfg.SessionTTL)

	var suggester *genai.Client
	if cfg.GeminiAPIKey != "" {
		suggester = genai.New(cfg.GeminiAPIKey, cfg.GeminiModel, loggerClient)
		loggerClient.Info("content suggestions enabled",
			logger.String("model", cfg.GeminiModel))
	} else {
		loggerClient.Info("no Gemini API key configured, content suggestions disabled")
	}

	// Optional periodic backup of the full dataset to a local file.
	var backup *scheduler.BackupWriter
	var backupTrigger chan struct{}
	if cfg.BackupFile != "" {
		backupTrigger = make(chan struct{}, 1)
		backup = scheduler.NewBackupWriter(
			syncer,
			cfg.BackupFile,
			loggerClient,
			cfg.BackupInterval,
			backupTrigger,
		)
	}

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AdminCIDRs:    cfg.AdminCIDRs,
		TrustProxy:    cfg.TrustProxy,
		Items:         items,
		Profile:       profile,
		Syncer:        syncer,
		Sessions:      sessions,
		Views:         views,
		GenAI:         suggester,
		Lookup:        metadata.NewClient(),
		AdminPath:     cfg.AdminPath,
		BackupTrigger: backupTrigger,
		SuggestBurst:  cfg.SuggestBurst,
		SuggestPerMin: cfg.SuggestPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:     cfg,
		logger:  loggerClient,
		server:  server,
		adapter: adapter,
		syncer:  syncer,
		backup:  backup,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Showreel v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Showreel %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load or seed the dataset and open the change subscriptions.
	if err := a.syncer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start syncer: %w", err)
	}
	a.logger.Info("dataset loaded", logger.String("backend", a.cfg.Backend))

	// Start periodic backup (if enabled)
	if a.backup != nil {
		if err := a.backup.Start(ctx); err != nil {
			return fmt.Errorf("failed to start backup writer: %w", err)
		}
		a.logger.Info("backup writer started",
			logger.String("file", a.cfg.BackupFile),
			logger.Duration("interval", a.cfg.BackupInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.backup != nil {
		a.backup.Stop()
	}
	a.syncer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.adapter.Close(); err != nil {
		a.logger.Warnf("failed to close persistence backend: %v", err)
	} else {
		a.logger.Info("✅ persistence backend closed cleanly")
	}

	a.logger.Info("✅ Showreel stopped cleanly")
	return nil
}
