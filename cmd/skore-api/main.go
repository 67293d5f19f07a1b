package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skorelabs/skore-api/internal/auth"
	"github.com/skorelabs/skore-api/internal/catalog"
	"github.com/skorelabs/skore-api/internal/config"
	"github.com/skorelabs/skore-api/internal/database"
	"github.com/skorelabs/skore-api/internal/email"
	"github.com/skorelabs/skore-api/internal/leads"
	"github.com/skorelabs/skore-api/internal/logging"
	"github.com/skorelabs/skore-api/internal/ratelimit"
	"github.com/skorelabs/skore-api/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skore-api",
		Short: "SKORE marketing site backend service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("site-url", defaults.GetString("site.url"), "Public site URL used in emails and download links")
	cmd.PersistentFlags().String("email-from", defaults.GetString("email.from"), "From address for transactional email")
	cmd.PersistentFlags().String("admin-email", defaults.GetString("email.admin"), "Address receiving contact notifications")
	cmd.PersistentFlags().String("redis-addr", defaults.GetString("ratelimit.redis_addr"), "Redis address for shared rate limiting (empty uses in-process state)")
	cmd.PersistentFlags().String("download-dir", defaults.GetString("download.dir"), "Directory holding downloadable resource files")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "site.url", "site-url")
	bindFlag(cmd, "email.from", "email-from")
	bindFlag(cmd, "email.admin", "admin-email")
	bindFlag(cmd, "ratelimit.redis_addr", "redis-addr")
	bindFlag(cmd, "download.dir", "download-dir")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Open(appConfig.DatabasePath, logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	leadStore, err := leads.NewService(leads.ServiceConfig{
		Database:   db,
		Clock:      time.Now,
		IDProvider: leads.NewUUIDProvider(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	var emailClient email.Client
	if appConfig.EmailAPIKey != "" {
		emailClient = email.NewResendClient(appConfig.EmailAPIKey)
	} else {
		logger.Warn("no email API key configured, deliveries will be skipped")
		emailClient = email.NewNopClient(logger)
	}

	dispatcher, err := email.NewDispatcher(email.DispatcherConfig{
		Client:     emailClient,
		From:       appConfig.EmailFrom,
		AdminEmail: appConfig.AdminEmail,
		SiteURL:    appConfig.SiteURL,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	contactLimiter, subscribeLimiter, downloadLimiter := buildLimiters(appConfig, logger)

	var tokenIssuer *auth.DownloadTokenIssuer
	if appConfig.DownloadTokenSecret != "" {
		tokenIssuer = auth.NewDownloadTokenIssuer(auth.DownloadTokenIssuerConfig{
			SigningSecret: []byte(appConfig.DownloadTokenSecret),
			TokenTTL:      appConfig.DownloadTokenTTL,
		})
	} else {
		logger.Warn("no download token secret configured, file downloads are unauthenticated")
	}

	handler, err := server.NewHTTPHandler(server.Dependencies{
		LeadStore:        leadStore,
		Catalog:          catalog.Default(),
		Dispatcher:       dispatcher,
		ContactLimiter:   contactLimiter,
		SubscribeLimiter: subscribeLimiter,
		DownloadLimiter:  downloadLimiter,
		TokenIssuer:      tokenIssuer,
		DownloadDir:      appConfig.DownloadDir,
		SiteURL:          appConfig.SiteURL,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    appConfig.HTTPAddress,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", appConfig.HTTPAddress))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// buildLimiters selects shared Redis windows when an address is configured,
// in-process sliding windows otherwise.
func buildLimiters(appConfig config.AppConfig, logger *zap.Logger) (ratelimit.Limiter, ratelimit.Limiter, ratelimit.Limiter) {
	if appConfig.RedisAddr == "" {
		return ratelimit.NewSlidingWindow(ratelimit.ContactLimit, ratelimit.Window),
			ratelimit.NewSlidingWindow(ratelimit.SubscribeLimit, ratelimit.Window),
			ratelimit.NewSlidingWindow(ratelimit.DownloadLimit, ratelimit.Window)
	}

	client := redis.NewClient(&redis.Options{Addr: appConfig.RedisAddr})
	logger.Info("using shared rate limit state", zap.String("redis_addr", appConfig.RedisAddr))
	return ratelimit.NewRedisWindow(client, "contact", ratelimit.ContactLimit, ratelimit.Window, logger),
		ratelimit.NewRedisWindow(client, "subscribe", ratelimit.SubscribeLimit, ratelimit.Window, logger),
		ratelimit.NewRedisWindow(client, "download", ratelimit.DownloadLimit, ratelimit.Window, logger)
}
