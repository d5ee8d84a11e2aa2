package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"snippets/internal/adapters/cache"
	"snippets/internal/adapters/discovery"
	"snippets/internal/adapters/metaweblog"
	"snippets/internal/adapters/micropub"
	"snippets/internal/adapters/transport"
	"snippets/internal/adapters/web"
	"snippets/internal/config"
	"snippets/internal/domain"
	"snippets/internal/usecases"
	"snippets/pkg/log"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.NewConsole(log.Info, os.Stderr).Fatal("failed to load settings", "error", err)
		os.Exit(1)
	}

	logger := newLogger(settings)
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Adapters
	tc := transport.New(&http.Client{}, settings.UserAgent)
	micropubClient := micropub.New(tc)
	rpcClient := metaweblog.New(tc)
	discoverer := discovery.New(tc, settings.ClientID, settings.RedirectURI, discovery.WithScope(settings.Scope))

	users := cache.NewUserCache(settings.CacheTTL)
	defer users.Close()
	pending := cache.NewAuthorizationStore(settings.AuthorizationTTL)
	defer pending.Close()

	// Identities
	session := usecases.NewSession(domain.MicroblogIdentity(settings.MicroblogToken, ""))
	accounts, err := config.LoadAccounts(settings.AccountsFile, func(a config.Accounts) { a.ApplyTo(session) })
	switch {
	case err == nil:
		go accounts.Watch(ctx, settings.AccountsPoll)
	case errors.Is(err, fs.ErrNotExist):
		log.GlobalInfo("no accounts file, using environment identity", "path", settings.AccountsFile)
	default:
		log.GlobalFatal("failed to load accounts", "path", settings.AccountsFile, "error", err)
		os.Exit(1)
	}

	// Use cases
	service := usecases.NewService(session, micropubClient, rpcClient, micropubClient, users)
	connect := usecases.NewConnectBlogUseCase(discoverer, rpcClient, micropubClient, micropubClient, pending, session,
		settings.ClientID, settings.RedirectURI)
	signin := usecases.NewEmailSignInUseCase(micropubClient, session, settings.AppName, settings.SignInRedirectURL)

	// Web
	handlers := web.NewHandlers(service, connect, signin, settings.HTTPTimeout)
	rateLimiter := web.NewRateLimiter(settings.DiscoverRateLimit, time.Minute)
	defer rateLimiter.Close()

	app := fiber.New(fiber.Config{
		AppName:               settings.AppName,
		DisableStartupMessage: true,
		BodyLimit:             64 << 20,
	})
	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())
	web.SetupRoutes(app, handlers, rateLimiter)

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.GlobalError("shutdown failed", "error", err)
		}
	}()

	log.GlobalInfo("starting snippets gateway", "port", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.GlobalFatal("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(s config.Settings) *log.Logger {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.Info
	}
	if s.LogFormat == "console" {
		return log.NewConsole(level, os.Stderr)
	}
	return log.New(level)
}
